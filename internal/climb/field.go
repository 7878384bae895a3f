package climb

import (
	"math/rand"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Field is the fixed-size set of live platforms. Platforms that scroll off
// the bottom are recycled above the top instead of being removed, so the
// field always holds exactly Params.PlatformCount entries.
type Field struct {
	Platforms []Platform
}

// NewField generates the initial field: a static platform at the spawn
// location, then platforms stacked upward at a fixed gap with random x,
// kind and motion.
func NewField(p Params, rng *rand.Rand) Field {
	f := Field{Platforms: make([]Platform, p.PlatformCount)}

	f.Platforms[0] = Platform{
		X:    core.ClampF(p.SpawnX, 0, p.MaxPlatformX()),
		Y:    p.SpawnY,
		Kind: KindStatic,
	}
	for i := 1; i < len(f.Platforms); i++ {
		f.Platforms[i] = randomPlatform(p, p.SpawnY-float64(i)*p.PlatformGap, rng)
	}
	return f
}

// randomPlatform builds a fresh platform at height y.
func randomPlatform(p Params, y float64, rng *rand.Rand) Platform {
	pl := Platform{
		X:    core.ClampF(rng.Float64()*p.MaxPlatformX(), 0, p.MaxPlatformX()),
		Y:    y,
		Kind: Kind(rng.Intn(kindCount)),
	}
	if pl.Kind == KindMoving {
		pl.Motion.Dir = 1
		if rng.Intn(2) == 0 {
			pl.Motion.Dir = -1
		}
		pl.Motion.Speed = p.MovingSpeedMin + rng.Float64()*(p.MovingSpeedMax-p.MovingSpeedMin)
	}
	return pl
}

// Advance runs one tick of per-kind platform behavior.
func (f *Field) Advance(p Params) {
	for i := range f.Platforms {
		f.Platforms[i].advance(p)
	}
}

// Highest returns the y of the topmost platform.
func (f *Field) Highest() float64 {
	top := f.Platforms[0].Y
	for _, pl := range f.Platforms[1:] {
		if pl.Y < top {
			top = pl.Y
		}
	}
	return top
}

// Recycle moves every platform whose top edge has scrolled below the
// viewport to a fresh position above the current highest platform.
// Returns the number of platforms recycled.
func (f *Field) Recycle(p Params, cameraOffset float64, rng *rand.Rand) int {
	recycled := 0
	highest := f.Highest()
	step := p.PlatformGap * p.RecycleGapFactor

	for i := range f.Platforms {
		if f.Platforms[i].Y+cameraOffset <= p.ViewportHeight {
			continue
		}
		highest -= step
		f.Platforms[i] = randomPlatform(p, highest, rng)
		recycled++
	}
	return recycled
}
