package climb

import "github.com/vovakirdan/tui-climber/internal/core"

// Kind selects a platform's behavior.
type Kind int

const (
	KindStatic    Kind = iota // Never moves
	KindMoving                // Slides horizontally, reflecting at the walls
	KindVanishing             // Disappears a fixed delay after first contact

	kindCount = iota
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindMoving:
		return "moving"
	case KindVanishing:
		return "vanishing"
	default:
		return "unknown"
	}
}

// Motion is the state of a moving platform.
type Motion struct {
	Dir   float64 // -1 or +1
	Speed float64 // World units per tick
}

// Vanish is the state of a vanishing platform.
type Vanish struct {
	Touched bool // Set on first landing
	Elapsed int  // Ticks since first landing
}

// Platform is one surface of the field. Only the variant matching Kind is
// meaningful; the other is kept zero.
type Platform struct {
	X, Y   float64 // Top-left corner in world units
	Kind   Kind
	Motion Motion
	Vanish Vanish
}

// Box returns the platform's rectangle.
func (pl *Platform) Box(p Params) core.Box {
	return core.Box{X: pl.X, Y: pl.Y, W: p.PlatformWidth, H: p.PlatformHeight}
}

// Expired reports whether a vanishing platform has outlived its delay.
// Expired platforms neither collide nor render until they are recycled.
func (pl *Platform) Expired(p Params) bool {
	return pl.Kind == KindVanishing && pl.Vanish.Touched && pl.Vanish.Elapsed > p.VanishDelay
}

// advance runs one tick of kind-specific behavior.
func (pl *Platform) advance(p Params) {
	switch pl.Kind {
	case KindMoving:
		pl.X += pl.Motion.Dir * pl.Motion.Speed
		if pl.X <= 0 {
			pl.X = 0
			pl.Motion.Dir = 1
		} else if maxX := p.MaxPlatformX(); pl.X >= maxX {
			pl.X = maxX
			pl.Motion.Dir = -1
		}
	case KindVanishing:
		if pl.Vanish.Touched {
			pl.Vanish.Elapsed++
		}
	}
}

// touch records a landing on the platform.
func (pl *Platform) touch() {
	if pl.Kind == KindVanishing && !pl.Vanish.Touched {
		pl.Vanish.Touched = true
	}
}
