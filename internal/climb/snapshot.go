package climb

import "github.com/vovakirdan/tui-climber/internal/core"

// Snapshot is a read-only copy of the world after a tick. Rectangles are in
// screen space: world units with the camera offset applied, y = 0 at the top
// of the viewport. Nothing in it aliases the world.
type Snapshot struct {
	Tick  uint64
	State State
	Cause Cause
	Score int
	Seed  int64

	WorldWidth     float64
	ViewportHeight float64

	Player    PlayerView
	Platforms []PlatformView // Visible, non-expired platforms only
	Hazard    HazardView
}

// PlayerView is the drawable body.
type PlayerView struct {
	Box       core.Box
	VX, VY    float64
	JumpCount int
	Grounded  bool
}

// PlatformView is a drawable platform.
type PlatformView struct {
	Box     core.Box
	Kind    Kind
	Touched bool // Vanishing platform counting down
}

// HazardView is the drawable hazard line.
type HazardView struct {
	Active  bool
	ScreenY float64
	Speed   float64
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	p := w.params
	cam := w.camera

	playerBox := w.body.Box(p)
	playerBox.Y = cam.ToScreen(playerBox.Y)

	platforms := make([]PlatformView, 0, len(w.field.Platforms))
	for i := range w.field.Platforms {
		pl := &w.field.Platforms[i]
		if pl.Expired(p) {
			continue
		}
		box := pl.Box(p)
		box.Y = cam.ToScreen(box.Y)
		if box.Bottom() < 0 || box.Y > p.ViewportHeight {
			continue
		}
		platforms = append(platforms, PlatformView{
			Box:     box,
			Kind:    pl.Kind,
			Touched: pl.Vanish.Touched,
		})
	}

	hazard := HazardView{Active: w.hazard.Active}
	if w.hazard.Active {
		hazard.ScreenY = cam.ToScreen(w.hazard.Y)
		hazard.Speed = w.hazard.Speed
	}

	return Snapshot{
		Tick:           w.tick,
		State:          w.state,
		Cause:          w.cause,
		Score:          cam.Score(),
		Seed:           w.seed,
		WorldWidth:     p.WorldWidth,
		ViewportHeight: p.ViewportHeight,
		Player: PlayerView{
			Box:       playerBox,
			VX:        w.body.VX,
			VY:        w.body.VY,
			JumpCount: w.body.JumpCount,
			Grounded:  w.body.Grounded,
		},
		Platforms: platforms,
		Hazard:    hazard,
	}
}
