package climb

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	StaticChar   = '█'
	MovingChar   = '▓'
	VanishChar   = '▒'
	FadingChar   = '░'
	HazardChar   = '≈'
	HazardFill   = '░'
	WallChar     = '│'
	minPlayRows  = 8
	minPlayCols  = 16
	hudRow       = 0
	playfieldTop = 1
	cellAspect   = 2.0 // Terminal cells are about twice as tall as wide
)

// Game adapts a World to the registry.Game interface.
type Game struct {
	world  *World
	snap   Snapshot
	paused bool
	err    error
}

// NewGame creates a new Sky Climber game instance.
func NewGame() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climb"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Climber"
}

// Reset builds a fresh world from the configuration named in cfg.
// A broken config or preset falls back to the default tuning; the failure
// is kept in Err.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, err := loadParams(cfg)
	w, werr := New(params, cfg.Seed)
	if werr != nil {
		err = errors.Join(err, werr)
		w, _ = New(DefaultParams(), cfg.Seed)
	}
	g.err = err
	g.world = w
	g.paused = false
	g.snap = w.Snapshot()
}

func loadParams(cfg core.RuntimeConfig) (Params, error) {
	var errs []error
	cc, err := config.LoadClimb(cfg.ConfigPath)
	if err != nil {
		errs = append(errs, err)
	}
	preset, err := config.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		errs = append(errs, err)
		preset = config.DifficultyNormal
	}
	config.ApplyClimbPreset(&cc, preset)
	return ParamsFromConfig(cc), errors.Join(errs...)
}

// ParamsFromConfig converts a loaded YAML configuration into world tuning.
func ParamsFromConfig(c config.ClimbConfig) Params {
	return Params{
		WorldWidth:     c.World.Width,
		ViewportHeight: c.World.ViewportHeight,
		BodySize:       c.Physics.BodySize,

		Gravity:      c.Physics.Gravity,
		JumpVelocity: c.Physics.JumpVelocity,
		MoveAccel:    c.Physics.MoveAccel,
		Friction:     c.Physics.Friction,
		MaxSpeedX:    c.Physics.MaxSpeedX,
		MaxJumps:     c.Physics.MaxJumps,

		PlatformWidth:    c.Platforms.Width,
		PlatformHeight:   c.Platforms.Height,
		PlatformCount:    c.Platforms.Count,
		PlatformGap:      c.Platforms.Gap,
		RecycleGapFactor: c.Platforms.RecycleGapFactor,
		MovingSpeedMin:   c.Platforms.MovingSpeedMin,
		MovingSpeedMax:   c.Platforms.MovingSpeedMax,
		VanishDelay:      c.Platforms.VanishDelay,
		SpawnX:           c.World.SpawnX,
		SpawnY:           c.World.SpawnY,

		CameraPin: c.Camera.Pin,

		HazardActivation: c.Hazard.ActivationHeight,
		HazardBaseSpeed:  c.Hazard.BaseSpeed,
		HazardAccel:      c.Hazard.Accel,
		HazardMaxSpeed:   c.Hazard.MaxSpeed,
	}
}

// Err reports why the last Reset fell back to default tuning, if it did.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick. A paused game does not advance.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	wasOver := g.world.State() == StateGameOver
	g.snap = g.world.Step(IntentsFromFrame(in))

	return core.StepResult{
		State: g.State(),
		Reset: wasOver && g.snap.State == StatePlaying,
	}
}

// SetPaused freezes or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Snapshot returns the snapshot produced by the last tick.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Record summarizes the current or just-finished run.
func (g *Game) Record() RunRecord {
	if g.world == nil {
		return RunRecord{}
	}
	return g.world.Record()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.State == StateGameOver,
		Paused:   g.paused,
	}
}

// layout maps world units onto the character grid.
type layout struct {
	left, top  int     // Screen cell of the playfield's top-left corner
	cols, rows int     // Playfield size in cells
	sx, sy     float64 // Cells per world unit
}

func newLayout(dst *core.Screen, s Snapshot) (layout, bool) {
	rows := dst.Height() - playfieldTop
	if rows < minPlayRows || dst.Width() < minPlayCols+2 {
		return layout{}, false
	}
	cols := int(float64(rows) * s.WorldWidth / s.ViewportHeight * cellAspect)
	cols = core.Clamp(cols, minPlayCols, dst.Width()-2)
	return layout{
		left: (dst.Width() - cols) / 2,
		top:  playfieldTop,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / s.WorldWidth,
		sy:   float64(rows) / s.ViewportHeight,
	}, true
}

// rect converts a screen-space box to cells, clipped to the playfield.
func (l layout) rect(b core.Box) core.Rect {
	r := b.Scale(l.sx, l.sy)
	r.X += l.left
	r.Y += l.top
	if r.Y < l.top {
		r.H -= l.top - r.Y
		r.Y = l.top
	}
	if r.Right() > l.left+l.cols {
		r.W = l.left + l.cols - r.X
	}
	return r
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.snap

	l, ok := newLayout(dst, s)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	for y := l.top; y < l.top+l.rows; y++ {
		dst.SetColored(l.left-1, y, WallChar, core.ColorGray)
		dst.SetColored(l.left+l.cols, y, WallChar, core.ColorGray)
	}

	for _, p := range s.Platforms {
		ch, color := platformLook(p)
		dst.DrawRectColored(l.rect(p.Box), ch, color)
	}

	if s.Hazard.Active {
		g.drawHazard(dst, l)
	}

	dst.DrawRectColored(l.rect(s.Player.Box), PlayerChar, core.ColorBrightMagenta)

	g.drawHUD(dst)

	switch {
	case s.State == StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", causeText(s.Cause),
			fmt.Sprintf("Height: %d  |  Press R to restart", s.Score))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "", "Press P to resume")
	}
}

func platformLook(p PlatformView) (rune, core.Color) {
	switch p.Kind {
	case KindMoving:
		return MovingChar, core.ColorCyan
	case KindVanishing:
		if p.Touched {
			return FadingChar, core.ColorOrange
		}
		return VanishChar, core.ColorYellow
	default:
		return StaticChar, core.ColorGreen
	}
}

func (g *Game) drawHazard(dst *core.Screen, l layout) {
	y := l.top + int(math.Floor(g.snap.Hazard.ScreenY*l.sy))
	if y >= l.top+l.rows {
		return
	}
	if y >= l.top {
		dst.DrawHLineColored(l.left, y, l.cols, HazardChar, core.ColorBrightRed)
	}
	for row := core.Max(y+1, l.top); row < l.top+l.rows; row++ {
		dst.DrawHLineColored(l.left, row, l.cols, HazardFill, core.ColorRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.snap
	left := fmt.Sprintf(" Height: %d  Jumps: %d ", s.Score, g.jumpsLeft())
	dst.DrawTextColored(1, hudRow, left, core.ColorBrightWhite)

	if s.Hazard.Active {
		right := fmt.Sprintf(" Hazard %.2f ", s.Hazard.Speed)
		dst.DrawTextColored(dst.Width()-len(right)-1, hudRow, right, core.ColorBrightRed)
	}
}

func (g *Game) jumpsLeft() int {
	if g.world == nil {
		return 0
	}
	return core.Max(g.world.Params().MaxJumps-g.snap.Player.JumpCount, 0)
}

func causeText(c Cause) string {
	switch c {
	case CauseFell:
		return "You fell"
	case CauseHazard:
		return "The hazard caught you"
	default:
		return ""
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
// An empty line is skipped.
func drawCenteredMessage(dst *core.Screen, title, line, subtitle string) {
	lines := []string{title}
	if line != "" {
		lines = append(lines, line)
	}
	lines = append(lines, subtitle)

	boxW := 0
	for _, s := range lines {
		boxW = core.Max(boxW, len([]rune(s)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, s := range lines {
		x := boxX + (boxW-len([]rune(s)))/2
		dst.DrawText(x, boxY+1+i*2, s)
	}
}

// Register the game with the registry
func init() {
	registry.Register("climb", func() registry.Game {
		return NewGame()
	})
}
