package climb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	if g.world == nil {
		t.Fatal("Reset did not build a world")
	}
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("climb") {
		t.Fatal("climb not registered")
	}
	g, err := registry.Create("climb")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Sky Climber" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestParamsFromConfigMatchesDefaults(t *testing.T) {
	if got := ParamsFromConfig(config.DefaultClimbConfig()); got != DefaultParams() {
		t.Errorf("default config converts to %+v, want %+v", got, DefaultParams())
	}
}

func TestGameResetFallsBack(t *testing.T) {
	tests := []struct {
		name string
		cfg  core.RuntimeConfig
		want string
	}{
		{"unknown difficulty", core.RuntimeConfig{Difficulty: "insane"}, "difficulty"},
		{"missing config", core.RuntimeConfig{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}, "read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			g.Reset(tt.cfg)
			if g.Err() == nil || !strings.Contains(g.Err().Error(), tt.want) {
				t.Fatalf("Err = %v, want mention of %q", g.Err(), tt.want)
			}
			if g.world.Params() != DefaultParams() {
				t.Error("fallback did not use default params")
			}
		})
	}
}

func TestGameResetInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  friction: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := NewGame()
	g.Reset(core.RuntimeConfig{ConfigPath: path})
	if g.Err() == nil || !strings.Contains(g.Err().Error(), "friction") {
		t.Fatalf("Err = %v", g.Err())
	}
	if g.world.Params() != DefaultParams() {
		t.Error("invalid config should fall back to defaults")
	}
}

func TestGameHardPreset(t *testing.T) {
	g := NewGame()
	g.Reset(core.RuntimeConfig{Difficulty: "hard"})
	if g.Err() != nil {
		t.Fatal(g.Err())
	}
	if g.world.Params().HazardMaxSpeed <= DefaultParams().HazardMaxSpeed {
		t.Error("hard preset did not speed up the hazard")
	}
}

func TestGameStepAndRestart(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver || res.Reset {
		t.Fatalf("first step: %+v", res)
	}

	g.world.hazard = Hazard{Active: true, Y: 0}
	res = g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("hazard did not end the run")
	}
	if g.Record().Cause != CauseHazard {
		t.Errorf("record cause = %v", g.Record().Cause)
	}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	if res = g.Step(jump); !res.State.GameOver || res.Reset {
		t.Fatalf("jump after game over: %+v", res)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res = g.Step(restart)
	if res.State.GameOver || !res.Reset {
		t.Fatalf("restart: %+v", res)
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("tick after restart = %d", g.Snapshot().Tick)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	g.SetPaused(true)
	res := g.Step(core.NewInputFrame())
	if !res.State.Paused {
		t.Error("paused flag not reported")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("paused game advanced to tick %d", g.Snapshot().Tick)
	}

	g.SetPaused(false)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 2 {
		t.Errorf("tick = %d, want 2", g.Snapshot().Tick)
	}
}

func countColor(s *core.Screen, c core.Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Color == c {
				n++
			}
		}
	}
	return n
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Height: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if countColor(screen, core.ColorBrightMagenta) == 0 {
		t.Error("player not drawn")
	}
	if countColor(screen, core.ColorGreen) == 0 {
		t.Error("spawn platform not drawn")
	}
	if screen.GetCell(1, 5).Rune == WallChar || countColor(screen, core.ColorGray) != 2*23 {
		t.Errorf("walls: %d gray cells", countColor(screen, core.ColorGray))
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	g.world.hazard = Hazard{Active: true, Y: 0}
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"GAME OVER", "The hazard caught you"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
	if countColor(screen, core.ColorRed) == 0 {
		t.Error("hazard fill not drawn")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Errorf("tiny screen:\n%s", screen.String())
	}
}
