package climb

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/core"
)

func TestAutopilotDecisions(t *testing.T) {
	player := func(x float64, grounded bool, jumps int, vy float64) PlayerView {
		return PlayerView{
			Box:       core.Box{X: x, Y: 500, W: 20, H: 20},
			Grounded:  grounded,
			JumpCount: jumps,
			VY:        vy,
		}
	}
	above := PlatformView{Box: core.Box{X: 300, Y: 440, W: 80, H: 16}}

	tests := []struct {
		name string
		snap Snapshot
		want Intents
	}{
		{
			name: "grounded jumps toward target",
			snap: Snapshot{Player: player(100, true, 0, 0), Platforms: []PlatformView{above}},
			want: Intents{Right: true, Jump: true},
		},
		{
			name: "rising holds course",
			snap: Snapshot{Player: player(400, false, 1, -5), Platforms: []PlatformView{above}},
			want: Intents{Left: true},
		},
		{
			name: "apex spends air jump",
			snap: Snapshot{Player: player(330, false, 1, 0.5), Platforms: []PlatformView{above}},
			want: Intents{Jump: true},
		},
		{
			name: "no jumps left",
			snap: Snapshot{Player: player(330, false, 2, 3), Platforms: []PlatformView{above}},
			want: Intents{},
		},
		{
			name: "no target drifts to centre",
			snap: Snapshot{WorldWidth: 400, Player: player(0, false, 2, 3)},
			want: Intents{Right: true},
		},
		{
			name: "game over",
			snap: Snapshot{State: StateGameOver},
			want: Intents{},
		},
	}

	bot := NewAutopilot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bot.Next(tt.snap); got != tt.want {
				t.Errorf("Next = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAutopilotAutoReset(t *testing.T) {
	bot := &Autopilot{AutoReset: true}
	if got := bot.Next(Snapshot{State: StateGameOver}); !got.Reset {
		t.Error("auto reset not requested")
	}
}

func TestAutopilotTargetSkipsFadingAndBelow(t *testing.T) {
	s := Snapshot{
		Player: PlayerView{Box: core.Box{X: 0, Y: 500, W: 20, H: 20}},
		Platforms: []PlatformView{
			{Box: core.Box{Y: 520}}, // Standing on it
			{Box: core.Box{Y: 460}, Kind: KindVanishing, Touched: true}, // About to go
			{Box: core.Box{Y: 380}},
			{Box: core.Box{Y: 300}},
		},
	}
	got, ok := target(s)
	if !ok || got.Box.Y != 380 {
		t.Errorf("target = %+v, %v; want y 380", got.Box, ok)
	}
}

// Drives many runs with the bot and checks the world's invariants every tick.
func TestAutopilotSoak(t *testing.T) {
	p := DefaultParams()
	climbed := false

	for seed := int64(1); seed <= 20; seed++ {
		w, err := New(p, seed)
		if err != nil {
			t.Fatal(err)
		}
		bot := &Autopilot{Deadband: 4, AutoReset: true}
		s := w.Snapshot()
		offset := 0.0

		for i := 0; i < 3000; i++ {
			prevState := s.State
			s = w.Step(bot.Next(s))

			if s.Score > 0 {
				climbed = true
			}
			if prevState == StateGameOver {
				offset = 0
				continue
			}

			if n := len(w.field.Platforms); n != p.PlatformCount {
				t.Fatalf("seed %d tick %d: %d platforms", seed, s.Tick, n)
			}
			if w.body.X < 0 || w.body.X > p.MaxBodyX() {
				t.Fatalf("seed %d tick %d: body x %v out of bounds", seed, s.Tick, w.body.X)
			}
			if w.body.JumpCount < 0 || w.body.JumpCount > p.MaxJumps {
				t.Fatalf("seed %d tick %d: jump count %d", seed, s.Tick, w.body.JumpCount)
			}
			for _, pl := range w.field.Platforms {
				if pl.X < 0 || pl.X > p.MaxPlatformX() {
					t.Fatalf("seed %d tick %d: platform x %v out of bounds", seed, s.Tick, pl.X)
				}
			}
			if w.camera.Offset < offset {
				t.Fatalf("seed %d tick %d: camera moved down %v -> %v", seed, s.Tick, offset, w.camera.Offset)
			}
			offset = w.camera.Offset
			if w.hazard.Active && w.hazard.Speed > p.HazardMaxSpeed {
				t.Fatalf("seed %d tick %d: hazard speed %v", seed, s.Tick, w.hazard.Speed)
			}
			if s.State == StateGameOver && s.Cause == CauseNone {
				t.Fatalf("seed %d tick %d: game over without cause", seed, s.Tick)
			}
		}
	}

	if !climbed {
		t.Error("autopilot never climbed in any run")
	}
}
