package climb

import (
	"reflect"
	"strings"
	"testing"
)

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := New(DefaultParams(), seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.Friction = 1.5
	p.PlatformCount = 1

	_, err := New(p, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"friction", "platform count"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
}

func TestIdleBodyStaysOnSpawn(t *testing.T) {
	w := newTestWorld(t, 1)
	_, spawnY := w.params.SpawnBody()

	var s Snapshot
	for i := 0; i < 120; i++ {
		s = w.Step(Intents{})
	}
	if s.State != StatePlaying {
		t.Fatalf("state = %v", s.State)
	}
	if w.body.Y != spawnY || !w.body.Grounded {
		t.Errorf("body drifted: y=%v grounded=%v", w.body.Y, w.body.Grounded)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if s.Tick != 120 {
		t.Errorf("tick = %d, want 120", s.Tick)
	}
}

func TestFallEndsRunOnExactTick(t *testing.T) {
	w := newTestWorld(t, 1)
	// Off the left end of the spawn platform, nothing below.
	w.body.X = 0
	w.body.Grounded = false

	// Falling from 520 with gravity 0.5 the top edge passes 600 on tick 18.
	for i := 1; i <= 17; i++ {
		if s := w.Step(Intents{}); s.State != StatePlaying {
			t.Fatalf("run ended early on tick %d", s.Tick)
		}
	}
	s := w.Step(Intents{})
	if s.State != StateGameOver || s.Cause != CauseFell {
		t.Fatalf("tick %d: state=%v cause=%v", s.Tick, s.State, s.Cause)
	}
	if s.Tick != 18 {
		t.Errorf("ended on tick %d, want 18", s.Tick)
	}

	// Nothing but reset has an effect after the end.
	for _, in := range []Intents{{Left: true}, {Right: true, Jump: true}, {}} {
		after := w.Step(in)
		if !reflect.DeepEqual(after, s) {
			t.Fatalf("world changed after game over with %+v", in)
		}
	}

	s = w.Step(Intents{Reset: true})
	if s.State != StatePlaying || s.Cause != CauseNone || s.Tick != 0 {
		t.Errorf("after reset: state=%v cause=%v tick=%d", s.State, s.Cause, s.Tick)
	}
	if s.Seed == 1 {
		t.Error("seed did not advance after a played run")
	}
}

func TestHazardEndsRun(t *testing.T) {
	w := newTestWorld(t, 1)
	w.hazard = Hazard{Active: true, Y: 530}

	s := w.Step(Intents{})
	if s.State != StateGameOver || s.Cause != CauseHazard {
		t.Fatalf("state=%v cause=%v", s.State, s.Cause)
	}
	if s.Tick != 1 {
		t.Errorf("tick = %d, want 1", s.Tick)
	}
}

func TestResetIgnoredWhilePlaying(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Step(Intents{})
	s := w.Step(Intents{Reset: true})
	if s.Tick != 2 || s.Seed != 1 {
		t.Errorf("reset honored while playing: tick=%d seed=%d", s.Tick, s.Seed)
	}
}

func TestResetIdempotent(t *testing.T) {
	w := newTestWorld(t, 5)
	fresh := w.Snapshot()

	// Reset before any play rebuilds the same world.
	w.Reset()
	if !reflect.DeepEqual(w.Snapshot(), fresh) {
		t.Fatal("reset of an unplayed world changed it")
	}

	for i := 0; i < 30; i++ {
		w.Step(Intents{Jump: i%10 == 0, Right: true})
	}

	w.Reset()
	first := w.Snapshot()
	firstField := append([]Platform(nil), w.field.Platforms...)

	w.Reset()
	if !reflect.DeepEqual(w.Snapshot(), first) {
		t.Error("back-to-back resets produced different snapshots")
	}
	if !reflect.DeepEqual(w.field.Platforms, firstField) {
		t.Error("back-to-back resets produced different fields")
	}
	if first.Seed == 5 {
		t.Error("seed did not advance after a played run")
	}
}

func TestDeterministicBySeed(t *testing.T) {
	a := newTestWorld(t, 99)
	b := newTestWorld(t, 99)
	bot := &Autopilot{Deadband: 4, AutoReset: true}

	sa, sb := a.Snapshot(), b.Snapshot()
	for i := 0; i < 2000; i++ {
		sa = a.Step(bot.Next(sa))
		sb = b.Step(bot.Next(sb))
		if !reflect.DeepEqual(sa, sb) {
			t.Fatalf("tick %d: worlds diverged", i)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := newTestWorld(t, 1)
	b := newTestWorld(t, 2)
	if reflect.DeepEqual(a.field.Platforms, b.field.Platforms) {
		t.Error("different seeds built identical fields")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	w := newTestWorld(t, 1)
	s := w.Step(Intents{})
	if len(s.Platforms) == 0 {
		t.Fatal("no visible platforms")
	}

	s.Platforms[0].Box.X = -999
	s.Platforms = s.Platforms[:0]

	again := w.Snapshot()
	if len(again.Platforms) == 0 || again.Platforms[0].Box.X == -999 {
		t.Error("snapshot shares memory with the world")
	}
}

func TestSnapshotSkipsExpiredPlatforms(t *testing.T) {
	w := newTestWorld(t, 1)
	before := len(w.Snapshot().Platforms)

	w.field.Platforms[0] = Platform{
		X: 160, Y: 540, Kind: KindVanishing,
		Vanish: Vanish{Touched: true, Elapsed: w.params.VanishDelay + 1},
	}
	if after := len(w.Snapshot().Platforms); after != before-1 {
		t.Errorf("visible platforms = %d, want %d", after, before-1)
	}
}

func TestSnapshotScreenSpace(t *testing.T) {
	w := newTestWorld(t, 1)
	w.camera.Offset = 100

	s := w.Snapshot()
	if s.Player.Box.Y != w.body.Y+100 {
		t.Errorf("player screen y = %v, want %v", s.Player.Box.Y, w.body.Y+100)
	}
	for _, pl := range s.Platforms {
		if pl.Box.Bottom() < 0 || pl.Box.Y > s.ViewportHeight {
			t.Errorf("off-screen platform in snapshot: %+v", pl.Box)
		}
	}
}

func TestRecordTracksRun(t *testing.T) {
	w := newTestWorld(t, 3)
	w.body.X = 0
	w.body.Grounded = false
	for w.State() == StatePlaying {
		w.Step(Intents{})
	}

	r := w.Record()
	if r.Cause != CauseFell || r.Ticks != 18 || r.Seed != 3 {
		t.Errorf("record = %+v", r)
	}
	if r.Height != 0 || r.Score != 0 {
		t.Errorf("falling run should not gain height: %+v", r)
	}
}

func TestStateAndCauseString(t *testing.T) {
	if StatePlaying.String() != "playing" || StateGameOver.String() != "game_over" {
		t.Error("state names")
	}
	if CauseNone.String() != "none" || CauseFell.String() != "fell" || CauseHazard.String() != "hazard" {
		t.Error("cause names")
	}
}
