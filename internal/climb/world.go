package climb

import (
	"math"
	"math/rand"
)

// State is the phase of a run.
type State int

const (
	StatePlaying  State = iota // Simulation advances every tick
	StateGameOver              // Frozen until a reset is requested
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why a run ended.
type Cause int

const (
	CauseNone   Cause = iota // Run still in progress
	CauseFell                // Dropped below the bottom of the view
	CauseHazard              // Caught by the rising hazard
)

// String returns the cause's name.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFell:
		return "fell"
	case CauseHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// World owns every piece of a run and advances them in a fixed order.
// It is not safe for concurrent use; one goroutine drives it.
type World struct {
	params Params
	rng    *rand.Rand

	seed  int64 // Seed of the current run
	dirty bool  // A playing tick ran since the last reset

	body   Body
	field  Field
	camera Camera
	hazard Hazard

	state State
	cause Cause
	tick  uint64
	peak  float64 // Highest climb above spawn, world units
}

// New creates a world with the given tuning and seed, ready to play.
func New(p Params, seed int64) (*World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w := &World{params: p, seed: seed}
	w.build()
	return w, nil
}

// Reset rebuilds body, field, camera and hazard and returns to Playing.
// A reset with no playing tick since the previous one rebuilds the same
// world; otherwise the run seed advances so the next layout differs.
func (w *World) Reset() {
	if w.dirty {
		w.seed = nextSeed(w.seed)
	}
	w.build()
}

func (w *World) build() {
	w.rng = rand.New(rand.NewSource(w.seed))
	w.body = NewBody(w.params)
	w.field = NewField(w.params, w.rng)
	w.camera = Camera{}
	w.hazard = Hazard{}
	w.state = StatePlaying
	w.cause = CauseNone
	w.tick = 0
	w.peak = 0
	w.dirty = false
}

// Step advances the world by one tick and returns the resulting snapshot.
//
// While playing, the order is fixed: player physics, platform motion,
// collision, recycling, camera, hazard, terminal check. Each stage sees the
// results of the stages before it in the same tick. In GameOver only
// in.Reset has an effect.
func (w *World) Step(in Intents) Snapshot {
	if w.state == StateGameOver {
		if in.Reset {
			w.Reset()
		}
		return w.Snapshot()
	}

	w.dirty = true
	w.tick++

	p := w.params
	w.body.Advance(in, p)
	w.field.Advance(p)
	Resolve(&w.body, &w.field, p)
	w.field.Recycle(p, w.camera.Offset, w.rng)
	w.camera.Follow(&w.body, p)
	w.hazard.Update(&w.body, w.camera, p)

	_, spawnY := p.SpawnBody()
	w.peak = math.Max(w.peak, spawnY-w.body.Y)

	switch {
	case w.camera.ToScreen(w.body.Y) > p.ViewportHeight:
		w.end(CauseFell)
	case w.hazard.Touches(&w.body, p):
		w.end(CauseHazard)
	}

	return w.Snapshot()
}

func (w *World) end(c Cause) {
	w.state = StateGameOver
	w.cause = c
}

// Params returns the world's tuning.
func (w *World) Params() Params {
	return w.params
}

// State returns the current phase.
func (w *World) State() State {
	return w.state
}

// Seed returns the seed of the current run.
func (w *World) Seed() int64 {
	return w.seed
}

// Score returns the climbed height shown to the player.
func (w *World) Score() int {
	return w.camera.Score()
}

// Record summarizes the current run.
func (w *World) Record() RunRecord {
	return RunRecord{
		Score:  w.camera.Score(),
		Height: int(w.peak),
		Ticks:  w.tick,
		Cause:  w.cause,
		Seed:   w.seed,
	}
}

// RunRecord is the outcome of a run.
type RunRecord struct {
	Score  int
	Height int // Peak climb above spawn
	Ticks  uint64
	Cause  Cause
	Seed   int64
}

// nextSeed derives the following run's seed (splitmix64 step).
func nextSeed(s int64) int64 {
	z := uint64(s) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
