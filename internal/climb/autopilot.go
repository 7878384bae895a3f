package climb

// Autopilot is a deterministic bot that climbs using only what a player sees.
// It steers toward the closest platform above the body, jumps whenever it
// stands on something and spends its air jump at the top of the arc.
type Autopilot struct {
	// Deadband is the horizontal distance to the target centre, in world
	// units, inside which the bot stops steering.
	Deadband float64
	// AutoReset requests a new run as soon as the current one ends.
	AutoReset bool
}

// NewAutopilot returns a bot with the default deadband.
func NewAutopilot() *Autopilot {
	return &Autopilot{Deadband: 4}
}

// Next decides the intents for the tick following s.
func (a *Autopilot) Next(s Snapshot) Intents {
	if s.State == StateGameOver {
		return Intents{Reset: a.AutoReset}
	}

	pl := s.Player
	centre := pl.Box.X + pl.Box.W/2
	targetX := s.WorldWidth / 2
	if t, ok := target(s); ok {
		targetX = t.Box.X + t.Box.W/2
	}

	var in Intents
	switch dx := targetX - centre; {
	case dx > a.Deadband:
		in.Right = true
	case dx < -a.Deadband:
		in.Left = true
	}

	switch {
	case pl.Grounded:
		in.Jump = true
	case pl.JumpCount == 1 && pl.VY >= 0:
		in.Jump = true
	}
	return in
}

// target returns the lowest platform whose top is above the body's feet.
func target(s Snapshot) (PlatformView, bool) {
	feet := s.Player.Box.Bottom()
	var best PlatformView
	found := false
	for _, p := range s.Platforms {
		if p.Box.Y >= feet {
			continue
		}
		if p.Kind == KindVanishing && p.Touched {
			continue
		}
		if !found || p.Box.Y > best.Box.Y {
			best = p
			found = true
		}
	}
	return best, found
}
