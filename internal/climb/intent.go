package climb

import "github.com/vovakirdan/tui-climber/internal/core"

// Intents are the player's wishes for one tick. Left and Right are held
// states; Jump and Reset are one-shot requests the input side clears after
// a single tick.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
	Reset bool
}

// IntentsFromFrame reads the climber's intents out of a platform input frame.
func IntentsFromFrame(f core.InputFrame) Intents {
	return Intents{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Jump:  f.Has(core.ActionJump),
		Reset: f.Has(core.ActionRestart),
	}
}

// Frame converts intents back into an input frame.
func (in Intents) Frame() core.InputFrame {
	f := core.NewInputFrame()
	if in.Left {
		f.Set(core.ActionLeft)
	}
	if in.Right {
		f.Set(core.ActionRight)
	}
	if in.Jump {
		f.Set(core.ActionJump)
	}
	if in.Reset {
		f.Set(core.ActionRestart)
	}
	return f
}
