package tui

import "github.com/vovakirdan/tui-climber/internal/core"

// Hold windows in ticks. Terminals report key presses and auto-repeats but
// never releases, so a direction stays held for a while after each press.
// The first press has to bridge the keyboard's repeat delay; later repeats
// arrive much faster.
const (
	defaultInitialHold = 18
	defaultRepeatHold  = 6
)

// InputLatch turns key events into per-tick input frames.
//
// Left and Right are level-triggered and emulated with hold windows.
// Jump and Restart are edge-triggered: each press shows up in exactly one
// frame.
type InputLatch struct {
	left, right int // Remaining hold ticks
	jump        bool
	restart     bool

	initialHold int
	repeatHold  int
}

// NewInputLatch creates a latch with the default hold windows.
func NewInputLatch() *InputLatch {
	return &InputLatch{
		initialHold: defaultInitialHold,
		repeatHold:  defaultRepeatHold,
	}
}

// Press records a key press for the given action.
// Pressing one direction releases the other.
func (l *InputLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		l.right = 0
		l.left = l.hold(l.left)
	case core.ActionRight:
		l.left = 0
		l.right = l.hold(l.right)
	case core.ActionJump:
		l.jump = true
	case core.ActionRestart:
		l.restart = true
	}
}

func (l *InputLatch) hold(current int) int {
	if current > 0 {
		return max(current, l.repeatHold)
	}
	return l.initialHold
}

// Frame builds the input for one tick and consumes one-shot presses.
func (l *InputLatch) Frame() core.InputFrame {
	f := core.NewInputFrame()
	if l.left > 0 {
		f.Set(core.ActionLeft)
		l.left--
	}
	if l.right > 0 {
		f.Set(core.ActionRight)
		l.right--
	}
	if l.jump {
		f.Set(core.ActionJump)
		l.jump = false
	}
	if l.restart {
		f.Set(core.ActionRestart)
		l.restart = false
	}
	return f
}

// Reset drops everything latched.
func (l *InputLatch) Reset() {
	l.left, l.right = 0, 0
	l.jump, l.restart = false, false
}
