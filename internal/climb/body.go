package climb

import "github.com/vovakirdan/tui-climber/internal/core"

// Body is the player's square hitbox and its motion state.
type Body struct {
	X, Y      float64 // Top-left corner in world units
	PrevY     float64 // Y before this tick's integration, for swept collision
	VX, VY    float64
	JumpCount int  // Jumps used since the last landing
	Grounded  bool // Resting on a platform's top edge
}

// NewBody places a body at the spawn point, standing on the initial platform.
func NewBody(p Params) Body {
	x, y := p.SpawnBody()
	return Body{X: x, Y: y, PrevY: y, Grounded: true}
}

// Box returns the body's hitbox.
func (b *Body) Box(p Params) core.Box {
	return core.Box{X: b.X, Y: b.Y, W: p.BodySize, H: p.BodySize}
}

// Bottom returns the y of the body's bottom edge.
func (b *Body) Bottom(p Params) float64 {
	return b.Y + p.BodySize
}

// Advance integrates one tick of player physics.
//
// Horizontal: held directions add acceleration (both held cancel out),
// friction applies every tick, speed is capped, then x is integrated and
// clamped to the walls with vx zeroed on contact.
// Vertical: a jump is honored while jumps remain, gravity always applies,
// then y is integrated.
func (b *Body) Advance(in Intents, p Params) {
	if in.Left {
		b.VX -= p.MoveAccel
	}
	if in.Right {
		b.VX += p.MoveAccel
	}
	b.VX *= p.Friction
	b.VX = core.ClampF(b.VX, -p.MaxSpeedX, p.MaxSpeedX)
	b.X += b.VX

	if b.X <= 0 {
		b.X = 0
		b.VX = 0
	} else if maxX := p.MaxBodyX(); b.X >= maxX {
		b.X = maxX
		b.VX = 0
	}

	if in.Jump && b.JumpCount < p.MaxJumps {
		b.VY = p.JumpVelocity
		b.Grounded = false
		b.JumpCount++
	}

	b.VY += p.Gravity
	b.PrevY = b.Y
	b.Y += b.VY
}
