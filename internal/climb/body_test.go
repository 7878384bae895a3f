package climb

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewBodySpawnsOnPlatform(t *testing.T) {
	p := DefaultParams()
	b := NewBody(p)

	if b.X != 190 || b.Y != 520 {
		t.Errorf("spawn = (%v, %v), want (190, 520)", b.X, b.Y)
	}
	if !b.Grounded || b.JumpCount != 0 {
		t.Errorf("spawn should be grounded with no jumps used, got grounded=%v jumps=%d", b.Grounded, b.JumpCount)
	}
	if b.Bottom(p) != p.SpawnY {
		t.Errorf("body bottom = %v, want platform top %v", b.Bottom(p), p.SpawnY)
	}
}

func TestAdvanceHorizontal(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name   string
		x, vx  float64
		in     Intents
		wantX  float64
		wantVX float64
	}{
		{"friction only", 100, 5, Intents{}, 104.4, 4.4},
		{"accelerate right", 100, 0, Intents{Right: true}, 100.704, 0.704},
		{"accelerate left", 100, 0, Intents{Left: true}, 99.296, -0.704},
		{"both cancel", 100, 0, Intents{Left: true, Right: true}, 100, 0},
		{"speed cap", 100, 10, Intents{Right: true}, 106, 6},
		{"left wall", 5, -6, Intents{Left: true}, 0, 0},
		{"right wall", 378, 6, Intents{Right: true}, 380, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{X: tt.x, Y: 100, VX: tt.vx}
			b.Advance(tt.in, p)
			if !approx(b.X, tt.wantX) || !approx(b.VX, tt.wantVX) {
				t.Errorf("x, vx = %v, %v; want %v, %v", b.X, b.VX, tt.wantX, tt.wantVX)
			}
		})
	}
}

func TestAdvanceGravity(t *testing.T) {
	p := DefaultParams()
	b := Body{X: 100, Y: 100, VY: 2}
	b.Advance(Intents{}, p)

	if b.PrevY != 100 {
		t.Errorf("PrevY = %v, want 100", b.PrevY)
	}
	if b.VY != 2.5 || b.Y != 102.5 {
		t.Errorf("vy, y = %v, %v; want 2.5, 102.5", b.VY, b.Y)
	}
}

func TestDoubleJumpCap(t *testing.T) {
	p := DefaultParams()
	b := NewBody(p)

	jump := Intents{Jump: true}

	b.Advance(jump, p)
	if b.JumpCount != 1 || b.VY != p.JumpVelocity+p.Gravity || b.Grounded {
		t.Fatalf("first jump: count=%d vy=%v grounded=%v", b.JumpCount, b.VY, b.Grounded)
	}

	b.Advance(jump, p)
	if b.JumpCount != 2 || b.VY != p.JumpVelocity+p.Gravity {
		t.Fatalf("air jump: count=%d vy=%v", b.JumpCount, b.VY)
	}

	b.Advance(jump, p)
	if b.JumpCount != 2 {
		t.Errorf("third jump honored: count=%d", b.JumpCount)
	}
	if b.VY != p.JumpVelocity+2*p.Gravity {
		t.Errorf("third jump changed velocity: vy=%v", b.VY)
	}
}
