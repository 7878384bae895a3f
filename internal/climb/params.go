// Package climb implements Sky Climber, a vertical platformer: a body climbs
// an endless, recycled field of platforms while the camera scrolls up and a
// rising hazard line chases it.
//
// The simulation is pure and single-threaded. A World advances one fixed
// tick per Step and hands out Snapshots by value; all randomness comes from
// the world's run seed so runs are reproducible.
package climb

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Params holds the fixed tuning of a world. It is captured when the world is
// created and never changes for that world's lifetime.
type Params struct {
	// World geometry
	WorldWidth     float64 // Horizontal extent of the playfield
	ViewportHeight float64 // Visible height; also the screen-space bottom
	BodySize       float64 // Player body is a BodySize x BodySize square

	// Player physics, per tick
	Gravity      float64 // Added to vy every tick
	JumpVelocity float64 // vy after an honored jump (negative = up)
	MoveAccel    float64 // Horizontal acceleration while a direction is held
	Friction     float64 // vx multiplier applied every tick, in (0, 1)
	MaxSpeedX    float64 // Horizontal speed cap
	MaxJumps     int     // Ground jump plus air jumps

	// Platforms
	PlatformWidth    float64
	PlatformHeight   float64
	PlatformCount    int     // Live platforms, constant for a run
	PlatformGap      float64 // Vertical distance between generated platforms
	RecycleGapFactor float64 // Recycled platforms go this many gaps above the highest
	MovingSpeedMin   float64
	MovingSpeedMax   float64
	VanishDelay      int     // Ticks a touched vanishing platform survives
	SpawnX           float64 // Left edge of the initial static platform
	SpawnY           float64 // Top edge of the initial static platform

	// Camera keeps the body at or below this fraction of the viewport height.
	CameraPin float64

	// Hazard line
	HazardActivation float64 // Climb height that wakes the hazard
	HazardBaseSpeed  float64
	HazardAccel      float64 // Added to the speed every active tick
	HazardMaxSpeed   float64
}

// DefaultParams returns the canonical tuning.
func DefaultParams() Params {
	return Params{
		WorldWidth:     400,
		ViewportHeight: 600,
		BodySize:       20,

		Gravity:      0.5,
		JumpVelocity: -11,
		MoveAccel:    0.8,
		Friction:     0.88,
		MaxSpeedX:    6,
		MaxJumps:     2,

		PlatformWidth:    80,
		PlatformHeight:   16,
		PlatformCount:    10,
		PlatformGap:      80,
		RecycleGapFactor: 1,
		MovingSpeedMin:   1,
		MovingSpeedMax:   2.5,
		VanishDelay:      30,
		SpawnX:           160,
		SpawnY:           540,

		CameraPin: 0.4,

		HazardActivation: 800,
		HazardBaseSpeed:  0.3,
		HazardAccel:      0.0005,
		HazardMaxSpeed:   2,
	}
}

// SpawnBody returns the body's starting position: centered on the initial
// platform, standing on its top edge.
func (p Params) SpawnBody() (x, y float64) {
	x = p.SpawnX + p.PlatformWidth/2 - p.BodySize/2
	y = p.SpawnY - p.BodySize
	return core.ClampF(x, 0, p.MaxBodyX()), y
}

// MaxBodyX is the largest x the body may take.
func (p Params) MaxBodyX() float64 {
	return p.WorldWidth - p.BodySize
}

// MaxPlatformX is the largest x a platform may take.
func (p Params) MaxPlatformX() float64 {
	return p.WorldWidth - p.PlatformWidth
}

// Validate reports every parameter that would break the world's invariants.
func (p Params) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(p.WorldWidth > 0, "world width must be positive, got %g", p.WorldWidth)
	check(p.ViewportHeight > 0, "viewport height must be positive, got %g", p.ViewportHeight)
	check(p.BodySize > 0 && p.BodySize < p.WorldWidth, "body size must be in (0, world width), got %g", p.BodySize)
	check(p.Gravity > 0, "gravity must be positive, got %g", p.Gravity)
	check(p.JumpVelocity < 0, "jump velocity must be negative (upward), got %g", p.JumpVelocity)
	check(p.MoveAccel >= 0, "move acceleration must not be negative, got %g", p.MoveAccel)
	check(p.Friction > 0 && p.Friction < 1, "friction must be in (0, 1), got %g", p.Friction)
	check(p.MaxSpeedX > 0, "max horizontal speed must be positive, got %g", p.MaxSpeedX)
	check(p.MaxJumps >= 1, "max jumps must be at least 1, got %d", p.MaxJumps)
	check(p.PlatformWidth > 0 && p.PlatformWidth <= p.WorldWidth, "platform width must be in (0, world width], got %g", p.PlatformWidth)
	check(p.PlatformHeight > 0, "platform height must be positive, got %g", p.PlatformHeight)
	check(p.PlatformCount >= 2, "platform count must be at least 2, got %d", p.PlatformCount)
	check(p.PlatformGap > 0, "platform gap must be positive, got %g", p.PlatformGap)
	check(p.RecycleGapFactor > 0, "recycle gap factor must be positive, got %g", p.RecycleGapFactor)
	check(p.MovingSpeedMin >= 0 && p.MovingSpeedMax >= p.MovingSpeedMin,
		"moving speed range must satisfy 0 <= min <= max, got [%g, %g]", p.MovingSpeedMin, p.MovingSpeedMax)
	check(p.VanishDelay >= 0, "vanish delay must not be negative, got %d", p.VanishDelay)
	check(p.SpawnY > p.BodySize && p.SpawnY < p.ViewportHeight, "spawn y must be inside the viewport, got %g", p.SpawnY)
	check(p.CameraPin > 0 && p.CameraPin < 1, "camera pin must be in (0, 1), got %g", p.CameraPin)
	check(p.HazardActivation >= 0, "hazard activation height must not be negative, got %g", p.HazardActivation)
	check(p.HazardBaseSpeed >= 0 && p.HazardMaxSpeed >= p.HazardBaseSpeed,
		"hazard speed must satisfy 0 <= base <= max, got base %g max %g", p.HazardBaseSpeed, p.HazardMaxSpeed)
	check(p.HazardAccel >= 0, "hazard acceleration must not be negative, got %g", p.HazardAccel)

	if len(errs) > 0 {
		return fmt.Errorf("climb: invalid params: %w", errors.Join(errs...))
	}
	return nil
}
