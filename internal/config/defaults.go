package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the built-in climbing configuration. It matches
// the embedded defaults/climb.yaml and backs any field a YAML file omits.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		World: ClimbWorld{
			Width:          400,
			ViewportHeight: 600,
			SpawnX:         160,
			SpawnY:         540,
		},
		Physics: ClimbPhysics{
			BodySize:     20,
			Gravity:      0.5,
			JumpVelocity: -11,
			MoveAccel:    0.8,
			Friction:     0.88,
			MaxSpeedX:    6,
			MaxJumps:     2,
		},
		Platforms: ClimbPlatforms{
			Width:            80,
			Height:           16,
			Count:            10,
			Gap:              80,
			RecycleGapFactor: 1,
			MovingSpeedMin:   1,
			MovingSpeedMax:   2.5,
			VanishDelay:      30,
		},
		Camera: ClimbCamera{
			Pin: 0.4,
		},
		Hazard: ClimbHazard{
			ActivationHeight: 800,
			BaseSpeed:        0.3,
			Accel:            0.0005,
			MaxSpeed:         2,
		},
	}
}
