// Package config provides YAML-based configuration loading and difficulty
// presets for the climber.
package config

// ClimbConfig contains all tuning for the climbing game.
type ClimbConfig struct {
	World     ClimbWorld     `yaml:"world"`
	Physics   ClimbPhysics   `yaml:"physics"`
	Platforms ClimbPlatforms `yaml:"platforms"`
	Camera    ClimbCamera    `yaml:"camera"`
	Hazard    ClimbHazard    `yaml:"hazard"`
}

// ClimbWorld defines the playfield dimensions and the spawn platform.
type ClimbWorld struct {
	Width          float64 `yaml:"width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	SpawnX         float64 `yaml:"spawn_x"` // Left edge of the spawn platform
	SpawnY         float64 `yaml:"spawn_y"` // Top edge of the spawn platform
}

// ClimbPhysics defines the player body and its motion.
type ClimbPhysics struct {
	BodySize     float64 `yaml:"body_size"`
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
	MoveAccel    float64 `yaml:"move_accel"`
	Friction     float64 `yaml:"friction"` // Horizontal velocity kept per tick, (0,1)
	MaxSpeedX    float64 `yaml:"max_speed_x"`
	MaxJumps     int     `yaml:"max_jumps"`
}

// ClimbPlatforms defines platform generation and recycling.
type ClimbPlatforms struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Count            int     `yaml:"count"`
	Gap              float64 `yaml:"gap"`
	RecycleGapFactor float64 `yaml:"recycle_gap_factor"`
	MovingSpeedMin   float64 `yaml:"moving_speed_min"`
	MovingSpeedMax   float64 `yaml:"moving_speed_max"`
	VanishDelay      int     `yaml:"vanish_delay"` // Ticks a touched vanishing platform survives
}

// ClimbCamera defines where the camera pins the player.
type ClimbCamera struct {
	Pin float64 `yaml:"pin"` // Fraction of viewport height from the top
}

// ClimbHazard defines the rising hazard line.
type ClimbHazard struct {
	ActivationHeight float64 `yaml:"activation_height"` // Climb above spawn before it starts
	BaseSpeed        float64 `yaml:"base_speed"`
	Accel            float64 `yaml:"accel"` // Speed added per tick
	MaxSpeed         float64 `yaml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
