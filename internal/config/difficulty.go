package config

import (
	"fmt"
	"strings"
)

// ParseDifficulty resolves a preset name. The empty string means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyClimbPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyClimbPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hazard.ActivationHeight *= 1.5
		cfg.Hazard.BaseSpeed *= 0.6
		cfg.Hazard.Accel *= 0.5
		cfg.Hazard.MaxSpeed *= 0.7
		cfg.Platforms.VanishDelay += cfg.Platforms.VanishDelay / 2
		cfg.Platforms.MovingSpeedMax = max(cfg.Platforms.MovingSpeedMin, cfg.Platforms.MovingSpeedMax*0.8)
	case DifficultyHard:
		cfg.Hazard.ActivationHeight *= 0.6
		cfg.Hazard.BaseSpeed *= 1.6
		cfg.Hazard.Accel *= 2
		cfg.Hazard.MaxSpeed *= 1.4
		cfg.Platforms.VanishDelay -= cfg.Platforms.VanishDelay / 3
		cfg.Platforms.MovingSpeedMax *= 1.3
	}
}
