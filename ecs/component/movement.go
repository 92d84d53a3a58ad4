package component

import (
	"errors"
	"fmt"
)

var ErrInvalidMovementConfig = errors.New("movement: invalid config")

// MovementConfig holds the player tunables. Velocities are in pixels per
// physics step and gravity in pixels per step squared.
type MovementConfig struct {
	Gravity     float64
	Speed       float64
	JumpForce   float64
	MaxJumps    int
	StartOffset float64
	ClimbSpeed  float64
}

// DefaultMovementConfig mirrors the shipped player prefab.
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		Gravity:     0.5,
		Speed:       8,
		JumpForce:   14,
		MaxJumps:    2,
		StartOffset: 200,
		ClimbSpeed:  5,
	}
}

// Validate checks that every field is positive and at least one jump is
// allowed.
func (c MovementConfig) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"gravity", c.Gravity},
		{"speed", c.Speed},
		{"jump_force", c.JumpForce},
		{"start_offset", c.StartOffset},
		{"climb_speed", c.ClimbSpeed},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidMovementConfig, f.name, f.value)
		}
	}
	if c.MaxJumps < 1 {
		return fmt.Errorf("%w: max_jumps must be at least 1, got %d", ErrInvalidMovementConfig, c.MaxJumps)
	}
	return nil
}

// Movement attaches the session's config to a player entity.
type Movement struct {
	Config MovementConfig
}

var MovementComponent = NewComponent[Movement]()
