package prefabs

import (
	"fmt"

	"github.com/milk9111/santaclimb/ecs/component"
	"gopkg.in/yaml.v3"
)

const PlayerPrefab = "player.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	return ParseSpec[T](filename, data)
}

func ParseSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type PlayerSpec struct {
	Name        string  `yaml:"name"`
	Gravity     float64 `yaml:"gravity"`
	Speed       float64 `yaml:"speed"`
	JumpForce   float64 `yaml:"jump_force"`
	MaxJumps    int     `yaml:"max_jumps"`
	StartOffset float64 `yaml:"start_offset"`
	ClimbSpeed  float64 `yaml:"climb_speed"`
}

// MovementConfig converts the spec and validates it.
func (s PlayerSpec) MovementConfig() (component.MovementConfig, error) {
	cfg := component.MovementConfig{
		Gravity:     s.Gravity,
		Speed:       s.Speed,
		JumpForce:   s.JumpForce,
		MaxJumps:    s.MaxJumps,
		StartOffset: s.StartOffset,
		ClimbSpeed:  s.ClimbSpeed,
	}
	if err := cfg.Validate(); err != nil {
		return component.MovementConfig{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return cfg, nil
}

// LoadMovementConfig reads and validates the player prefab.
func LoadMovementConfig() (component.MovementConfig, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerPrefab)
	if err != nil {
		return component.MovementConfig{}, err
	}
	return spec.MovementConfig()
}
