package levels

import (
	"fmt"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"github.com/milk9111/santaclimb/ecs/entity"
)

// Spawn creates the level's bodies and its player in w and returns the
// player. Without a spawn object the player drops in StartOffset pixels from
// the left edge.
func Spawn(w *ecs.World, layout *Layout, cfg component.MovementConfig) (ecs.Entity, error) {
	for _, r := range layout.Ground {
		if _, err := entity.NewGround(w, r); err != nil {
			return 0, fmt.Errorf("levels: spawn: %w", err)
		}
	}
	for _, r := range layout.Ladders {
		if _, err := entity.NewLadder(w, r); err != nil {
			return 0, fmt.Errorf("levels: spawn: %w", err)
		}
	}
	for _, r := range layout.Props {
		if _, err := entity.NewProp(w, r); err != nil {
			return 0, fmt.Errorf("levels: spawn: %w", err)
		}
	}
	for _, p := range layout.Stars {
		if _, err := entity.NewStar(w, p.X, p.Y); err != nil {
			return 0, fmt.Errorf("levels: spawn: %w", err)
		}
	}
	for _, p := range layout.Hazards {
		if _, err := entity.NewHazard(w, p.X, p.Y); err != nil {
			return 0, fmt.Errorf("levels: spawn: %w", err)
		}
	}

	spawn := layout.Spawn
	if !layout.HasSpawn {
		spawn = Point{X: cfg.StartOffset, Y: 0}
	}
	player, err := entity.NewPlayerAt(w, cfg, spawn.X, spawn.Y)
	if err != nil {
		return 0, fmt.Errorf("levels: spawn: %w", err)
	}
	return player, nil
}
