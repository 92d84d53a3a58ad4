// Command levelcheck loads a level, prints what it spawns and runs the
// simulation headless for a while to confirm the player settles on ground.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"github.com/milk9111/santaclimb/ecs/system"
	"github.com/milk9111/santaclimb/levels"
	"github.com/milk9111/santaclimb/prefabs"
)

// scriptedKeys holds one direction for the whole run.
type scriptedKeys struct {
	left, right bool
}

func (k scriptedKeys) IsPressed(b system.Button) bool {
	switch b {
	case system.ButtonLeft:
		return k.left
	case system.ButtonRight:
		return k.right
	default:
		return false
	}
}

type tally struct {
	stars, hazards int
}

func (t *tally) OnCollectibleGathered() { t.stars++ }
func (t *tally) OnHazardContact()       { t.hazards++ }

func main() {
	levelName := flag.String("level", levels.DefaultLevel, "level file name")
	dir := flag.String("dir", "", "read levels from this directory instead of the embedded set")
	ticks := flag.Int("ticks", 180, "simulation steps to run")
	walk := flag.String("walk", "", "hold a direction for the whole run: left or right")
	flag.Parse()

	var fsys fs.FS = levels.LevelsFS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	layout, err := levels.Load(fsys, *levelName)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %vx%v px, %d ground runs, %d ladders, %d stars, %d hazards, %d props\n",
		*levelName, layout.Width, layout.Height, len(layout.Ground), len(layout.Ladders),
		len(layout.Stars), len(layout.Hazards), len(layout.Props))

	cfg, err := prefabs.LoadMovementConfig()
	if err != nil {
		log.Fatal(err)
	}

	keys := scriptedKeys{left: *walk == "left", right: *walk == "right"}
	counts := &tally{}
	w := ecs.NewWorld()
	w.AddSystem(system.NewInputSystem(keys))
	w.AddSystem(system.NewPhysicsSystem(cfg.Gravity))
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewPickupCollectSystem(counts))
	w.AddSystem(system.NewHazardContactSystem(counts))

	player, err := levels.Spawn(w, layout, cfg)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < *ticks; i++ {
		w.Update()
	}

	st, _ := ecs.Get(w, player, component.ControllerStateComponent.Kind())
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	fmt.Printf("after %d ticks: mode=%s facing=%s pos=(%.1f, %.1f) stars=%d hazard hits=%d\n",
		*ticks, st.Mode, st.Facing, tr.X, tr.Y, counts.stars, counts.hazards)
	if st.Mode != component.ModeGrounded {
		os.Exit(1)
	}
}
