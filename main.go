package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/santaclimb/ecs/system"
	"github.com/milk9111/santaclimb/prefabs"
	"github.com/quasilyte/gdata"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and controller state")
	levelName := flag.String("level", "", "level name in levels/ (basename, .tmx optional)")
	watch := flag.Bool("watch", false, "reload prefabs/ from disk when they change")
	flag.Parse()

	var store system.ScoreStore
	if m, err := gdata.Open(gdata.Config{AppName: "santaclimb"}); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = m
	}
	scoreboard, err := system.NewScoreboard(store)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Fatalf("watch %s: %v", prefabs.Dir, err)
		}
		defer watcher.Close()
	}

	game, err := NewGame(*levelName, *debug, scoreboard, watcher)
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("santaclimb")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
