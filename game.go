package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"github.com/milk9111/santaclimb/ecs/system"
	"github.com/milk9111/santaclimb/levels"
	"github.com/milk9111/santaclimb/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	frames int
	debug  bool

	layout     *levels.Layout
	world      *ecs.World
	physics    *system.PhysicsSystem
	controller *system.PlayerControllerSystem
	render     *system.RenderSystem
	scoreboard *system.Scoreboard
	watcher    *prefabs.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	hudFace ebtext.Face
}

// NewGame loads the level and player prefab and builds the first session.
// A non-nil watcher rebuilds the session whenever a prefab changes on disk.
func NewGame(levelName string, debug bool, scoreboard *system.Scoreboard, watcher *prefabs.Watcher) (*Game, error) {
	if levelName == "" {
		levelName = levels.DefaultLevel
	}
	layout, err := levels.Load(levels.LevelsFS, levelName)
	if err != nil {
		return nil, err
	}
	cfg, err := prefabs.LoadMovementConfig()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:      debug,
		layout:     layout,
		scoreboard: scoreboard,
		watcher:    watcher,
		hudFace:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if err := g.buildSession(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// buildSession replaces the world with a freshly spawned level. Score carries
// over; the player and collectibles start over.
func (g *Game) buildSession(cfg component.MovementConfig) error {
	w := ecs.NewWorld()
	g.physics = system.NewPhysicsSystem(cfg.Gravity)
	g.controller = system.NewPlayerControllerSystem()
	g.controller.Debug = g.debug
	g.render = system.NewRenderSystem()

	w.AddSystem(system.NewInputSystem(system.EbitenKeys{}))
	w.AddSystem(g.physics)
	w.AddSystem(g.controller)
	w.AddSystem(system.NewPickupCollectSystem(g.scoreboard))
	w.AddSystem(system.NewHazardContactSystem(g.scoreboard))
	w.AddSystem(system.NewHazardFacingSystem())
	w.AddSystem(system.NewPickupHoverSystem())

	if _, err := levels.Spawn(w, g.layout, cfg); err != nil {
		return err
	}
	g.world = w
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			g.pauseUI = NewPauseUI(g)
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadPrefabs()
	g.world.Update()
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Warning: prefab watcher: %v", err)
		}
	default:
	}
	name, ok := g.watcher.Poll()
	if !ok {
		return
	}
	cfg, err := prefabs.LoadMovementConfig()
	if err != nil {
		log.Printf("Warning: prefab %s not reloaded: %v", name, err)
		return
	}
	if err := g.buildSession(cfg); err != nil {
		log.Printf("Warning: rebuild after %s: %v", name, err)
		return
	}
	log.Printf("reloaded %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), screen)
		system.DrawPlayerStateDebug(g.world, screen)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, fmt.Sprintf("Score: %d  Best: %d  FPS: %.0f", g.scoreboard.Score, g.scoreboard.Best, ebiten.ActualFPS()), g.hudFace, op)

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.layout.Width), int(g.layout.Height)
}
