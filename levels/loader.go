package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/santaclimb/ecs/component"
	"github.com/milk9111/santaclimb/ecs/entity"
)

const (
	groundLayerName  = "ground"
	objectsGroupName = "objects"
	collidesProperty = "collides"
)

// objectSpawn marks the player start. Other object names map to contact
// tags through component.ParseContactTag.
const objectSpawn = "spawn"

var ErrNoGroundLayer = errors.New("levels: no ground layer")

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Layout is the collision-relevant content of a level.
type Layout struct {
	Width  float64
	Height float64

	// Ground holds colliding tiles merged into horizontal runs.
	Ground  []entity.Rect
	Ladders []entity.Rect
	// Props are objects with names the game does not recognize.
	Props []entity.Rect

	Spawn    Point
	HasSpawn bool
	Hazards  []Point
	Stars    []Point
}

// Load parses a TMX level from fsys.
func Load(fsys fs.FS, name string) (*Layout, error) {
	if !strings.HasSuffix(name, ".tmx") {
		name += ".tmx"
	}
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("levels: load TMX %s: %w", name, err)
	}

	layout := &Layout{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if err := layout.readGround(levelMap); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	layout.readObjects(levelMap)
	return layout, nil
}

func (l *Layout) readGround(levelMap *tiled.Map) error {
	var ground *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == groundLayerName {
			ground = layer
			break
		}
	}
	if ground == nil {
		return ErrNoGroundLayer
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		runStart := -1
		flush := func(end int) {
			if runStart < 0 {
				return
			}
			l.Ground = append(l.Ground, entity.Rect{
				X: float64(runStart) * tileW,
				Y: float64(y) * tileH,
				W: float64(end-runStart) * tileW,
				H: tileH,
			})
			runStart = -1
		}
		for x := 0; x < levelMap.Width; x++ {
			if tileCollides(ground.Tiles[y*levelMap.Width+x]) {
				if runStart < 0 {
					runStart = x
				}
				continue
			}
			flush(x)
		}
		flush(levelMap.Width)
	}
	return nil
}

func tileCollides(tile *tiled.LayerTile) bool {
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return false
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return false
	}
	return tilesetTile.Properties.GetBool(collidesProperty)
}

func (l *Layout) readObjects(levelMap *tiled.Map) {
	for _, og := range levelMap.ObjectGroups {
		if og.Name != objectsGroupName {
			continue
		}
		for _, o := range og.Objects {
			rect := entity.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			center := Point{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
			if o.Name == objectSpawn {
				l.Spawn = center
				l.HasSpawn = true
				continue
			}
			switch component.ParseContactTag(o.Name) {
			case component.TagHazard:
				l.Hazards = append(l.Hazards, center)
			case component.TagCollectible:
				l.Stars = append(l.Stars, center)
			case component.TagClimbable:
				l.Ladders = append(l.Ladders, rect)
			case component.TagGround:
				if rect.W > 0 && rect.H > 0 {
					l.Ground = append(l.Ground, rect)
				}
			default:
				if rect.W > 0 && rect.H > 0 {
					l.Props = append(l.Props, rect)
				}
			}
		}
	}
}
