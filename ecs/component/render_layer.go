package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

// Draw order, back to front.
const (
	LayerTerrain = iota
	LayerProps
	LayerPickups
	LayerActors
	LayerPlayer
)

var RenderLayerComponent = NewComponent[RenderLayer]()
