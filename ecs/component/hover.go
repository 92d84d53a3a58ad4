package component

import "github.com/tanema/gween"

// Hover bobs an entity's sprite without moving its body.
type Hover struct {
	Amplitude float64
	// Period is one full bob in seconds.
	Period float64
	Offset float64

	Tween *gween.Sequence
}

var HoverComponent = NewComponent[Hover]()
