package component

import "image/color"

// Sprite is a flat-colored block the size of the entity's physics body.
// OriginX and OriginY are fractions of the block placed on the transform.
type Sprite struct {
	Fill    color.RGBA
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
