package component

// Transform is an entity's center in world pixels, y pointing down. The
// physics system writes it back for dynamic bodies after every step; bodies
// never rotate, so there is no angle.
type Transform struct {
	X, Y float64
}

var TransformComponent = NewComponent[Transform]()
