package component

// GravityScale multiplies world gravity for one dynamic body. The player
// controller zeroes it for the whole climb and restores it on the way off.
type GravityScale struct {
	Scale float64
}

// Suspended reports whether the body currently ignores gravity.
func (g GravityScale) Suspended() bool {
	return g.Scale == 0
}

var GravityScaleComponent = NewComponent[GravityScale]()
