package component

// Player clip names.
const (
	ClipIdle = "idle"
	ClipWalk = "walk"
	ClipJump = "jump"
)

// Hazard clip names.
const (
	ClipLeft  = "left"
	ClipRight = "right"
)

// Animation records which named clip an entity is playing. Frame data and
// drawing live with the renderer.
type Animation struct {
	Current string
	// Starts counts how many times a clip was (re)started.
	Starts int
	// FlipX mirrors the sprite; the renderer also shifts its origin.
	FlipX bool
}

// Play switches to clip. Playing the current clip again restarts it only when
// restartIfSame is set.
func (a *Animation) Play(clip string, restartIfSame bool) {
	if a == nil || clip == "" {
		return
	}
	if a.Current == clip && !restartIfSame {
		return
	}
	a.Current = clip
	a.Starts++
}

var AnimationComponent = NewComponent[Animation]()
