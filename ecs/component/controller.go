package component

// MovementMode is the player's locomotion state.
type MovementMode uint8

const (
	ModeGrounded MovementMode = iota
	ModeAirborne
	ModeClimbing
)

func (m MovementMode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeClimbing:
		return "climbing"
	default:
		return "unknown"
	}
}

type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// ControllerState is the player controller's per-body state. Only the
// controller mutates it.
type ControllerState struct {
	Mode      MovementMode
	JumpCount int
	Facing    Facing
	// JumpLatched is set by a successful jump and cleared once the jump
	// button is observed released.
	JumpLatched bool
}

// NewControllerState returns the spawn state: standing, facing right.
func NewControllerState() ControllerState {
	return ControllerState{Mode: ModeGrounded, Facing: FacingRight}
}

var ControllerStateComponent = NewComponent[ControllerState]()
