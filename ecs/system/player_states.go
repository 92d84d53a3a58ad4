package system

import (
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

// playerState is one movement mode of the player state machine. Enter and
// Exit run only when the mode actually changes.
type playerState interface {
	Mode() component.MovementMode
	Enter(ctx *playerStateContext)
	Exit(ctx *playerStateContext)
	Update(ctx *playerStateContext)
}

// Player state singletons (avoid allocations on transitions).
var (
	playerStateGrounded playerState = playerGroundedState{}
	playerStateAirborne playerState = playerAirborneState{}
	playerStateClimbing playerState = playerClimbingState{}
)

func playerStateFor(mode component.MovementMode) playerState {
	switch mode {
	case component.ModeAirborne:
		return playerStateAirborne
	case component.ModeClimbing:
		return playerStateClimbing
	default:
		return playerStateGrounded
	}
}

// playerStateContext is everything one controller step may read or command.
type playerStateContext struct {
	State    *component.ControllerState
	Config   component.MovementConfig
	Input    component.Input
	Contacts ecs.ContactSummary
	Body     Body
	Intent   *ControllerIntent
}

func (ctx *playerStateContext) changeState(next playerState) {
	cur := playerStateFor(ctx.State.Mode)
	if cur.Mode() == next.Mode() {
		return
	}
	cur.Exit(ctx)
	ctx.State.Mode = next.Mode()
	next.Enter(ctx)
}

func (ctx *playerStateContext) playClip(clip string, restartIfSame bool) {
	ctx.Intent.Clip = clip
	ctx.Intent.RestartClip = restartIfSame
}

type playerGroundedState struct{}

type playerAirborneState struct{}

type playerClimbingState struct{}

func (playerGroundedState) Mode() component.MovementMode { return component.ModeGrounded }
func (playerGroundedState) Enter(ctx *playerStateContext) {
	ctx.State.JumpCount = 0
}
func (playerGroundedState) Exit(ctx *playerStateContext) {}
func (playerGroundedState) Update(ctx *playerStateContext) {
	if dir := moveDirection(ctx.Input); dir != 0 {
		face(ctx, dir)
		_, y := ctx.Body.Velocity()
		ctx.Body.SetVelocity(dir*ctx.Config.Speed, y)
		ctx.playClip(component.ClipWalk, false)
		return
	}
	_, y := ctx.Body.Velocity()
	ctx.Body.SetVelocity(0, y)
	ctx.playClip(component.ClipIdle, false)
}

func (playerAirborneState) Mode() component.MovementMode  { return component.ModeAirborne }
func (playerAirborneState) Enter(ctx *playerStateContext) {}
func (playerAirborneState) Exit(ctx *playerStateContext)  {}
func (playerAirborneState) Update(ctx *playerStateContext) {
	// drifting never touches the clip so a jump animation plays out
	dir := moveDirection(ctx.Input)
	if dir != 0 {
		face(ctx, dir)
	}
	_, y := ctx.Body.Velocity()
	ctx.Body.SetVelocity(dir*ctx.Config.Speed, y)
}

func (playerClimbingState) Mode() component.MovementMode { return component.ModeClimbing }
func (playerClimbingState) Enter(ctx *playerStateContext) {
	ctx.Body.SetGravityEnabled(false)
}
func (playerClimbingState) Exit(ctx *playerStateContext) {
	ctx.Body.SetGravityEnabled(true)
}
func (playerClimbingState) Update(ctx *playerStateContext) {
	if ctx.Input.Up {
		ctx.Body.SetVelocity(0, -ctx.Config.ClimbSpeed)
		return
	}
	ctx.Body.SetVelocity(0, 0)
}

// applyContactTransitions picks the mode for this step. Ground beats the
// ladder so the player never sticks to a ladder overlapping the floor.
func applyContactTransitions(ctx *playerStateContext) {
	contacts := ctx.Contacts
	mode := ctx.State.Mode
	switch {
	case contacts.Touching(component.TagGround):
		ctx.changeState(playerStateGrounded)
		ctx.State.JumpCount = 0
	case contacts.Active.Has(component.TagClimbable) && mode != component.ModeGrounded:
		ctx.changeState(playerStateClimbing)
	case contacts.Ended.Has(component.TagClimbable) && mode == component.ModeClimbing:
		ctx.changeState(playerStateAirborne)
	case mode == component.ModeGrounded:
		// walked off a ledge
		ctx.changeState(playerStateAirborne)
	}
}

// tryJump consumes a jump press edge. Outside a ladder every press latches,
// so a press with no jumps left must be released before the next one counts.
func tryJump(ctx *playerStateContext) bool {
	st := ctx.State
	if !ctx.Input.Up {
		st.JumpLatched = false
		return false
	}
	if st.JumpLatched || st.Mode == component.ModeClimbing {
		return false
	}
	if st.JumpCount >= ctx.Config.MaxJumps {
		st.JumpLatched = true
		return false
	}

	ctx.changeState(playerStateAirborne)
	x, _ := ctx.Body.Velocity()
	ctx.Body.SetVelocity(x, -ctx.Config.JumpForce)
	st.JumpCount++
	st.JumpLatched = true
	ctx.playClip(component.ClipJump, true)
	return true
}

func moveDirection(in component.Input) float64 {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	default:
		return 0
	}
}

func face(ctx *playerStateContext, dir float64) {
	if dir < 0 {
		ctx.State.Facing = component.FacingLeft
	} else {
		ctx.State.Facing = component.FacingRight
	}
}
