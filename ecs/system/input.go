package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

// Button is one of the four logical buttons.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
)

// KeySource reports whether a logical button is held this tick.
type KeySource interface {
	IsPressed(b Button) bool
}

// EbitenKeys maps logical buttons to arrow keys, WASD and the first
// gamepad's d-pad.
type EbitenKeys struct{}

func (EbitenKeys) IsPressed(b Button) bool {
	var keys []ebiten.Key
	var pad ebiten.StandardGamepadButton
	switch b {
	case ButtonLeft:
		keys = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
		pad = ebiten.StandardGamepadButtonLeftLeft
	case ButtonRight:
		keys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
		pad = ebiten.StandardGamepadButtonLeftRight
	case ButtonUp:
		keys = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
		pad = ebiten.StandardGamepadButtonLeftTop
	case ButtonDown:
		keys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
		pad = ebiten.StandardGamepadButtonLeftBottom
	default:
		return false
	}
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		return ebiten.IsStandardGamepadButtonPressed(gamepads[0], pad)
	}
	return false
}

// InputSystem samples the buttons once per tick into every Input component.
// Edge detection is left to the consumers.
type InputSystem struct {
	source KeySource
}

func NewInputSystem(source KeySource) *InputSystem {
	if source == nil {
		source = EbitenKeys{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	sample := component.Input{
		Left:  i.source.IsPressed(ButtonLeft),
		Right: i.source.IsPressed(ButtonRight),
		Up:    i.source.IsPressed(ButtonUp),
		Down:  i.source.IsPressed(ButtonDown),
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = sample
	})
}
