package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InputSource yields the held actions for one tick.
type InputSource interface {
	Sample() component.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() component.Input

func (f InputFunc) Sample() component.Input { return f() }

// KeyboardSource reads arrows/WASD/space and the first gamepad.
type KeyboardSource struct{}

func (KeyboardSource) Sample() component.Input {
	const stickDeadzone = 0.2

	in := component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up: ebiten.IsKeyPressed(ebiten.KeySpace) ||
			ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.Left = in.Left || leftX < 0
			in.Right = in.Right || leftX > 0
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return in
}

type InputSystem struct {
	source InputSource
}

// NewInputSystem samples source once per tick. A nil source reads the
// keyboard.
func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = KeyboardSource{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	sample := i.source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = sample
	})
}
