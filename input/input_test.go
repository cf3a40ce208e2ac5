package input_test

import (
	"testing"

	"github.com/omerfuyar/shuildgo/input"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdgeStateTrace(t *testing.T) {
	in := input.New()

	in.OnKeyEvent(input.KeyA, true)
	assert.Equal(t, input.Down, in.GetKeyState(input.KeyA))

	in.Update()
	assert.Equal(t, input.Pressed, in.GetKeyState(input.KeyA))

	in.Update()
	assert.Equal(t, input.Pressed, in.GetKeyState(input.KeyA))

	in.OnKeyEvent(input.KeyA, false)
	assert.Equal(t, input.Up, in.GetKeyState(input.KeyA))

	in.Update()
	assert.Equal(t, input.Released, in.GetKeyState(input.KeyA))
}

func TestKeyStartsReleased(t *testing.T) {
	in := input.New()
	assert.Equal(t, input.Released, in.GetKeyState(input.KeyW))
	assert.False(t, in.GetKey(input.KeyW, input.Down|input.Pressed))
}

func TestMouseButtonEdgeState(t *testing.T) {
	in := input.New()
	in.OnMouseButtonEvent(input.MouseLeft, true)
	assert.True(t, in.GetMouseButton(input.MouseLeft, input.Down|input.Pressed))
	in.Update()
	assert.Equal(t, input.Pressed, in.GetMouseButtonState(input.MouseLeft))
	in.OnMouseButtonEvent(input.MouseLeft, false)
	in.Update()
	assert.Equal(t, input.Released, in.GetMouseButtonState(input.MouseLeft))
}

func TestMouseDeltaAndScrollResetEachUpdate(t *testing.T) {
	in := input.New()
	in.OnCursorPosEvent(10, 20)
	in.Update()
	in.OnCursorPosEvent(15, 22)
	dx, dy := in.MouseDelta()
	assert.Equal(t, 5.0, dx)
	assert.Equal(t, 2.0, dy)

	in.OnScrollEvent(1, -1)
	in.OnScrollEvent(1, 0)
	sx, sy := in.Scroll()
	assert.Equal(t, 2.0, sx)
	assert.Equal(t, -1.0, sy)

	in.Update()
	sx, sy = in.Scroll()
	assert.Equal(t, 0.0, sx)
	assert.Equal(t, 0.0, sy)
}

func TestMovementVectorCombinesAxesNormalized(t *testing.T) {
	in := input.New()
	in.OnKeyEvent(input.KeyD, true)
	in.OnKeyEvent(input.KeyW, true)

	v := in.MovementVector()
	assert.InDelta(t, 1.0, v.Len(), 1e-5)
	assert.Greater(t, v.X(), float32(0))
	assert.Greater(t, v.Y(), float32(0))
	assert.Equal(t, float32(0), v.Z())
}

func TestMovementVectorOpposingKeysCancel(t *testing.T) {
	in := input.New()
	in.OnKeyEvent(input.KeyD, true)
	in.OnKeyEvent(input.KeyA, true)

	v := in.MovementVector()
	assert.Equal(t, float32(0), v.X())
}

func TestMovementVectorZeroWhenIdle(t *testing.T) {
	in := input.New()
	v := in.MovementVector()
	assert.Equal(t, float32(0), v.X())
	assert.Equal(t, float32(0), v.Y())
	assert.Equal(t, float32(0), v.Z())
}

func TestMouseCapturedDefaultsFalse(t *testing.T) {
	in := input.New()
	assert.False(t, in.MouseCaptured())
	in.SetMouseCaptured(true)
	assert.True(t, in.MouseCaptured())
}
