package input

import "github.com/omerfuyar/shuildgo/vmath"

// Input is the edge-tracked state machine: callbacks write Down/Up
// immediately, and Update (called once per frame) promotes
// Down→Pressed and Up→Released, per spec §4.5.
type Input struct {
	keys    [keyCount]State
	buttons [mouseButtonCount]State

	mouseX, mouseY         float64
	prevMouseX, prevMouseY float64
	captured               bool

	scrollX, scrollY float64
}

// New creates an Input state machine with every key Released.
func New() *Input {
	in := &Input{}
	for i := range in.keys {
		in.keys[i] = Released
	}
	for i := range in.buttons {
		in.buttons[i] = Released
	}
	return in
}

// OnKeyEvent is the backend key callback entry point: pressed=true writes
// Down, pressed=false writes Up, overwriting whatever state was there.
func (in *Input) OnKeyEvent(key Key, pressed bool) {
	if key < 0 || int(key) >= len(in.keys) {
		return
	}
	if pressed {
		in.keys[key] = Down
	} else {
		in.keys[key] = Up
	}
}

// OnMouseButtonEvent is the backend mouse-button callback entry point.
func (in *Input) OnMouseButtonEvent(btn MouseButton, pressed bool) {
	if btn < 0 || int(btn) >= len(in.buttons) {
		return
	}
	if pressed {
		in.buttons[btn] = Down
	} else {
		in.buttons[btn] = Up
	}
}

// OnCursorPosEvent is the backend cursor-position callback entry point.
func (in *Input) OnCursorPosEvent(x, y float64) {
	in.mouseX, in.mouseY = x, y
}

// OnScrollEvent is the backend scroll callback entry point; scroll
// accumulates across callbacks until the next Update clears it.
func (in *Input) OnScrollEvent(dx, dy float64) {
	in.scrollX += dx
	in.scrollY += dy
}

// Update promotes Down→Pressed and Up→Released, recomputes the mouse delta
// against the previous frame's position, and clears the scroll accumulator.
// Must be called exactly once per frame, at frame start.
func (in *Input) Update() {
	for i, s := range in.keys {
		switch s {
		case Down:
			in.keys[i] = Pressed
		case Up:
			in.keys[i] = Released
		}
	}
	for i, s := range in.buttons {
		switch s {
		case Down:
			in.buttons[i] = Pressed
		case Up:
			in.buttons[i] = Released
		}
	}

	in.prevMouseX, in.prevMouseY = in.mouseX, in.mouseY
	in.scrollX, in.scrollY = 0, 0
}

// GetKeyState returns key's current bitmask state.
func (in *Input) GetKeyState(key Key) State {
	if key < 0 || int(key) >= len(in.keys) {
		return Released
	}
	return in.keys[key]
}

// GetKey reports whether key's current state intersects mask, e.g.
// GetKey(KeyW, Down|Pressed) tests "currently active".
func (in *Input) GetKey(key Key, mask State) bool {
	return in.GetKeyState(key)&mask != 0
}

// GetMouseButtonState returns btn's current bitmask state.
func (in *Input) GetMouseButtonState(btn MouseButton) State {
	if btn < 0 || int(btn) >= len(in.buttons) {
		return Released
	}
	return in.buttons[btn]
}

func (in *Input) GetMouseButton(btn MouseButton, mask State) bool {
	return in.GetMouseButtonState(btn)&mask != 0
}

// MouseDelta returns the mouse movement since the previous frame's Update.
func (in *Input) MouseDelta() (dx, dy float64) {
	return in.mouseX - in.prevMouseX, in.mouseY - in.prevMouseY
}

// MousePosition returns the last-sampled cursor position.
func (in *Input) MousePosition() (x, y float64) {
	return in.mouseX, in.mouseY
}

// Scroll returns the scroll accumulated since the previous frame's Update.
func (in *Input) Scroll() (dx, dy float64) {
	return in.scrollX, in.scrollY
}

// MovementVector returns normalize(x, y, z) where x = (D − A), y = (W − S),
// z = Space − (LeftCtrl|RightCtrl), per spec §4.5.
func (in *Input) MovementVector() vmath.Vec3 {
	active := Down | Pressed
	x := float32(0)
	if in.GetKey(KeyD, active) {
		x += 1
	}
	if in.GetKey(KeyA, active) {
		x -= 1
	}
	y := float32(0)
	if in.GetKey(KeyW, active) {
		y += 1
	}
	if in.GetKey(KeyS, active) {
		y -= 1
	}
	z := float32(0)
	if in.GetKey(KeySpace, active) {
		z += 1
	}
	if in.GetKey(KeyLeftControl, active) || in.GetKey(KeyRightControl, active) {
		z -= 1
	}
	return vmath.Normalized(vmath.Vec3{x, y, z})
}

// SetMouseCaptured records the desired cursor mode; the backend binding
// (input/glfw.go) applies it via the window's cursor-mode API.
func (in *Input) SetMouseCaptured(captured bool) {
	in.captured = captured
}

// MouseCaptured reports the last-requested cursor mode.
func (in *Input) MouseCaptured() bool {
	return in.captured
}
