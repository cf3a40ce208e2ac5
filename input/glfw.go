package input

import "github.com/go-gl/glfw/v3.3/glfw"

// BindWindow registers every backend callback this Input needs on win:
// key, mouse button, cursor position, scroll, matching spec §4.5's
// "backend callback writes Down on press, Up on release."
func (in *Input) BindWindow(win *glfw.Window) {
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := fromGlfwKey[key]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			in.OnKeyEvent(k, true)
		case glfw.Release:
			in.OnKeyEvent(k, false)
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := fromGlfwButton[button]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			in.OnMouseButtonEvent(b, true)
		case glfw.Release:
			in.OnMouseButtonEvent(b, false)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		in.OnCursorPosEvent(x, y)
	})

	win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		in.OnScrollEvent(dx, dy)
	})
}

// ApplyCursorMode pushes the requested capture mode to the backend; call
// once per frame after Update, mirroring mod_input.go's per-frame
// SetInputMode call.
func (in *Input) ApplyCursorMode(win *glfw.Window) {
	if in.captured {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

var fromGlfwKey = map[glfw.Key]Key{
	glfw.KeyA: KeyA, glfw.KeyB: KeyB, glfw.KeyC: KeyC, glfw.KeyD: KeyD,
	glfw.KeyE: KeyE, glfw.KeyF: KeyF, glfw.KeyG: KeyG, glfw.KeyH: KeyH,
	glfw.KeyI: KeyI, glfw.KeyJ: KeyJ, glfw.KeyK: KeyK, glfw.KeyL: KeyL,
	glfw.KeyM: KeyM, glfw.KeyN: KeyN, glfw.KeyO: KeyO, glfw.KeyP: KeyP,
	glfw.KeyQ: KeyQ, glfw.KeyR: KeyR, glfw.KeyS: KeyS, glfw.KeyT: KeyT,
	glfw.KeyU: KeyU, glfw.KeyV: KeyV, glfw.KeyW: KeyW, glfw.KeyX: KeyX,
	glfw.KeyY: KeyY, glfw.KeyZ: KeyZ,
	glfw.Key0: Key0, glfw.Key1: Key1, glfw.Key2: Key2, glfw.Key3: Key3,
	glfw.Key4: Key4, glfw.Key5: Key5, glfw.Key6: Key6, glfw.Key7: Key7,
	glfw.Key8: Key8, glfw.Key9: Key9,
	glfw.KeySpace:        KeySpace,
	glfw.KeyEnter:        KeyEnter,
	glfw.KeyEscape:       KeyEscape,
	glfw.KeyTab:          KeyTab,
	glfw.KeyLeftShift:    KeyLeftShift,
	glfw.KeyRightShift:   KeyRightShift,
	glfw.KeyLeftControl:  KeyLeftControl,
	glfw.KeyRightControl: KeyRightControl,
	glfw.KeyLeftAlt:      KeyLeftAlt,
	glfw.KeyUp:           KeyUp,
	glfw.KeyDown:         KeyDown,
	glfw.KeyLeft:         KeyLeft,
	glfw.KeyRight:        KeyRight,
}

var fromGlfwButton = map[glfw.MouseButton]MouseButton{
	glfw.MouseButtonLeft:   MouseLeft,
	glfw.MouseButtonRight:  MouseRight,
	glfw.MouseButtonMiddle: MouseMiddle,
}
