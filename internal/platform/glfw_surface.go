package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSurface exposes a GLFW window as an Element. Pointer lock maps to
// the disabled cursor mode, with raw motion when the platform has it.
type WindowSurface struct {
	window *glfw.Window
	doc    *Document

	lastX, lastY float64
	haveSample   bool

	prevCursorPos glfw.CursorPosCallback
	prevFocus     glfw.FocusCallback
	prevKey       glfw.KeyCallback
}

// NewWindowSurface installs cursor, focus and key callbacks on w. Callbacks
// already set on w keep running after ours.
func NewWindowSurface(w *glfw.Window) *WindowSurface {
	s := &WindowSurface{
		window: w,
		doc:    NewDocument(),
	}
	s.prevCursorPos = w.SetCursorPosCallback(s.onCursorPos)
	s.prevFocus = w.SetFocusCallback(s.onFocus)
	s.prevKey = w.SetKeyCallback(s.onKey)
	return s
}

func (s *WindowSurface) OwnerDocument() *Document {
	return s.doc
}

func (s *WindowSurface) Window() *glfw.Window {
	return s.window
}

// IsLocked reports whether this window currently holds capture.
func (s *WindowSurface) IsLocked() bool {
	return s.doc.PointerLockElement() == Element(s)
}

func (s *WindowSurface) RequestPointerLock() {
	if s.window.GetAttrib(glfw.Focused) != glfw.True {
		s.doc.RejectPointerLock()
		return
	}
	s.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		s.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	s.haveSample = false
	s.doc.GrantPointerLock(s)
}

func (s *WindowSurface) ReleasePointerLock() {
	if glfw.RawMouseMotionSupported() {
		s.window.SetInputMode(glfw.RawMouseMotion, glfw.False)
	}
	s.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	s.haveSample = false
}

// Poll processes pending window events and delivers the resulting
// notifications. It must run on the main thread.
func (s *WindowSurface) Poll() {
	glfw.PollEvents()
	s.doc.Flush()
}

func (s *WindowSurface) onCursorPos(w *glfw.Window, xpos, ypos float64) {
	if s.haveSample {
		s.doc.Post(Event{
			Type:      PointerMove,
			MovementX: xpos - s.lastX,
			MovementY: ypos - s.lastY,
		})
	}
	// Swallow the first sample after a mode switch, the cursor jumps
	s.lastX, s.lastY = xpos, ypos
	s.haveSample = true

	if s.prevCursorPos != nil {
		s.prevCursorPos(w, xpos, ypos)
	}
}

func (s *WindowSurface) onFocus(w *glfw.Window, focused bool) {
	if !focused && s.IsLocked() {
		s.doc.ExitPointerLock()
	}
	if s.prevFocus != nil {
		s.prevFocus(w, focused)
	}
}

func (s *WindowSurface) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press && s.IsLocked() {
		s.doc.ExitPointerLock()
	}
	if s.prevKey != nil {
		s.prevKey(w, key, scancode, action, mods)
	}
}
