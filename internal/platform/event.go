package platform

// EventType identifies a notification delivered by a Document.
type EventType int

const (
	PointerMove EventType = iota
	PointerLockChange
	PointerLockError
)

func (t EventType) String() string {
	switch t {
	case PointerMove:
		return "pointermove"
	case PointerLockChange:
		return "pointerlockchange"
	case PointerLockError:
		return "pointerlockerror"
	}
	return "unknown"
}

// Event is a platform input notification. Movement fields are only set
// for PointerMove and hold the relative delta since the previous sample.
type Event struct {
	Type      EventType
	MovementX float64
	MovementY float64
}

type Listener func(Event)

// ListenerID identifies a registration so it can be removed later.
type ListenerID uint64

// Element is a surface that can own exclusive pointer capture.
type Element interface {
	// RequestPointerLock asks for capture. The outcome is reported later
	// through a PointerLockChange or PointerLockError event.
	RequestPointerLock()
	OwnerDocument() *Document
}

// Releaser is implemented by elements that must undo platform state when
// their capture ends.
type Releaser interface {
	ReleasePointerLock()
}
