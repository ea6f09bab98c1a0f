package platform

type registration struct {
	id       ListenerID
	listener Listener
}

// Document is the event target elements belong to. Backends queue events
// with Post, and Flush delivers them on the thread that owns the window.
type Document struct {
	listeners   map[EventType][]registration
	nextID      ListenerID
	pending     []Event
	lockElement Element
}

func NewDocument() *Document {
	return &Document{
		listeners: make(map[EventType][]registration),
	}
}

func (d *Document) AddEventListener(t EventType, l Listener) ListenerID {
	d.nextID++
	d.listeners[t] = append(d.listeners[t], registration{id: d.nextID, listener: l})
	return d.nextID
}

// RemoveEventListener unregisters id. Unknown ids are ignored.
func (d *Document) RemoveEventListener(t EventType, id ListenerID) {
	regs := d.listeners[t]
	for i := range regs {
		if regs[i].id == id {
			d.listeners[t] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

func (d *Document) ListenerCount(t EventType) int {
	return len(d.listeners[t])
}

// DispatchEvent delivers e to the current listeners immediately.
func (d *Document) DispatchEvent(e Event) {
	// Snapshot so listeners can unsubscribe while being called
	regs := append([]registration(nil), d.listeners[e.Type]...)
	for _, r := range regs {
		r.listener(e)
	}
}

// Post queues e for the next Flush.
func (d *Document) Post(e Event) {
	d.pending = append(d.pending, e)
}

// Flush delivers queued events in order, including any queued by the
// listeners themselves, and returns how many were delivered.
func (d *Document) Flush() int {
	n := 0
	for len(d.pending) > 0 {
		e := d.pending[0]
		d.pending = d.pending[1:]
		d.DispatchEvent(e)
		n++
	}
	d.pending = nil
	return n
}

func (d *Document) Pending() int {
	return len(d.pending)
}

// PointerLockElement returns the element holding capture, or nil.
func (d *Document) PointerLockElement() Element {
	return d.lockElement
}

// GrantPointerLock records el as the capture owner and queues a change.
func (d *Document) GrantPointerLock(el Element) {
	if d.lockElement == el {
		return
	}
	if prev, ok := d.lockElement.(Releaser); ok {
		prev.ReleasePointerLock()
	}
	d.lockElement = el
	d.Post(Event{Type: PointerLockChange})
}

// RejectPointerLock queues an error for a failed capture request.
func (d *Document) RejectPointerLock() {
	d.Post(Event{Type: PointerLockError})
}

// ExitPointerLock releases any active capture. Without one it does nothing.
func (d *Document) ExitPointerLock() {
	if d.lockElement == nil {
		return
	}
	if r, ok := d.lockElement.(Releaser); ok {
		r.ReleasePointerLock()
	}
	d.lockElement = nil
	d.Post(Event{Type: PointerLockChange})
}
