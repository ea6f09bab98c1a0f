package controls

// ControlEvent names a notification emitted by PointerLockControls.
type ControlEvent int

const (
	EventChange ControlEvent = iota
	EventLock
	EventUnlock
)

func (e ControlEvent) String() string {
	switch e {
	case EventChange:
		return "change"
	case EventLock:
		return "lock"
	case EventUnlock:
		return "unlock"
	}
	return "unknown"
}

type ListenerID uint64

type listener struct {
	id ListenerID
	fn func()
}

// Dispatcher keeps ordered callbacks per ControlEvent. The zero value is
// ready to use.
type Dispatcher struct {
	listeners map[ControlEvent][]listener
	nextID    ListenerID
}

func (d *Dispatcher) AddEventListener(event ControlEvent, fn func()) ListenerID {
	if d.listeners == nil {
		d.listeners = make(map[ControlEvent][]listener)
	}
	d.nextID++
	d.listeners[event] = append(d.listeners[event], listener{id: d.nextID, fn: fn})
	return d.nextID
}

func (d *Dispatcher) HasEventListener(event ControlEvent, id ListenerID) bool {
	for _, l := range d.listeners[event] {
		if l.id == id {
			return true
		}
	}
	return false
}

func (d *Dispatcher) RemoveEventListener(event ControlEvent, id ListenerID) {
	ls := d.listeners[event]
	for i := range ls {
		if ls[i].id == id {
			d.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) DispatchEvent(event ControlEvent) {
	ls := append([]listener(nil), d.listeners[event]...)
	for _, l := range ls {
		l.fn()
	}
}
