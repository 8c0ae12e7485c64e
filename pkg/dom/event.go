package dom

// Event is a dispatched DOM event.
type Event struct {
	// Type is the event type (e.g., "click").
	Type string

	// Bubbles makes the event propagate to ancestors after the target.
	Bubbles bool

	// Cancelable allows PreventDefault to take effect.
	Cancelable bool

	// Target is the node the event was dispatched to.
	Target EventTarget

	// CurrentTarget is the node whose listeners are running.
	CurrentTarget EventTarget

	defaultPrevented bool
	stopped          bool
	native           func()
}

// NewEvent creates a bubbling, cancelable event.
func NewEvent(typ string) *Event {
	return &Event{Type: typ, Bubbles: true, Cancelable: true}
}

// WrapEvent creates an event whose PreventDefault also calls prevent.
// Backends use it to forward cancellation to a native event. target is the
// node the native event was dispatched to and current the node whose
// listener receives it.
func WrapEvent(typ string, target, current EventTarget, prevent func()) *Event {
	return &Event{
		Type:          typ,
		Bubbles:       true,
		Cancelable:    true,
		Target:        target,
		CurrentTarget: current,
		native:        prevent,
	}
}

// PreventDefault cancels the event's default action.
func (e *Event) PreventDefault() {
	if !e.Cancelable {
		return
	}
	e.defaultPrevented = true
	if e.native != nil {
		e.native()
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// listenerList holds listeners keyed by event type, in registration order.
type listenerList map[string][]Listener

func (l listenerList) add(typ string, fn Listener) {
	if fn == nil {
		return
	}
	l[typ] = append(l[typ], fn)
}

func (l listenerList) invoke(e *Event) {
	// Copy so listeners added during dispatch do not run for this event.
	fns := append([]Listener(nil), l[e.Type]...)
	for _, fn := range fns {
		fn(e)
	}
}
