package store

import (
	"reflect"
)

// Handler receives the payload of one emitted event.
type Handler func(payload any)

// emitter is the Store's internal event dispatcher. Emission is synchronous:
// handlers run in registration order before Emit returns. No locking - a
// Store is single-goroutine like the widgets it backs.
type emitter struct {
	handlers map[string][]Handler
}

func newEmitter() *emitter {
	return &emitter{handlers: make(map[string][]Handler)}
}

// On registers a handler for the given event name.
// Registering the same handler twice means it runs twice.
func (e *emitter) On(event string, handler Handler) {
	if handler == nil {
		return
	}

	e.handlers[event] = append(e.handlers[event], handler)
}

// Off removes the first registration of the given handler for the event.
// Go functions are not comparable, so the match is by code pointer: pass
// the same function value that was registered. Distinct closures created
// from the same func literal share one code pointer and cannot be told
// apart; Off then removes the earliest of their registrations.
func (e *emitter) Off(event string, handler Handler) {
	if handler == nil {
		return
	}

	registered := e.handlers[event]
	target := reflect.ValueOf(handler).Pointer()

	for i, h := range registered {
		if reflect.ValueOf(h).Pointer() == target {
			e.handlers[event] = append(registered[:i:i], registered[i+1:]...)
			return
		}
	}
}

// Emit delivers the payload to every handler registered for the event,
// in registration order. The handler list is snapshotted first, so handlers
// registered or removed during emission take effect from the next Emit.
func (e *emitter) Emit(event string, payload any) {
	registered := e.handlers[event]
	if len(registered) == 0 {
		return
	}

	snapshot := make([]Handler, len(registered))
	copy(snapshot, registered)

	for _, handler := range snapshot {
		handler(payload)
	}
}
