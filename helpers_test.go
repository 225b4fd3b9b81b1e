package herald

import (
	"strconv"
)

var (
	fooType = NewLazy[fooHandler]("FooEvent")
	barType = NewLazy[barHandler]("BarEvent")
)

type fooHandler interface {
	onFoo(*fooEvent) error
}

type barHandler interface {
	onBar(*barEvent) error
}

type fooEvent struct {
	seq int
}

func (e *fooEvent) AssociatedType() *Type[fooHandler] { return fooType.Peek() }
func (e *fooEvent) Dispatch(h fooHandler) error     { return h.onFoo(e) }
func (e *fooEvent) DebugString() string {
	return KindString(e) + " seq = " + strconv.Itoa(e.seq)
}

type barEvent struct{}

func (e *barEvent) AssociatedType() *Type[barHandler] { return barType.Peek() }
func (e *barEvent) Dispatch(h barHandler) error     { return h.onBar(e) }
func (e *barEvent) DebugString() string             { return KindString(e) }

// calls records handler invocations in order.
type calls []string

// handler implements both fooHandler and barHandler and records every call.
// When then is set it runs after a foo call is recorded.
type handler struct {
	name string
	log  *calls
	then func(*fooEvent) error
}

func newHandler(name string, log *calls) *handler {
	return &handler{name: name, log: log}
}

func (h *handler) onFoo(e *fooEvent) error {
	*h.log = append(*h.log, h.name)
	if h.then != nil {
		return h.then(e)
	}
	return nil
}

func (h *handler) onBar(*barEvent) error {
	*h.log = append(*h.log, h.name+":bar")
	return nil
}

func (h *handler) String() string {
	return h.name
}

type fooFunc func(*fooEvent) error

func (f fooFunc) onFoo(e *fooEvent) error { return f(e) }

func fireFoo(bus *Bus) error {
	return Fire[fooHandler](bus, &fooEvent{})
}

func fireFooFrom(bus *Bus, source any) error {
	return FireFromSource[fooHandler](bus, &fooEvent{}, source)
}

func fireBar(bus *Bus) error {
	return Fire[barHandler](bus, &barEvent{})
}
