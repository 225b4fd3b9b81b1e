/*
Package herald provides a typed, in-process event bus.

Producers fire strongly typed events; the bus hands each event to the handlers
registered for its kind, synchronously and in registration order. Kinds are
identified by tokens rather than reflection: every event kind owns exactly one
*Type[H], where H is the handler capability of that kind, and the bus uses the
token as its registry key.

# Defining an event kind

An event kind is a type implementing Event[H], a handler interface, and a
package level Lazy holding its token:

	var resizeType = herald.NewLazy[ResizeHandler]("ResizeEvent")

	type ResizeHandler interface {
		OnResize(*ResizeEvent) error
	}

	type ResizeEvent struct{ Width, Height int }

	func ResizeType() *herald.Type[ResizeHandler] { return resizeType.Get() }

	func (e *ResizeEvent) AssociatedType() *herald.Type[ResizeHandler] { return resizeType.Peek() }
	func (e *ResizeEvent) Dispatch(h ResizeHandler) error             { return h.OnResize(e) }
	func (e *ResizeEvent) DebugString() string                        { return herald.KindString(e) }

AssociatedType returns Peek, not Get: until someone asks for the token to
register a handler, nobody can be listening, and firing is a no-op.

# Registering and firing

	bus := herald.New(herald.WithName("ui"))

	reg := herald.AddHandler(bus, ResizeType(), handler)
	defer reg.RemoveHandler()

	if err := herald.Fire[ResizeHandler](bus, &ResizeEvent{Width: 80, Height: 24}); err != nil {
		// a handler failed, the handlers after it did not run
	}

# Sources

Handlers can be scoped to a source. A fire from a source reaches the global
handlers of the kind first, then the handlers registered for that source:

	win := bus.Scope(window)
	herald.AddScoped(win, ResizeType(), handler)
	herald.FireFrom[ResizeHandler](win, &ResizeEvent{Width: 80, Height: 24})

# Reentrancy

Handlers may add or remove registrations and fire further events while they
run. Each fire works on a snapshot of the registrations taken when it starts:
handlers added during the fire are left for later fires, handlers removed
before the fire reaches them are skipped.

# Errors

The first handler error stops the fire and is returned wrapped in a
*HandlerError. Panics are not recovered.

The bus is not safe for concurrent use. Use one bus per goroutine, or
serialize access to it.
*/
package herald
