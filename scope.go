package herald

// Scope is a bus seen from one source, typically the component that owns the
// handlers and fires the events. A Scope with a nil source is global.
type Scope struct {
	bus    *Bus
	source any
}

// Scope returns a view of the bus that fires from source.
func (b *Bus) Scope(source any) *Scope {
	return &Scope{bus: b, source: source}
}

func (s *Scope) Bus() *Bus {
	return s.bus
}

func (s *Scope) Source() any {
	return s.source
}

// AddScoped registers handler for events of the kind t fired from the scope's
// source, or for every event of the kind when the scope is global.
func AddScoped[H any](s *Scope, t *Type[H], handler H) Registration {
	if s.source == nil {
		return AddHandler(s.bus, t, handler)
	}
	return AddHandlerToSource(s.bus, t, s.source, handler)
}

// FireFrom fires event from the scope's source.
func FireFrom[H any](s *Scope, event Event[H]) error {
	return FireFromSource(s.bus, event, s.source)
}
