package herald

import (
	"context"
	"log/slog"

	"github.com/casualjim/herald/internal/dispatch"
	"github.com/casualjim/herald/pkg/reflectx"
	"github.com/casualjim/herald/pkg/slogx"
	"github.com/fogfish/opts"
)

// Bus routes events to the handlers registered for their kind.
//
// A Bus is not safe for concurrent use. Handlers may register, remove and
// fire on the bus while they run; see Fire for the rules that apply.
type Bus struct {
	name     string
	logger   *slog.Logger
	handlers *dispatch.Registry[Token]
}

var (
	// WithName sets the bus name reported in logs.
	WithName = opts.ForName[Bus, string]("name")

	// WithLogger sets the logger the bus writes its debug logs to.
	// The default is slog.Default().
	WithLogger = opts.ForName[Bus, *slog.Logger]("logger")
)

// New creates an empty bus.
func New(options ...opts.Option[Bus]) *Bus {
	b := &Bus{name: "default"}
	if err := opts.Apply(b, options); err != nil {
		panic(err)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.logger = b.logger.With(slogx.LoggerName("herald"), slog.String("bus", b.name))
	b.handlers = dispatch.New[Token]()
	return b
}

func (b *Bus) Name() string {
	return b.name
}

// HandlerCount returns the number of handlers registered for the kind,
// global and source scoped together.
func (b *Bus) HandlerCount(t Token) int {
	return b.handlers.Count(t)
}

// SourceHandlerCount returns the number of handlers registered for the kind
// and that source. A nil source counts the global handlers.
func (b *Bus) SourceHandlerCount(t Token, source any) int {
	return b.handlers.CountSource(t, source)
}

// IsHandled reports whether any handler is registered for the kind.
func (b *Bus) IsHandled(t Token) bool {
	return b.handlers.Count(t) > 0
}

// Kinds returns the kinds that have handlers on this bus, in the order they
// got their first one.
func (b *Bus) Kinds() []Token {
	return b.handlers.Keys()
}

// Reset removes every registration. Fires in progress skip the handlers they
// have not reached yet.
func (b *Bus) Reset() {
	b.handlers.Clear()
	b.debug("handlers reset")
}

// AddHandler registers handler for every event of the kind t, whatever the
// source it is fired from.
func AddHandler[H any](b *Bus, t *Type[H], handler H) Registration {
	return addHandler(b, t, nil, handler)
}

// AddHandlerToSource registers handler for events of the kind t fired from
// source. Sources are compared with ==, so use pointers or other comparable
// identities.
func AddHandlerToSource[H any](b *Bus, t *Type[H], source any, handler H) Registration {
	if source == nil {
		panic(ErrNilSource)
	}
	return addHandler(b, t, source, handler)
}

func addHandler[H any](b *Bus, t *Type[H], source any, handler H) Registration {
	if t == nil {
		panic(ErrNilType)
	}
	if any(handler) == nil {
		panic(ErrNilHandler)
	}
	if source != nil && !reflectx.Comparable(source) {
		panic(ErrUnhashableSource)
	}

	entry := b.handlers.Add(t, source, handler)
	b.debug("handler added",
		slogx.Stringer("kind", t),
		slogx.Source(source),
		slog.String("registration", entry.ID()),
	)
	return &registration{bus: b, kind: t, entry: entry}
}

// RemoveHandler removes the first global registration of handler for the
// kind t. Handlers are matched by identity; handlers that are not comparable,
// such as funcs, can only be removed through their Registration.
// Removing a handler that is not registered does nothing.
func RemoveHandler[H any](b *Bus, t *Type[H], handler H) {
	removeHandler(b, t, nil, handler)
}

// RemoveHandlerFromSource is RemoveHandler for a source scoped registration.
func RemoveHandlerFromSource[H any](b *Bus, t *Type[H], source any, handler H) {
	if source == nil {
		return
	}
	removeHandler(b, t, source, handler)
}

func removeHandler[H any](b *Bus, t *Type[H], source any, handler H) {
	if t == nil {
		return
	}
	if b.handlers.Remove(t, source, handler) {
		b.debug("handler removed", slogx.Stringer("kind", t), slogx.Source(source))
	}
}

// Fire delivers event to the global handlers of its kind, in registration
// order. An event whose kind has no token yet is dropped without error.
//
// The handlers that run are the ones registered when Fire starts. A handler
// removed by an earlier handler of the same fire is skipped; a handler added
// during the fire only sees later fires.
//
// The first handler error stops the fire: the remaining handlers don't see
// the event and Fire returns the error wrapped in a *HandlerError.
func Fire[H any](b *Bus, event Event[H]) error {
	return FireFromSource(b, event, nil)
}

// FireFromSource delivers event to the global handlers of its kind and then
// to the handlers registered for source, each group in registration order.
// A nil source behaves like Fire.
func FireFromSource[H any](b *Bus, event Event[H], source any) error {
	if event == nil {
		return nil
	}
	t := event.AssociatedType()
	if t == nil {
		return nil
	}

	if b.logger.Enabled(context.Background(), slog.LevelDebug) {
		b.logger.Debug("firing event",
			slogx.Stringer("kind", t),
			slogx.Source(source),
			slog.String("event", event.DebugString()),
			slog.Int("depth", b.handlers.Depth()),
		)
	}

	return b.handlers.Fire(t, source, func(e *dispatch.Entry) error {
		if err := event.Dispatch(e.Handler().(H)); err != nil {
			b.debug("handler failed, aborting fire",
				slogx.Stringer("kind", t),
				slog.String("registration", e.ID()),
				slogx.Error(err),
			)
			return &HandlerError{Kind: t.Name(), Registration: e.ID(), Err: err}
		}
		return nil
	})
}

func (b *Bus) debug(msg string, attrs ...slog.Attr) {
	b.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
