package herald

import "github.com/casualjim/herald/pkg/reflectx"

// Event is implemented by every message that can be fired on a Bus.
// H is the handler capability of the event's kind, usually an interface with
// a single method taking the concrete event.
type Event[H any] interface {
	// AssociatedType returns the token of the event's kind. It returns nil
	// while the kind has no token yet; firing such an event does nothing.
	AssociatedType() *Type[H]

	// Dispatch calls the method of handler that matches this event.
	Dispatch(handler H) error

	// DebugString describes the event for logs.
	DebugString() string
}

// KindString returns the display name of the event's kind: its type name
// without package path, pointer or type arguments. Events use it as the
// first part of DebugString.
func KindString(event any) string {
	return reflectx.TypeName(event)
}
