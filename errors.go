package herald

import "errors"

var (
	// ErrNilHandler is the panic value when a nil handler is registered.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNilType is the panic value when a handler is registered without a token.
	ErrNilType = errors.New("event type cannot be nil")

	// ErrNilSource is the panic value when a source scoped registration has no source.
	// Use AddHandler for global registrations.
	ErrNilSource = errors.New("source cannot be nil, use AddHandler for global handlers")

	// ErrUnhashableSource is the panic value when a source can't be used as a map key.
	ErrUnhashableSource = errors.New("source must be comparable")
)

// HandlerError wraps an error returned by a handler. The fire that produced
// it stopped at that handler.
type HandlerError struct {
	// Kind is the name of the event kind that was being fired.
	Kind string

	// Registration is the id of the registration whose handler failed.
	Registration string

	// Err is the error returned by the handler.
	Err error
}

func (e *HandlerError) Error() string {
	return "handler " + e.Registration + " failed on " + e.Kind + ": " + e.Err.Error()
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
