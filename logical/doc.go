// Package logical provides the logical events that UI style components fire
// through a herald bus: ResizeEvent and ValueChangeEvent.
//
// Each kind follows the same shape: a handler interface with a func adapter,
// an accessor for the kind's token, a helper that registers a handler on a
// scope, and a helper that fires the event from a scope. The fire helpers do
// nothing until the kind's token exists, that is until a handler has been
// registered somewhere in the process.
package logical
