// Package dispatch holds the handler registry behind a herald bus.
//
// Handlers are stored per key (an event kind token) in registration order,
// split into a global list and one list per source. Firing works on a
// point-in-time snapshot of those lists, so handlers can add and remove
// registrations while a fire is running, at any nesting depth:
//
//   - an entry added during a fire is not part of that fire
//   - an entry removed during a fire is skipped if the fire has not reached it
//   - the first handler error stops the fire and is returned to the caller
//
// The registry does no locking. It is meant to be driven from one goroutine.
package dispatch
