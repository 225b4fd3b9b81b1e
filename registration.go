package herald

import (
	"log/slog"

	"github.com/casualjim/herald/internal/dispatch"
	"github.com/casualjim/herald/pkg/slogx"
)

// Registration is returned for every handler added to a Bus.
type Registration interface {
	// ID identifies the registration in logs and in HandlerError.
	ID() string

	// RemoveHandler removes exactly this registration, even when the same
	// handler was registered more than once. Calling it again does nothing.
	RemoveHandler()
}

type registration struct {
	bus   *Bus
	kind  Token
	entry *dispatch.Entry
}

func (r *registration) ID() string {
	return r.entry.ID()
}

func (r *registration) RemoveHandler() {
	if r.entry.Remove() {
		r.bus.debug("registration removed",
			slogx.Stringer("kind", r.kind),
			slogx.Source(r.entry.Source()),
			slog.String("registration", r.entry.ID()),
		)
	}
}
