package herald

import (
	"fmt"

	"github.com/casualjim/herald/pkg/uuidx"
	"github.com/google/uuid"
)

// Token is the identity of an event kind, as the bus sees it. Two tokens are
// equal only when they are the same instance.
type Token interface {
	fmt.Stringer
	// Name returns the kind name the token was minted for.
	Name() string
	// ID returns a unique id, for logs and diagnostics.
	ID() uuid.UUID

	token()
}

var _ Token = (*Type[any])(nil)

// Type is the token of an event kind whose handlers implement H.
//
// Handlers registered under one Type never see events fired with another,
// even when both were minted for the same name. Mint one Type per kind,
// usually through a package level Lazy.
type Type[H any] struct {
	name string
	id   uuid.UUID
}

// NewType mints a new token for the kind called name and records it in the
// process-wide kind catalog.
func NewType[H any](name string) *Type[H] {
	t := &Type[H]{name: name, id: uuidx.New()}
	kinds.record(t)
	return t
}

func (t *Type[H]) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

func (t *Type[H]) ID() uuid.UUID {
	if t == nil {
		return uuid.Nil
	}
	return t.id
}

func (t *Type[H]) String() string {
	if t == nil {
		return "<unset>"
	}
	return t.name + "#" + uuidx.Short(t.id)
}

func (t *Type[H]) token() {}

// Lazy holds the token of one event kind and mints it on first use.
//
// It stands in for a per-kind singleton: declare it once, at package level,
// next to the event type it belongs to. Lazy is not safe for concurrent use.
type Lazy[H any] struct {
	name string
	typ  *Type[H]
}

// NewLazy returns a holder for the token of the kind called name.
// No token exists until Get is called.
func NewLazy[H any](name string) *Lazy[H] {
	return &Lazy[H]{name: name}
}

// Get returns the token, minting it on the first call.
func (l *Lazy[H]) Get() *Type[H] {
	if l.typ == nil {
		l.typ = NewType[H](l.name)
	}
	return l.typ
}

// Peek returns the token when it exists, nil otherwise.
// Events return Peek from AssociatedType, so firing before anyone asked for
// the token does nothing.
func (l *Lazy[H]) Peek() *Type[H] {
	return l.typ
}

func (l *Lazy[H]) Name() string {
	return l.name
}
