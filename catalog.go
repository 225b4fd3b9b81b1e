package herald

import (
	"log/slog"

	"github.com/casualjim/herald/internal/registry"
	"github.com/casualjim/herald/pkg/slogx"
)

var kinds = &kindCatalog{tokens: registry.New[Token]()}

// kindCatalog remembers the first token minted for every kind name.
type kindCatalog struct {
	tokens registry.Registry[Token]
}

func (c *kindCatalog) record(t Token) {
	existing, loaded := c.tokens.GetOrAdd(t.Name(), func() Token { return t })
	if loaded && existing != t {
		slog.Warn("duplicate token minted for event kind, handlers registered under one will not see events fired with the other",
			slogx.LoggerName("herald"),
			slog.String("kind", t.Name()),
			slogx.Stringer("registered", existing),
			slogx.Stringer("duplicate", t),
		)
	}
}

// LookupKind returns the first token minted for the kind called name.
func LookupKind(name string) (Token, bool) {
	return kinds.tokens.Get(name)
}

// Kinds returns the catalogued tokens ordered by kind name.
func Kinds() []Token {
	names := kinds.tokens.Names()
	tokens := make([]Token, 0, len(names))
	for _, name := range names {
		if t, ok := kinds.tokens.Get(name); ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
