package dispatch

import (
	"slices"

	"github.com/casualjim/herald/pkg/reflectx"
	"github.com/casualjim/herald/pkg/uuidx"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type slot struct {
	global   []*Entry
	bySource map[any][]*Entry
}

func (s *slot) empty() bool {
	return len(s.global) == 0 && len(s.bySource) == 0
}

// Registry maps keys to ordered handler entries.
type Registry[K comparable] struct {
	slots *orderedmap.OrderedMap[K, *slot]
	depth int
}

func New[K comparable]() *Registry[K] {
	return &Registry[K]{
		slots: orderedmap.New[K, *slot](),
	}
}

// Add appends handler to the entries of key. A nil source registers a global
// handler. The source must be comparable.
func (r *Registry[K]) Add(key K, source any, handler any) *Entry {
	s, ok := r.slots.Get(key)
	if !ok {
		s = &slot{bySource: make(map[any][]*Entry)}
		r.slots.Set(key, s)
	}

	entry := &Entry{
		id:      uuidx.NewString(),
		handler: handler,
		source:  source,
		onClose: func(e *Entry) { r.detach(key, e) },
	}
	if source == nil {
		s.global = append(s.global, entry)
	} else {
		s.bySource[source] = append(s.bySource[source], entry)
	}
	return entry
}

// Remove removes the first live entry of key and source whose handler is
// identical to handler. It reports whether an entry was removed.
func (r *Registry[K]) Remove(key K, source any, handler any) bool {
	if !reflectx.Comparable(source) {
		return false
	}
	for _, e := range r.list(key, source) {
		if !e.removed && reflectx.SameIdentity(e.handler, handler) {
			return e.Remove()
		}
	}
	return false
}

func (r *Registry[K]) detach(key K, e *Entry) {
	s, ok := r.slots.Get(key)
	if !ok {
		return
	}
	if e.source == nil {
		s.global = without(s.global, e)
	} else {
		rest := without(s.bySource[e.source], e)
		if len(rest) == 0 {
			delete(s.bySource, e.source)
		} else {
			s.bySource[e.source] = rest
		}
	}
	if s.empty() {
		r.slots.Delete(key)
	}
}

// without returns entries minus e. It never writes into the backing array of
// entries, a snapshot taken earlier may still share it.
func without(entries []*Entry, e *Entry) []*Entry {
	i := slices.Index(entries, e)
	if i < 0 {
		return entries
	}
	rest := make([]*Entry, 0, len(entries)-1)
	rest = append(rest, entries[:i]...)
	return append(rest, entries[i+1:]...)
}

func (r *Registry[K]) list(key K, source any) []*Entry {
	s, ok := r.slots.Get(key)
	if !ok {
		return nil
	}
	if source == nil {
		return s.global
	}
	return s.bySource[source]
}

// Snapshot returns a copy of the entries a fire for key and source reaches:
// the global entries, then the entries registered for source.
func (r *Registry[K]) Snapshot(key K, source any) []*Entry {
	s, ok := r.slots.Get(key)
	if !ok {
		return nil
	}
	var scoped []*Entry
	if source != nil && reflectx.Comparable(source) {
		scoped = s.bySource[source]
	}
	if len(s.global)+len(scoped) == 0 {
		return nil
	}
	snapshot := make([]*Entry, 0, len(s.global)+len(scoped))
	snapshot = append(snapshot, s.global...)
	return append(snapshot, scoped...)
}

// Fire calls fn for every entry in the snapshot of key and source that is
// still live when its turn comes. The first error stops the fire.
func (r *Registry[K]) Fire(key K, source any, fn func(*Entry) error) error {
	snapshot := r.Snapshot(key, source)
	if len(snapshot) == 0 {
		return nil
	}

	r.depth++
	defer func() { r.depth-- }()

	for _, e := range snapshot {
		if e.removed {
			continue
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

// Depth returns how many fires are currently on the stack.
func (r *Registry[K]) Depth() int {
	return r.depth
}

// Count returns the number of live entries for key, global and scoped.
func (r *Registry[K]) Count(key K) int {
	s, ok := r.slots.Get(key)
	if !ok {
		return 0
	}
	n := len(s.global)
	for _, entries := range s.bySource {
		n += len(entries)
	}
	return n
}

// CountSource returns the number of live entries registered for key and
// source. A nil source counts the global entries.
func (r *Registry[K]) CountSource(key K, source any) int {
	if !reflectx.Comparable(source) {
		return 0
	}
	return len(r.list(key, source))
}

// Keys returns the keys that have live entries, in the order they first
// received one.
func (r *Registry[K]) Keys() []K {
	keys := make([]K, 0, r.slots.Len())
	for pair := r.slots.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clear removes every entry. Fires in progress skip the entries they have
// not reached yet.
func (r *Registry[K]) Clear() {
	for pair := r.slots.Oldest(); pair != nil; pair = pair.Next() {
		for _, e := range pair.Value.global {
			e.removed = true
		}
		for _, entries := range pair.Value.bySource {
			for _, e := range entries {
				e.removed = true
			}
		}
	}
	r.slots = orderedmap.New[K, *slot]()
}
