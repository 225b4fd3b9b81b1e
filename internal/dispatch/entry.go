package dispatch


// Entry is one registration of a handler. Registering the same handler twice
// yields two entries, each removable on its own.
type Entry struct {
	id      string
	handler any
	source  any
	removed bool
	onClose func(*Entry)
}

func (e *Entry) ID() string {
	return e.id
}

func (e *Entry) Handler() any {
	return e.handler
}

// Source returns the source the entry was registered for, nil when global.
func (e *Entry) Source() any {
	return e.source
}

// Live reports whether the entry is still registered.
func (e *Entry) Live() bool {
	return !e.removed
}

// Remove detaches the entry from its registry. It reports whether this call
// removed it; later calls do nothing and return false.
func (e *Entry) Remove() bool {
	if e.removed {
		return false
	}
	e.removed = true
	if e.onClose != nil {
		e.onClose(e)
	}
	return true
}
