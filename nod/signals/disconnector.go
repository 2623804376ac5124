package signals

import "sync/atomic"

// disconnector is the type-erased face of a signal seen by connections. It
// has a single operation so that Connection does not need the signal's type
// parameters.
type disconnector interface {
	disconnect(index int)
}

// handle couples a disconnector with the reference count that tracks whether
// the owning signal is still alive. The count starts at one, the signal's own
// reference. Connections never hold a lasting reference: they acquire one
// around a disconnect call and release it right after. Once the count reaches
// zero it never rises again.
type handle struct {
	refs atomic.Int64
	d    disconnector
}

func newHandle(d disconnector) *handle {
	h := &handle{d: d}
	h.refs.Store(1)
	return h
}

// acquire takes a transient reference. It fails once the owning signal has
// released its reference and every in-flight disconnect has drained.
func (h *handle) acquire() bool {
	for {
		n := h.refs.Load()
		if n == 0 {
			return false
		}
		if h.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (h *handle) release() {
	h.refs.Add(-1)
}

// alive reports whether the owning signal still holds its reference or a
// disconnect is mid-flight.
func (h *handle) alive() bool {
	return h.refs.Load() > 0
}
