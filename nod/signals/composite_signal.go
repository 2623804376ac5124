package signals

import "github.com/simonweinhold/nod/nod/disposable"

// CompositeSignal groups several signals of the same payload type behind one
// surface. Connecting through it connects to every delegate; emitting through
// it emits on every delegate in order.
type CompositeSignal[A any] struct {
	delegates []*Signal[A]
}

// NewCompositeSignal builds a composite over the given delegates. The
// composite holds no state of its own, so delegates keep working standalone.
func NewCompositeSignal[A any](delegates ...*Signal[A]) *CompositeSignal[A] {
	return &CompositeSignal[A]{delegates: delegates}
}

// Connect registers slot on every delegate. Disposing the result disconnects
// all of them.
func (c *CompositeSignal[A]) Connect(slot Slot[A]) disposable.Disposable {
	delegates := make([]disposable.Disposable, 0, len(c.delegates))
	for _, sig := range c.delegates {
		conn := sig.Connect(slot)
		delegates = append(delegates, disposable.NewDisposable(conn.Disconnect))
	}
	return disposable.NewCompositeDisposable(delegates...)
}

// Emit dispatches arg on every delegate in order.
func (c *CompositeSignal[A]) Emit(arg A) {
	for _, sig := range c.delegates {
		sig.Emit(arg)
	}
}

// Len reports the number of connected slots across all delegates.
func (c *CompositeSignal[A]) Len() int {
	n := 0
	for _, sig := range c.delegates {
		n += sig.Len()
	}
	return n
}
