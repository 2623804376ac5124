package signals

// Signal dispatches a payload of type A to its connected slots. Create it
// with New or NewUnsafe; the zero value is not usable.
type Signal[A any] struct {
	core[Slot[A]]
}

// New builds a signal safe for concurrent use: connects, emits, disconnects
// and Close may run on any goroutine.
func New[A any](opts ...Option) *Signal[A] {
	return &Signal[A]{core: newCore[Slot[A]](&multithreadPolicy{}, newConfig(opts))}
}

// NewUnsafe builds a signal without any locking. It is cheaper than New, but
// the signal and all of its connections must stay on a single goroutine.
func NewUnsafe[A any](opts ...Option) *Signal[A] {
	return &Signal[A]{core: newCore[Slot[A]](singlethreadPolicy{}, newConfig(opts))}
}

// Connect registers slot and returns the connection controlling it. An emit
// already running on another goroutine does not see the new slot. On a closed
// signal Connect returns a dead connection.
func (s *Signal[A]) Connect(slot Slot[A]) *Connection {
	return s.connect(slot)
}

// Emit calls every connected slot in connection order with arg. The signal
// stays locked for the whole dispatch, so slots must not call back into their
// own signal: with New's locking that deadlocks.
func (s *Signal[A]) Emit(arg A) {
	s.policy.Lock()
	defer s.policy.Unlock()
	s.logger.Debug().Str("signal", s.id).Int("slots", len(s.slots)).Msg("emitting")
	for _, slot := range s.slots {
		if slot.IsSome() {
			slot.Unwrap()(arg)
		}
	}
}
