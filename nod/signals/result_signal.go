package signals

// ResultSignal dispatches a payload of type A to slots that return an R.
// Emit discards the returned values; fold them with Accumulate instead.
// Create it with NewResult or NewUnsafeResult; the zero value is not usable.
type ResultSignal[A, R any] struct {
	core[ResultSlot[A, R]]
}

// NewResult builds a result signal safe for concurrent use.
func NewResult[A, R any](opts ...Option) *ResultSignal[A, R] {
	return &ResultSignal[A, R]{core: newCore[ResultSlot[A, R]](&multithreadPolicy{}, newConfig(opts))}
}

// NewUnsafeResult builds a result signal without any locking. The signal and
// all of its connections must stay on a single goroutine.
func NewUnsafeResult[A, R any](opts ...Option) *ResultSignal[A, R] {
	return &ResultSignal[A, R]{core: newCore[ResultSlot[A, R]](singlethreadPolicy{}, newConfig(opts))}
}

// Connect registers slot and returns the connection controlling it. On a
// closed signal Connect returns a dead connection.
func (s *ResultSignal[A, R]) Connect(slot ResultSlot[A, R]) *Connection {
	return s.connect(slot)
}

// Emit calls every connected slot in connection order with arg, discarding
// the results. The same reentrancy rule as Signal.Emit applies: slots must
// not call back into their own signal.
func (s *ResultSignal[A, R]) Emit(arg A) {
	s.policy.Lock()
	defer s.policy.Unlock()
	s.logger.Debug().Str("signal", s.id).Int("slots", len(s.slots)).Msg("emitting")
	for _, slot := range s.slots {
		if slot.IsSome() {
			slot.Unwrap()(arg)
		}
	}
}
