package signals

// Accumulator is a trigger proxy that folds slot results. Emit dispatches on
// the bound signal and combines the returned values left to right, starting
// from the initial value. The proxy keeps no state between emits, so it can
// be stored and reused.
type Accumulator[A, R, T any] struct {
	signal  *ResultSignal[A, R]
	init    T
	combine func(T, R) T
}

// Accumulate binds signal, an initial value and a binary fold into an
// accumulator. It is a free function because Go does not support type
// parameters on methods.
func Accumulate[A, R, T any](signal *ResultSignal[A, R], init T, combine func(T, R) T) *Accumulator[A, R, T] {
	return &Accumulator[A, R, T]{
		signal:  signal,
		init:    init,
		combine: combine,
	}
}

// Emit calls every connected slot in connection order with arg and folds the
// results. Placeholders left by disconnected slots contribute nothing. On a
// closed signal Emit returns the initial value. The same reentrancy rule as
// Signal.Emit applies.
func (a *Accumulator[A, R, T]) Emit(arg A) T {
	s := a.signal
	s.policy.Lock()
	defer s.policy.Unlock()
	s.logger.Debug().Str("signal", s.id).Int("slots", len(s.slots)).Msg("emitting with accumulator")
	acc := a.init
	for _, slot := range s.slots {
		if slot.IsSome() {
			acc = a.combine(acc, slot.Unwrap()(arg))
		}
	}
	return acc
}
