package signals

// Slot is a callable dispatched by a Signal. Signatures with several
// arguments use a struct payload; argument-less signals use struct{}.
type Slot[A any] func(A)

// ResultSlot is a callable dispatched by a ResultSignal. Its return value is
// discarded by Emit and folded by accumulators.
type ResultSlot[A, R any] func(A) R
