// Package signals implements the signal and slot pattern: a signal holds a
// list of callbacks, the slots, and calls each of them in connection order
// whenever a payload is emitted.
//
// A slot takes exactly one argument. Events with several fields use a struct
// payload, events without data use struct{}:
//
//	sig := signals.New[string]()
//	conn := sig.Connect(func(name string) {
//		fmt.Println("hello,", name)
//	})
//	sig.Emit("world")
//	conn.Disconnect()
//
// Connect returns a Connection that severs its slot independently of the
// others. Connections observe the signal weakly: they stay valid, and safe to
// call, after the signal is closed. Scoped wraps a connection so a defer
// disconnects it on scope exit.
//
// Slots that return values are dispatched by a ResultSignal. Emit discards
// the returns; an accumulator built with Accumulate folds them instead:
//
//	votes := signals.NewResult[proposal, int]()
//	total := signals.Accumulate(votes, 0, func(acc, n int) int { return acc + n })
//	sum := total.Emit(p)
//
// CollectErrors is the ready-made fold for slots returning error.
//
// Signals built with New and NewResult serialize all operations with a mutex
// and may be shared between goroutines. NewUnsafe and NewUnsafeResult skip
// locking entirely for signals confined to one goroutine. In both cases the
// lock spans the whole dispatch, so a slot must not connect, disconnect, emit
// or close on its own signal; with the mutex variants that deadlocks.
package signals
