package signals

import (
	"runtime"
	"sync"
)

// threadPolicy supplies the synchronization pair for one signal instance: the
// mutual-exclusion guard around slot storage and the yield operation used
// while Close drains in-flight disconnects.
type threadPolicy interface {
	sync.Locker
	yield()
}

// multithreadPolicy guards the signal with a mutex. Signals built by New and
// NewResult use it.
type multithreadPolicy struct {
	mu sync.Mutex
}

func (p *multithreadPolicy) Lock()   { p.mu.Lock() }
func (p *multithreadPolicy) Unlock() { p.mu.Unlock() }
func (p *multithreadPolicy) yield()  { runtime.Gosched() }

// singlethreadPolicy does no locking at all. Signals built by NewUnsafe and
// NewUnsafeResult use it and must stay confined to one goroutine, connections
// included.
type singlethreadPolicy struct{}

func (singlethreadPolicy) Lock()   {}
func (singlethreadPolicy) Unlock() {}
func (singlethreadPolicy) yield()  {}
