package disposable

import "sync"

// Disposable is a handle to a resource or registration that can be released.
// Dispose is idempotent: the release runs at most once, no matter how many
// times or from how many goroutines Dispose is called.
type Disposable interface {
	Dispose()
}

type funcDisposable struct {
	once sync.Once
	fn   func()
}

func (d *funcDisposable) Dispose() {
	d.once.Do(d.fn)
}

// NewDisposable wraps a release function into a Disposable.
func NewDisposable(fn func()) Disposable {
	return &funcDisposable{fn: fn}
}

type compositeDisposable struct {
	once      sync.Once
	delegates []Disposable
}

func (d *compositeDisposable) Dispose() {
	d.once.Do(func() {
		for _, delegate := range d.delegates {
			delegate.Dispose()
		}
	})
}

// NewCompositeDisposable joins several disposables into one. Dispose releases
// every delegate, in the order they were given.
func NewCompositeDisposable(delegates ...Disposable) Disposable {
	return &compositeDisposable{delegates: delegates}
}
