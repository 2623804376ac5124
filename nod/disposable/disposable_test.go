package disposable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposable_DisposeRunsFunc(t *testing.T) {
	calls := 0
	d := NewDisposable(func() { calls++ })
	d.Dispose()
	assert.Equal(t, 1, calls)
}

func TestDisposable_DisposeIsIdempotent(t *testing.T) {
	calls := 0
	d := NewDisposable(func() { calls++ })
	d.Dispose()
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, calls)
}

func TestDisposable_ConcurrentDisposeRunsOnce(t *testing.T) {
	calls := 0
	d := NewDisposable(func() { calls++ })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispose()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestCompositeDisposable_DisposesAllInOrder(t *testing.T) {
	var order []int
	d := NewCompositeDisposable(
		NewDisposable(func() { order = append(order, 1) }),
		NewDisposable(func() { order = append(order, 2) }),
		NewDisposable(func() { order = append(order, 3) }),
	)
	d.Dispose()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestCompositeDisposable_DisposeIsIdempotent(t *testing.T) {
	calls := 0
	d := NewCompositeDisposable(NewDisposable(func() { calls++ }))
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, calls)
}

func TestCompositeDisposable_Empty(t *testing.T) {
	d := NewCompositeDisposable()
	d.Dispose() // should not panic
}
