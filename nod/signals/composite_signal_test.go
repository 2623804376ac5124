package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeSignal_ConnectReachesEveryDelegate(t *testing.T) {
	left := New[sampleEvent]()
	right := New[sampleEvent]()
	comp := NewCompositeSignal(left, right)

	var got []int
	comp.Connect(func(e sampleEvent) { got = append(got, e.payload) })
	left.Emit(sampleEvent{1})
	right.Emit(sampleEvent{2})
	assert.Equal(t, []int{1, 2}, got)
}

func TestCompositeSignal_EmitDispatchesOnEveryDelegate(t *testing.T) {
	left := New[sampleEvent]()
	right := New[sampleEvent]()
	comp := NewCompositeSignal(left, right)

	calls := 0
	comp.Connect(func(sampleEvent) { calls++ })
	comp.Emit(sampleEvent{1})
	assert.Equal(t, 2, calls)
}

func TestCompositeSignal_DisposeDisconnectsEverywhere(t *testing.T) {
	left := New[sampleEvent]()
	right := New[sampleEvent]()
	comp := NewCompositeSignal(left, right)

	called := false
	d := comp.Connect(func(sampleEvent) { called = true })
	d.Dispose()
	comp.Emit(sampleEvent{1})
	assert.False(t, called)
	assert.Equal(t, 0, comp.Len())
}

func TestCompositeSignal_DelegatesKeepStandaloneSlots(t *testing.T) {
	left := New[sampleEvent]()
	right := New[sampleEvent]()
	comp := NewCompositeSignal(left, right)

	direct := 0
	left.Connect(func(sampleEvent) { direct++ })
	d := comp.Connect(func(sampleEvent) {})
	d.Dispose()

	comp.Emit(sampleEvent{1})
	assert.Equal(t, 1, direct)
	assert.Equal(t, 1, comp.Len())
}

func TestCompositeSignal_Empty(t *testing.T) {
	comp := NewCompositeSignal[sampleEvent]()
	d := comp.Connect(func(sampleEvent) {})
	comp.Emit(sampleEvent{1}) // should not panic
	d.Dispose()
	assert.Equal(t, 0, comp.Len())
}
