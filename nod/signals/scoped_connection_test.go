package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopedConnection_CloseDisconnects(t *testing.T) {
	s := New[sampleEvent]()
	called := false
	conn := s.Connect(func(sampleEvent) { called = true })

	func() {
		sc := Scoped(conn)
		defer sc.Close()
		assert.True(t, sc.Connected())
	}()

	s.Emit(sampleEvent{1})
	assert.False(t, called)
	assert.False(t, conn.Connected())
}

func TestScopedConnection_ResetDisconnectsPrevious(t *testing.T) {
	s := New[sampleEvent]()
	first := s.Connect(func(sampleEvent) {})
	second := s.Connect(func(sampleEvent) {})

	sc := Scoped(first)
	sc.Reset(second)
	assert.False(t, first.Connected())
	assert.True(t, sc.Connected())
	sc.Close()
	assert.False(t, second.Connected())
}

func TestScopedConnection_ReleaseKeepsSlotConnected(t *testing.T) {
	s := New[sampleEvent]()
	called := false
	conn := s.Connect(func(sampleEvent) { called = true })

	sc := Scoped(conn)
	released := sc.Release()
	sc.Close()

	s.Emit(sampleEvent{1})
	assert.True(t, called)
	assert.True(t, released.Connected())
	assert.False(t, sc.Connected())
}

func TestScopedConnection_DisconnectKeepsOwnership(t *testing.T) {
	s := New[sampleEvent]()
	conn := s.Connect(func(sampleEvent) {})
	sc := Scoped(conn)
	sc.Disconnect()
	assert.False(t, sc.Connected())
	sc.Close() // should not panic
}

func TestScopedConnection_EmptyScope(t *testing.T) {
	sc := Scoped(nil)
	assert.False(t, sc.Connected())
	sc.Disconnect() // should not panic
	sc.Close()
}
