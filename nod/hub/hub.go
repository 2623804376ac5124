// Package hub routes events between decoupled publishers and subscribers,
// one signal per event type.
package hub

import (
	"reflect"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/simonweinhold/nod/nod/disposable"
	"github.com/simonweinhold/nod/nod/signals"
)

// closer is the type-erased face of the per-type signals held by the hub.
type closer interface {
	Close()
}

// Hub owns one signal per event type, created on first Connect. Slots
// subscribe through the free function Connect and events dispatch through
// Emit. A hub is safe for concurrent use.
type Hub struct {
	mu      sync.RWMutex
	signals map[reflect.Type]any
	closed  bool
	logger  *zerolog.Logger
	id      string
}

// New builds an empty hub.
func New(opts ...Option) *Hub {
	cfg := newConfig(opts)
	return &Hub{
		signals: make(map[reflect.Type]any),
		logger:  cfg.logger,
		id:      ulid.Make().String(),
	}
}

// Close closes every signal the hub created and rejects further connects and
// emits. Closing twice is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	sigs := h.signals
	h.signals = nil
	h.mu.Unlock()

	for _, sig := range sigs {
		sig.(closer).Close()
	}
	h.logger.Debug().Str("hub", h.id).Int("signals", len(sigs)).Msg("hub closed")
}

func signalOf[E any](h *Hub) (*signals.Signal[E], error) {
	key := reflect.TypeOf((*E)(nil)).Elem()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, errors.Wrapf(ErrClosed, "connect %v", key)
	}
	if entry, ok := h.signals[key]; ok {
		return entry.(*signals.Signal[E]), nil
	}
	sig := signals.New[E](signals.WithLogger(h.logger))
	h.signals[key] = sig
	h.logger.Debug().Str("hub", h.id).Str("event", key.String()).Msg("signal created")
	return sig, nil
}

// --- Typed free functions ---

// Connect registers slot for events of type E. Disposing the result
// disconnects it again.
func Connect[E any](h *Hub, slot func(E)) (disposable.Disposable, error) {
	sig, err := signalOf[E](h)
	if err != nil {
		return nil, err
	}
	conn := sig.Connect(slot)
	return disposable.NewDisposable(conn.Disconnect), nil
}

// Emit dispatches event to every slot connected for type E, in connection
// order. Events of a type nobody ever connected to are dropped silently.
func Emit[E any](h *Hub, event E) error {
	key := reflect.TypeOf((*E)(nil)).Elem()
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return errors.Wrapf(ErrClosed, "emit %v", key)
	}
	entry, ok := h.signals[key]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	entry.(*signals.Signal[E]).Emit(event)
	return nil
}
