package signals

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/simonweinhold/nod/nod/option"
)

// core owns slot storage and the connection lifecycle shared by Signal and
// ResultSignal. F is the slot function type.
//
// Slots live in a slice of options. Connecting appends a Some cell, so a
// slot's index stays valid for the whole lifetime of its connection.
// Disconnecting writes Nothing over the cell and trims Nothing cells off the
// tail only; cells in the middle remain as placeholders so no later index is
// renumbered. Tail indices freed by the trim are handed out again by later
// connects.
type core[F any] struct {
	policy threadPolicy
	logger *zerolog.Logger
	id     string

	slots  []option.Option[F]
	shared *handle
	closed bool
}

func newCore[F any](policy threadPolicy, cfg *config) core[F] {
	return core[F]{
		policy: policy,
		logger: cfg.logger,
		id:     ulid.Make().String(),
	}
}

func (c *core[F]) connect(slot F) *Connection {
	c.policy.Lock()
	defer c.policy.Unlock()
	if c.closed {
		return &Connection{}
	}
	c.slots = append(c.slots, option.Some(slot))
	index := len(c.slots) - 1
	if c.shared == nil {
		// No connection can predate the first connect, so the handle is
		// built lazily here.
		c.shared = newHandle(c)
	}
	c.logger.Debug().Str("signal", c.id).Int("slot", index).Msg("slot connected")
	return &Connection{weak: c.shared, index: index}
}

// disconnect implements disconnector. Connections reach it through the shared
// handle, which guarantees the core is still alive when it runs.
func (c *core[F]) disconnect(index int) {
	c.policy.Lock()
	defer c.policy.Unlock()
	if index < 0 || index >= len(c.slots) {
		panic(fmt.Sprintf("signals: disconnect index %d out of range with %d slots", index, len(c.slots)))
	}
	c.slots[index] = option.Nothing[F]()
	for len(c.slots) > 0 && c.slots[len(c.slots)-1].IsNothing() {
		c.slots = c.slots[:len(c.slots)-1]
	}
	c.logger.Debug().Str("signal", c.id).Int("slot", index).Msg("slot disconnected")
}

// Close disconnects every slot and invalidates all connections. It blocks
// until disconnects in flight on other goroutines have finished, so no slot
// is referenced anymore once Close returns. Closing twice is a no-op. Close
// must not be called from a slot.
func (c *core[F]) Close() {
	c.policy.Lock()
	if c.closed {
		c.policy.Unlock()
		return
	}
	c.closed = true
	h := c.shared
	c.shared = nil
	c.policy.Unlock()

	if h != nil {
		// Drop the signal's own reference first; only then can the count
		// drain to zero. Spinning outside the lock lets in-flight
		// disconnects take it, finish against intact storage and release.
		h.release()
		for h.alive() {
			c.policy.yield()
		}
	}

	c.policy.Lock()
	c.slots = nil
	c.policy.Unlock()
	c.logger.Debug().Str("signal", c.id).Msg("signal closed")
}

// Len reports the number of connected slots, placeholders excluded.
func (c *core[F]) Len() int {
	c.policy.Lock()
	defer c.policy.Unlock()
	n := 0
	for _, slot := range c.slots {
		if slot.IsSome() {
			n++
		}
	}
	return n
}
