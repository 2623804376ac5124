package signals

// Connection identifies one connected slot. Connect returns it so the caller
// can sever that slot later without touching the rest of the signal.
//
// A connection observes its signal weakly: it never keeps a closed signal's
// storage reachable and all its methods stay safe to call after the signal is
// gone. A connection has one logical owner; its methods must not be called
// from several goroutines at once. The zero value is a connection to nothing.
type Connection struct {
	weak  *handle
	index int
}

// Connected reports whether the connection still refers to a slot on a live
// signal. It turns false after Disconnect and after the signal closes.
func (c *Connection) Connected() bool {
	return c != nil && c.weak != nil && c.weak.alive()
}

// Disconnect removes the connected slot from its signal. It is a no-op on the
// zero value, on repeated calls and after the signal has closed.
func (c *Connection) Disconnect() {
	if c == nil || c.weak == nil {
		return
	}
	h := c.weak
	c.weak = nil
	if !h.acquire() {
		return
	}
	h.d.disconnect(c.index)
	h.release()
}
