package hub

import "errors"

// ErrClosed is reported by Connect and Emit after the hub has been closed.
var ErrClosed = errors.New("hub: closed")
