package signals

// ScopedConnection ties a connection's lifetime to a scope: when Close runs,
// typically via defer, the owned connection is disconnected. Ownership can be
// handed over with Reset or taken back with Release.
type ScopedConnection struct {
	conn *Connection
}

// Scoped takes ownership of conn. Pair it with a deferred Close:
//
//	sc := signals.Scoped(sig.Connect(onEvent))
//	defer sc.Close()
func Scoped(conn *Connection) *ScopedConnection {
	return &ScopedConnection{conn: conn}
}

// Reset disconnects the owned connection, if any, and takes ownership of
// conn. Reset(nil) leaves the scoped connection empty.
func (s *ScopedConnection) Reset(conn *Connection) {
	if s.conn != nil {
		s.conn.Disconnect()
	}
	s.conn = conn
}

// Release gives up ownership without disconnecting and returns the connection
// so its lifetime can be managed elsewhere.
func (s *ScopedConnection) Release() *Connection {
	conn := s.conn
	s.conn = nil
	return conn
}

// Connected reports whether an owned connection exists and is still live.
func (s *ScopedConnection) Connected() bool {
	return s.conn.Connected()
}

// Disconnect severs the owned connection but keeps holding it.
func (s *ScopedConnection) Disconnect() {
	if s.conn != nil {
		s.conn.Disconnect()
	}
}

// Close disconnects the owned connection and empties the scope.
func (s *ScopedConnection) Close() {
	s.Reset(nil)
}
