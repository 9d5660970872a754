package dummy

import (
	"net"
	"sync"
)

var _ net.Listener = new(Listener)

// Accept is a single scripted result of Listener.Accept.
type Accept struct {
	Conn net.Conn
	Err  error
}

// Listener replays the scripted accepts one by one. Once they are exhausted, Accept
// blocks until the listener is closed and returns net.ErrClosed then.
type Listener struct {
	mu      sync.Mutex
	accepts []Accept
	closed  chan struct{}
	once    sync.Once
}

func NewListener(accepts ...Accept) *Listener {
	return &Listener{
		accepts: accepts,
		closed:  make(chan struct{}),
	}
}

func (l *Listener) Accept() (net.Conn, error) {
	l.mu.Lock()
	if len(l.accepts) > 0 {
		next := l.accepts[0]
		l.accepts = l.accepts[1:]
		l.mu.Unlock()

		return next.Conn, next.Err
	}
	l.mu.Unlock()

	<-l.closed
	return nil, net.ErrClosed
}

func (l *Listener) Close() error {
	l.once.Do(func() {
		close(l.closed)
	})

	return nil
}

func (*Listener) Addr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 3000}
}
