package tcp

import (
	"net"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrStopped is returned by Start after Stop was called.
var ErrStopped = errors.New("server is stopped")

type OnConn func(net.Conn)

// Server accepts connections and passes them to the callback one by one. The next
// connection isn't accepted until the callback for the previous one returned, so a
// single stalled client blocks all the others.
type Server struct {
	sock     net.Listener
	onConn   OnConn
	logger   zerolog.Logger
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn OnConn, logger zerolog.Logger) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		logger: logger,
	}
}

// Start runs the accept loop. Failed accepts are logged and skipped. The loop returns
// ErrStopped once the listener is closed.
//
// There's no backoff between failed accepts: a listener failing persistently (e.g. when
// running out of file descriptors) makes the loop spin, logging on every iteration.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() || errors.Is(err, net.ErrClosed) {
				return ErrStopped
			}

			s.logger.Error().Err(err).Msg("failed to establish a connection")
			continue
		}

		s.onConn(conn)
	}
}

// Stop closes the listener. The connection being served at the moment, if any, is served
// till the end.
func (s *Server) Stop() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}

// Addr returns the address the listener is bound to.
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}
