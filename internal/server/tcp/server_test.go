package tcp

import (
	"bytes"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/indigo-web/nimble/internal/server/tcp/dummy"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func startAsync(server *Server) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	return errCh
}

func waitStopped(t *testing.T, errCh <-chan error) {
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, ErrStopped)
	case <-time.After(time.Second):
		require.Fail(t, "server did not stop on time")
	}
}

func TestServer(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("sequential", func(t *testing.T) {
		first, second := dummy.NewConn(nil), dummy.NewConn(nil)
		listener := dummy.NewListener(dummy.Accept{Conn: first}, dummy.Accept{Conn: second})
		served := make(chan net.Conn, 2)
		server := NewServer(listener, func(conn net.Conn) {
			served <- conn
		}, zerolog.Nop())

		errCh := startAsync(server)
		require.Equal(t, net.Conn(first), <-served)
		require.Equal(t, net.Conn(second), <-served)
		require.NoError(t, server.Stop())
		waitStopped(t, errCh)
	})

	t.Run("accept error is not fatal", func(t *testing.T) {
		conn := dummy.NewConn(nil)
		listener := dummy.NewListener(
			dummy.Accept{Err: errors.New("too many open files")},
			dummy.Accept{Conn: conn},
		)
		logs := new(bytes.Buffer)
		served := make(chan net.Conn, 1)
		server := NewServer(listener, func(conn net.Conn) {
			served <- conn
		}, zerolog.New(logs))

		errCh := startAsync(server)
		require.Equal(t, net.Conn(conn), <-served)
		require.NoError(t, server.Stop())
		waitStopped(t, errCh)
		require.Contains(t, logs.String(), "failed to establish a connection")
		require.Contains(t, logs.String(), "too many open files")
	})

	t.Run("persistent accept errors are logged each", func(t *testing.T) {
		conn := dummy.NewConn(nil)
		accepts := make([]dummy.Accept, 0, 4)
		for i := 0; i < 3; i++ {
			accepts = append(accepts, dummy.Accept{Err: errors.New("too many open files")})
		}
		listener := dummy.NewListener(append(accepts, dummy.Accept{Conn: conn})...)
		logs := new(bytes.Buffer)
		served := make(chan net.Conn, 1)
		server := NewServer(listener, func(conn net.Conn) {
			served <- conn
		}, zerolog.New(logs))

		errCh := startAsync(server)
		require.Equal(t, net.Conn(conn), <-served)
		require.NoError(t, server.Stop())
		waitStopped(t, errCh)
		require.Equal(t, 3, strings.Count(logs.String(), "failed to establish a connection"))
	})

	t.Run("real listener", func(t *testing.T) {
		listener, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)

		server := NewServer(listener, func(conn net.Conn) {
			_ = conn.Close()
		}, zerolog.Nop())
		require.Equal(t, listener.Addr(), server.Addr())

		errCh := startAsync(server)
		require.NoError(t, server.Stop())
		waitStopped(t, errCh)
	})
}
