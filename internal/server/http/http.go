package http

import (
	"net"

	"github.com/benbjohnson/clock"
	"github.com/indigo-web/nimble/config"
	"github.com/indigo-web/nimble/http"
	"github.com/indigo-web/nimble/http/status"
	"github.com/indigo-web/nimble/internal/protocol/http1"
	"github.com/indigo-web/nimble/router"
	"github.com/rs/zerolog"
)

// Server performs a single request-response exchange per connection.
//
// The read and the response buffers are shared among all the connections, so Serve must
// never be called concurrently.
type Server struct {
	router   router.Router
	logger   zerolog.Logger
	clock    clock.Clock
	buff     []byte
	respBuff []byte
}

func NewServer(r router.Router, cfg config.NET, logger zerolog.Logger, clk clock.Clock) *Server {
	return &Server{
		router:   r,
		logger:   logger,
		clock:    clk,
		buff:     make([]byte, cfg.ReadBufferSize),
		respBuff: make([]byte, 0, cfg.ReadBufferSize),
	}
}

// Serve reads the request by a single read, dispatches it and writes the response back.
// The connection is closed in any case. Requests longer than the read buffer are
// truncated.
func (s *Server) Serve(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	start := s.clock.Now()
	logger := s.logger.With().Str("remote", remote(conn)).Logger()

	n, err := conn.Read(s.buff)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read from connection")
		return
	}

	data := s.buff[:n]
	logger.Debug().Bytes("data", data).Msg("received a request")

	var response *http.Response
	request, err := http1.Parse(data)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to parse request")
		response = s.onError(err)
	} else {
		response = s.onRequest(request)
	}

	s.respBuff, err = response.SendBuffered(conn, s.respBuff)
	if err != nil {
		logger.Error().Err(err).Msg("failed to send response")
		return
	}

	event := logger.Info().Int("code", int(response.StatusCode()))
	if request != nil {
		event = event.Stringer("method", request.Method).Str("path", request.Path)
	}

	event.Dur("took", s.clock.Since(start)).Msg("served")
}

func (s *Server) onRequest(request *http.Request) *http.Response {
	if response := s.router.OnRequest(request); response != nil {
		return response
	}

	return http.NewResponse()
}

func (s *Server) onError(err error) *http.Response {
	if response := s.router.OnError(err); response != nil {
		return response
	}

	return http.Respond(status.BadRequest)
}

func remote(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}

	return ""
}
