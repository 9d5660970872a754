package nimble

import (
	"net"
	"os"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/indigo-web/nimble/config"
	"github.com/indigo-web/nimble/internal/address"
	"github.com/indigo-web/nimble/internal/server/http"
	"github.com/indigo-web/nimble/internal/server/tcp"
	"github.com/indigo-web/nimble/router"
	"github.com/indigo-web/nimble/router/simple"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// App is the single-listener web-application. Connections are served strictly one after
// another, each of them serving exactly one request.
type App struct {
	addr   string
	cfg    *config.Config
	logger zerolog.Logger
	clock  clock.Clock
	hooks  hooks

	mu      sync.Mutex
	server  *tcp.Server
	stopped bool
}

// New returns a new App instance. An address consisting of the port only is bound to all
// the interfaces.
func New(addr string) *App {
	appAddr, err := address.Normalize(addr)
	if err != nil {
		panic(errors.Wrap(err, "nimble: listen"))
	}

	return &App{
		addr:   appAddr,
		cfg:    config.Default(),
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
		clock:  clock.New(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, writing JSON lines into stderr.
func (a *App) Logger(logger zerolog.Logger) *App {
	a.logger = logger
	return a
}

// Clock replaces the time source the served requests are measured by.
func (a *App) Clock(c clock.Clock) *App {
	a.clock = c
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound, right before the
// first connection is accepted.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the application stopped accepting connections and
// the last accepted one was served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the web-application and blocks until Stop is called. If nil is passed
// instead of a router, every request is responded with 404 Not Found.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = simple.New(nil, nil)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", a.addr)
	}

	httpServer := http.NewServer(r, a.cfg.NET, a.logger, a.clock)
	server := tcp.NewServer(sock, httpServer.Serve, a.logger)

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return errors.Wrap(sock.Close(), "close listener")
	}
	a.server = server
	a.mu.Unlock()

	a.logger.Info().Str("addr", server.Addr().String()).Msg("listening")
	callIfNotNil(a.hooks.OnStart)
	err = server.Start()
	callIfNotNil(a.hooks.OnStop)

	if errors.Is(err, tcp.ErrStopped) {
		return nil
	}

	return err
}

// Addr returns the address the application is bound to, or an empty string if it
// isn't serving yet.
func (a *App) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return ""
	}

	return a.server.Addr().String()
}

// Stop stops accepting new connections. The connection being served at the moment is
// served till the end, after that Serve returns.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// might be still working
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}

	a.stopped = true
	if a.server != nil {
		_ = a.server.Stop()
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
