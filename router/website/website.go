package website

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/nimble/http"
	"github.com/indigo-web/nimble/http/method"
	"github.com/indigo-web/nimble/http/status"
	"github.com/indigo-web/nimble/router"
	"github.com/indigo-web/nimble/router/simple"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var _ router.Router = new(Router)

// Router serves files from the public directory for GET requests.
type Router struct {
	root   string
	logger zerolog.Logger
}

// New returns a router serving the root directory. The root is resolved to its real path
// once, so it must exist.
func New(root string, logger zerolog.Logger) (*Router, error) {
	realRoot, err := realpath(root)
	if err != nil {
		return nil, errors.Wrap(err, "public directory")
	}

	return &Router{
		root:   realRoot,
		logger: logger,
	}, nil
}

func (r *Router) OnRequest(request *http.Request) *http.Response {
	if request.Method != method.GET {
		return http.Respond(status.NotFound)
	}

	switch request.Path {
	case "/":
		return r.page("index.html")
	case "/hello":
		return r.page("hello.html")
	}

	content, found := r.read(request.Path)
	if !found {
		return http.Respond(status.NotFound)
	}

	return http.NewResponse().String(content)
}

func (r *Router) OnError(err error) *http.Response {
	return simple.DefaultErrorHandler(err)
}

// page responds 200 OK even if the page is unavailable, just without the body then.
func (r *Router) page(name string) *http.Response {
	response := http.NewResponse()
	if content, found := r.read(name); found {
		response.String(content)
	}

	return response
}

// read returns the content of a file, if the file is a regular one and resides inside
// the root after resolving all the symlinks and dot-dot segments.
func (r *Router) read(name string) (string, bool) {
	path, err := realpath(filepath.Join(r.root, filepath.FromSlash(name)))
	if err != nil {
		return "", false
	}

	if !within(r.root, path) {
		r.logger.Warn().Str("path", name).Msg("directory traversal attempt")
		return "", false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	return string(content), true
}

func realpath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
