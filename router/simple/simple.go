package simple

import (
	"github.com/indigo-web/nimble/http"
	"github.com/indigo-web/nimble/http/status"
	"github.com/indigo-web/nimble/router"
)

type (
	Handler      func(*http.Request) *http.Response
	ErrorHandler func(error) *http.Response
)

var _ router.Router = Router{}

// Router is a pair of functions, one for requests and one for parse errors.
type Router struct {
	handler    Handler
	errHandler ErrorHandler
}

// New returns a router calling the functions. A nil errHandler is replaced by
// DefaultErrorHandler, a nil handler responds 404 Not Found to every request.
func New(handler Handler, errHandler ErrorHandler) Router {
	if handler == nil {
		handler = NotFoundHandler
	}

	if errHandler == nil {
		errHandler = DefaultErrorHandler
	}

	return Router{
		handler:    handler,
		errHandler: errHandler,
	}
}

func (r Router) OnRequest(request *http.Request) *http.Response {
	return r.handler(request)
}

func (r Router) OnError(err error) *http.Response {
	return r.errHandler(err)
}

// DefaultErrorHandler responds with 400 Bad Request and no body to any error.
func DefaultErrorHandler(error) *http.Response {
	return http.Respond(status.BadRequest)
}

// NotFoundHandler responds with 404 Not Found and no body.
func NotFoundHandler(*http.Request) *http.Response {
	return http.Respond(status.NotFound)
}
