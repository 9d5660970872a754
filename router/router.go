package router

import (
	"github.com/indigo-web/nimble/http"
)

// Router is the capability the server dispatches to. Exactly one of its methods is
// called per connection that was read successfully: OnRequest if the request was
// parsed, OnError otherwise.
//
// The request is valid only until OnRequest returns and must not be retained. The
// returned response is owned by the caller. A nil response is substituted with an
// empty 200 OK for OnRequest and an empty 400 Bad Request for OnError.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(err error) *http.Response
}
