package http

import (
	"github.com/indigo-web/nimble/http/method"
	"github.com/indigo-web/nimble/http/query"
)

// Request represents the request line of an HTTP request. Headers and body are neither
// parsed nor kept.
//
// WARNING: Path and Query aren't copied out of the buffer the request was parsed from.
// The request must not be retained after the router returned, as the buffer is reused
// for the next connection.
type Request struct {
	// Method is an enum representing the request method. It is never method.Unknown.
	Method method.Method
	// Path is the request target without the query. It never contains the question mark,
	// and is not decoded.
	Path string
	// Query holds everything after the first question mark. It is nil if the target
	// contained no question mark.
	Query *query.Query
}

// NewRequest returns a request. Pass an empty rawQuery with hasQuery set to false if the
// request target had no query.
func NewRequest(m method.Method, path string, rawQuery string, hasQuery bool) *Request {
	request := &Request{
		Method: m,
		Path:   path,
	}

	if hasQuery {
		request.Query = query.New(rawQuery)
	}

	return request
}
