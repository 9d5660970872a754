package http

import (
	"io"
	"strconv"

	"github.com/indigo-web/nimble/http/status"
)

const protocol = "HTTP/1.1 "

// Response consists of a status code and an optional body. The body is owned by the
// response, therefore may outlive the request it was produced for.
type Response struct {
	code    status.Code
	body    string
	hasBody bool
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and no body.
func NewResponse() *Response {
	return &Response{
		code: status.OK,
	}
}

// Respond is a shortcut for NewResponse().Code(code)
func Respond(code status.Code) *Response {
	return NewResponse().Code(code)
}

// Code sets a Response code. Any code is accepted; unknown ones are serialized with the
// "Unknown Status Code" reason phrase.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// String sets the response body. Setting an empty string still counts as presence of the
// body, however it isn't distinguishable on the wire.
func (r *Response) String(body string) *Response {
	r.body = body
	r.hasBody = true
	return r
}

// NoBody drops the body, if any.
func (r *Response) NoBody() *Response {
	r.body = ""
	r.hasBody = false
	return r
}

// StatusCode returns the response code.
func (r *Response) StatusCode() status.Code {
	return r.code
}

// Body returns the body and whether it was set.
func (r *Response) Body() (string, bool) {
	return r.body, r.hasBody
}

// AppendTo serializes the response into the buffer. The format is exactly
// "HTTP/1.1 <code> <reason>\r\n\r\n<body>", no headers are emitted.
func (r *Response) AppendTo(buff []byte) []byte {
	buff = append(buff, protocol...)
	buff = strconv.AppendUint(buff, uint64(r.code), 10)
	buff = append(buff, ' ')
	buff = append(buff, status.Text(r.code)...)
	buff = append(buff, "\r\n\r\n"...)

	return append(buff, r.body...)
}

// Send writes the serialized response by a single call. Write errors are returned as is.
// It allocates a fresh buffer each time, see SendBuffered for reusing one.
func (r *Response) Send(w io.Writer) error {
	_, err := r.SendBuffered(w, make([]byte, 0, len(protocol)+32+len(r.body)))
	return err
}

// SendBuffered serializes the response into buff, overwriting its contents, and writes it
// by a single call. The grown buffer is returned even if writing failed.
func (r *Response) SendBuffered(w io.Writer, buff []byte) ([]byte, error) {
	buff = r.AppendTo(buff[:0])
	_, err := w.Write(buff)
	return buff, err
}
