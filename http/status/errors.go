package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Request parsing errors. Every one of them is terminal for the request only.
var (
	ErrInvalidEncoding = NewError(BadRequest, "invalid encoding")
	ErrInvalidRequest  = NewError(BadRequest, "invalid request")
	ErrInvalidProtocol = NewError(BadRequest, "invalid protocol")
	ErrInvalidMethod   = NewError(BadRequest, "invalid method")
)
