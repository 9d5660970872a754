package status

type (
	Code   uint16
	Status string
)

// The server speaks a closed set of status codes.
const (
	OK      Code = 200 // RFC 9110, 15.3.1
	Created Code = 201 // RFC 9110, 15.3.2

	BadRequest          Code = 400 // RFC 9110, 15.5.1
	Unauthorized        Code = 401 // RFC 9110, 15.5.2
	NotFound            Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed    Code = 405 // RFC 9110, 15.5.6
	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// KnownCodes lists every code having a reason phrase.
var KnownCodes = []Code{
	OK, Created, BadRequest, Unauthorized, NotFound, MethodNotAllowed, InternalServerError,
}

// Text returns a reason phrase for the HTTP status code. It returns "Unknown Status Code"
// if the code isn't one of the KnownCodes.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown Status Code"
	}
}
