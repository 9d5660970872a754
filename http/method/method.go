package method

import "github.com/indigo-web/nimble/http/status"

//go:generate stringer -type=Method
type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

// Parse matches the token against the exact uppercase spelling of every known method.
// The match is case-sensitive and no trimming is done. Unrecognized tokens result in
// status.ErrInvalidMethod.
func Parse(str string) (Method, error) {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET, nil
		} else if str == "PUT" {
			return PUT, nil
		}
	case 4:
		if str == "POST" {
			return POST, nil
		} else if str == "HEAD" {
			return HEAD, nil
		}
	case 5:
		if str == "PATCH" {
			return PATCH, nil
		} else if str == "TRACE" {
			return TRACE, nil
		}
	case 6:
		if str == "DELETE" {
			return DELETE, nil
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT, nil
		} else if str == "OPTIONS" {
			return OPTIONS, nil
		}
	}

	return Unknown, status.ErrInvalidMethod
}
