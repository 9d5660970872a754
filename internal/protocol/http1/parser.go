package http1

import (
	"unicode/utf8"

	"github.com/indigo-web/nimble/http"
	"github.com/indigo-web/nimble/http/method"
	"github.com/indigo-web/nimble/http/status"
	"github.com/indigo-web/utils/uf"
)

const protocol = "HTTP/1.1"

// Parse parses the request line out of data. Headers and body, if any, are ignored.
//
// The returned request references data directly, so it must not be modified as long as
// the request is in use. Parse has no state, so parsing the same data always results
// in equal requests.
func Parse(data []byte) (*http.Request, error) {
	if !utf8.Valid(data) {
		return nil, status.ErrInvalidEncoding
	}

	request := uf.B2S(data)

	methodToken, request, ok := nextWord(request)
	if !ok {
		return nil, status.ErrInvalidRequest
	}

	target, request, ok := nextWord(request)
	if !ok {
		return nil, status.ErrInvalidRequest
	}

	proto, _, ok := nextWord(request)
	if !ok {
		return nil, status.ErrInvalidRequest
	}

	if proto != protocol {
		return nil, status.ErrInvalidProtocol
	}

	m, err := method.Parse(methodToken)
	if err != nil {
		return nil, err
	}

	path, rawQuery, hasQuery := splitTarget(target)

	return http.NewRequest(m, path, rawQuery, hasQuery), nil
}

// nextWord cuts the data by the first space or carriage return. The delimiter itself is
// dropped. Both delimiters are single-byte and never appear inside a multibyte UTF-8
// sequence, so byte-wise search never splits a character.
func nextWord(data string) (word, rest string, ok bool) {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\r':
			return data[:i], data[i+1:], true
		}
	}

	return "", data, false
}

func splitTarget(target string) (path, rawQuery string, hasQuery bool) {
	for i := 0; i < len(target); i++ {
		if target[i] == '?' {
			return target[:i], target[i+1:], true
		}
	}

	return target, "", false
}
