package address

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

const DefaultHost = "0.0.0.0"

// Normalize checks the addr to consist of a host and a valid port. If only the port is
// presented, DefaultHost is used.
func Normalize(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", errors.Wrap(err, "bad address")
	}

	if len(port) == 0 {
		return "", errors.New("no port given")
	}

	if _, err = strconv.ParseUint(port, 10, 16); err != nil {
		return "", errors.Errorf("invalid port: %s", port)
	}

	if len(host) == 0 {
		host = DefaultHost
	}

	return net.JoinHostPort(host, port), nil
}
