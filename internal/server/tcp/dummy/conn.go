package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is a scripted connection. Reads consume the data given on construction and
// report io.EOF afterwards, writes are collected into Written.
type Conn struct {
	data     []byte
	readErr  error
	writeErr error
	remote   net.Addr
	Written  []byte
	Reads    int
	Closed   bool
}

func NewConn(data []byte) *Conn {
	return &Conn{
		data:   data,
		remote: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 49152},
	}
}

// ReadError makes every read fail with the err.
func (c *Conn) ReadError(err error) *Conn {
	c.readErr = err
	return c
}

// WriteError makes every write fail with the err.
func (c *Conn) WriteError(err error) *Conn {
	c.writeErr = err
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	c.Reads++

	if c.readErr != nil {
		return 0, c.readErr
	}

	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.data)
	c.data = c.data[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}

	c.Written = append(c.Written, b...)
	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 3000}
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.remote
}

func (*Conn) SetDeadline(time.Time) error {
	return nil
}

func (*Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (*Conn) SetWriteDeadline(time.Time) error {
	return nil
}
