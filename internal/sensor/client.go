// Package sensor fetches the raw data payload from an AVTECH TemPageR
// device.
//
// The device does not speak proper HTTP: a request to /getData.html is
// answered with a body-only response, no status line and no headers,
// terminated by the device closing the connection. An HTTP client
// library cannot read that, so the fetch is a raw TCP exchange: write
// the request line, then read to EOF.
package sensor

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"go.uber.org/zap"
)

const requestLine = "GET /getData.html\n\n"

// ConnectError reports that the device could not be reached or its
// response could not be read to completion.
type ConnectError struct {
	Host string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("unable to connect to sensor %s: %v", e.Host, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// Client fetches payloads from one device.
type Client struct {
	addr    string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a client for the given device address. A bare host
// gets the default port 80 appended.
func NewClient(host string, timeout time.Duration, logger *zap.Logger) *Client {
	addr := host
	if _, _, err := net.SplitHostPort(host); err != nil {
		addr = net.JoinHostPort(host, "80")
	}
	return &Client{
		addr:    addr,
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch performs one request cycle and returns the complete response
// body. The read is EOF-terminated; the timeout covers the whole
// dial+write+read sequence.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	dialer := &net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return "", &ConnectError{Host: c.addr, Err: err}
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", &ConnectError{Host: c.addr, Err: err}
	}

	if _, err := conn.Write([]byte(requestLine)); err != nil {
		return "", &ConnectError{Host: c.addr, Err: err}
	}

	body, err := io.ReadAll(conn)
	if err != nil {
		return "", &ConnectError{Host: c.addr, Err: err}
	}

	c.logger.Debug("Fetched sensor payload",
		zap.String("addr", c.addr),
		zap.Int("bytes", len(body)),
	)

	return string(body), nil
}
