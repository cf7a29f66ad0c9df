package sensor_test

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/jakeobsen/monitoring-plugins/internal/sensor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDevice answers one connection the way the TemPageR does: it reads
// the request line, writes the bare payload with no HTTP framing and
// closes the connection.
func fakeDevice(t *testing.T, body string) net.Addr {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 64)
		_, _ = conn.Read(buf)
		_, _ = io.WriteString(conn, body)
	}()

	return ln.Addr()
}

func TestClient_Fetch(t *testing.T) {
	const body = `{sensor:[{label:"Rack1",tempc:22}]}`
	addr := fakeDevice(t, body)

	client := sensor.NewClient(addr.String(), time.Second, zap.NewNop())
	got, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestClient_FetchConnectionRefused(t *testing.T) {
	// Grab a free port and release it again so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client := sensor.NewClient(addr, time.Second, zap.NewNop())
	_, err = client.Fetch(context.Background())

	var connErr *sensor.ConnectError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, addr, connErr.Host)
	assert.Error(t, connErr.Unwrap())
}
