package netcheck_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedback/pkg/netcheck"
)

func listen(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()
	return ln.Addr().String()
}

func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestChecker_Reachable(t *testing.T) {
	t.Parallel()

	c := netcheck.New(netcheck.WithAddresses(closedAddr(t), listen(t)), netcheck.WithTimeout(time.Second))
	assert.True(t, c.IsNetworkAvailable(context.Background()))
}

func TestChecker_Unreachable(t *testing.T) {
	t.Parallel()

	c := netcheck.New(netcheck.WithAddresses(closedAddr(t)), netcheck.WithTimeout(time.Second))
	assert.False(t, c.IsNetworkAvailable(context.Background()))
}

func TestChecker_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := netcheck.New(netcheck.WithAddresses(listen(t)))
	assert.False(t, c.IsNetworkAvailable(ctx))
}

func TestChecker_CustomDialer(t *testing.T) {
	t.Parallel()

	var dialed []string
	c := netcheck.New(
		netcheck.WithAddresses("a:1", "b:2"),
		netcheck.WithDialer(func(ctx context.Context, network, address string) (net.Conn, error) {
			dialed = append(dialed, network+"://"+address)
			return nil, errors.New("no route to host")
		}),
	)

	assert.False(t, c.IsNetworkAvailable(context.Background()))
	assert.Equal(t, []string{"tcp://a:1", "tcp://b:2"}, dialed)
}
