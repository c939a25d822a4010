// Package netcheck answers "is the network reachable right now?" by opening a
// short-lived TCP connection to well-known endpoints.
//
//	checker := netcheck.New(netcheck.WithAddresses("smtp.gmail.com:465"))
//	if !checker.IsNetworkAvailable(ctx) {
//		// offline
//	}
package netcheck

import (
	"context"
	"net"
	"time"
)

// DefaultAddresses are public DNS resolvers reachable over TCP.
var DefaultAddresses = []string{"1.1.1.1:53", "8.8.8.8:53"}

// DefaultTimeout bounds each connection attempt. A full check of
// DefaultAddresses blocks for at most len(DefaultAddresses) * DefaultTimeout.
const DefaultTimeout = time.Second

// DialFunc opens a connection, matching net.Dialer.DialContext.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Checker probes a list of addresses in order and reports success on the first one that accepts a connection.
type Checker struct {
	addresses []string
	timeout   time.Duration
	dial      DialFunc
}

// Option configures a Checker.
type Option func(*Checker)

// WithAddresses replaces the probed host:port pairs.
func WithAddresses(addrs ...string) Option {
	return func(c *Checker) {
		if len(addrs) > 0 {
			c.addresses = append([]string(nil), addrs...)
		}
	}
}

// WithTimeout sets the per-address connection timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDialer replaces the dial function.
func WithDialer(dial DialFunc) Option {
	return func(c *Checker) {
		if dial != nil {
			c.dial = dial
		}
	}
}

// New creates a Checker with the defaults overridden by opts.
func New(opts ...Option) *Checker {
	d := &net.Dialer{}
	c := &Checker{
		addresses: DefaultAddresses,
		timeout:   DefaultTimeout,
		dial:      d.DialContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsNetworkAvailable returns true as soon as one address accepts a TCP connection.
func (c *Checker) IsNetworkAvailable(ctx context.Context) bool {
	for _, addr := range c.addresses {
		if ctx.Err() != nil {
			return false
		}
		if c.probe(ctx, addr) {
			return true
		}
	}
	return false
}

func (c *Checker) probe(ctx context.Context, addr string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dial(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
