package resolver

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/jroosing/dnsdig/internal/dns"
)

// Client spreads lookups over a set of servers. Each call starts from
// the next server in rotation and fails over on transport-level errors;
// a server that actually answered, even with a nonzero response code,
// is authoritative for the call and ends it.
type Client struct {
	servers []string
	timeout time.Duration
	next    atomic.Uint64

	// dial is swapped out by tests to avoid real sockets.
	dial func(server string) (Transport, error)
}

// NewClient creates a Client over the given HOST:PORT servers. A
// non-positive timeout falls back to DefaultTimeout.
func NewClient(servers []string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{servers: servers, timeout: timeout}
	c.dial = func(server string) (Transport, error) {
		return DialUDP(server)
	}
	return c
}

// Lookup tries each server once, in rotation order, until one of them
// produces a decoded response.
func (c *Client) Lookup(ctx context.Context, name string, qtype uint16) ([]dns.Record, error) {
	if len(c.servers) == 0 {
		return nil, errors.New("resolver: no servers configured")
	}

	start := int(c.next.Add(1)-1) % len(c.servers)
	var lastErr error
	for i := range c.servers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		server := c.servers[(start+i)%len(c.servers)]

		records, err := c.lookupOne(ctx, server, name, qtype)
		if err == nil {
			return records, nil
		}
		var srvErr *dns.ServerError
		if errors.As(err, &srvErr) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) lookupOne(ctx context.Context, server, name string, qtype uint16) ([]dns.Record, error) {
	t, err := c.dial(server)
	if err != nil {
		return nil, err
	}
	r := New(t, c.timeout)
	defer r.Close()
	return r.Lookup(ctx, name, qtype)
}
