package resolver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/net/idna"

	"github.com/jroosing/dnsdig/internal/dns"
)

// Resolver issues single queries over one transport. A handle runs one
// query at a time: the query is sent and its response read before the
// next Lookup may start. Handles are not safe for concurrent use; run
// independent Resolvers, each with its own transport, to query in
// parallel.
type Resolver struct {
	transport Transport
	timeout   time.Duration
}

// New creates a Resolver over the given transport. A non-positive
// timeout falls back to DefaultTimeout.
func New(t Transport, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{transport: t, timeout: timeout}
}

// Close releases the underlying transport.
func (r *Resolver) Close() error {
	return r.transport.Close()
}

// Lookup resolves name with the given query type and returns the answer
// records. The name is IDNA-normalized before encoding. The configured
// timeout bounds the exchange; a sooner context deadline wins.
func (r *Resolver) Lookup(ctx context.Context, name string, qtype uint16) ([]dns.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	punyName, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, fmt.Errorf("idna: %w", err)
	}

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	r.transport.SetTimeout(timeout)

	query, id := dns.BuildQuery(punyName, qtype)
	if err := r.transport.Send(query); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}
	resp, err := r.transport.Receive()
	if err != nil {
		return nil, fmt.Errorf("receive: %w", err)
	}
	return dns.ParseResponse(resp, id)
}
