// Package resolver sends DNS queries built by internal/dns over a
// datagram transport and decodes the responses.
package resolver

import (
	"net"
	"time"
)

// Default transport configuration.
const (
	DefaultTimeout  = 3 * time.Second
	DefaultRecvSize = 2048
)

// Transport is the datagram channel a Resolver speaks over. One Send is
// answered by one Receive; there is no framing beyond the datagram
// boundary. Implementations report failures as plain errors, which the
// resolver propagates untouched.
type Transport interface {
	// Send writes one query datagram.
	Send(msg []byte) error

	// Receive reads one response datagram.
	Receive() ([]byte, error)

	// SetTimeout bounds each subsequent Send/Receive pair.
	SetTimeout(d time.Duration)

	// Close releases the underlying connection.
	Close() error
}

// UDPTransport is the standard Transport over a connected UDP socket.
type UDPTransport struct {
	conn     *net.UDPConn
	timeout  time.Duration
	recvSize int
}

// DialUDP connects to a DNS server given as HOST:PORT.
func DialUDP(server string) (*UDPTransport, error) {
	addr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	return &UDPTransport{
		conn:     conn,
		timeout:  DefaultTimeout,
		recvSize: DefaultRecvSize,
	}, nil
}

// SetTimeout bounds each subsequent Send/Receive pair.
func (t *UDPTransport) SetTimeout(d time.Duration) {
	t.timeout = d
}

// SetRecvSize sets the receive buffer size for subsequent reads.
func (t *UDPTransport) SetRecvSize(n int) {
	t.recvSize = n
}

// Send writes one query datagram, arming the deadline for the
// send/receive pair.
func (t *UDPTransport) Send(msg []byte) error {
	_ = t.conn.SetDeadline(time.Now().Add(t.timeout))
	_, err := t.conn.Write(msg)
	return err
}

// Receive reads one response datagram.
func (t *UDPTransport) Receive() ([]byte, error) {
	buf := make([]byte, t.recvSize)
	n, err := t.conn.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n:n], nil
}

// Close releases the socket.
func (t *UDPTransport) Close() error {
	return t.conn.Close()
}
