// Package transport owns the single short-lived TCP connection a handler
// invocation makes to the running application.
//
//	Connect: resolve host (IPv4 only) ──→ dial candidate 1 ──✗──→ dial candidate 2 ──✓──→ conn
//	Send:    one Write of the whole frame
//	Shutdown: CloseWrite + CloseRead (both directions), caller closes
//
// Every resolved candidate is tried in order until one accepts.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"

	"vaelstrom-url-handler/message"
	"vaelstrom-url-handler/protocol"
)

var (
	ErrResolve  = errors.New("resolve failed")
	ErrSocket   = errors.New("socket create failed")
	ErrConnect  = errors.New("connect failed")
	ErrSend     = errors.New("send failed")
	ErrShutdown = errors.New("shutdown failed")
)

// Resolver looks up candidate addresses for a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

// Dialer opens a connection to one address. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Transport connects to the application and delivers one frame.
type Transport struct {
	resolver Resolver
	dialer   Dialer
	logger   *log.Logger
}

// NewTransport creates a Transport. A nil resolver uses net.DefaultResolver,
// a nil dialer uses a zero net.Dialer (no explicit timeout, the OS default
// applies), and a nil logger discards diagnostics.
func NewTransport(resolver Resolver, dialer Dialer, logger *log.Logger) *Transport {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Transport{
		resolver: resolver,
		dialer:   dialer,
		logger:   logger,
	}
}

// Resolve returns the IPv4 TCP candidates for host:port in resolver order.
func (t *Transport) Resolve(ctx context.Context, host, port string) ([]*net.TCPAddr, error) {
	portNum, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid port %q: %w", ErrResolve, port, err)
	}

	ips, err := t.resolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResolve, host, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("%w: %s: no IPv4 address", ErrResolve, host)
	}

	addrs := make([]*net.TCPAddr, 0, len(ips))
	for _, ip := range ips {
		addrs = append(addrs, &net.TCPAddr{IP: ip, Port: int(portNum)})
	}
	return addrs, nil
}

// Connect resolves host and dials each candidate in order until one succeeds.
// A failure to create the socket itself stops immediately with ErrSocket;
// otherwise the error lists every attempt under ErrConnect.
func (t *Transport) Connect(ctx context.Context, host, port string) (*net.TCPConn, error) {
	addrs, err := t.Resolve(ctx, host, port)
	if err != nil {
		return nil, err
	}

	var attempts []error
	for _, addr := range addrs {
		conn, err := t.dialer.DialContext(ctx, "tcp4", addr.String())
		if err == nil {
			tcp, ok := conn.(*net.TCPConn)
			if !ok {
				conn.Close()
				return nil, fmt.Errorf("%w: %s: not a TCP connection", ErrConnect, addr)
			}
			t.logger.Printf("connected to %s", addr)
			return tcp, nil
		}
		if isSocketCreate(err) {
			return nil, fmt.Errorf("%w: %w", ErrSocket, err)
		}
		t.logger.Printf("connect %s: %v", addr, err)
		attempts = append(attempts, err)
	}
	return nil, fmt.Errorf("%w: %w", ErrConnect, errors.Join(attempts...))
}

// Send writes msg as a single frame. A partial write is a failure.
func (t *Transport) Send(conn net.Conn, msg *message.Outbound) error {
	if err := protocol.Encode(conn, msg.Payload); err != nil {
		return fmt.Errorf("%w: %w", ErrSend, err)
	}
	t.logger.Printf("bytes sent: %d", protocol.LengthFieldSize+msg.Len())
	return nil
}

// Shutdown performs an orderly shutdown of both directions. The caller still
// owns conn and must Close it.
func (t *Transport) Shutdown(conn *net.TCPConn) error {
	if err := errors.Join(conn.CloseWrite(), conn.CloseRead()); err != nil {
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}
	return nil
}

// isSocketCreate reports whether a dial error came from allocating the socket
// rather than from connecting it.
func isSocketCreate(err error) bool {
	var se *os.SyscallError
	if !errors.As(err, &se) {
		return false
	}
	return se.Syscall == "socket" || se.Syscall == "wsasocket"
}
