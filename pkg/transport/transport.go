// Yannick Kuete 2026

package transport

import (
	"context"
	"errors"
	"net"

	"github.com/ymkuete/streamsock/pkg/protocol"
)

var (
	// ErrNoData means the peer connected and closed without sending
	// anything. Benign for the server: it skips the reply.
	ErrNoData = errors.New("peer disconnected before sending data")

	// ErrNoResponse means the peer closed the connection instead of
	// replying. Benign for the client: the message was still delivered.
	ErrNoResponse = errors.New("peer closed connection without responding")
)

// ClientTransport is the client side of a single exchange: dial once, send
// one message, wait for one reply, close.
type ClientTransport interface {
	Dial(ctx context.Context, addr string) error
	Exchange(ctx context.Context, msg *protocol.Message) (*protocol.Message, error)
	Close() error
	IsConnected() bool
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
}

// ServerTransport is the server side: listen, accept exactly one
// connection, serve one exchange, close.
type ServerTransport interface {
	Listen(ctx context.Context, addr string) error
	ServeOne(ctx context.Context, handler Handler) error
	Close() error
	Addr() net.Addr
}

// Handler produces the reply for one received message. A nil reply skips
// the response write.
type Handler func(ctx context.Context, msg *protocol.Message) (*protocol.Message, error)
