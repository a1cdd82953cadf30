// Yannick Kuete 2026

package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/ymkuete/streamsock/pkg/metrics"
	"github.com/ymkuete/streamsock/pkg/protocol"
	"github.com/ymkuete/streamsock/pkg/transport"
)

// Client performs one exchange over a single TCP connection.
type Client struct {
	address   string
	opts      *transport.ClientOptions
	conn      net.Conn
	connected bool
	mu        sync.RWMutex // protects connected and conn
	sendMu    sync.Mutex   // protects the exchange
}

var _ transport.ClientTransport = (*Client)(nil)

func NewClient(address string, options ...transport.ClientOption) *Client {
	opts := transport.DefaultClientOptions()

	for _, o := range options {
		o(opts)
	}

	return &Client{
		address: address,
		opts:    opts,
	}
}

// Dial connects to addr, or to the address given at construction when addr
// is empty. A failed attempt is final: there is no retry.
func (c *Client) Dial(ctx context.Context, address string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return fmt.Errorf("already connected to: %s", c.conn.RemoteAddr().String())
	}

	addr := address
	if addr == "" {
		addr = c.address
	}

	dialer := &net.Dialer{
		Timeout: c.opts.DialTimeout,
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial tcp %s failed: %w", addr, err)
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if c.opts.KeepAlive {
			if err := tcpConn.SetKeepAlive(true); err != nil {
				_ = conn.Close()
				return fmt.Errorf("set keep-alive failed: %w", err)
			}

			if err := tcpConn.SetKeepAlivePeriod(c.opts.KeepAlivePeriod); err != nil {
				_ = conn.Close()
				return fmt.Errorf("set keep-alive period failed: %w", err)
			}
		}

		if err := tcpConn.SetNoDelay(true); err != nil {
			_ = conn.Close()
			return fmt.Errorf("set no delay failed: %w", err)
		}
	}

	c.conn = conn
	c.connected = true
	c.address = addr

	return nil
}

// Exchange sends msg and blocks for the single reply. A peer that closes
// the connection before replying surfaces as transport.ErrNoResponse; the
// caller decides whether that is fatal.
func (c *Client) Exchange(ctx context.Context, msg *protocol.Message) (*protocol.Message, error) {
	c.mu.RLock()
	if !c.connected || c.conn == nil {
		c.mu.RUnlock()
		return nil, fmt.Errorf("not connected, call Dial() first")
	}
	conn := c.conn
	c.mu.RUnlock()

	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if err := c.setWriteDeadline(ctx, conn); err != nil {
		return nil, err
	}

	n, err := protocol.WriteMessage(conn, msg)
	if err != nil {
		return nil, fmt.Errorf("send message failed: %w", err)
	}

	metrics.AddSent(n)

	if err := c.setReadDeadline(ctx, conn); err != nil {
		return nil, err
	}

	reply, err := protocol.ReadMessage(conn)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, transport.ErrNoResponse
		}
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	metrics.AddReceived(reply.Wire)

	// Clear deadlines
	if err := conn.SetWriteDeadline(time.Time{}); err != nil {
		return nil, fmt.Errorf("clear write deadline failed: %w", err)
	}
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return nil, fmt.Errorf("clear read deadline failed: %w", err)
	}

	return reply, nil
}

func (c *Client) setWriteDeadline(ctx context.Context, conn net.Conn) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		if c.opts.WriteTimeout <= 0 {
			return nil
		}
		deadline = time.Now().Add(c.opts.WriteTimeout)
	}

	if err := conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline failed: %w", err)
	}

	return nil
}

func (c *Client) setReadDeadline(ctx context.Context, conn net.Conn) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		if c.opts.ReadTimeout <= 0 {
			return nil
		}
		deadline = time.Now().Add(c.opts.ReadTimeout)
	}

	if err := conn.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("set read deadline failed: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close connection failed: %w", err)
		}
		c.conn = nil
	}

	c.connected = false

	return nil
}

func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Client) LocalAddr() net.Addr {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn != nil {
		return c.conn.LocalAddr()
	}

	return nil
}

func (c *Client) RemoteAddr() net.Addr {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn != nil {
		return c.conn.RemoteAddr()
	}

	return nil
}
