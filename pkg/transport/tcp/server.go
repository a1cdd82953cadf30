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

// Server accepts exactly one connection and serves one exchange on it.
type Server struct {
	address  string
	opts     *transport.ServerOptions
	listener net.Listener
	mu       sync.RWMutex
	closed   bool
}

var _ transport.ServerTransport = (*Server)(nil)

func NewServer(options ...transport.ServerOption) *Server {
	opts := transport.DefaultServerOptions()

	for _, o := range options {
		o(opts)
	}

	return &Server{
		opts: opts,
	}
}

// Listen binds addr with SO_REUSEADDR enabled so an immediate restart does
// not trip over the previous run's socket.
func (s *Server) Listen(ctx context.Context, addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("already listening on %s", s.address)
	}

	lc := net.ListenConfig{Control: reuseAddr}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.listener = listener
	s.address = listener.Addr().String()

	return nil
}

// AcceptOne blocks until one inbound connection arrives. The listener stays
// open so the caller controls when it is released.
func (s *Server) AcceptOne(ctx context.Context) (net.Conn, error) {
	s.mu.RLock()
	listener := s.listener
	s.mu.RUnlock()

	if listener == nil {
		return nil, fmt.Errorf("not listening, call Listen() first")
	}

	// Unblock Accept when the context is canceled.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = listener.Close()
		case <-watchDone:
		}
	}()

	conn, err := listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("accept connection failed: %w", err)
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetNoDelay(true); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set no delay failed: %w", err)
		}
	}

	return conn, nil
}

// HandleConn receives one message on conn, invokes the handler and writes
// its reply. The connection is always closed before returning, whichever
// step failed. A peer that closed without sending anything surfaces as
// transport.ErrNoData and skips the handler and the reply.
func (s *Server) HandleConn(ctx context.Context, conn net.Conn, handler transport.Handler) error {
	defer func() {
		_ = conn.Close()
	}()

	if s.opts.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout)); err != nil {
			return fmt.Errorf("set read deadline failed: %w", err)
		}
	}

	msg, err := protocol.ReadMessage(conn)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return transport.ErrNoData
		}
		return fmt.Errorf("receive message failed: %w", err)
	}

	metrics.AddReceived(msg.Wire)

	reply, err := handler(ctx, msg)
	if err != nil {
		return fmt.Errorf("handle message failed: %w", err)
	}

	if reply == nil {
		return nil
	}

	if s.opts.WriteTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout)); err != nil {
			return fmt.Errorf("set write deadline failed: %w", err)
		}
	}

	n, err := protocol.WriteMessage(conn, reply)
	if err != nil {
		return fmt.Errorf("send response failed: %w", err)
	}

	metrics.AddSent(n)

	return nil
}

// ServeOne accepts a single connection and serves one exchange on it.
func (s *Server) ServeOne(ctx context.Context, handler transport.Handler) error {
	conn, err := s.AcceptOne(ctx)
	if err != nil {
		return err
	}

	return s.HandleConn(ctx, conn, handler)
}

func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			return fmt.Errorf("close listener failed: %w", err)
		}
	}

	return nil
}

func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener != nil {
		return s.listener.Addr()
	}
	return nil
}
