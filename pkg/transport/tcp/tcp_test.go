// Yannick Kuete 2026

package tcp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ymkuete/streamsock/pkg/protocol"
	"github.com/ymkuete/streamsock/pkg/transport"
)

const testResponse = "Server acknowledged your message!"

func startServer(t *testing.T, options ...transport.ServerOption) *Server {
	t.Helper()

	srv := NewServer(options...)
	require.NoError(t, srv.Listen(context.Background(), "127.0.0.1:0"))
	t.Cleanup(func() { _ = srv.Close() })

	return srv
}

func TestExchangeRoundTrip(t *testing.T) {
	srv := startServer(t)

	var received *protocol.Message
	done := make(chan error, 1)
	go func() {
		done <- srv.ServeOne(context.Background(), func(ctx context.Context, msg *protocol.Message) (*protocol.Message, error) {
			received = msg
			return protocol.NewString(testResponse), nil
		})
	}()

	cli := NewClient(srv.Addr().String())
	require.NoError(t, cli.Dial(context.Background(), ""))
	defer func() { _ = cli.Close() }()

	sent := protocol.NewString("hello")
	reply, err := cli.Exchange(context.Background(), sent)
	require.NoError(t, err)
	require.Equal(t, testResponse, reply.String())
	require.Equal(t, len(testResponse)+1, reply.Wire)
	require.Equal(t, 6, sent.Wire)

	require.NoError(t, <-done)
	require.Equal(t, "hello", received.String())
	require.Equal(t, 6, received.Wire)
}

func TestServeOnePeerClosesWithoutData(t *testing.T) {
	srv := startServer(t)

	done := make(chan error, 1)
	go func() {
		done <- srv.ServeOne(context.Background(), func(ctx context.Context, msg *protocol.Message) (*protocol.Message, error) {
			t.Error("handler must not run when no data arrived")
			return nil, nil
		})
	}()

	conn, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	require.ErrorIs(t, <-done, transport.ErrNoData)
}

func TestServeOneNilReplySkipsResponse(t *testing.T) {
	srv := startServer(t)

	done := make(chan error, 1)
	go func() {
		done <- srv.ServeOne(context.Background(), func(ctx context.Context, msg *protocol.Message) (*protocol.Message, error) {
			return nil, nil
		})
	}()

	cli := NewClient(srv.Addr().String())
	require.NoError(t, cli.Dial(context.Background(), ""))
	defer func() { _ = cli.Close() }()

	_, err := cli.Exchange(context.Background(), protocol.NewString("hello"))
	require.ErrorIs(t, err, transport.ErrNoResponse)
	require.NoError(t, <-done)
}

func TestExchangeServerClosesWithoutResponding(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, protocol.ReadLimit)
		_, _ = conn.Read(buf)
		_ = conn.Close()
	}()

	cli := NewClient(ln.Addr().String())
	require.NoError(t, cli.Dial(context.Background(), ""))
	defer func() { _ = cli.Close() }()

	_, err = cli.Exchange(context.Background(), protocol.NewString("hello"))
	require.ErrorIs(t, err, transport.ErrNoResponse)
}

func TestExchangeBeforeDial(t *testing.T) {
	cli := NewClient("127.0.0.1:1")

	_, err := cli.Exchange(context.Background(), protocol.NewString("hello"))
	require.Error(t, err)
	require.False(t, cli.IsConnected())
}

func TestDialRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cli := NewClient(addr, transport.WithDialTimeout(2*time.Second))
	require.Error(t, cli.Dial(context.Background(), ""))
}

func TestDialTwice(t *testing.T) {
	srv := startServer(t)

	go func() {
		conn, err := srv.AcceptOne(context.Background())
		if err == nil {
			_ = conn.Close()
		}
	}()

	cli := NewClient(srv.Addr().String())
	require.NoError(t, cli.Dial(context.Background(), ""))
	defer func() { _ = cli.Close() }()

	require.Error(t, cli.Dial(context.Background(), ""))
}

func TestAcceptOneCanceled(t *testing.T) {
	srv := startServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := srv.AcceptOne(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestListenTwice(t *testing.T) {
	srv := startServer(t)
	require.Error(t, srv.Listen(context.Background(), "127.0.0.1:0"))
}
