// Yannick Kuete 2026

// Command server binds one port, accepts exactly one TCP connection,
// receives one null-terminated message and replies with a fixed
// acknowledgement before exiting.
//
// Usage: server <portnumber>
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/ymkuete/streamsock/pkg/config"
	"github.com/ymkuete/streamsock/pkg/interceptor"
	"github.com/ymkuete/streamsock/pkg/netutil"
	"github.com/ymkuete/streamsock/pkg/protocol"
	"github.com/ymkuete/streamsock/pkg/transport"
	"github.com/ymkuete/streamsock/pkg/transport/tcp"
)

const responseText = "Server acknowledged your message!"

type args struct {
	Port   string `arg:"positional,required" help:"port to listen on (1-65535)"`
	Config string `arg:"--config" help:"optional YAML tunables file"`
}

func (args) Description() string {
	return "single-shot TCP server: accepts one connection, receives one message, acknowledges it"
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "server"}, &a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := p.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(os.Stdout)
			return 0
		}
		fmt.Fprintln(os.Stderr, "usage is: server <portnumber>")
		return 1
	}

	port, err := netutil.ParsePort(a.Port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid port number '%s'. Must be between 1 and 65535.\n", a.Port)
		return 1
	}

	cfg := config.Default()
	if a.Config != "" {
		cfg, err = config.Load(a.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load config failed: %v\n", err)
			return 1
		}
	}

	ctx := context.Background()

	srv := tcp.NewServer(
		transport.WithServerTimeout(cfg.Server.ReadTimeout.Duration, cfg.Server.WriteTimeout.Duration),
	)

	if err := srv.Listen(ctx, netutil.ServerAddr(port)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: listen failed: %v\n", err)
		return 1
	}
	defer func() { _ = srv.Close() }()

	fmt.Printf("Server is listening on port %d...\n", port)
	fmt.Println("Waiting for a client to connect...")

	conn, err := srv.AcceptOne(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: accept failed: %v\n", err)
		return 1
	}

	fmt.Printf("Client connected successfully from %s\n", conn.RemoteAddr())

	handler := interceptor.NewChain(
		interceptor.Recovery(),
		interceptor.Logging(nil),
		interceptor.Metrics(),
	).Wrap(acknowledge)

	err = srv.HandleConn(ctx, conn, transport.Handler(handler))
	switch {
	case errors.Is(err, transport.ErrNoData):
		fmt.Println("Client disconnected before sending data.")
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: exchange failed: %v\n", err)
		fmt.Println("Server shut down. All sockets closed.")
		return 1
	default:
		fmt.Printf("Response sent: %s\n", responseText)
	}

	fmt.Println("Server shut down. All sockets closed.")
	return 0
}

func acknowledge(ctx context.Context, msg *protocol.Message) (*protocol.Message, error) {
	fmt.Printf("Received %d bytes\n", msg.Wire)
	fmt.Printf("Message: %s\n", msg)

	return protocol.NewString(responseText), nil
}
