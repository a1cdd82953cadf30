// Yannick Kuete 2026

// Command client connects to a server, sends one operator-entered message
// and prints the single response before exiting.
//
// Usage: client <ipaddr> <portnumber>
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/ymkuete/streamsock/pkg/config"
	"github.com/ymkuete/streamsock/pkg/netutil"
	"github.com/ymkuete/streamsock/pkg/protocol"
	"github.com/ymkuete/streamsock/pkg/transport"
	"github.com/ymkuete/streamsock/pkg/transport/tcp"
)

type args struct {
	Host   string `arg:"positional,required" help:"server IP address"`
	Port   string `arg:"positional,required" help:"server port (1-65535)"`
	Config string `arg:"--config" help:"optional YAML tunables file"`
}

func (args) Description() string {
	return "single-shot TCP client: sends one message and waits for one response"
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "client"}, &a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := p.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(os.Stdout)
			return 0
		}
		fmt.Fprintln(os.Stderr, "usage is: client <ipaddr> <portnumber>")
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

	cli := tcp.NewClient(netutil.ClientAddr(a.Host, port),
		transport.WithDialTimeout(cfg.Client.DialTimeout.Duration),
		transport.WithReadTimeout(cfg.Client.ReadTimeout.Duration),
		transport.WithWriteTimeout(cfg.Client.WriteTimeout.Duration),
		transport.WithKeepAlive(cfg.Client.KeepAlive, cfg.Client.KeepAlivePeriod.Duration),
	)

	if err := cli.Dial(ctx, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: connect failed: %v\n", err)
		return 1
	}
	defer func() {
		_ = cli.Close()
		fmt.Println("Connection closed.")
	}()

	fmt.Printf("Connected to server at %s:%d\n", a.Host, port)

	text, err := readLine(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read input failed: %v\n", err)
		return 1
	}

	fmt.Printf("You are sending '%s'\n", text)
	fmt.Printf("The length of the string is %d bytes\n", len(text))

	msg := protocol.NewString(text)

	reply, err := cli.Exchange(ctx, msg)
	switch {
	case errors.Is(err, transport.ErrNoResponse):
		fmt.Printf("Sent %d bytes to the server\n", msg.Wire)
		fmt.Println("Server closed the connection without responding.")
		return 0
	case errors.Is(err, protocol.ErrMessageTooLong):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: exchange failed: %v\n", err)
		return 1
	}

	fmt.Printf("Sent %d bytes to the server\n", msg.Wire)
	fmt.Printf("Server response: %s\n", reply)

	return 0
}

// readLine prompts the operator and reads one line, newline stripped. An
// EOF after some input still yields the partial line.
func readLine(r io.Reader) (string, error) {
	fmt.Print("Enter a message to send: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
