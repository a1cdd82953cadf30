// Yannick Kuete 2026

// Package netutil validates addresses before any socket call is made.
package netutil

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var ErrPortRange = errors.New("port must be between 1 and 65535")

func ValidatePort(port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%w: got %d", ErrPortRange, port)
	}
	return nil
}

// ParsePort parses a raw command-line token into a valid port number.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid port number %q: %w", s, err)
	}
	if err := ValidatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

// ServerAddr is the wildcard listen address for the given port.
func ServerAddr(port int) string {
	return fmt.Sprintf(":%d", port)
}

func ClientAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
