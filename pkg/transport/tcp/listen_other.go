// Yannick Kuete 2026

//go:build !unix

package tcp

import "syscall"

// The net package already applies the platform's default address-reuse
// behavior where SO_REUSEADDR is not available.
func reuseAddr(network, address string, c syscall.RawConn) error {
	return nil
}
