// Yannick Kuete 2026

package transport

import "time"

// ------------------- Client Options -------------------

// ClientOptions tune the client socket. All timeouts default to zero,
// meaning every call blocks until the OS completes or fails it.
type ClientOptions struct {
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	KeepAlive       bool
	KeepAlivePeriod time.Duration
}

func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{}
}

type ClientOption func(*ClientOptions)

func WithDialTimeout(timeout time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.DialTimeout = timeout
	}
}

func WithReadTimeout(timeout time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.ReadTimeout = timeout
	}
}

func WithWriteTimeout(timeout time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.WriteTimeout = timeout
	}
}

func WithKeepAlive(keepAlive bool, period time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.KeepAlive = keepAlive
		opts.KeepAlivePeriod = period
	}
}

// ------------------- Server Options -------------------

// ServerOptions tune the server side of the exchange. Zero timeouts keep
// the receive and reply fully blocking.
type ServerOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultServerOptions() *ServerOptions {
	return &ServerOptions{}
}

type ServerOption func(*ServerOptions)

func WithServerTimeout(read, write time.Duration) ServerOption {
	return func(opts *ServerOptions) {
		opts.ReadTimeout = read
		opts.WriteTimeout = write
	}
}
