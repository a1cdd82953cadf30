// Yannick Kuete 2026

package protocol

import "errors"

var (
	// ErrMessageTooLong is returned when a payload does not fit into the
	// exchange buffer together with its terminator.
	ErrMessageTooLong = errors.New("message exceeds maximum payload size")

	// ErrBufferOverflow is returned when a receive fills the whole buffer
	// without finding a terminator.
	ErrBufferOverflow = errors.New("message overflows receive buffer")
)
