// Yannick Kuete 2026

// Package protocol implements the wire format of the exchange: one
// null-terminated text message in each direction.
//
// Framing:
//   - a message is its payload bytes followed by a single NUL
//   - the receive buffer holds BufferSize bytes, terminator included
//   - one receive consumes at most ReadLimit bytes
//
// Payloads longer than MaxPayload are rejected with an explicit error
// instead of being truncated on the wire.
package protocol

import (
	"fmt"
	"io"
)

const (
	// BufferSize is the capacity of the exchange buffer, terminator included.
	BufferSize = 100

	// ReadLimit is the most bytes a single receive consumes.
	ReadLimit = BufferSize - 1

	// MaxPayload is the longest payload that survives a round trip intact.
	MaxPayload = ReadLimit - 1
)

// Message is one null-terminated exchange payload.
type Message struct {
	Payload []byte

	// Wire is the byte count the message occupied on the wire the last
	// time it was read or written, terminator included. Zero until then.
	Wire int
}

func New(payload []byte) *Message {
	return &Message{Payload: payload}
}

func NewString(s string) *Message {
	return &Message{Payload: []byte(s)}
}

// WireSize is the number of bytes the message needs on the wire,
// terminator included.
func (m *Message) WireSize() int {
	return len(m.Payload) + 1
}

func (m *Message) String() string {
	return string(m.Payload)
}

// Encode appends the terminator to the payload.
func (m *Message) Encode() ([]byte, error) {
	if len(m.Payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrMessageTooLong, len(m.Payload), MaxPayload)
	}

	buf := make([]byte, len(m.Payload)+1)
	copy(buf, m.Payload)

	return buf, nil
}

// ReadMessage performs a single read of up to ReadLimit bytes and returns
// the received message with its wire byte count recorded in Wire.
//
// A zero-byte read surfaces the reader's error unchanged, so a peer that
// closed without sending shows up as io.EOF. A read that fills the whole
// buffer without a terminator fails with ErrBufferOverflow. A trailing
// terminator is stripped from the payload; a short read without one is
// accepted as-is.
func ReadMessage(r io.Reader) (*Message, error) {
	buf := make([]byte, ReadLimit)

	n, err := r.Read(buf)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, err
	}

	data := buf[:n]

	if data[n-1] == 0 {
		return &Message{Payload: data[: n-1 : n-1], Wire: n}, nil
	}

	if n == ReadLimit {
		return nil, fmt.Errorf("%w: %d bytes received with no terminator", ErrBufferOverflow, n)
	}

	return &Message{Payload: data, Wire: n}, nil
}

// WriteMessage encodes m and writes it out fully, recording the wire byte
// count in m.Wire and returning it.
func WriteMessage(w io.Writer, m *Message) (int, error) {
	data, err := m.Encode()
	if err != nil {
		return 0, err
	}

	if err := writeFull(w, data); err != nil {
		return 0, fmt.Errorf("write message failed: %w", err)
	}

	m.Wire = len(data)

	return len(data), nil
}

func writeFull(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
