// Yannick Kuete 2026

package protocol

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeAppendsTerminator(t *testing.T) {
	msg := NewString("hello")

	data, err := msg.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte("hello\x00"), data)
	require.Equal(t, 6, msg.WireSize())
}

func TestEncodeEmptyPayload(t *testing.T) {
	msg := New(nil)

	data, err := msg.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0}, data)
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	msg := NewString(strings.Repeat("a", MaxPayload))
	_, err := msg.Encode()
	require.NoError(t, err)

	msg = NewString(strings.Repeat("a", MaxPayload+1))
	_, err = msg.Encode()
	require.ErrorIs(t, err, ErrMessageTooLong)
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	sent := NewString("hello")
	n, err := WriteMessage(&buf, sent)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, 6, sent.Wire)

	got, err := ReadMessage(&buf)
	require.NoError(t, err)
	require.Equal(t, "hello", got.String())
	require.Equal(t, 6, got.Wire)
}

func TestRoundTripLongestPayload(t *testing.T) {
	var buf bytes.Buffer

	payload := strings.Repeat("x", MaxPayload)
	_, err := WriteMessage(&buf, NewString(payload))
	require.NoError(t, err)

	got, err := ReadMessage(&buf)
	require.NoError(t, err)
	require.Equal(t, payload, got.String())
	require.Equal(t, MaxPayload+1, got.Wire)
}

func TestReadMessageEOF(t *testing.T) {
	_, err := ReadMessage(bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)
}

func TestReadMessageOverflow(t *testing.T) {
	data := bytes.Repeat([]byte("a"), ReadLimit)

	_, err := ReadMessage(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrBufferOverflow)
}

func TestReadMessageWithoutTerminator(t *testing.T) {
	got, err := ReadMessage(bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	require.Equal(t, "abc", got.String())
	require.Equal(t, 3, got.Wire)
}
