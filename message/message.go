// Package message defines the one message a handler invocation sends.
//
// Outbound carries the first command-line argument in its wire encoding. It is
// built once, framed once by the protocol layer, and discarded after sending.
package message

import (
	"errors"
	"fmt"

	"vaelstrom-url-handler/codec"
	"vaelstrom-url-handler/protocol"
)

var (
	// ErrTooLong reports a payload that does not fit in one frame.
	ErrTooLong = errors.New("argument too long")
	// ErrMisaligned reports a payload that is not a whole number of wide units.
	ErrMisaligned = errors.New("argument is not whole wide-character units")
)

// Outbound is the message sent to the running application.
type Outbound struct {
	Payload []byte // Argument text in wide-character encoding, copied byte-for-byte
}

// New wraps an already encoded argument, enforcing the frame size limit.
func New(payload []byte) (*Outbound, error) {
	if len(payload)%protocol.UnitSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMisaligned, len(payload))
	}
	if err := protocol.CheckSize(len(payload)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooLong, err)
	}
	return &Outbound{Payload: payload}, nil
}

// FromString encodes s with c and wraps the result.
func FromString(s string, c codec.Codec) (*Outbound, error) {
	payload, err := c.Encode(s)
	if err != nil {
		return nil, err
	}
	return New(payload)
}

// Len returns the payload size in bytes, not characters.
func (m *Outbound) Len() int {
	return len(m.Payload)
}

// Frame returns the bytes written to the connection.
func (m *Outbound) Frame() ([]byte, error) {
	return protocol.Frame(m.Payload)
}

// Text decodes the payload for diagnostics. Decoding problems are not
// reported; the raw bytes are what gets sent either way.
func (m *Outbound) Text(c codec.Codec) string {
	s, err := c.Decode(m.Payload)
	if err != nil {
		return fmt.Sprintf("%x", m.Payload)
	}
	return s
}
