// Package protocol implements the length-prefixed frame the URL handler sends
// to the running Vaelstrom application.
//
// A connection carries exactly one frame: a 4-byte big-endian length followed
// by that many payload bytes. The receiver reads the prefix first, then reads
// exactly that many bytes.
//
// Frame format:
//
//	0         4
//	┌─────────┬──────────────────┐
//	│ length  │   payload ...    │
//	│ uint32  │  length bytes    │
//	└─────────┴──────────────────┘
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	LengthFieldSize = 4    // Size of the big-endian length prefix
	BufferCapacity  = 1024 // Frame capacity in wide-character units, prefix included
	UnitSize        = 2    // Bytes per wide-character unit (UTF-16)

	// MaxPayloadSize is the largest payload the receiver accepts: the frame
	// must fit in BufferCapacity units together with its length prefix.
	MaxPayloadSize = BufferCapacity*UnitSize - LengthFieldSize
)

// ErrPayloadTooLarge is returned when a payload does not fit in one frame.
var ErrPayloadTooLarge = errors.New("payload too large")

// CheckSize reports whether n payload bytes fit in a single frame.
func CheckSize(n int) error {
	if n > MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, n, MaxPayloadSize)
	}
	return nil
}

// Frame builds the complete frame for payload. The returned slice is exactly
// LengthFieldSize+len(payload) bytes long.
func Frame(payload []byte) ([]byte, error) {
	if err := CheckSize(len(payload)); err != nil {
		return nil, err
	}
	buf := make([]byte, LengthFieldSize, LengthFieldSize+len(payload))
	binary.BigEndian.PutUint32(buf, uint32(len(payload)))
	return append(buf, payload...), nil
}

// Encode writes one frame to w.
// Header and payload go out in a single Write so a TCP connection sees one send.
func Encode(w io.Writer, payload []byte) error {
	frame, err := Frame(payload)
	if err != nil {
		return err
	}
	n, err := w.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	return nil
}

// Decode reads one frame from r and returns its payload.
// A declared length above MaxPayloadSize is rejected before the body is read.
func Decode(r io.Reader) ([]byte, error) {
	header := make([]byte, LengthFieldSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(header)
	if length > MaxPayloadSize {
		return nil, fmt.Errorf("%w: declared %d bytes, limit %d", ErrPayloadTooLarge, length, MaxPayloadSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
