// Package codec converts argument text to and from the wide-character byte
// form carried in a frame payload.
package codec

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

type Codec interface {
	Encode(s string) ([]byte, error)
	Decode(data []byte) (string, error)
	Name() string
}

// UTF16LE is the Windows native wide-character form. The receiving
// application decodes payloads as "utf-16-le", so this is the wire default.
var UTF16LE Codec = &WideCodec{
	enc:  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	name: "utf-16-le",
}

// WideCodec encodes text as a sequence of 16-bit units without a byte order mark.
type WideCodec struct {
	enc  encoding.Encoding
	name string
}

func (c *WideCodec) Encode(s string) ([]byte, error) {
	b, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%s encode: %w", c.name, err)
	}
	return b, nil
}

func (c *WideCodec) Decode(data []byte) (string, error) {
	b, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%s decode: %w", c.name, err)
	}
	return string(b), nil
}

func (c *WideCodec) Name() string {
	return c.name
}

// Units returns the number of 16-bit units in an encoded payload.
func Units(data []byte) int {
	return len(data) / 2
}
