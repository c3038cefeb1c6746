// Package cmdline supplies the process arguments in wire encoding.
//
// On Windows the arguments are taken straight from the wide command line, so
// the payload is exactly what the OS passed. Elsewhere they are encoded from
// os.Args.
package cmdline

import (
	"encoding/binary"

	"vaelstrom-url-handler/codec"
)

// Encode converts args with c, keeping their order.
func Encode(c codec.Codec, args ...string) ([][]byte, error) {
	out := make([][]byte, 0, len(args))
	for _, arg := range args {
		b, err := c.Encode(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// unitBytes lays out 16-bit units little endian, as wchar_t sits in memory on Windows.
func unitBytes(units []uint16) []byte {
	b := make([]byte, 0, len(units)*2)
	for _, u := range units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}
