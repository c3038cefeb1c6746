//go:build !windows

package cmdline

import (
	"os"

	"vaelstrom-url-handler/codec"
)

// Args returns os.Args encoded as UTF-16LE.
func Args() ([][]byte, error) {
	return Encode(codec.UTF16LE, os.Args...)
}
