//go:build windows

package forwarder

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// Winsock reports WSAE* codes; the syscall package's EAFNOSUPPORT and
// EPROTONOSUPPORT are invented values that Winsock never returns.
var unsupportedFamilyErrnos = []syscall.Errno{
	windows.WSAEAFNOSUPPORT,
	windows.WSAEPROTONOSUPPORT,
	syscall.EAFNOSUPPORT,
	syscall.EPROTONOSUPPORT,
}
