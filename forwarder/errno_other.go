//go:build !windows

package forwarder

import "syscall"

var unsupportedFamilyErrnos = []syscall.Errno{
	syscall.EAFNOSUPPORT,
	syscall.EPROTONOSUPPORT,
}
