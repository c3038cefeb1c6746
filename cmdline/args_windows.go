//go:build windows

package cmdline

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Args parses GetCommandLineW with CommandLineToArgvW and copies each
// argument's units without converting them to UTF-8, so unpaired surrogates
// survive untouched.
func Args() ([][]byte, error) {
	var argc int32
	argv, err := windows.CommandLineToArgv(windows.GetCommandLine(), &argc)
	if err != nil {
		return nil, fmt.Errorf("CommandLineToArgvW: %w", err)
	}
	defer windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(argv))))

	args := make([][]byte, 0, argc)
	for _, p := range argv[:argc] {
		args = append(args, wideArg(&p[0]))
	}
	return args, nil
}

// wideArg copies a NUL-terminated wide string.
func wideArg(p *uint16) []byte {
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; ptr = unsafe.Add(ptr, 2) {
		n++
	}
	return unitBytes(unsafe.Slice(p, n))
}
