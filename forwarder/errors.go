package forwarder

import (
	"errors"

	"vaelstrom-url-handler/message"
	"vaelstrom-url-handler/transport"
)

// Code is a machine-readable failure code. Every code is terminal.
type Code string

const (
	// CodeUnknown marks a failure no lower layer claimed, such as an error
	// returned by a caller-installed middleware.
	CodeUnknown Code = "UNKNOWN"

	CodeMissingArgument    Code = "MISSING_ARGUMENT"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeArgumentTooLong    Code = "ARGUMENT_TOO_LONG"
	CodeNetworkInitFailed  Code = "NETWORK_INIT_FAILED"
	CodeResolveFailed      Code = "RESOLVE_FAILED"
	CodeSocketCreateFailed Code = "SOCKET_CREATE_FAILED"
	CodeConnectFailed      Code = "CONNECT_FAILED"
	CodeSendFailed         Code = "SEND_FAILED"
	CodeShutdownFailed     Code = "SHUTDOWN_FAILED"
)

// Error is a forwarding failure with its code.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Diagnostic message
	Cause   error  // Wrapped underlying error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func wrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code carried by err, or "" when err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ExitCode maps the result of Run to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// classify maps lower-layer errors onto the failure codes.
func classify(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	switch {
	case errors.Is(err, message.ErrTooLong):
		return wrapError(CodeArgumentTooLong, "argument too long", err)
	case errors.Is(err, message.ErrMisaligned):
		return wrapError(CodeInvalidArgument, "invalid argument encoding", err)
	case errors.Is(err, transport.ErrResolve):
		return wrapError(CodeResolveFailed, "getaddrinfo failed", err)
	case errors.Is(err, transport.ErrSocket):
		if familyUnsupported(err) {
			return wrapError(CodeNetworkInitFailed, "IPv4 networking unavailable", err)
		}
		return wrapError(CodeSocketCreateFailed, "error at socket()", err)
	case errors.Is(err, transport.ErrConnect):
		return wrapError(CodeConnectFailed, "unable to connect to server", err)
	case errors.Is(err, transport.ErrSend):
		return wrapError(CodeSendFailed, "send failed", err)
	case errors.Is(err, transport.ErrShutdown):
		return wrapError(CodeShutdownFailed, "shutdown failed", err)
	}
	return wrapError(CodeUnknown, "forward failed", err)
}

// familyUnsupported reports whether err says the host has no IPv4 stack.
func familyUnsupported(err error) bool {
	for _, errno := range unsupportedFamilyErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
