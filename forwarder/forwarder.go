// Package forwarder hands a URL from the OS to the running Vaelstrom
// application and exits.
//
//	ArgCheck → Connect (resolve, socket, connect) → Send → Shutdown → Close
//
// Any failure skips the remaining steps; the connection, once open, is closed
// on every path. Nothing is retried.
package forwarder

import (
	"context"
	"log"

	"vaelstrom-url-handler/codec"
	"vaelstrom-url-handler/logging"
	"vaelstrom-url-handler/message"
	"vaelstrom-url-handler/middleware"
	"vaelstrom-url-handler/transport"
)

// Destination of the running application. The port is part of the contract
// with the receiver and is not configurable.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = "58238"
)

// Forwarder sends one argument to the application per Run.
type Forwarder struct {
	host        string
	port        string
	transport   *transport.Transport
	codec       codec.Codec
	logger      *log.Logger
	middlewares []middleware.Middleware
}

type Option func(*Forwarder)

// WithAddress overrides the destination. Used by tests.
func WithAddress(host, port string) Option {
	return func(f *Forwarder) {
		f.host = host
		f.port = port
	}
}

func WithTransport(t *transport.Transport) Option {
	return func(f *Forwarder) {
		f.transport = t
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(f *Forwarder) {
		f.logger = logger
	}
}

// WithCodec sets the codec used to render payloads in diagnostics.
func WithCodec(c codec.Codec) Option {
	return func(f *Forwarder) {
		f.codec = c
	}
}

// New creates a Forwarder aimed at DefaultHost:DefaultPort with logging
// installed as the outermost middleware.
func New(opts ...Option) *Forwarder {
	f := &Forwarder{
		host:   DefaultHost,
		port:   DefaultPort,
		codec:  codec.UTF16LE,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.transport == nil {
		f.transport = transport.NewTransport(nil, nil, f.logger)
	}
	f.middlewares = append(f.middlewares, middleware.LoggingMiddleware(f.logger, f.codec))
	return f
}

// Use registers a middleware around the send step. Middlewares are applied in
// the order they are added.
func (f *Forwarder) Use(mw middleware.Middleware) {
	f.middlewares = append(f.middlewares, mw)
}

// Run forwards args[1] to the application. args is the full process argument
// list, program name first, each entry already in wire encoding.
// The returned error is nil or an *Error.
func (f *Forwarder) Run(ctx context.Context, args [][]byte) error {
	if len(args) < 2 {
		f.logger.Printf("No argument given.")
		return newError(CodeMissingArgument, "no argument given")
	}

	msg, err := message.New(args[1])
	if err != nil {
		f.logger.Printf("Argument too long.")
		return classify(err)
	}

	conn, err := f.transport.Connect(ctx, f.host, f.port)
	if err != nil {
		e := classify(err)
		f.logger.Printf("%v", e)
		return e
	}
	defer func() {
		if err := conn.Close(); err != nil {
			f.logger.Printf("close: %v", err)
		}
	}()

	deliver := func(ctx context.Context, msg *message.Outbound) error {
		if err := f.transport.Send(conn, msg); err != nil {
			return err
		}
		return f.transport.Shutdown(conn)
	}
	handler := middleware.Chain(f.middlewares...)(deliver)

	if err := handler(ctx, msg); err != nil {
		return classify(err)
	}
	return nil
}
