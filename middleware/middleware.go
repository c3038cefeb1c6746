package middleware

import (
	"context"

	"vaelstrom-url-handler/message"
)

// HandlerFunc delivers one message.
type HandlerFunc func(ctx context.Context, msg *message.Outbound) error

type Middleware func(next HandlerFunc) HandlerFunc

// Chain composes middlewares so the first one listed runs outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
