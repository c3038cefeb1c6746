package middleware

import (
	"context"
	"log"
	"time"

	"vaelstrom-url-handler/codec"
	"vaelstrom-url-handler/message"
)

// LoggingMiddleware echoes the argument being sent, its size, how long the
// delivery took and any error.
func LoggingMiddleware(logger *log.Logger, c codec.Codec) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, msg *message.Outbound) error {
			logger.Printf("sending: %s", msg.Text(c))
			start := time.Now()
			err := next(ctx, msg)
			duration := time.Since(start)
			logger.Printf("Payload: %d bytes (%d units), Duration: %s", msg.Len(), codec.Units(msg.Payload), duration)
			if err != nil {
				logger.Printf("Error: %v", err)
			}
			return err
		}
	}
}
