package httpclient

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// debugLogger is the default logger for WithDebug output.
var debugLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// logRequest logs the outgoing request at debug level.
func logRequest(logger zerolog.Logger, req *Request) {
	logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("body_bytes", len(req.Body)).
		Msg("HTTP request")
}

// logResponse logs the transport outcome at debug level.
func logResponse(logger zerolog.Logger, resp *Response, duration time.Duration) {
	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration_ms", duration).
		Int("body_bytes", len(resp.Body)).
		Msg("HTTP response")
}
