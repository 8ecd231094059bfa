package middleware

import (
	"log/slog"
	"strings"
	"time"

	"refuge/config"
	deliverycontext "refuge/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes the access log. Every request is logged in debug
// mode; otherwise only responses with status 400 and above.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle must run after RequestIDMiddleware so the entry carries request_id.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final
			c.Error(err)
		}

		status := c.Response().Status
		if !m.debug && status < 400 {
			return nil
		}

		req := c.Request()
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("uri", req.URL.RequestURI()),
			slog.Int("status", status),
			slog.Int64("bytes_out", c.Response().Size),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
			slog.String("user_agent", req.UserAgent()),
		}
		// Live views stay open until the client leaves
		if strings.HasPrefix(c.Response().Header().Get(echo.HeaderContentType), "text/event-stream") {
			attrs = append(attrs, slog.Bool("stream", true))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
		logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)

		return nil
	}
}
