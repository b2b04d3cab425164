package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with method, path, status,
// latency and the authenticated user when present.
func EchoMiddleware(l *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", c.Response().Status),
				Duration("latency", time.Since(start)),
				String("client_ip", c.RealIP()),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}
			if userID := c.Get("user_id"); userID != nil {
				fields = append(fields, Any("user_id", userID))
			}
			if err != nil {
				fields = append(fields, Err(err))
				l.Error("HTTP request", fields...)
			} else if c.Response().Status >= 500 {
				l.Error("HTTP request", fields...)
			} else {
				l.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
