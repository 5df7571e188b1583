package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger middleware de Fiber que registra cada petición con método,
// ruta, status y latencia. Los errores HTTP (>=500) se registran como error.
func RequestLogger(l *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}
