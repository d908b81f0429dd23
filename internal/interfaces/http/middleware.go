package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y duración.
// Los 5xx salen en nivel error, los 4xx en warn y el resto en debug.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler de Fiber fije el estado antes de registrar
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		zl := log.Zerolog()
		evt := zl.Debug()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = zl.Error().Err(chainErr)
		case status >= fiber.StatusBadRequest:
			evt = zl.Warn()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return nil
	}
}
