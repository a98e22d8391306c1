package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mingpan.dev/backend/internal/constant"
	"mingpan.dev/backend/internal/pkg/flog"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
