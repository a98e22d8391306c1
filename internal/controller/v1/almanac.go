package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"mingpan.dev/backend/internal/pkg/cachectrl"
	"mingpan.dev/backend/internal/server/svr"
	"mingpan.dev/backend/internal/service"
)

type AlmanacController struct {
	fx.In

	AlmanacService *service.Almanac
}

func RegisterAlmanac(v1 *svr.V1, c AlmanacController) {
	v1.Get("/almanac/today", cache.New(cache.Config{
		Expiration: time.Minute,
	}), c.Today)
}

func (c *AlmanacController) Today(ctx *fiber.Ctx) error {
	daily, err := c.AlmanacService.Today()
	if err != nil {
		return err
	}

	cachectrl.OptInCustom(ctx, time.Now(), time.Minute)
	return ctx.JSON(daily)
}
