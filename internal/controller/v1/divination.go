package v1

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mingpan.dev/backend/internal/pkg/cachectrl"
	"mingpan.dev/backend/internal/pkg/mperr"
	"mingpan.dev/backend/internal/server/svr"
	"mingpan.dev/backend/internal/service"
)

type DivinationController struct {
	fx.In

	DivinationService *service.Divination
}

func RegisterDivination(v1 *svr.V1, c DivinationController) {
	v1.Get("/divination", c.Cast)
}

// Cast performs a time-based hexagram cast, for the moment of the request or
// for the instant given via the t query parameter.
func (c *DivinationController) Cast(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)

	at, err := castInstant(ctx.Query("t"))
	if err != nil {
		return err
	}
	return ctx.JSON(c.DivinationService.Cast(at))
}

// castInstant resolves the cast moment from the optional t query value,
// interpreted as unix seconds.
func castInstant(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, mperr.ErrInvalidReq.Msg("t must be a unix timestamp in seconds")
	}
	return time.Unix(sec, 0), nil
}
