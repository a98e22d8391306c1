package meta

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.uber.org/fx"

	"mingpan.dev/backend/internal/model/cache"
	"mingpan.dev/backend/internal/model/types"
	"mingpan.dev/backend/internal/repo"
	"mingpan.dev/backend/internal/server/svr"
	"mingpan.dev/backend/internal/service"
	"mingpan.dev/backend/internal/util/rekuest"
)

const recordListLimit = 100

type AdminController struct {
	fx.In

	AlmanacService     *service.Almanac
	AnalysisRecordRepo *repo.AnalysisRecord
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/purge", c.PurgeCache)
	admin.Get("/records", c.ListRecords)
	admin.Get("/refresh/almanac", c.RefreshAlmanac)
}

func (c *AdminController) PurgeCache(ctx *fiber.Ctx) error {
	var request types.PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	return cache.Delete(request.Name, request.Key)
}

func (c *AdminController) ListRecords(ctx *fiber.Ctx) error {
	records, err := c.AnalysisRecordRepo.ListRecent(ctx.UserContext(), recordListLimit)
	if err != nil {
		return err
	}

	summaries := make([]*types.AnalysisRecordSummary, 0, len(records))
	if err := copier.Copy(&summaries, &records); err != nil {
		return err
	}

	return ctx.JSON(summaries)
}

func (c *AdminController) RefreshAlmanac(ctx *fiber.Ctx) error {
	daily, err := c.AlmanacService.Refresh()
	if err != nil {
		return err
	}
	return ctx.JSON(daily)
}
