package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mingpan.dev/backend/internal/model/types"
	"mingpan.dev/backend/internal/server/svr"
	"mingpan.dev/backend/internal/service"
	"mingpan.dev/backend/internal/util/rekuest"
)

type AnalysisController struct {
	fx.In

	ChartService    *service.Chart
	AnalysisService *service.Analysis
}

func RegisterAnalysis(v1 *svr.V1, c AnalysisController) {
	v1.Post("/chart", c.ComputeChart)
	v1.Post("/analysis", c.Analyze)
	v1.Get("/analysis/:fingerprint", c.GetAnalysis)
}

// ComputeChart returns the bare four-pillar chart without strength scoring,
// use-god inference, caching or persistence.
func (c *AnalysisController) ComputeChart(ctx *fiber.Ctx) error {
	var birth types.BirthData
	if err := rekuest.ValidBody(ctx, &birth); err != nil {
		return err
	}

	chart, err := c.ChartService.Compute(birth)
	if err != nil {
		return err
	}

	return ctx.JSON(chart)
}

// Analyze runs the full pipeline and returns the complete analysis, including
// its retrieval fingerprint.
func (c *AnalysisController) Analyze(ctx *fiber.Ctx) error {
	var birth types.BirthData
	if err := rekuest.ValidBody(ctx, &birth); err != nil {
		return err
	}

	analysis, err := c.AnalysisService.Analyze(ctx.UserContext(), birth)
	if err != nil {
		return err
	}

	return ctx.JSON(analysis)
}

// GetAnalysis retrieves a previously computed analysis by its fingerprint.
func (c *AnalysisController) GetAnalysis(ctx *fiber.Ctx) error {
	analysis, err := c.AnalysisService.GetByFingerprint(ctx.UserContext(), ctx.Params("fingerprint"))
	if err != nil {
		return err
	}

	return ctx.JSON(analysis)
}
