package service

import (
	"fmt"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/ganzhi"
)

type UseGod struct{}

func NewUseGod() *UseGod {
	return &UseGod{}
}

// Infer derives the favorable and unfavorable element sets from the day
// master's element and its strength level. A strong day master wants to be
// drained and restrained; a weak one wants to be supported. Balanced charts
// get no fixed sets and are flagged situational.
func (s *UseGod) Infer(dm ganzhi.Element, level model.StrengthLevel) *model.UseGodAnalysis {
	analysis := &model.UseGodAnalysis{
		Level: level,
	}

	switch level {
	case model.Strong, model.VeryStrong:
		analysis.Favorable = []ganzhi.Element{dm.DestroyedBy(), dm.Produces(), dm.Destroys()}
		analysis.Unfavorable = []ganzhi.Element{dm, dm.ProducedBy()}
		analysis.Rationale = fmt.Sprintf("日主%s%s，宜克泄耗，忌生扶", dm, level)
	case model.Weak, model.VeryWeak:
		analysis.Favorable = []ganzhi.Element{dm.ProducedBy(), dm}
		analysis.Unfavorable = []ganzhi.Element{dm.DestroyedBy(), dm.Produces(), dm.Destroys()}
		analysis.Rationale = fmt.Sprintf("日主%s%s，宜生扶，忌克泄耗", dm, level)
	default:
		analysis.Situational = true
		analysis.Favorable = []ganzhi.Element{}
		analysis.Unfavorable = []ganzhi.Element{}
		analysis.Rationale = fmt.Sprintf("日主%s中和，喜忌随岁运流转，需结合大运流年判断", dm)
	}

	return analysis
}
