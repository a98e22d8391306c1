package service

import (
	"fmt"
	"strings"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/ganzhi"
)

type Narrative struct{}

func NewNarrative() *Narrative {
	return &Narrative{}
}

// Render produces the presentation prose from the typed results. It reads
// only the computed structures and never re-derives anything.
func (s *Narrative) Render(chart *model.FourPillarsChart, strength *model.ElementStrengthAnalysis, useGod *model.UseGodAnalysis) *model.Narrative {
	return &model.Narrative{
		Summary:  s.summary(chart),
		Strength: s.strength(chart, strength),
		UseGod:   s.useGod(useGod),
	}
}

func (s *Narrative) summary(chart *model.FourPillarsChart) string {
	return fmt.Sprintf("八字：%s %s %s %s。日主%s，五行属%s，生于%s月。",
		chart.Year, chart.Month, chart.Day, chart.Hour,
		chart.DayMaster, chart.DayMasterElement, chart.Month.Branch)
}

func (s *Narrative) strength(chart *model.FourPillarsChart, strength *model.ElementStrengthAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "日主%s于%s月处%s地，月令计%d分；", chart.DayMaster,
		chart.Month.Branch, strength.MonthState, strength.MonthScore)
	fmt.Fprintf(&b, "地支藏干助力%.1f分，天干透出助力%.1f分，", strength.HiddenScore, strength.StemScore)
	fmt.Fprintf(&b, "综合%.1f分，判为%s。", strength.Overall, strength.Level)
	return b.String()
}

func (s *Narrative) useGod(useGod *model.UseGodAnalysis) string {
	if useGod.Situational {
		return useGod.Rationale + "。"
	}
	return fmt.Sprintf("%s。喜用：%s；忌讳：%s。",
		useGod.Rationale, joinElements(useGod.Favorable), joinElements(useGod.Unfavorable))
}

func joinElements(elements []ganzhi.Element) string {
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "、")
}
