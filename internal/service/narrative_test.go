package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/ganzhi"
)

func TestNarrativeRender(t *testing.T) {
	charts := NewChart()
	strengths := NewStrength()
	useGods := NewUseGod()
	s := NewNarrative()

	chart, err := charts.Compute(birthAt("2000-01-01", "12:00"))
	require.NoError(t, err)
	strength := strengths.Score(chart.DayMasterElement, chart.Month.Branch, chart)
	useGod := useGods.Infer(chart.DayMasterElement, strength.Level)

	narrative := s.Render(chart, strength, useGod)

	assert.Contains(t, narrative.Summary, "戊午")
	assert.Contains(t, narrative.Summary, chart.DayMasterElement.String())
	assert.Contains(t, narrative.Strength, strength.Level.String())
	assert.NotEmpty(t, narrative.UseGod)
}

func TestNarrativeSituationalUseGod(t *testing.T) {
	s := NewNarrative()

	useGod := &model.UseGodAnalysis{
		Situational: true,
		Rationale:   "日主金中和，喜忌随岁运流转，需结合大运流年判断",
		Level:       model.Balanced,
	}
	chart := testChart(
		testPillar(model.PositionYear, ganzhi.StemGeng, ganzhi.BranchShen),
		testPillar(model.PositionMonth, ganzhi.StemXin, ganzhi.BranchYou),
		testPillar(model.PositionDay, ganzhi.StemXin, ganzhi.BranchHai),
		testPillar(model.PositionHour, ganzhi.StemRen, ganzhi.BranchChen),
	)
	strength := NewStrength().Score(chart.DayMasterElement, chart.Month.Branch, chart)

	narrative := s.Render(chart, strength, useGod)

	assert.Contains(t, narrative.UseGod, "中和")
	assert.NotContains(t, narrative.UseGod, "喜用：")
}

func TestDivinationCastDeterministic(t *testing.T) {
	s := NewDivination()

	at, err := time.Parse("2006-01-02 15:04", "2024-05-17 09:00")
	require.NoError(t, err)
	first := s.Cast(at)
	second := s.Cast(at)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.PrimaryName)
	assert.NotEmpty(t, first.ChangedName)
	assert.GreaterOrEqual(t, first.ChangingLine, 0)
	assert.Less(t, first.ChangingLine, 6)
}
