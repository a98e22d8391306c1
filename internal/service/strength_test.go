package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/ganzhi"
)

func testPillar(pos model.Position, stem ganzhi.Stem, branch ganzhi.Branch) model.Pillar {
	return model.Pillar{
		Position: pos,
		Stem:     stem,
		Branch:   branch,
		Element:  stem.Element(),
		Hidden:   branch.HiddenStems(),
	}
}

func testChart(year, month, day, hour model.Pillar) *model.FourPillarsChart {
	day.IsDayMaster = true
	day.TenGod = ganzhi.DayMaster
	month.IsMonthOrder = true
	return &model.FourPillarsChart{
		Year:  year,
		Month: month,
		Day:   day,
		Hour:  hour,

		DayMaster:        day.Stem,
		DayMasterElement: day.Stem.Element(),
	}
}

func TestStrengthLevelBoundaries(t *testing.T) {
	tests := []struct {
		overall float64
		want    model.StrengthLevel
	}{
		{6, model.VeryStrong},
		{5.999, model.Strong},
		{3, model.Strong},
		{2.999, model.Balanced},
		{-1, model.Balanced},
		{-1.001, model.Weak},
		{-4, model.Weak},
		{-4.001, model.VeryWeak},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelOf(tt.overall), "overall %v", tt.overall)
	}
}

// A 甲-wood day master born in the 寅 month sits on its prosperous month
// order (+4). With 戊辰/丙寅/甲子/戊午 the support terms work out to +2.0
// hidden and -2.5 visible, landing the chart firmly in the strong band.
func TestStrengthJiaWoodInTigerMonth(t *testing.T) {
	s := NewStrength()

	chart := testChart(
		testPillar(model.PositionYear, ganzhi.StemWu, ganzhi.BranchChen),
		testPillar(model.PositionMonth, ganzhi.StemBing, ganzhi.BranchYin),
		testPillar(model.PositionDay, ganzhi.StemJia, ganzhi.BranchZi),
		testPillar(model.PositionHour, ganzhi.StemWu, ganzhi.BranchWu),
	)
	require.Equal(t, ganzhi.Wood, chart.DayMasterElement)

	analysis := s.Score(chart.DayMasterElement, chart.Month.Branch, chart)

	assert.Equal(t, ganzhi.StateProsperous, analysis.MonthState)
	assert.Equal(t, 4, analysis.MonthScore)
	assert.InDelta(t, 2.0, analysis.HiddenScore, 1e-9)
	assert.InDelta(t, -2.5, analysis.StemScore, 1e-9)
	assert.InDelta(t, 3.5, analysis.Overall, 1e-9)
	assert.Equal(t, model.Strong, analysis.Level)
}

func TestStrengthItemizedDetails(t *testing.T) {
	s := NewStrength()

	chart := testChart(
		testPillar(model.PositionYear, ganzhi.StemWu, ganzhi.BranchChen),
		testPillar(model.PositionMonth, ganzhi.StemBing, ganzhi.BranchYin),
		testPillar(model.PositionDay, ganzhi.StemJia, ganzhi.BranchZi),
		testPillar(model.PositionHour, ganzhi.StemWu, ganzhi.BranchWu),
	)

	analysis := s.Score(chart.DayMasterElement, chart.Month.Branch, chart)

	require.NotEmpty(t, analysis.HiddenDetails)
	for _, detail := range analysis.HiddenDetails {
		assert.NotNil(t, detail.Tier)
		assert.Greater(t, abs(detail.Score), 0.5)
	}

	// visible stems itemize each of the three non-day pillars
	require.Len(t, analysis.StemDetails, 3)
	for _, detail := range analysis.StemDetails {
		assert.Nil(t, detail.Tier)
		assert.NotEqual(t, model.PositionDay, detail.Position)
	}
}

func TestStrengthScoreDeterministic(t *testing.T) {
	s := NewStrength()

	chart := testChart(
		testPillar(model.PositionYear, ganzhi.StemGeng, ganzhi.BranchShen),
		testPillar(model.PositionMonth, ganzhi.StemXin, ganzhi.BranchYou),
		testPillar(model.PositionDay, ganzhi.StemYi, ganzhi.BranchHai),
		testPillar(model.PositionHour, ganzhi.StemRen, ganzhi.BranchWu),
	)

	first := s.Score(chart.DayMasterElement, chart.Month.Branch, chart)
	second := s.Score(chart.DayMasterElement, chart.Month.Branch, chart)

	assert.Equal(t, first, second)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
