package service

import (
	"math"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/ganzhi"
)

// hiddenBaseScores and stemBaseScores map a stem's relation to the day master
// onto its support contribution. Hidden-stem bases are scaled by the tier
// weight; visible-stem bases apply as-is.
var (
	hiddenBaseScores = [...]float64{
		ganzhi.RelationSame:       3,
		ganzhi.RelationProducing:  2,
		ganzhi.RelationProduced:   -1,
		ganzhi.RelationDestroyed:  -2,
		ganzhi.RelationDestroying: -3,
	}

	stemBaseScores = [...]float64{
		ganzhi.RelationSame:       2,
		ganzhi.RelationProducing:  1.5,
		ganzhi.RelationProduced:   -0.5,
		ganzhi.RelationDestroyed:  -1,
		ganzhi.RelationDestroying: -1.5,
	}
)

// detailFloor keeps near-zero residual contributions out of the itemization.
const detailFloor = 0.5

type Strength struct{}

func NewStrength() *Strength {
	return &Strength{}
}

// Score computes the day master's elemental strength: month-order state plus
// hidden-stem support across all four branches plus visible-stem support from
// the non-day stems, summed without damping.
func (s *Strength) Score(dm ganzhi.Element, monthBranch ganzhi.Branch, chart *model.FourPillarsChart) *model.ElementStrengthAnalysis {
	state := ganzhi.SeasonStateOf(dm, monthBranch)

	analysis := &model.ElementStrengthAnalysis{
		MonthState:    state,
		MonthScore:    state.Weight(),
		HiddenDetails: []model.StrengthContribution{},
		StemDetails:   []model.StrengthContribution{},
	}

	for _, pillar := range chart.Pillars() {
		for _, hidden := range pillar.Hidden {
			relation := ganzhi.Relate(dm, hidden.Stem.Element())
			score := hiddenBaseScores[relation] * hidden.Tier.Weight()
			analysis.HiddenScore += score
			if math.Abs(score) > detailFloor {
				tier := hidden.Tier
				analysis.HiddenDetails = append(analysis.HiddenDetails, model.StrengthContribution{
					Position: pillar.Position,
					Stem:     hidden.Stem,
					Relation: relation,
					Score:    score,
					Tier:     &tier,
				})
			}
		}

		if pillar.IsDayMaster {
			continue
		}
		relation := ganzhi.Relate(dm, pillar.Stem.Element())
		score := stemBaseScores[relation]
		analysis.StemScore += score
		analysis.StemDetails = append(analysis.StemDetails, model.StrengthContribution{
			Position: pillar.Position,
			Stem:     pillar.Stem,
			Relation: relation,
			Score:    score,
		})
	}

	analysis.Overall = float64(analysis.MonthScore) + analysis.HiddenScore + analysis.StemScore
	analysis.Level = levelOf(analysis.Overall)

	return analysis
}

func levelOf(overall float64) model.StrengthLevel {
	switch {
	case overall >= 6:
		return model.VeryStrong
	case overall >= 3:
		return model.Strong
	case overall >= -1:
		return model.Balanced
	case overall >= -4:
		return model.Weak
	default:
		return model.VeryWeak
	}
}
