package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/ganzhi"
)

func TestUseGodStrongWood(t *testing.T) {
	s := NewUseGod()

	analysis := s.Infer(ganzhi.Wood, model.Strong)

	assert.Equal(t, []ganzhi.Element{ganzhi.Metal, ganzhi.Fire, ganzhi.Earth}, analysis.Favorable)
	assert.Equal(t, []ganzhi.Element{ganzhi.Wood, ganzhi.Water}, analysis.Unfavorable)
	assert.False(t, analysis.Situational)
	assert.Equal(t, model.Strong, analysis.Level)
}

func TestUseGodWeakFire(t *testing.T) {
	s := NewUseGod()

	analysis := s.Infer(ganzhi.Fire, model.Weak)

	assert.Equal(t, []ganzhi.Element{ganzhi.Wood, ganzhi.Fire}, analysis.Favorable)
	assert.Equal(t, []ganzhi.Element{ganzhi.Water, ganzhi.Earth, ganzhi.Metal}, analysis.Unfavorable)
	assert.False(t, analysis.Situational)
}

func TestUseGodBalanced(t *testing.T) {
	s := NewUseGod()

	analysis := s.Infer(ganzhi.Metal, model.Balanced)

	assert.True(t, analysis.Situational)
	assert.Empty(t, analysis.Favorable)
	assert.Empty(t, analysis.Unfavorable)
	assert.NotEmpty(t, analysis.Rationale)
	assert.Equal(t, model.Balanced, analysis.Level)
}

// For every non-balanced level the favorable and unfavorable sets must
// partition the five elements.
func TestUseGodSetsPartitionElements(t *testing.T) {
	s := NewUseGod()

	elements := []ganzhi.Element{ganzhi.Wood, ganzhi.Fire, ganzhi.Earth, ganzhi.Metal, ganzhi.Water}
	levels := []model.StrengthLevel{model.VeryWeak, model.Weak, model.Strong, model.VeryStrong}

	for _, dm := range elements {
		for _, level := range levels {
			analysis := s.Infer(dm, level)

			overlap := lo.Intersect(analysis.Favorable, analysis.Unfavorable)
			assert.Empty(t, overlap, "dm %s level %s", dm, level)

			union := append([]ganzhi.Element{}, analysis.Favorable...)
			union = append(union, analysis.Unfavorable...)
			require.Len(t, lo.Uniq(union), len(elements), "dm %s level %s", dm, level)
		}
	}
}

// The strong and weak branches swap the favorable set for the unfavorable
// one, element for element.
func TestUseGodStrongWeakInversion(t *testing.T) {
	s := NewUseGod()

	for _, dm := range []ganzhi.Element{ganzhi.Wood, ganzhi.Fire, ganzhi.Earth, ganzhi.Metal, ganzhi.Water} {
		strong := s.Infer(dm, model.Strong)
		weak := s.Infer(dm, model.Weak)

		assert.ElementsMatch(t, strong.Favorable, weak.Unfavorable, "dm %s", dm)
		assert.ElementsMatch(t, strong.Unfavorable, weak.Favorable, "dm %s", dm)
	}
}
