package model

import (
	"time"

	"mingpan.dev/backend/internal/pkg/ganzhi"
	"mingpan.dev/backend/internal/pkg/hexagram"
)

// StrengthLevel is the five-level classification of the overall score.
type StrengthLevel int

const (
	VeryWeak StrengthLevel = iota
	Weak
	Balanced
	Strong
	VeryStrong
)

var strengthLevelNames = [...]string{"极弱", "偏弱", "中和", "偏强", "极强"}

func (l StrengthLevel) String() string {
	return strengthLevelNames[l]
}

func (l StrengthLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// StrengthContribution is one itemized scoring detail, kept for
// explainability of the overall score.
type StrengthContribution struct {
	Position Position        `json:"position"`
	Stem     ganzhi.Stem     `json:"stem"`
	Relation ganzhi.Relation `json:"relation"`
	Score    float64         `json:"score"`

	// Tier is set for hidden-stem contributions only.
	Tier *ganzhi.HiddenTier `json:"tier,omitempty"`
}

// ElementStrengthAnalysis is the scorer's output: the three score terms, their
// itemized contributions, and the resulting classification. Never mutated
// after creation.
type ElementStrengthAnalysis struct {
	MonthState ganzhi.SeasonState `json:"monthState"`
	MonthScore int                `json:"monthScore"`

	HiddenScore   float64                `json:"hiddenScore"`
	HiddenDetails []StrengthContribution `json:"hiddenDetails"`

	StemScore   float64                `json:"stemScore"`
	StemDetails []StrengthContribution `json:"stemDetails"`

	Overall float64       `json:"overall"`
	Level   StrengthLevel `json:"level"`
}

// UseGodAnalysis is the favorable/unfavorable element recommendation derived
// purely from the day-master element and the strength level.
type UseGodAnalysis struct {
	Favorable   []ganzhi.Element `json:"favorable"`
	Unfavorable []ganzhi.Element `json:"unfavorable"`
	Situational bool             `json:"situational"`
	Rationale   string           `json:"rationale"`
	Level       StrengthLevel    `json:"level"`
}

// Narrative is the presentation-layer prose rendered from the typed results.
type Narrative struct {
	Summary  string `json:"summary"`
	Strength string `json:"strength"`
	UseGod   string `json:"useGod"`
}

// BaziAnalysis is the full immutable analysis result keyed by a content
// fingerprint of the birth data.
type BaziAnalysis struct {
	Fingerprint string                  `json:"fingerprint"`
	Chart       FourPillarsChart        `json:"chart"`
	Strength    ElementStrengthAnalysis `json:"strength"`
	UseGod      UseGodAnalysis          `json:"useGod"`
	Narrative   Narrative               `json:"narrative"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// DivinationResult is the companion hexagram cast.
type DivinationResult struct {
	At           time.Time         `json:"at"`
	Primary      hexagram.Hexagram `json:"-"`
	Changed      hexagram.Hexagram `json:"-"`
	PrimaryName  string            `json:"primary"`
	ChangedName  string            `json:"changed"`
	ChangingLine int               `json:"changingLine"`
}

// DailyAlmanac is the precomputed "today" snapshot served by the almanac
// endpoint and refreshed by the background worker.
type DailyAlmanac struct {
	Date       string           `json:"date"`
	YearPillar string           `json:"yearPillar"`
	DayStem    ganzhi.Stem      `json:"dayStem"`
	DayBranch  ganzhi.Branch    `json:"dayBranch"`
	DayNayin   string           `json:"dayNayin"`
	SolarTerm  string           `json:"solarTerm"`
	Hexagram   DivinationResult `json:"hexagram"`
}
