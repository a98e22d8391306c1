package model

import (
	"mingpan.dev/backend/internal/pkg/ganzhi"
)

// Position names the four pillars of a chart.
type Position int

const (
	PositionYear Position = iota
	PositionMonth
	PositionDay
	PositionHour
)

var positionNames = [...]string{"年柱", "月柱", "日柱", "时柱"}

func (p Position) String() string {
	return positionNames[p]
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ZiHourKind distinguishes the two halves of the 子 hour on the hour pillar.
// The late half (23:00-23:59) derives its stem from the following day.
type ZiHourKind int

const (
	ZiHourNone ZiHourKind = iota
	ZiHourEarly
	ZiHourLate
)

var ziHourNames = [...]string{"", "早子时", "晚子时"}

func (z ZiHourKind) String() string {
	return ziHourNames[z]
}

func (z ZiHourKind) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// Pillar is one stem+branch pair of a chart together with its derived fields.
// Pillars are value objects; they are never mutated after chart assembly.
type Pillar struct {
	Position Position            `json:"position"`
	Stem     ganzhi.Stem         `json:"stem"`
	Branch   ganzhi.Branch       `json:"branch"`
	Element  ganzhi.Element      `json:"element"`
	Hidden   []ganzhi.HiddenStem `json:"hiddenStems"`
	TenGod   ganzhi.TenGod       `json:"tenGod"`
	Nayin    string              `json:"nayin"`

	IsDayMaster  bool       `json:"isDayMaster,omitempty"`
	IsMonthOrder bool       `json:"isMonthOrder,omitempty"`
	ZiHour       ZiHourKind `json:"ziHour,omitempty"`
}

func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// FourPillarsChart is the complete birth chart. Created once per analysis
// request and immutable thereafter. The day pillar always carries the
// sentinel DayMaster label instead of a computed ten-god relation.
type FourPillarsChart struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`

	DayMaster        ganzhi.Stem    `json:"dayMaster"`
	DayMasterElement ganzhi.Element `json:"dayMasterElement"`
}

// Pillars returns the four pillars in year/month/day/hour order.
func (c *FourPillarsChart) Pillars() [4]Pillar {
	return [4]Pillar{c.Year, c.Month, c.Day, c.Hour}
}
