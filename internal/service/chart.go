package service

import (
	"time"

	"github.com/pkg/errors"

	"mingpan.dev/backend/internal/constant"
	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/model/types"
	"mingpan.dev/backend/internal/pkg/almanac"
	"mingpan.dev/backend/internal/pkg/ganzhi"
	"mingpan.dev/backend/internal/pkg/mperr"
	"mingpan.dev/backend/internal/pkg/solarterm"
)

// BoundaryResolver maps instants onto solar-month boundaries. The production
// implementation delegates to the fixed almanac approximation; tests may
// substitute their own.
type BoundaryResolver interface {
	MonthBranch(t time.Time) ganzhi.Branch
	IsAfterSpringBoundary(t time.Time) bool
}

// DayPillarSource resolves a Gregorian date to its sexagenary day pillar.
type DayPillarSource interface {
	DayPillar(year, month, day int) (ganzhi.Stem, ganzhi.Branch, error)
}

type solartermResolver struct{}

func (solartermResolver) MonthBranch(t time.Time) ganzhi.Branch {
	return solarterm.MonthBranch(t)
}

func (solartermResolver) IsAfterSpringBoundary(t time.Time) bool {
	return solarterm.IsAfterSpringBoundary(t)
}

type almanacSource struct{}

func (almanacSource) DayPillar(year, month, day int) (ganzhi.Stem, ganzhi.Branch, error) {
	return almanac.DayPillar(year, month, day)
}

type Chart struct {
	boundaries BoundaryResolver
	days       DayPillarSource
}

func NewChart() *Chart {
	return &Chart{
		boundaries: solartermResolver{},
		days:       almanacSource{},
	}
}

// Compute derives the four-pillar chart for the given birth data. The year
// pillar rolls over at Start of Spring rather than at New Year's Day; the
// month pillar follows the solar month; the hour pillar of the late 子 hour
// (23:00 onwards) borrows the following day's stem while the day pillar
// itself stays on the civil date.
func (s *Chart) Compute(birth types.BirthData) (*model.FourPillarsChart, error) {
	date, err := time.Parse("2006-01-02", birth.Date)
	if err != nil {
		return nil, mperr.ErrInvalidReq.Msg("invalid birth date: %s", err)
	}

	hour := constant.DefaultBirthHour
	if birth.Time.Valid {
		clock, err := time.Parse("15:04", birth.Time.String)
		if err != nil {
			return nil, mperr.ErrInvalidReq.Msg("invalid birth time: %s", err)
		}
		hour = clock.Hour()
	}

	cycleYear := date.Year()
	if !s.boundaries.IsAfterSpringBoundary(date) {
		cycleYear--
	}
	yearStem := ganzhi.NormStem(cycleYear - 4)
	yearBranch := ganzhi.NormBranch(cycleYear - 4)

	monthBranch := s.boundaries.MonthBranch(date)
	monthStem := ganzhi.MonthStem(yearStem, monthBranch)

	dayStem, dayBranch, err := s.days.DayPillar(date.Year(), int(date.Month()), date.Day())
	if err != nil {
		return nil, s.wrapDayErr(err)
	}

	// The late half of the 子 hour derives its stem from the next civil day.
	hourBranch := ganzhi.HourBranch(hour)
	ziHour := model.ZiHourNone
	hourDayStem := dayStem
	switch hour {
	case 23:
		ziHour = model.ZiHourLate
		next := date.AddDate(0, 0, 1)
		nextStem, _, err := s.days.DayPillar(next.Year(), int(next.Month()), next.Day())
		if err != nil {
			return nil, s.wrapDayErr(err)
		}
		hourDayStem = nextStem
	case 0:
		ziHour = model.ZiHourEarly
	}
	hourStem := ganzhi.HourStem(hourDayStem, hourBranch)

	chart := &model.FourPillarsChart{
		Year:  s.pillar(model.PositionYear, yearStem, yearBranch, dayStem),
		Month: s.pillar(model.PositionMonth, monthStem, monthBranch, dayStem),
		Day:   s.pillar(model.PositionDay, dayStem, dayBranch, dayStem),
		Hour:  s.pillar(model.PositionHour, hourStem, hourBranch, dayStem),

		DayMaster:        dayStem,
		DayMasterElement: dayStem.Element(),
	}
	chart.Day.IsDayMaster = true
	chart.Day.TenGod = ganzhi.DayMaster
	chart.Month.IsMonthOrder = true
	chart.Hour.ZiHour = ziHour

	return chart, nil
}

func (s *Chart) pillar(pos model.Position, stem ganzhi.Stem, branch ganzhi.Branch, dayMaster ganzhi.Stem) model.Pillar {
	return model.Pillar{
		Position: pos,
		Stem:     stem,
		Branch:   branch,
		Element:  stem.Element(),
		Hidden:   branch.HiddenStems(),
		TenGod:   ganzhi.TenGodOf(dayMaster, stem),
		Nayin:    ganzhi.Nayin(stem, branch),
	}
}

func (s *Chart) wrapDayErr(err error) error {
	if errors.Is(err, almanac.ErrOutOfRange) {
		return mperr.ErrDateOutOfRange
	}
	return err
}
