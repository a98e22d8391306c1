package service

import (
	"time"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/model/cache"
	"mingpan.dev/backend/internal/pkg/almanac"
	"mingpan.dev/backend/internal/pkg/ganzhi"
	"mingpan.dev/backend/internal/pkg/solarterm"
)

// AlmanacCacheExpire is short on purpose: the snapshot is date-dependent and
// the worker refreshes it well within a day.
const AlmanacCacheExpire = time.Hour

type Almanac struct {
	DivinationService *Divination
}

func NewAlmanac(divination *Divination) *Almanac {
	return &Almanac{
		DivinationService: divination,
	}
}

// Today returns the almanac snapshot for the current date, computing it at
// most once per expiry window.
func (s *Almanac) Today() (*model.DailyAlmanac, error) {
	var daily model.DailyAlmanac
	err := cache.DailyAlmanac.MutexGetSet(&daily, func() (model.DailyAlmanac, error) {
		return s.compute(time.Now())
	}, AlmanacCacheExpire)
	if err != nil {
		return nil, err
	}

	// a stale snapshot crossing midnight is recomputed immediately
	if daily.Date != time.Now().Format("2006-01-02") {
		return s.Refresh()
	}

	return &daily, nil
}

// Refresh recomputes the snapshot for the current date and replaces the
// cached value.
func (s *Almanac) Refresh() (*model.DailyAlmanac, error) {
	daily, err := s.compute(time.Now())
	if err != nil {
		return nil, err
	}
	if err := cache.DailyAlmanac.Set(daily, AlmanacCacheExpire); err != nil {
		return nil, err
	}
	return &daily, nil
}

func (s *Almanac) compute(now time.Time) (model.DailyAlmanac, error) {
	dayStem, dayBranch, err := almanac.DayPillar(now.Year(), int(now.Month()), now.Day())
	if err != nil {
		return model.DailyAlmanac{}, err
	}

	cycleYear := now.Year()
	if !solarterm.IsAfterSpringBoundary(now) {
		cycleYear--
	}
	yearStem := ganzhi.NormStem(cycleYear - 4)
	yearBranch := ganzhi.NormBranch(cycleYear - 4)

	return model.DailyAlmanac{
		Date:       now.Format("2006-01-02"),
		YearPillar: yearStem.String() + yearBranch.String(),
		DayStem:    dayStem,
		DayBranch:  dayBranch,
		DayNayin:   ganzhi.Nayin(dayStem, dayBranch),
		SolarTerm:  solarterm.TermName(now),
		Hexagram:   *s.DivinationService.Cast(now),
	}, nil
}
