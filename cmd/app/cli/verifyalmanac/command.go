package verifyalmanac

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mingpan.dev/backend/internal/pkg/almanac"
)

// references are day pillars published in almanac sources. The perpetual
// lookup must reproduce every one of them before a deploy is trusted.
var references = []struct {
	Year, Month, Day int
	Pillar           string
}{
	{1949, 10, 1, "甲子"},
	{1984, 1, 31, "甲子"},
	{1999, 12, 31, "丁巳"},
	{2000, 1, 1, "戊午"},
	{2000, 1, 2, "己未"},
	{2024, 2, 10, "甲辰"},
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "verify-almanac",
		Description: "verify the perpetual day-pillar lookup against published almanac references",
		Action: func(c *cli.Context) error {
			return run()
		},
	}
}

func run() error {
	for _, ref := range references {
		stem, branch, err := almanac.DayPillar(ref.Year, ref.Month, ref.Day)
		if err != nil {
			return errors.Wrapf(err, "lookup failed for %04d-%02d-%02d", ref.Year, ref.Month, ref.Day)
		}
		got := stem.String() + branch.String()
		if got != ref.Pillar {
			return errors.Errorf("mismatch for %04d-%02d-%02d: got %s, want %s", ref.Year, ref.Month, ref.Day, got, ref.Pillar)
		}
		log.Info().
			Int("year", ref.Year).Int("month", ref.Month).Int("day", ref.Day).
			Str("pillar", got).
			Msg("day pillar verified")
	}

	log.Info().Int("references", len(references)).Msg("all almanac references verified")
	return nil
}
