package service

import (
	"time"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/hexagram"
)

type Divination struct{}

func NewDivination() *Divination {
	return &Divination{}
}

// Cast performs the time-based hexagram cast for the given instant.
func (s *Divination) Cast(at time.Time) *model.DivinationResult {
	c := hexagram.CastAt(at)
	return &model.DivinationResult{
		At:           at,
		Primary:      c.Primary,
		Changed:      c.Changed,
		PrimaryName:  c.Primary.Name(),
		ChangedName:  c.Changed.Name(),
		ChangingLine: c.ChangingLine,
	}
}
