package types

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

type PurgeCacheRequest struct {
	Name string      `json:"name" validate:"required"`
	Key  null.String `json:"key"`
}

// AnalysisRecordSummary is the admin listing view of a stored record, without
// the full result blob.
type AnalysisRecordSummary struct {
	Fingerprint string      `json:"fingerprint"`
	Name        null.String `json:"name"`
	Gender      null.String `json:"gender"`
	BirthDate   string      `json:"birthDate"`
	BirthTime   null.String `json:"birthTime"`
	CreatedAt   time.Time   `json:"createdAt"`
}
