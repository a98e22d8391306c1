package model

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// AnalysisRecord is the persisted form of a computed analysis, keyed by the
// request fingerprint so repeated requests reuse the stored result.
type AnalysisRecord struct {
	bun.BaseModel `bun:"analysis_records,alias:ar"`

	RecordID    int             `bun:",pk,autoincrement" json:"id"`
	Fingerprint string          `bun:",unique" json:"fingerprint"`
	Name        null.String     `json:"name"`
	Gender      null.String     `json:"gender"`
	BirthDate   string          `json:"birthDate"`
	BirthTime   null.String     `json:"birthTime"`
	Result      json.RawMessage `json:"result"`
	CreatedAt   time.Time       `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
