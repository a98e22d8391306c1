// Package fingerprint derives the content key under which computed analyses
// are cached and persisted. Identical birth data must always map to the same
// key, so the memoizing layers can guarantee at-most-one computation per
// fingerprint.
package fingerprint

import (
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"

	"mingpan.dev/backend/internal/model/types"
)

const fieldSep = "\x1f"

// Of hashes the request-relevant fields of the birth data. Name and gender do
// not change the chart but distinguish stored analyses for different people
// born at the same instant.
func Of(birth types.BirthData) string {
	var sb strings.Builder
	sb.WriteString(birth.Date)
	sb.WriteString(fieldSep)
	sb.WriteString(birth.Time.ValueOrZero())
	sb.WriteString(fieldSep)
	sb.WriteString(strings.ToLower(birth.Gender))
	sb.WriteString(fieldSep)
	sb.WriteString(birth.Name.ValueOrZero())

	return strconv.FormatUint(xxh3.HashString(sb.String()), 16)
}
