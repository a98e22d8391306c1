package types

import (
	"gopkg.in/guregu/null.v3"
)

// BirthData is the request payload the analysis endpoints accept. Date is
// required; time of day is optional and defaults to noon. Gender and name do
// not influence the chart computation but participate in the result
// fingerprint.
type BirthData struct {
	// Date is the Gregorian birth date, formatted 2006-01-02.
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// Time is the local time of birth, formatted 15:04.
	Time null.String `json:"time" validate:"omitempty,datetime=15:04"`

	Gender string `json:"gender" validate:"omitempty,caseinsensitiveoneof=male female"`

	Name null.String `json:"name"`
}
