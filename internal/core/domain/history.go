package domain

import "time"

// LookupOutcome classifies how a lookup ended.
type LookupOutcome string

// Lookup outcomes.
const (
	OutcomeMatched      LookupOutcome = "matched"
	OutcomeNoMatch      LookupOutcome = "no_match"
	OutcomeNoData       LookupOutcome = "no_data"
	OutcomeInvalidQuery LookupOutcome = "invalid_query"
	OutcomeFailed       LookupOutcome = "failed"
)

// IsValid returns true if the outcome is recognised.
func (o LookupOutcome) IsValid() bool {
	switch o {
	case OutcomeMatched, OutcomeNoMatch, OutcomeNoData, OutcomeInvalidQuery, OutcomeFailed:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the outcome.
func (o LookupOutcome) Description() string {
	switch o {
	case OutcomeMatched:
		return "Matched"
	case OutcomeNoMatch:
		return "No matching records"
	case OutcomeNoData:
		return "No data available"
	case OutcomeInvalidQuery:
		return "Invalid query"
	case OutcomeFailed:
		return "Failed"
	default:
		return unknownDescription
	}
}

// LookupEntry records one lookup for the history log.
// Only the query and its outcome are kept, never the matched records.
type LookupEntry struct {
	ID          string
	CropName    string
	DiseaseName string
	Outcome     LookupOutcome
	ResultCount int
	SourceFile  string
	CreatedAt   time.Time
}
