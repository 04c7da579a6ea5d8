package services

import (
	"strings"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// Filter returns the records whose crop and disease both match the query,
// in source order. Comparison is case-sensitive on whitespace-trimmed values.
// An unknown mode behaves like domain.MatchSubstring.
func Filter(
	records []domain.PesticideRecord, query domain.Query, mode domain.MatchMode,
) []domain.PesticideRecord {
	q := query.Trimmed()
	match := containsMatch
	if mode == domain.MatchExact {
		match = exactMatch
	}

	out := make([]domain.PesticideRecord, 0)
	for i := range records {
		if match(records[i].Crop, q.CropName) && match(records[i].Disease, q.DiseaseName) {
			out = append(out, records[i])
		}
	}
	return out
}

func containsMatch(value, term string) bool {
	return strings.Contains(strings.TrimSpace(value), term)
}

func exactMatch(value, term string) bool {
	return strings.TrimSpace(value) == term
}
