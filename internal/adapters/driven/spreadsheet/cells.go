package spreadsheet

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const utf8BOM = "\ufeff"

// CleanCell strips a byte order mark and surrounding whitespace and returns
// the NFC form of the cell text.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, utf8BOM)
	s = strings.TrimSpace(s)
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

func cleanRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = CleanCell(cell)
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
