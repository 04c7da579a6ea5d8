package spreadsheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// writeWorkbook saves rows to the first sheet of a new workbook.
func writeWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}
	require.NoError(t, f.SaveAs(path))
}

// writeDelimited saves rows joined by sep, one line per row.
func writeDelimited(t *testing.T, path string, sep string, rows [][]string) {
	t.Helper()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, sep)
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
}

// canonicalRow builds a 22-column row with the given field values.
func canonicalRow(values map[domain.Field]string) []string {
	row := make([]string, domain.FieldCount)
	for f, v := range values {
		row[f] = v
	}
	return row
}

func sampleRows() [][]string {
	return [][]string{
		domain.CanonicalHeaders(),
		canonicalRow(map[domain.Field]string{
			domain.FieldSeq: "1", domain.FieldCrop: "사과", domain.FieldDisease: "탄저병",
			domain.FieldBrandName: "가브리엘", domain.FieldDilution: "2000",
		}),
		canonicalRow(map[domain.Field]string{
			domain.FieldSeq: "2", domain.FieldCrop: "사과", domain.FieldDisease: "갈색무늬병",
			domain.FieldBrandName: "나이스",
		}),
		canonicalRow(map[domain.Field]string{
			domain.FieldSeq: "3", domain.FieldCrop: "배", domain.FieldDisease: "탄저병",
			domain.FieldBrandName: "다이나",
		}),
	}
}

func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
