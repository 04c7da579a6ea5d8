package spreadsheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	return NewStore(domain.DataSettings{
		Dir:        dir,
		Fallback:   domain.DefaultFallbackFile,
		Extensions: domain.DefaultExtensions(),
	}, domain.DefaultSchema())
}

func TestStore_LoadPerCropFile(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "사과.xlsx"), sampleRows())
	writeWorkbook(t, filepath.Join(dir, domain.DefaultFallbackFile), sampleRows()[:1])

	records, source, err := newTestStore(t, dir).Load(context.Background(), "사과")

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, filepath.Join(dir, "사과.xlsx"), source.Path)
	assert.False(t, source.Fallback)
}

func TestStore_LoadFallback(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, domain.DefaultFallbackFile), sampleRows())

	records, source, err := newTestStore(t, dir).Load(context.Background(), "블루베리")

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.True(t, source.Fallback)
	assert.Equal(t, filepath.Join(dir, domain.DefaultFallbackFile), source.Path)
}

func TestStore_LoadNoDataSource(t *testing.T) {
	_, _, err := newTestStore(t, t.TempDir()).Load(context.Background(), "사과")

	assert.ErrorIs(t, err, domain.ErrNoDataSource)
}

func TestStore_ExtensionOrder(t *testing.T) {
	dir := t.TempDir()
	writeDelimited(t, filepath.Join(dir, "배.csv"), ",", [][]string{{"작물명", "적용병해충"}, {"배", "csv"}})
	writeWorkbook(t, filepath.Join(dir, "배.xlsx"), [][]string{{"작물명", "적용병해충"}, {"배", "xlsx"}})

	csvFirst := NewStore(domain.DataSettings{Dir: dir, Extensions: []string{"csv", ".xlsx"}}, domain.DefaultSchema())
	records, source, err := csvFirst.Load(context.Background(), "배")
	require.NoError(t, err)
	assert.Equal(t, "csv", records[0].Disease)
	assert.Equal(t, ".csv", filepath.Ext(source.Path))

	records, _, err = newTestStore(t, dir).Load(context.Background(), "배")
	require.NoError(t, err)
	assert.Equal(t, "xlsx", records[0].Disease)
}

func TestStore_DirectoryNamedLikeCropIsIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "사과.xlsx"), 0700))

	_, _, err := newTestStore(t, dir).Load(context.Background(), "사과")

	assert.ErrorIs(t, err, domain.ErrNoDataSource)
}

func TestStore_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "사과.xlsx"), [][]string{{"번호", "상표명"}, {"1", "x"}})

	_, source, err := newTestStore(t, dir).Load(context.Background(), "사과")

	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
	assert.Equal(t, filepath.Join(dir, "사과.xlsx"), source.Path)
}

func TestStore_TrailingNoteColumn(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		crop    string
		disease string
		extra   map[string]string
		write   func(t *testing.T, path string)
	}{
		{
			name:    "csv row wider than header",
			file:    "사과.csv",
			crop:    "사과",
			disease: "탄저병",
			extra:   map[string]string{"Unnamed: 2": "메모"},
			write: func(t *testing.T, path string) {
				writeDelimited(t, path, ",", [][]string{
					{"작물명", "적용병해충"},
					{"사과", "탄저병", "메모"},
				})
			},
		},
		{
			name:    "workbook note past the header",
			file:    "배.xlsx",
			crop:    "배",
			disease: "검은별무늬병",
			extra:   map[string]string{"Unnamed: 4": "메모"},
			write: func(t *testing.T, path string) {
				writeWorkbook(t, path, [][]string{
					{"번호", "작물명", "적용병해충"},
					{"1", "배", "검은별무늬병", "", "메모"},
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.write(t, filepath.Join(dir, tt.file))

			records, _, err := newTestStore(t, dir).Load(context.Background(), tt.crop)

			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.crop, records[0].Crop)
			assert.Equal(t, tt.disease, records[0].Disease)
			assert.Equal(t, tt.extra, records[0].Extra)
		})
	}
}

func TestStore_CacheInvalidatedOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "고추.csv")
	writeDelimited(t, path, ",", [][]string{{"작물명", "적용병해충"}, {"고추", "탄저병"}})
	store := newTestStore(t, dir)

	records, _, err := store.Load(context.Background(), "고추")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	writeDelimited(t, path, ",", [][]string{{"작물명", "적용병해충"}, {"고추", "탄저병"}, {"고추", "역병"}})
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	records, _, err = store.Load(context.Background(), "고추")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestNewStore_Defaults(t *testing.T) {
	store := NewStore(domain.DataSettings{Extensions: []string{".ods"}}, domain.DefaultSchema())

	assert.Equal(t, domain.DefaultDataDir, store.Dir())
	assert.Equal(t, domain.DefaultFallbackFile, store.fallback)
	assert.Equal(t, domain.DefaultExtensions(), store.extensions)
}

func TestStore_LoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestStore(t, t.TempDir()).Load(ctx, "사과")

	assert.ErrorIs(t, err, context.Canceled)
}
