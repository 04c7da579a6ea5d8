package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching records", func(t *testing.T) {
		lookup := &mockLookupService{
			result: &domain.ResultSet{
				Source:    domain.DataSource{Path: "/data/사과.xlsx"},
				MatchMode: domain.MatchSubstring,
				Records: []domain.PesticideRecord{
					{Crop: "사과", Disease: "탄저병", BrandName: "안트라콜", Row: 2},
				},
			},
		}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Crop: " 사과 ", Disease: "탄저"})

		require.NoError(t, err)
		assert.Equal(t, "사과", output.Crop)
		assert.Equal(t, "탄저", output.Disease)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "substring", output.MatchMode)
		assert.Equal(t, "/data/사과.xlsx", output.Source)
		assert.False(t, output.Fallback)
		assert.Empty(t, output.Message)
		assert.Equal(t, "안트라콜", output.Records[0].BrandName)
	})

	t.Run("exact flag sets match mode", func(t *testing.T) {
		lookup := &mockLookupService{result: &domain.ResultSet{}, err: domain.ErrNoMatch}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Crop: "사과", Disease: "탄저병", Exact: true})

		require.NoError(t, err)
		require.Len(t, lookup.queries, 1)
		assert.Equal(t, domain.MatchExact, lookup.queries[0].Mode)
	})

	t.Run("no match is reported in the output", func(t *testing.T) {
		lookup := &mockLookupService{
			result: &domain.ResultSet{Source: domain.DataSource{Path: "/data/all.xlsx", Fallback: true}},
			err:    domain.ErrNoMatch,
		}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Crop: "사과", Disease: "없는병"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Records)
		assert.Equal(t, domain.MsgNoResults, output.Message)
		assert.True(t, output.Fallback)
	})

	t.Run("missing data is reported in the output", func(t *testing.T) {
		lookup := &mockLookupService{err: domain.ErrNoDataSource}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Crop: "망고", Disease: "탄저병"})

		require.NoError(t, err)
		assert.Equal(t, domain.MsgNoData, output.Message)
		assert.Equal(t, 0, output.Count)
	})

	t.Run("incomplete query returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Lookup: &mockLookupService{}})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Crop: "사과"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidQuery)
		assert.Contains(t, err.Error(), domain.MsgQueryIncomplete)
	})

	t.Run("returns error on lookup failure", func(t *testing.T) {
		lookup := &mockLookupService{err: errors.New("read failed")}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Crop: "사과", Disease: "탄저병"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read failed")
	})
}

func TestServer_handleCropLink(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(&Ports{Lookup: &mockLookupService{}, Links: testLinks()})
	require.NoError(t, err)

	t.Run("known crop", func(t *testing.T) {
		_, output, err := server.handleCropLink(ctx, nil, LinkInput{Crop: "사과"})
		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, "https://example.org/apple", output.URL)
	})

	t.Run("unknown crop is not an error", func(t *testing.T) {
		_, output, err := server.handleCropLink(ctx, nil, LinkInput{Crop: "망고"})
		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Empty(t, output.URL)
		assert.Equal(t, "망고", output.Crop)
	})

	t.Run("empty crop returns error", func(t *testing.T) {
		_, _, err := server.handleCropLink(ctx, nil, LinkInput{Crop: "  "})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
