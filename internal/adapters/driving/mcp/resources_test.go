package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

func TestExtractCropName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "plain crop",
			uri:      "pestsearch://links/사과",
			expected: "사과",
		},
		{
			name:     "percent-encoded crop",
			uri:      "pestsearch://links/%EC%82%AC%EA%B3%BC",
			expected: "사과",
		},
		{
			name:     "invalid prefix",
			uri:      "file://links/사과",
			expected: "",
		},
		{
			name:     "missing crop",
			uri:      "pestsearch://links/",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCropName(tt.uri))
		})
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleSchemaResource(t *testing.T) {
	server, err := NewServer(&Ports{Lookup: &mockLookupService{}})
	require.NoError(t, err)

	result, err := server.handleSchemaResource(context.Background(), makeReadResourceRequest("pestsearch://schema"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var fields []schemaField
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &fields))
	require.Len(t, fields, domain.FieldCount)
	assert.Equal(t, "crop", fields[domain.FieldCrop].Key)
	assert.True(t, fields[domain.FieldCrop].Required)
	assert.False(t, fields[domain.FieldRemarks].Required)
	assert.Contains(t, fields[domain.FieldCrop].Aliases, "작물이름")
}

func TestServer_handleLinksResource(t *testing.T) {
	t.Run("returns entries", func(t *testing.T) {
		server, err := NewServer(&Ports{Lookup: &mockLookupService{}, Links: testLinks()})
		require.NoError(t, err)

		result, err := server.handleLinksResource(context.Background(), makeReadResourceRequest("pestsearch://links"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var entries []domain.LinkEntry
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "배", entries[0].CropName)
		assert.Equal(t, "사과", entries[1].CropName)
	})

	t.Run("empty table returns empty array", func(t *testing.T) {
		server, err := NewServer(&Ports{Lookup: &mockLookupService{}, Links: &mockLinkService{}})
		require.NoError(t, err)

		result, err := server.handleLinksResource(context.Background(), makeReadResourceRequest("pestsearch://links"))
		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}

func TestServer_handleCropLinkResource(t *testing.T) {
	server, err := NewServer(&Ports{Lookup: &mockLookupService{}, Links: testLinks()})
	require.NoError(t, err)

	t.Run("returns url", func(t *testing.T) {
		uri := "pestsearch://links/사과"
		result, err := server.handleCropLinkResource(context.Background(), makeReadResourceRequest(uri))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, uri, result.Contents[0].URI)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "https://example.org/apple", result.Contents[0].Text)
	})

	t.Run("unknown crop is not found", func(t *testing.T) {
		_, err := server.handleCropLinkResource(context.Background(), makeReadResourceRequest("pestsearch://links/망고"))
		require.Error(t, err)
	})

	t.Run("invalid uri is not found", func(t *testing.T) {
		_, err := server.handleCropLinkResource(context.Background(), makeReadResourceRequest("pestsearch://other"))
		require.Error(t, err)
	})
}
