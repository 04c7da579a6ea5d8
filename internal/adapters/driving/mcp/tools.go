package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// SearchInput is the input schema for the search_pesticides tool.
type SearchInput struct {
	Crop    string `json:"crop" jsonschema:"crop name, e.g. 사과"`
	Disease string `json:"disease" jsonschema:"disease or pest name, e.g. 탄저병"`
	Exact   bool   `json:"exact,omitempty" jsonschema:"require exact name matches instead of substring matches"`
}

// SearchOutput is the output schema for the search_pesticides tool.
type SearchOutput struct {
	Crop      string                   `json:"crop"`
	Disease   string                   `json:"disease"`
	MatchMode string                   `json:"match_mode,omitempty"`
	Source    string                   `json:"source,omitempty"`
	Fallback  bool                     `json:"fallback,omitempty"`
	Count     int                      `json:"count"`
	Message   string                   `json:"message,omitempty"`
	Records   []domain.PesticideRecord `json:"records"`
}

// LinkInput is the input schema for the crop_link tool.
type LinkInput struct {
	Crop string `json:"crop" jsonschema:"crop name as listed in the link table"`
}

// LinkOutput is the output schema for the crop_link tool.
type LinkOutput struct {
	Crop  string `json:"crop"`
	URL   string `json:"url,omitempty"`
	Found bool   `json:"found"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_pesticides",
		Description: "Find pesticides registered for a crop against a disease or pest. " +
			"Returns every matching registration record with all 22 fields.",
	}, s.handleSearch)

	if s.ports.Links != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "crop_link",
			Description: "Get the crop disease encyclopedia URL for a crop",
		}, s.handleCropLink)
	}
}

// handleSearch handles the search_pesticides tool invocation. No data and
// no match are reported in the output; invalid queries and failures are
// returned as tool errors.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	query := domain.Query{CropName: input.Crop, DiseaseName: input.Disease}
	if input.Exact {
		query.Mode = domain.MatchExact
	}

	output := SearchOutput{
		Crop:    query.Trimmed().CropName,
		Disease: query.Trimmed().DiseaseName,
		Records: []domain.PesticideRecord{},
	}

	result, err := s.ports.Lookup.Search(ctx, query)
	switch {
	case errors.Is(err, domain.ErrNoDataSource):
		output.Message = domain.MsgNoData
		return nil, output, nil
	case errors.Is(err, domain.ErrNoMatch):
		output.Message = domain.MsgNoResults
	case errors.Is(err, domain.ErrInvalidQuery):
		return nil, SearchOutput{}, fmt.Errorf("%s: %w", domain.MsgQueryIncomplete, err)
	case err != nil:
		return nil, SearchOutput{}, err
	}

	if result != nil {
		output.MatchMode = result.MatchMode.String()
		output.Source = result.Source.Path
		output.Fallback = result.Source.Fallback
		if len(result.Records) > 0 {
			output.Records = result.Records
		}
	}
	output.Count = len(output.Records)

	return nil, output, nil
}

// handleCropLink handles the crop_link tool invocation.
func (s *Server) handleCropLink(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LinkInput,
) (*mcp.CallToolResult, LinkOutput, error) {
	url, err := s.ports.Links.Resolve(input.Crop)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, LinkOutput{Crop: input.Crop}, nil
	case errors.Is(err, domain.ErrInvalidInput):
		return nil, LinkOutput{}, fmt.Errorf("%s: %w", domain.MsgSelectCrop, err)
	case err != nil:
		return nil, LinkOutput{}, err
	}

	return nil, LinkOutput{Crop: input.Crop, URL: url, Found: true}, nil
}
