package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// uriScheme is the custom URI scheme for pestsearch resources.
const uriScheme = "pestsearch://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "schema",
		Name:        "schema",
		Description: "The 22 canonical registration fields with accepted spreadsheet headers",
		MIMEType:    "application/json",
	}, s.handleSchemaResource)

	if s.ports.Links == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "links",
		Name:        "links",
		Description: "Crop name to disease encyclopedia URL table",
		MIMEType:    "application/json",
	}, s.handleLinksResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "links/{crop}",
		Name:        "crop-link",
		Description: "Disease encyclopedia URL for one crop",
		MIMEType:    "text/plain",
	}, s.handleCropLinkResource)
}

// schemaField is the JSON form of one schema column.
type schemaField struct {
	Index    int      `json:"index"`
	Key      string   `json:"key"`
	Header   string   `json:"header"`
	Required bool     `json:"required"`
	Aliases  []string `json:"aliases"`
}

func (s *Server) handleSchemaResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	schema := s.ports.Lookup.Schema()

	fields := make([]schemaField, 0, domain.FieldCount)
	for _, f := range domain.AllFields() {
		fields = append(fields, schemaField{
			Index:    int(f),
			Key:      f.Key(),
			Header:   f.Header(),
			Required: schema.IsRequired(f),
			Aliases:  schema.AliasesFor(f),
		})
	}

	return jsonResource(req.Params.URI, fields)
}

func (s *Server) handleLinksResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries := s.ports.Links.Table().Entries()
	if entries == nil {
		entries = []domain.LinkEntry{}
	}
	return jsonResource(req.Params.URI, entries)
}

func (s *Server) handleCropLinkResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	crop := extractCropName(req.Params.URI)
	if crop == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	link, err := s.ports.Links.Resolve(crop)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     link,
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCropName extracts the crop from a URI like pestsearch://links/{crop}.
// Percent-encoded names are decoded.
func extractCropName(uri string) string {
	const prefix = uriScheme + "links/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return strings.TrimSpace(name)
}
