package driving

import (
	"context"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// RecordActionService provides actions on a selected record.
// This is used by TUI, CLI, and MCP adapters.
type RecordActionService interface {
	// FormatRecord renders every field of the record as "label: value" lines.
	FormatRecord(record *domain.PesticideRecord) string

	// CopyRecord copies the formatted record to the system clipboard.
	CopyRecord(ctx context.Context, record *domain.PesticideRecord) error
}
