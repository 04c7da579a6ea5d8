package driven

import (
	"context"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// LinkSource provides the crop link table.
type LinkSource interface {
	// Load reads the link table. A missing file yields an empty table, not an error.
	Load(ctx context.Context) (*domain.LinkTable, error)

	// Watch calls onReload with a freshly loaded table whenever the source
	// changes. It blocks until ctx is cancelled.
	Watch(ctx context.Context, onReload func(*domain.LinkTable)) error

	// Path returns the location of the link file.
	Path() string
}
