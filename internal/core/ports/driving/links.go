package driving

import (
	"context"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// LinkService resolves crop names to reference links.
type LinkService interface {
	// Table returns the current immutable link table.
	Table() *domain.LinkTable

	// Names returns the crop names available for selection, sorted.
	Names() []string

	// Resolve returns the URL for a crop name.
	// Returns domain.ErrNotFound if the crop has no link.
	Resolve(cropName string) (string, error)

	// Open resolves the crop's URL and opens it in the browser.
	Open(ctx context.Context, cropName string) (string, error)
}
