package desktop

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
)

// Ensure Clipboard implements the interface.
var _ driven.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard.
type Clipboard struct {
	writeAll func(string) error
}

// NewClipboard creates a clipboard writer.
func NewClipboard() *Clipboard {
	return &Clipboard{writeAll: clipboard.WriteAll}
}

// Supported reports whether a clipboard utility is available.
func (c *Clipboard) Supported() bool {
	return !clipboard.Unsupported
}

// Copy replaces the clipboard contents with text.
func (c *Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.writeAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
