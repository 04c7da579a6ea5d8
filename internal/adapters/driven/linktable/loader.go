// Package linktable reads the crop link file, a UTF-8 text file with one
// "crop name:url" pair per line, and watches it for changes.
package linktable

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.LinkSource = (*Source)(nil)

const (
	utf8BOM         = "\ufeff"
	defaultDebounce = 200 * time.Millisecond
)

// Source is a file-backed driven.LinkSource.
type Source struct {
	path     string
	debounce time.Duration
}

// NewSource creates a link source reading path.
func NewSource(path string) *Source {
	return &Source{path: path, debounce: defaultDebounce}
}

// Path returns the link file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads and parses the link file. A missing file yields an empty table.
func (s *Source) Load(ctx context.Context) (*domain.LinkTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("Link file %s not found, using empty table", s.path)
			return domain.EmptyLinkTable(), nil
		}
		return nil, fmt.Errorf("opening link file %s: %w", s.path, err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading link file %s: %w", s.path, err)
	}
	return table, nil
}

// Parse reads "name:url" lines. Blank lines, lines without "://" and lines
// with an empty name or url are skipped. A later duplicate name wins.
func Parse(r io.Reader) (*domain.LinkTable, error) {
	var entries []domain.LinkEntry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		entry, ok := ParseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				logger.Debug("Skipping link line %d: %q", lineNo, line)
			}
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return domain.NewLinkTable(entries), nil
}

// ParseLine parses one line. The line is split on its first colon, so the
// url keeps its own "scheme://" part.
func ParseLine(line string) (domain.LinkEntry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, "://") {
		return domain.LinkEntry{}, false
	}

	name, url, _ := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return domain.LinkEntry{}, false
	}

	return domain.LinkEntry{CropName: name, URL: url}, true
}
