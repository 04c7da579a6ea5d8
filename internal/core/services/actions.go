package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// Ensure RecordActionService implements the interface.
var _ driving.RecordActionService = (*RecordActionService)(nil)

// RecordActionService provides actions on a selected record.
type RecordActionService struct {
	clipboard driven.Clipboard
}

// NewRecordActionService creates a new record action service.
func NewRecordActionService(clipboard driven.Clipboard) *RecordActionService {
	return &RecordActionService{clipboard: clipboard}
}

// FormatRecord renders one "header: value" line per canonical field,
// followed by any extra source columns sorted by header.
func (s *RecordActionService) FormatRecord(record *domain.PesticideRecord) string {
	if record == nil {
		return ""
	}

	var b strings.Builder
	for _, f := range domain.AllFields() {
		b.WriteString(f.Header())
		b.WriteString(": ")
		b.WriteString(record.Get(f))
		b.WriteByte('\n')
	}

	extras := make([]string, 0, len(record.Extra))
	for k := range record.Extra {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	for _, k := range extras {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(record.Extra[k])
		b.WriteByte('\n')
	}

	return b.String()
}

// CopyRecord copies the formatted record to the clipboard.
func (s *RecordActionService) CopyRecord(ctx context.Context, record *domain.PesticideRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	if s.clipboard == nil {
		return errors.New("clipboard unavailable")
	}
	return s.clipboard.Copy(ctx, s.FormatRecord(record))
}
