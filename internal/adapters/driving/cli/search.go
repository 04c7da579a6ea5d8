package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// defaultSearchFields are the columns shown when --fields is not given.
var defaultSearchFields = []domain.Field{
	domain.FieldBrandName,
	domain.FieldItemName,
	domain.FieldActiveIngredient,
	domain.FieldDilution,
	domain.FieldTiming,
	domain.FieldMaxApplications,
}

var (
	searchCrop    string
	searchDisease string
	searchExact   bool
	searchJSON    bool
	searchFields  string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search pesticide registrations",
	Long: `Searches the registration spreadsheet for a crop and lists the pesticides
registered against a disease or pest.

The crop's own spreadsheet (<data-dir>/<crop>.xlsx) is used when present,
otherwise the shared fallback spreadsheet. Names match by substring unless
--exact is given.

Examples:
  pestsearch search --crop 사과 --disease 탄저병
  pestsearch search -c 고추 -d 역병 --exact --json
  pestsearch search -c 배 -d 검은별무늬병 --fields brand_name,dilution,safe_use_days`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCrop, "crop", "c", "", "crop name")
	searchCmd.Flags().StringVarP(&searchDisease, "disease", "d", "", "disease or pest name")
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "require exact name matches")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchFields, "fields", "", "comma-separated field keys to show (see 'pestsearch schema')")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	fields, err := parseFields(searchFields)
	if err != nil {
		return err
	}

	query := domain.Query{CropName: searchCrop, DiseaseName: searchDisease}
	if searchExact {
		query.Mode = domain.MatchExact
	}

	result, err := lookupService.Search(commandContext(cmd), query)
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		cmd.PrintErrln(domain.MsgQueryIncomplete)
		return err
	case errors.Is(err, domain.ErrNoDataSource):
		if searchJSON {
			return writeJSON(cmd.OutOrStdout(), emptyResult(query))
		}
		cmd.Println(domain.MsgNoData)
		return nil
	case errors.Is(err, domain.ErrNoMatch):
		if searchJSON {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		cmd.Println(domain.MsgNoResults)
		return nil
	case err != nil:
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	return outputSearchTable(cmd, result, fields)
}

func emptyResult(q domain.Query) *domain.ResultSet {
	return &domain.ResultSet{Query: q.Trimmed(), Records: []domain.PesticideRecord{}}
}

// parseFields turns a comma-separated key list into fields.
// An empty list selects the default columns.
func parseFields(list string) ([]domain.Field, error) {
	if strings.TrimSpace(list) == "" {
		return defaultSearchFields, nil
	}
	var fields []domain.Field
	for _, key := range strings.Split(list, ",") {
		if strings.TrimSpace(key) == "" {
			continue
		}
		f, ok := domain.FieldByKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidInput, strings.TrimSpace(key))
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return defaultSearchFields, nil
	}
	return fields, nil
}

func outputSearchTable(cmd *cobra.Command, result *domain.ResultSet, fields []domain.Field) error {
	out := cmd.OutOrStdout()

	source := result.Source.Path
	if result.Source.Fallback {
		source += " (fallback)"
	}
	cmd.Printf("%d result(s) for %s / %s from %s\n\n",
		result.Len(), result.Query.CropName, result.Query.DiseaseName, source)

	headers := make([]string, 0, len(fields)+1)
	headers = append(headers, "#")
	for _, f := range fields {
		headers = append(headers, f.Header())
	}
	rows := make([][]string, 0, result.Len())
	for i := range result.Records {
		row := make([]string, 0, len(fields)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		for _, f := range fields {
			row = append(row, result.Records[i].Get(f))
		}
		rows = append(rows, row)
	}

	width, ok := terminalWidth(out)
	if !ok {
		return writeTSV(out, headers, rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...).
		Width(width)
	_, err := fmt.Fprintln(out, t.String())
	return err
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func writeTSV(w io.Writer, headers []string, rows [][]string) error {
	if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
