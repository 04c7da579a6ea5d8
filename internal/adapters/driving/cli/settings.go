package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [key] [value]",
	Short: "Show or change settings",
	Long: `Without arguments, prints every setting with its effective value.
With a key, prints that setting. With a key and a value, stores the value in
the configuration file.

Keys:
  data.dir          folder holding the registration spreadsheets
  data.fallback     shared spreadsheet used when a crop has no file
  data.extensions   comma-separated extensions tried for "<crop><ext>"
  links.file        crop link file (name:url per line)
  links.watch       reload the link file when it changes (true/false)
  search.match      substring or exact
  history.enabled   record lookups in the history database (true/false)

Examples:
  pestsearch settings
  pestsearch settings search.match exact
  pestsearch settings data.extensions .xlsx,.csv,.tsv`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 2 {
		if err := settingsService.Set(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to set %s: %w", args[0], err)
		}
		cmd.Printf("%s = %s\n", args[0], args[1])
		return nil
	}

	values, err := settingsService.Values()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if len(args) == 1 {
		value, ok := values[args[0]]
		if !ok {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, args[0])
		}
		cmd.Println(value)
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("%-16s = %s\n", k, values[k])
	}
	return nil
}
