package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lookups",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete the lookup history")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history is disabled")
	}
	ctx := commandContext(cmd)

	if historyClear {
		if err := historyService.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	}

	entries, err := historyService.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if historyJSON {
		return writeJSON(cmd.OutOrStdout(), entries)
	}
	if len(entries) == 0 {
		cmd.Println("No lookups recorded.")
		return nil
	}

	for i := range entries {
		e := &entries[i]
		cmd.Printf("%s  %-13s %3d  %s / %s",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Outcome, e.ResultCount, e.CropName, e.DiseaseName)
		if e.SourceFile != "" {
			cmd.Printf("  (%s)", e.SourceFile)
		}
		cmd.Println()
	}
	return nil
}
