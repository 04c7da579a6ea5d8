package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for pestsearch.

The TUI has a pesticide search form with a result table and record detail
view, and a crop disease encyclopedia list that opens pages in the browser.

Controls:
  Tab      - Next field
  Enter    - Search / Select
  ↑/k, ↓/j - Navigate results
  Ctrl+E   - Toggle exact matching
  c        - Copy record
  o        - Open crop page
  Esc      - Back
  ?        - Help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx := commandContext(cmd)

	// The TUI is long-running, so keep the link table in sync with its file.
	stopWatcher := startLinkWatcher(ctx)
	defer stopWatcher()

	ports := tui.NewPorts(lookupService, linkService, actionService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// startLinkWatcher runs the link watcher in the background when one is
// configured. The returned function stops it.
func startLinkWatcher(ctx context.Context) func() {
	if linkWatcher == nil {
		return func() {}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	go func() {
		if err := linkWatcher.Watch(watchCtx); err != nil && watchCtx.Err() == nil {
			logger.Warn("link watcher stopped: %v", err)
		}
	}()
	return cancel
}
