// Package cli implements the pestsearch command line using cobra.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// version is set at build time via -ldflags or SetVersion.
var version = "dev"

// Services configured for the current process.
var (
	lookupService   driving.LookupService
	linkService     driving.LinkService
	actionService   driving.RecordActionService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	linkWatcher     LinkWatcher
)

// LinkWatcher reloads the link table until ctx is cancelled.
type LinkWatcher interface {
	Watch(ctx context.Context) error
}

// Services groups the driving ports the commands use.
type Services struct {
	Lookup   driving.LookupService
	Links    driving.LinkService
	Actions  driving.RecordActionService
	History  driving.HistoryService
	Settings driving.SettingsService

	// Watcher is optional; long-running commands start it when set.
	Watcher LinkWatcher
}

// Options carries the persistent flag values to the bootstrap function.
type Options struct {
	ConfigDir string
	DataDir   string
	LinksFile string
	Verbose   bool
}

// Bootstrap builds the services for a run. The returned cleanup function
// is called after the command finishes.
type Bootstrap func(ctx context.Context, opts Options) (*Services, func(), error)

var (
	bootstrap Bootstrap
	cleanup   func()
	options   Options
)

var rootCmd = &cobra.Command{
	Use:   "pestsearch",
	Short: "Look up registered pesticides by crop and disease",
	Long: `pestsearch looks up registered pesticides for a crop and a disease or pest
in the registration spreadsheets kept in the data folder, and links each crop
to its reference page.

Run "pestsearch tui" for the interactive interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.pestsearch)")
	flags.StringVar(&options.DataDir, "data-dir", "", "folder holding the registration spreadsheets")
	flags.StringVar(&options.LinksFile, "links", "", "crop link file (name:url per line)")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "print diagnostic output to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services from flags.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	lookupService = s.Lookup
	linkService = s.Links
	actionService = s.Actions
	historyService = s.History
	settingsService = s.Settings
	linkWatcher = s.Watcher
}

// Execute runs the root command. Command output goes to stdout so results
// can be piped; diagnostics go to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)
	if bootstrap == nil || cmd == versionCmd {
		return nil
	}

	services, done, err := bootstrap(cmd.Context(), options)
	if err != nil {
		return err
	}
	if services == nil {
		return errors.New("bootstrap returned no services")
	}
	SetServices(services)
	cleanup = done
	return nil
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
