// Command pestsearch looks up registered pesticides by crop and disease.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/pestsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pestsearch/internal/adapters/driven/desktop"
	"github.com/custodia-labs/pestsearch/internal/adapters/driven/linktable"
	"github.com/custodia-labs/pestsearch/internal/adapters/driven/spreadsheet"
	"github.com/custodia-labs/pestsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pestsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/core/services"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func(), error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}
	if opts.DataDir != "" {
		settings.Data.Dir = opts.DataDir
	}
	if opts.LinksFile != "" {
		settings.Links.File = opts.LinksFile
	}
	logger.Debug("Data folder %s, fallback %s, match %s",
		settings.Data.Dir, settings.Data.Fallback, settings.MatchMode)

	records := spreadsheet.NewStore(settings.Data, domain.DefaultSchema())
	lookupService := services.NewLookupService(records, settings.MatchMode)

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var historyService *services.HistoryService
	if settings.HistoryEnabled {
		var history driven.HistoryStore
		db, err := sqlite.NewStore(filepath.Join(configDir, "data"))
		if err != nil {
			logger.Warn("history database unavailable, keeping history for this session only: %v", err)
			history = memory.NewHistoryStore()
		} else {
			closers = append(closers, func() {
				if err := db.Close(); err != nil {
					logger.Warn("closing history database: %v", err)
				}
			})
			history = db.HistoryStore()
		}
		lookupService.SetHistoryStore(history)
		historyService = services.NewHistoryService(history)
	}

	linkSource := linktable.NewSource(settings.Links.File)
	linkService := services.NewLinkService(linkSource, desktop.NewBrowser())
	if err := linkService.Load(ctx); err != nil {
		logger.Warn("crop links unavailable: %v", err)
	}

	clip := desktop.NewClipboard()
	if !clip.Supported() {
		logger.Debug("No clipboard utility found, copying records will fail")
	}

	svc := &cli.Services{
		Lookup:   lookupService,
		Links:    linkService,
		Actions:  services.NewRecordActionService(clip),
		Settings: settingsService,
	}
	if historyService != nil {
		svc.History = historyService
	}
	if settings.Links.Watch {
		svc.Watcher = linkService
	}

	return svc, cleanup, nil
}
