package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/bridgeit/directory/internal/application/handlers"
	"github.com/bridgeit/directory/internal/domain/services"
	"github.com/bridgeit/directory/internal/infrastructure/config"
	"github.com/bridgeit/directory/internal/infrastructure/logging"
	"github.com/bridgeit/directory/internal/infrastructure/tabular"
	"github.com/bridgeit/directory/internal/infrastructure/webpage"
)

// Deps holds the dependencies commands work with. Only config, logger
// and handlers are exposed; services and infrastructure stay internal.
type Deps struct {
	Config    *config.Config
	Log       *logrus.Logger
	Directory *handlers.DirectoryHandler
	Item      *handlers.ItemHandler
	Match     *handlers.MatchHandler
}

// csvURL returns the effective source URL for a command run.
func (d *Deps) csvURL() string {
	if globalCSV != "" {
		return globalCSV
	}
	return d.Config.Source.CSVURL
}

// withDeps loads config and builds dependencies, then calls fn.
func withDeps(fn func(*Deps) error) error {
	// Optional .env next to the binary; absence is fine.
	_ = godotenv.Load()

	path := globalConfig
	if path == "" {
		path = config.DefaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New()

	source := tabular.NewCSVSource(nil)
	directoryService := services.NewDirectoryService(source, log)
	profileService := services.NewProfileService(
		webpage.NewFetcher(cfg.Source.SiteBaseURL, nil),
		webpage.NewExtractor(),
	)
	matchService := services.NewMatchService(
		cfg.Match.TematicaWeight,
		cfg.Match.ConvoWeight,
		cfg.Match.MaxMatchedTags,
	)

	return fn(&Deps{
		Config:    cfg,
		Log:       log,
		Directory: handlers.NewDirectoryHandler(directoryService, cfg.Directory.DetailURL),
		Item:      handlers.NewItemHandler(directoryService, profileService, cfg.Source.CSVURL),
		Match:     handlers.NewMatchHandler(directoryService, matchService),
	})
}
