// Package cli implements the doccatalog command tree: the interactive menu,
// one-shot listing commands and the HTTP server.
package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doccatalog/internal/config"
	"doccatalog/internal/model"
	"doccatalog/internal/repository"
	"doccatalog/internal/seed"
	"doccatalog/internal/service"
)

// app carries the process-wide dependencies shared by every command.
type app struct {
	cfg      *config.AppConfig
	log      *zap.Logger
	registry repository.DocumentRegistry
	prom     *prometheus.Registry
	catalog  service.CatalogService
}

// NewRootCommand builds the command tree around the given registry.
// The registry is seeded once, before the selected command runs.
func NewRootCommand(cfg *config.AppConfig, log *zap.Logger, registry repository.DocumentRegistry) *cobra.Command {
	a := &app{
		cfg:      cfg,
		log:      log,
		registry: registry,
		prom:     prometheus.NewRegistry(),
	}

	rootCmd := &cobra.Command{
		Use:   "doccatalog",
		Short: "In-memory catalog of Word, PDF, Excel, TXT and HTML documents",
		Long: `doccatalog keeps a list of document records with their bibliographic metadata.
Run without a subcommand to open the interactive menu.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runMenu,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.Seed.File, "seed-file", cfg.Seed.File, "YAML file with the initial documents")
	rootCmd.PersistentFlags().BoolVar(&a.cfg.Seed.Defaults, "seed", cfg.Seed.Defaults, "Seed the catalog at startup (--seed=false starts empty)")

	rootCmd.AddCommand(a.newMenuCommand())
	rootCmd.AddCommand(a.newListCommand())
	rootCmd.AddCommand(a.newShowCommand())
	rootCmd.AddCommand(a.newServeCommand())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	metrics, err := service.RegisterMetrics(a.prom, a.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	a.catalog = service.NewCatalogService(a.registry, metrics)

	docs, err := a.seedDocuments()
	if err != nil {
		return err
	}
	if err := seed.Populate(cmd.Context(), a.catalog, docs); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	a.log.Debug("catalog seeded", zap.Int("documents", len(docs)), zap.String("seed_file", a.cfg.Seed.File))
	return nil
}

func (a *app) seedDocuments() ([]model.Document, error) {
	switch {
	case !a.cfg.Seed.Defaults:
		return nil, nil
	case a.cfg.Seed.File != "":
		return seed.LoadFile(a.cfg.Seed.File)
	default:
		return seed.Defaults(), nil
	}
}
