// Package cmd implements the catalog command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/XaaXaaX/sdk/catalog/application"
	"github.com/XaaXaaX/sdk/catalog/infrastructure"
	"github.com/XaaXaaX/sdk/internal/config"
	"github.com/XaaXaaX/sdk/internal/log"
	"github.com/XaaXaaX/sdk/internal/tracing"
)

var (
	cfgFile    string
	catalogDir string
	collection string

	cfg      config.Config
	provider *tracing.Provider
)

var rootCmd = &cobra.Command{
	Use:          "catalog",
	Short:        "Manage a versioned resource catalog",
	Long:         `Catalog manages versioned resources stored as directories of markdown documents with YAML front matter, with an explicit freeze lifecycle for immutable historical snapshots.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if catalogDir != "" {
			cfg.CatalogDir = catalogDir
		}
		if collection != "" {
			cfg.Collection = collection
		}
		log.Init(os.Stderr, log.ParseLevel(cfg.LogLevel))
		if cfg.Tracing {
			provider, err = tracing.Init("catalog")
			if err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if provider != nil {
			return provider.Shutdown(cmd.Context())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default catalog.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "dir", "", "catalog root directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&collection, "collection", "", "collection directory (overrides config)")
}

// Execute runs the root command. It exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newStore builds the store the commands operate through.
func newStore() *application.Store {
	return application.NewStore(infrastructure.NewFSStorage(), cfg.CatalogDir, cfg.Collection)
}
