package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scalarmap/internal/config"
	"scalarmap/internal/fixture"
	"scalarmap/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "scalarmap",
		Short: "Inspect how document scalars map to host values",
		Long: `scalarmap reads YAML documents of tagged scalar values and shows their
datatype tags, the host values they convert to, and what a conversion loses.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			logger, err := logging.FromConfig(cfg.Log, a.verbose)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newDatatypeCmd(a),
		newConvertCmd(a),
		newCheckCmd(a),
	)

	return root
}

// load reads every file argument concurrently.
func (a *app) load(ctx context.Context, paths []string) ([]*fixture.Document, error) {
	a.logger.Debug("Loading value files", zap.Strings("paths", paths), zap.Int("workers", a.cfg.Workers))

	docs, err := fixture.LoadFiles(ctx, a.cfg.Workers, paths...)
	if err != nil {
		a.logger.Error("Failed to load value files", zap.Error(err))
		return nil, err
	}

	for _, doc := range docs {
		a.logger.Debug("Loaded value file", zap.String("path", doc.Path), zap.Int("values", len(doc.Values)))
	}

	return docs, nil
}

// loadEach reads every file argument concurrently and keeps going past
// files that fail to load.
func (a *app) loadEach(ctx context.Context, paths []string) ([]*fixture.Document, []error) {
	a.logger.Debug("Loading value files", zap.Strings("paths", paths), zap.Int("workers", a.cfg.Workers))

	docs, errs := fixture.LoadEach(ctx, a.cfg.Workers, paths...)
	for i, err := range errs {
		if err != nil {
			a.logger.Warn("Failed to load value file", zap.String("path", paths[i]), zap.Error(err))
		}
	}

	return docs, errs
}
