// Package main provides the chefguide command-line interface.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"chefguide/internal/config"
	"chefguide/internal/dataset"
	"chefguide/internal/logger"
	"chefguide/internal/models"
)

// app holds the state shared by every subcommand.
type app struct {
	configFile  string
	datasetFile string
	logLevel    string

	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "chefguide",
		Short: "Browse the competition chefs and their restaurants",
		Long: `chefguide loads the season rosters of the cooking competition, normalizes the
white and black rosters into one chef list, and lets you search and export it.

The bundled dataset is used unless --dataset, CHEFGUIDE_DATASET or the config file
names another one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Path to YAML configuration file")
	root.PersistentFlags().StringVarP(&a.datasetFile, "dataset", "d", "", "Dataset file (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newStatsCmd(a),
		newValidateCmd(a),
		newExportCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return err
	}

	if a.datasetFile != "" {
		cfg.Dataset.File = a.datasetFile
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.cfg = cfg
	a.log = logger.NewLoggerWithWriter(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

	return nil
}

// load reads the dataset once and returns the directory snapshot.
func (a *app) load(ctx context.Context) (*models.Directory, error) {
	return dataset.NewStore(a.cfg.Dataset, a.log).Reload(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
