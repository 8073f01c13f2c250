package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lancelocker.dev/internal/config"
	"lancelocker.dev/internal/logging"
)

// app carries what every subcommand needs once flags and config are resolved
type app struct {
	cfgFile    string
	lockerPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "locker",
		Short: "Locker - portfolio gallery server",
		Long: `Locker serves a portfolio gallery built from a single locker document
(your_projects/locker.json by default): a hero section, a searchable grid of
project cards and a detail view with a 3D model viewer.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.lockerPath, "locker", "", "locker document, overrides locker.path")

	rootCmd.AddCommand(
		newServeCmd(a),
		newNormalizeCmd(a),
		newSearchCmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.lockerPath != "" {
		cfg.Locker.Path = a.lockerPath
	}

	// Only the server logs to stdout; the other commands print results there.
	outputs := []string{"stderr"}
	if cmd.Name() == "serve" {
		outputs = []string{"stdout"}
	}
	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Dev, outputs...)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		logger.Debug("using config file", zap.String("path", cfg.File))
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}
