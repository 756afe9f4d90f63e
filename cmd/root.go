package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/gokin/internal/app"
	"github.com/philipparndt/gokin/internal/config"
	"github.com/philipparndt/gokin/internal/logging"
	"github.com/philipparndt/gokin/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gokin [script]",
	Short: "Planar mechanism sketch editor",
	Long: `gokin sketches planar linkages: beams joined at pivots, sliders and grounds.
An optional YAML event script is replayed into the editor on start and again
whenever the file changes.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		opts := app.Options{Config: cfg, Log: log}
		if len(args) == 1 {
			opts.ScriptPath = args[0]
		}
		return app.Run(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log editor transitions")
}

// setup loads the configuration and builds the logger from the global flags
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logging.New(verbose)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
