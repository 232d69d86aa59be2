package main

import (
	"context"
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/assessment"
	"github.com/NeyGuaiume2/sdisc/internal/config"
	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/NeyGuaiume2/sdisc/internal/refdata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// commonFlags are the configuration flags shared by every subcommand
type commonFlags struct {
	configPath string
	dataDir    string
	tierScheme string
	logLevel   string
	verbose    bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "Reference data directory (defaults to the embedded data, or DISC_DATA_DIR)")
	cmd.Flags().StringVar(&f.tierScheme, "tier-scheme", "", "Tier bands: standard or wide (defaults to DISC_TIER_SCHEME, then standard)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolve merges flags over the config file, then fills what is still empty from the environment.
func (f *commonFlags) resolve(port int) (config.Config, error) {
	var fileCfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	flagCfg := config.Config{
		DataDir:    f.dataDir,
		Port:       port,
		TierScheme: f.tierScheme,
		LogLevel:   f.logLevel,
	}
	cfg := flagCfg.MergeWithDefaults(fileCfg)
	cfg.Verbose = f.verbose || fileCfg.Verbose
	cfg.FillFromEnv()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if level == "" {
		// CLI output stays clean unless asked otherwise
		level = "warn"
	}
	return logging.New(level, cfg.Verbose)
}

// newDataCache returns the reference data cache for cfg. Commands build one per process
// and pass it to whatever needs the Store.
func newDataCache(cfg config.Config, logger *zap.Logger) *refdata.Cache {
	return refdata.NewCache(refdata.FS(cfg.DataDir), logger)
}

// newEngine builds an engine over the reference data held by data.
func newEngine(ctx context.Context, cfg config.Config, data *refdata.Cache, logger *zap.Logger) (*assessment.Engine, error) {
	bands, err := cfg.Bands()
	if err != nil {
		return nil, err
	}

	store, err := data.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	return assessment.New(store, assessment.WithLogger(logger), assessment.WithBands(bands))
}
