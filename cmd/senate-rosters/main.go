// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the senate-rosters CLI. It reads
// committee_memberships_*.xml roster files and produces the member,
// hierarchy and merged tables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/senate-rosters/internal/preview"
	"github.com/pdiddy/senate-rosters/internal/source"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the validated configuration, loaded before every subcommand.
	cfg types.Config

	// logger receives diagnostics; it writes to stderr.
	logger = zap.NewNop()
)

// rootCmd is the base command for the senate-rosters CLI.
var rootCmd = &cobra.Command{
	Use:   "senate-rosters",
	Short: "Flatten Senate committee roster XML into analysis-ready tables",
	Long: `senate-rosters reads the committee_memberships_<ABBREV>.xml files published
by senate.gov, flattens them into one row per committee or subcommittee
member, derives the committee/subcommittee hierarchy, and joins the two.

Run "senate-rosters run" in a directory of roster files to preview every
table and write committee_members_with_hierarchy.csv.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		verbose, _ := cmd.Flags().GetBool("verbose")
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		l, err := newLogger(level)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./senate-rosters.yaml or ~/.config/senate-rosters/config.yaml)")
	rootCmd.PersistentFlags().String("dir", "", "directory containing committee_memberships_*.xml files (default: working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug diagnostics")

	_ = viper.BindPFlag("input_dir", rootCmd.PersistentFlags().Lookup("dir"))

	viper.SetDefault("output", types.DefaultOutputFile)
	viper.SetDefault("preview_rows", preview.DefaultRows)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("sqlite_path", "")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("senate-rosters")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "senate-rosters"))
		}
	}

	viper.SetEnvPrefix("SENATE_ROSTERS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes and validates the merged flag, file and environment
// settings.
func loadConfig() (types.Config, error) {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return types.Config{}, err
	}
	return c, nil
}

// newLogger builds a console logger on stderr at the named level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.DisableStacktrace = true
	zc.Sampling = nil
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// sourceOptions points the pipeline stages at the configured input directory.
func sourceOptions() source.Options {
	return source.Options{
		Fs:     afero.NewOsFs(),
		Dir:    cfg.InputDir,
		Logger: logger,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
