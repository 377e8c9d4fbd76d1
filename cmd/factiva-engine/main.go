// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the factiva-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/factiva-engine/internal/logger"
	"github.com/pdiddy/factiva-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appLog is replaced by the configured logger before any command runs.
var appLog = logger.NewNop()

// rootCmd is the base command for the factiva-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "factiva-engine",
	Short: "Convert Factiva RTF exports into article tables",
	Long: `factiva-engine recovers the articles concatenated in Factiva "RTF Display
Format" exports and writes them as CSV, XLSX, JSON or YAML tables, one row
per article with title, author, timestamp, publisher, body and keyword
classification.

Converted articles can also be kept in a local archive for full-text
search and re-export.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(types.LogConfig{
			Level:       viper.GetString("log.level"),
			Development: viper.GetBool("log.development"),
		})
		if err != nil {
			return err
		}
		appLog = l
		if f := viper.ConfigFileUsed(); f != "" {
			appLog.Debug("using config file", logger.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = appLog.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	viper.SetDefault("convert.format", string(types.FormatCSV))
	viper.SetDefault("convert.workers", 1)
	viper.SetDefault("archive.dir", "archive")
	viper.SetDefault("archive.max_results", 20)
	viper.SetDefault("log.level", "warn")

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./factiva-engine.yaml or ~/.config/factiva-engine/factiva-engine.yaml)")
	pf.String("taxonomy", "", "YAML file overriding the region, industry and corporate-suffix tables")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Bool("log-dev", false, "human-readable development logging")

	_ = viper.BindPFlag("taxonomy.file", pf.Lookup("taxonomy"))
	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log.development", pf.Lookup("log-dev"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("factiva-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "factiva-engine"))
		}
	}

	viper.SetEnvPrefix("FACTIVA_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
