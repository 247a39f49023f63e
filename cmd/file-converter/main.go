// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the file-converter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/file-converter/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE once flags and config are known.
var logger = zap.NewNop()

// rootCmd is the base command for the file-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "file-converter",
	Short: "Convert a single file between image, PDF, and text formats",
	Long: `file-converter converts one file at a time, locally, between a small set
of formats: PNG, JPG and WEBP images are re-encoded into each other or
embedded into a one-page PDF, plain text is laid out as a PDF, and PDFs are
exported to a text file.

Use "formats" to see which targets a file can be converted to and "convert"
to produce the output file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("verbose"))
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./file-converter.yaml or ~/.config/file-converter/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log conversion steps at debug level")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	// A missing .env is normal; only report files that exist but fail to parse.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("file-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "file-converter"))
		}
	}

	viper.SetEnvPrefix("FILE_CONVERTER")
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
