// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperscout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscout/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// debugMode gates extra diagnostics on stderr.
var debugMode bool

// debugf prints a diagnostic line to stderr when --debug is set.
func debugf(format string, args ...any) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
	}
}

// secretDefault returns the secret value for key if fallback is empty,
// or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paperscout CLI. The search query
// is its positional argument; fetch, filter, and output live in runRoot.
var rootCmd = &cobra.Command{
	Use:   "paperscout [flags] <query>",
	Short: "Find PubMed papers with industry-affiliated authors",
	Long: `paperscout searches PubMed for papers matching a query, keeps those where
at least one author is affiliated with a commercial organization (pharma,
biotech, and similar), and prints the result or saves it as CSV or XLSX.

The query passes through to PubMed unchanged, so its full search syntax
works:

  paperscout "cancer immunotherapy"
  paperscout "crispr[Title] AND 2024[PDAT]" -f results.csv`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; loaded values surface through viper's
		// AutomaticEnv lookup.
		_ = godotenv.Load()

		loadedSecrets = secrets.Load(".secrets/")
		if len(loadedSecrets) > 0 {
			keys := make([]string, 0, len(loadedSecrets))
			for k := range loadedSecrets {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			debugf("loaded secrets: %v", keys)
		}
		return nil
	},
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperscout.yaml or ~/.config/paperscout/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "print extra diagnostics to stderr")

	rootCmd.Flags().StringP("file", "f", "", "write results to this path (.csv or .xlsx) instead of printing")
	rootCmd.Flags().Int("max-results", 0, "maximum number of papers to fetch (default 10)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().String("vocab", "", "YAML file with company/academic indicator terms")
	rootCmd.Flags().Bool("json", false, "print records as JSON instead of text")
	rootCmd.Flags().String("email", "", "contact email sent with E-utilities requests")
	rootCmd.Flags().String("api-key", "", "NCBI API key (default: .secrets/ncbi-api-key)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperscout"))
		}
	}

	viper.SetEnvPrefix("PAPERSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		debugf("using config file: %s", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
