package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscout/internal/classify"
	"github.com/pdiddy/paperscout/internal/fetch"
	"github.com/pdiddy/paperscout/internal/report"
	"github.com/pdiddy/paperscout/internal/secrets"
	"github.com/pdiddy/paperscout/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 10
	defaultUserAgent  = "paperscout/0.1"
	toolName          = "paperscout"
)

// runRoot drives the pipeline: fetch papers for the query, filter them
// down to industry-authored records, then save or print. A fetch failure
// is reported on stderr and the run continues with zero records, so the
// command still terminates normally.
func runRoot(cmd *cobra.Command, args []string) error {
	query := args[0]

	outPath, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	vocab, err := loadVocabulary(cmd)
	if err != nil {
		return err
	}

	cfg := pubmedConfig(cmd)
	debugf("query %q, max results %d, timeout %s", query, cfg.MaxResults, cfg.Timeout)

	var progress io.Writer = io.Discard
	if debugMode {
		progress = os.Stderr
	}

	client := fetch.NewClient(cfg)
	papers, err := client.FetchQuery(context.Background(), query, progress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: fetch failed: %v\n", err)
		papers = nil
	}
	debugf("fetched %d paper(s)", len(papers))

	records, stats := report.FilterNonAcademic(papers, vocab)
	debugf("kept %d of %d paper(s); authors: %d company, %d academic-only, %d unaffiliated",
		stats.Kept, stats.Papers, stats.Company, stats.AcademicOnly, stats.Unaffiliated)

	if outPath != "" {
		return report.Save(records, outPath, os.Stdout)
	}
	if asJSON {
		return report.WriteJSON(records, os.Stdout)
	}
	report.Print(records, os.Stdout)
	return nil
}

// pubmedConfig resolves fetch settings: flag, then config file or
// environment, then the built-in default. Contact values fall back to
// .secrets/ last.
func pubmedConfig(cmd *cobra.Command) types.PubMedConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("max_results")
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("email")
	}
	email = secretDefault(secrets.KeyEmail, email)

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = viper.GetString("api_key")
	}
	apiKey = secretDefault(secrets.KeyAPIKey, apiKey)

	return types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults: maxResults,
		Tool:       toolName,
		Email:      email,
		APIKey:     apiKey,
	}
}

// loadVocabulary returns the vocabulary named by --vocab (or the config
// file), falling back to the built-in defaults.
func loadVocabulary(cmd *cobra.Command) (classify.Vocabulary, error) {
	path, _ := cmd.Flags().GetString("vocab")
	if path == "" {
		path = viper.GetString("vocab")
	}
	if path == "" {
		return classify.Default(), nil
	}
	return classify.Load(path)
}
