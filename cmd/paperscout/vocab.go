package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the active affiliation vocabulary",
	Long: `Vocab prints the vocabulary used to classify author affiliations, as YAML.
Without --vocab it shows the built-in defaults; with --vocab it shows the
result of loading the given file, which is useful for checking a custom
vocabulary before a run.`,
	RunE: runVocab,
}

func init() {
	vocabCmd.Flags().String("vocab", "", "YAML file with company/academic indicator terms")

	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(vocab)
	if err != nil {
		return fmt.Errorf("marshaling vocabulary: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
