// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an author affiliation string
// describes a commercial organization or an academic one.
package classify

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Vocabulary holds the indicator terms used to classify affiliations.
// Matching is case-insensitive and substring-based, not whole-word:
// "pharma" matches "BioPharma Research Unit". The company and academic
// lists answer independent questions; a term on one list never vetoes a
// match on the other.
type Vocabulary struct {
	// Company terms mark an affiliation as commercial.
	Company []string `json:"company" yaml:"company"`

	// Academic terms mark an affiliation as academic. Used for
	// diagnostics only; filtering keys off the company list.
	Academic []string `json:"academic" yaml:"academic"`
}

// IsCompany reports whether the affiliation contains any company term.
func (v Vocabulary) IsCompany(affiliation string) bool {
	return matchAny(affiliation, v.Company)
}

// IsAcademic reports whether the affiliation contains any academic term.
func (v Vocabulary) IsAcademic(affiliation string) bool {
	return matchAny(affiliation, v.Academic)
}

// CompanyMatch returns the first affiliation in the list that matches a
// company term, and whether one matched at all. An empty or absent list
// never matches.
func (v Vocabulary) CompanyMatch(affiliations []string) (string, bool) {
	for _, aff := range affiliations {
		if v.IsCompany(aff) {
			return aff, true
		}
	}
	return "", false
}

func matchAny(affiliation string, terms []string) bool {
	aff := strings.ToLower(affiliation)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(aff, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// Load reads a vocabulary from a YAML file. A list left empty in the
// file falls back to the built-in default, so a file may override just
// one of the two lists.
func Load(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("parsing vocabulary file %s: %w", path, err)
	}

	def := Default()
	if len(v.Company) == 0 {
		v.Company = def.Company
	}
	if len(v.Academic) == 0 {
		v.Academic = def.Academic
	}
	return v, nil
}
