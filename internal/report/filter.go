// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report filters fetched papers down to those with
// industry-affiliated authors and writes the result as CSV, XLSX, or
// JSON, or prints it to the console.
package report

import (
	"github.com/pdiddy/paperscout/internal/classify"
	"github.com/pdiddy/paperscout/pkg/types"
)

// noEmail marks the corresponding-author email as absent. PubMed does
// not reliably expose email addresses, so every record carries the
// marker rather than an empty cell.
const noEmail = "N/A"

// Stats summarizes one filter pass, for diagnostics.
type Stats struct {
	// Papers is the number of papers examined.
	Papers int

	// Kept is the number of papers with at least one company-affiliated
	// author.
	Kept int

	// Authors is the number of authors examined across all papers.
	Authors int

	// Company counts authors with a company-matching affiliation.
	Company int

	// AcademicOnly counts authors whose affiliations matched only
	// academic terms.
	AcademicOnly int

	// Unaffiliated counts authors carrying no affiliation strings.
	Unaffiliated int
}

// FilterNonAcademic selects the papers having at least one author whose
// affiliation matches the company vocabulary and projects each into a
// flat Record. The function is pure: same input, same output, no I/O.
//
// Matched authors appear in author-list order. Each contributes one
// entry to both record lists: the display name and the affiliation that
// matched, so the two lists stay index-aligned even when authors share
// an affiliation. Authors without affiliation data never match. Papers
// with an unknown year are kept with the year left empty.
func FilterNonAcademic(papers []types.Paper, vocab classify.Vocabulary) ([]types.Record, Stats) {
	stats := Stats{Papers: len(papers)}

	var records []types.Record
	for _, p := range papers {
		var names, affiliations []string
		for _, a := range p.Authors {
			stats.Authors++
			if len(a.Affiliations) == 0 {
				stats.Unaffiliated++
				continue
			}
			if aff, ok := vocab.CompanyMatch(a.Affiliations); ok {
				stats.Company++
				names = append(names, a.Name())
				affiliations = append(affiliations, aff)
				continue
			}
			if hasAcademic(a.Affiliations, vocab) {
				stats.AcademicOnly++
			}
		}

		if len(names) == 0 {
			continue
		}
		stats.Kept++
		records = append(records, types.Record{
			PubmedID:            p.PMID,
			Title:               p.Title,
			Year:                p.Year,
			NonAcademicAuthors:  names,
			CompanyAffiliations: affiliations,
			Email:               noEmail,
		})
	}
	return records, stats
}

func hasAcademic(affiliations []string, vocab classify.Vocabulary) bool {
	for _, aff := range affiliations {
		if vocab.IsAcademic(aff) {
			return true
		}
	}
	return false
}
