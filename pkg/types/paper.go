// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Author is one entry in a paper's author list as PubMed returns it.
type Author struct {
	// LastName is the author's family name.
	LastName string `json:"last_name" yaml:"last_name"`

	// ForeName is the author's given name(s), when present.
	ForeName string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`

	// Initials is the compressed form of the given names (e.g. "JA").
	Initials string `json:"initials,omitempty" yaml:"initials,omitempty"`

	// CollectiveName replaces the name fields when the author is a
	// consortium or working group rather than a person.
	CollectiveName string `json:"collective_name,omitempty" yaml:"collective_name,omitempty"`

	// Affiliations lists the author's affiliation strings in source
	// order. Empty when the record carries no affiliation data.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Name returns the author's display name: the last name when present,
// otherwise the collective name.
func (a Author) Name() string {
	if a.LastName != "" {
		return a.LastName
	}
	return a.CollectiveName
}

// Paper holds the metadata of one PubMed article.
type Paper struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year fragment. Empty when the source
	// record carries no parseable date.
	Year string `json:"year" yaml:"year"`

	// Authors lists the paper's authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`
}
