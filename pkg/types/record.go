package types

// Record is the flattened, export-ready projection of one paper that has
// at least one company-affiliated author. The author and affiliation
// lists are index-aligned: CompanyAffiliations[i] is the affiliation that
// matched for NonAcademicAuthors[i].
type Record struct {
	// PubmedID is the paper's PubMed identifier.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year, empty when unknown.
	Year string `json:"year" yaml:"year"`

	// NonAcademicAuthors lists the names of company-affiliated authors,
	// in author-list order.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists, per matched author, the affiliation
	// string that triggered the match.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// Email is the corresponding author email, or an absence marker when
	// the source carries none.
	Email string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}
