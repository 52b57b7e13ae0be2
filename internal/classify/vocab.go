package classify

// Default returns the built-in vocabulary. Company terms favor suffixes
// and domain words that rarely appear in university names; the
// leading-space variants (" inc", " ltd", " corp") avoid matching inside
// words like "Principe" or "Scorpion" while still catching legal-form
// suffixes written without a trailing period.
func Default() Vocabulary {
	return Vocabulary{
		Company: []string{
			"pharma",
			"biotech",
			"therapeutics",
			"bioscience",
			"diagnostics",
			"laboratories",
			"inc.",
			" inc",
			"ltd.",
			" ltd",
			"llc",
			"gmbh",
			"corp.",
			" corp",
			"co., ltd",
			"company",
		},
		Academic: []string{
			"universit",
			"college",
			"institut",
			"school",
			"academy",
			"hospital",
			"clinic",
			"medical center",
			"medical centre",
			"faculty",
			"department",
			"cnrs",
			"inserm",
			"max planck",
		},
	}
}
