package report

import (
	"reflect"
	"testing"

	"github.com/pdiddy/paperscout/internal/classify"
	"github.com/pdiddy/paperscout/pkg/types"
)

func samplePapers() []types.Paper {
	return []types.Paper{
		{
			PMID:  "39124567",
			Title: "Durable responses to a novel kinase inhibitor in refractory tumors.",
			Year:  "2024",
			Authors: []types.Author{
				{
					LastName: "Okafor", ForeName: "Adaeze",
					Affiliations: []string{
						"Harvard Medical School, Boston, MA, USA.",
						"Acme Biotech Inc., Cambridge, MA, USA.",
					},
				},
				{
					LastName: "Silva", ForeName: "Marta",
					Affiliations: []string{
						"Department of Oncology, University of Lisbon, Portugal.",
					},
				},
				{
					LastName: "Tanaka", ForeName: "Yuki",
				},
			},
		},
		{
			PMID:  "38991234",
			Title: "Population-scale variant calling revisited.",
			Year:  "2023",
			Authors: []types.Author{
				{
					LastName: "Nordin", ForeName: "Elin",
					Affiliations: []string{
						"Wellcome Sanger Institute, Hinxton, UK.",
					},
				},
			},
		},
	}
}

func TestFilterNonAcademic(t *testing.T) {
	records, stats := FilterNonAcademic(samplePapers(), classify.Default())

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.PubmedID != "39124567" {
		t.Errorf("PubmedID = %q, want 39124567", r.PubmedID)
	}
	if r.Year != "2024" {
		t.Errorf("Year = %q, want 2024", r.Year)
	}
	if len(r.NonAcademicAuthors) != 1 || r.NonAcademicAuthors[0] != "Okafor" {
		t.Errorf("NonAcademicAuthors = %v, want [Okafor]", r.NonAcademicAuthors)
	}
	if len(r.CompanyAffiliations) != 1 || r.CompanyAffiliations[0] != "Acme Biotech Inc., Cambridge, MA, USA." {
		t.Errorf("CompanyAffiliations = %v, want the matched affiliation", r.CompanyAffiliations)
	}
	if r.Email != "N/A" {
		t.Errorf("Email = %q, want the absence marker", r.Email)
	}

	want := Stats{Papers: 2, Kept: 1, Authors: 4, Company: 1, AcademicOnly: 2, Unaffiliated: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestFilterNonAcademicAllAcademic(t *testing.T) {
	papers := []types.Paper{
		{
			PMID:  "1",
			Title: "A purely academic study.",
			Year:  "2022",
			Authors: []types.Author{
				{LastName: "Alpha", Affiliations: []string{"Massachusetts Institute of Technology, Cambridge, MA"}},
				{LastName: "Beta", Affiliations: []string{"Department of Physics, State University"}},
			},
		},
	}

	records, stats := FilterNonAcademic(papers, classify.Default())
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if stats.Kept != 0 || stats.Company != 0 {
		t.Errorf("stats = %+v, want no company matches", stats)
	}
}

func TestFilterNonAcademicEmptyInput(t *testing.T) {
	records, stats := FilterNonAcademic(nil, classify.Default())
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if stats != (Stats{}) {
		t.Errorf("stats = %+v, want zero value", stats)
	}
}

func TestFilterNonAcademicUnaffiliatedAuthorNeverMatches(t *testing.T) {
	papers := []types.Paper{
		{
			PMID:    "2",
			Title:   "No affiliation data at all.",
			Authors: []types.Author{{LastName: "Ghost"}},
		},
	}

	records, stats := FilterNonAcademic(papers, classify.Default())
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if stats.Unaffiliated != 1 {
		t.Errorf("Unaffiliated = %d, want 1", stats.Unaffiliated)
	}
}

func TestFilterNonAcademicListsStayAligned(t *testing.T) {
	shared := "Acme Biotech Inc., Cambridge, MA"
	papers := []types.Paper{
		{
			PMID:  "3",
			Title: "Two colleagues, one company.",
			Year:  "2021",
			Authors: []types.Author{
				{LastName: "First", Affiliations: []string{shared}},
				{LastName: "Academic", Affiliations: []string{"Stanford University"}},
				{LastName: "Second", Affiliations: []string{shared}},
			},
		},
	}

	records, _ := FilterNonAcademic(papers, classify.Default())
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if len(r.NonAcademicAuthors) != len(r.CompanyAffiliations) {
		t.Fatalf("list lengths differ: %d authors, %d affiliations",
			len(r.NonAcademicAuthors), len(r.CompanyAffiliations))
	}
	wantNames := []string{"First", "Second"}
	if !reflect.DeepEqual(r.NonAcademicAuthors, wantNames) {
		t.Errorf("NonAcademicAuthors = %v, want %v", r.NonAcademicAuthors, wantNames)
	}
	// The shared affiliation appears once per matched author.
	wantAffs := []string{shared, shared}
	if !reflect.DeepEqual(r.CompanyAffiliations, wantAffs) {
		t.Errorf("CompanyAffiliations = %v, want %v", r.CompanyAffiliations, wantAffs)
	}
}

func TestFilterNonAcademicMissingYearKept(t *testing.T) {
	papers := []types.Paper{
		{
			PMID:  "4",
			Title: "Undated industry paper.",
			Authors: []types.Author{
				{LastName: "Roy", Affiliations: []string{"Sun Pharma Ltd., Mumbai, India"}},
			},
		},
	}

	records, _ := FilterNonAcademic(papers, classify.Default())
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Year != "" {
		t.Errorf("Year = %q, want empty", records[0].Year)
	}
}

func TestFilterNonAcademicCollectiveAuthor(t *testing.T) {
	papers := []types.Paper{
		{
			PMID:  "5",
			Title: "Consortium-led trial.",
			Year:  "2020",
			Authors: []types.Author{
				{
					CollectiveName: "Acme Oncology Study Group",
					Affiliations:   []string{"Acme Therapeutics, San Diego, CA"},
				},
			},
		},
	}

	records, _ := FilterNonAcademic(papers, classify.Default())
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := records[0].NonAcademicAuthors[0]; got != "Acme Oncology Study Group" {
		t.Errorf("author name = %q, want the collective name", got)
	}
}

func TestFilterNonAcademicDeterministic(t *testing.T) {
	papers := samplePapers()
	vocab := classify.Default()

	first, firstStats := FilterNonAcademic(papers, vocab)
	second, secondStats := FilterNonAcademic(papers, vocab)

	if !reflect.DeepEqual(first, second) {
		t.Error("two passes over the same input disagree")
	}
	if firstStats != secondStats {
		t.Errorf("stats differ between passes: %+v vs %+v", firstStats, secondStats)
	}
	// Input papers must come through untouched.
	if !reflect.DeepEqual(papers, samplePapers()) {
		t.Error("input slice was mutated")
	}
}
