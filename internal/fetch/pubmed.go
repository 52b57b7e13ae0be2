// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves paper metadata from PubMed through the NCBI
// E-utilities: esearch resolves a query to PMIDs, efetch returns the
// article records for those PMIDs.
package fetch

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/paperscout/internal/httputil"
	"github.com/pdiddy/paperscout/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const defaultMaxResults = 10

// Client queries the PubMed E-utilities.
type Client struct {
	// Client is the HTTP client used for all requests.
	Client *http.Client

	// Config carries timeout, contact, and result-limit settings.
	Config types.PubMedConfig
}

// NewClient returns a Client with an http.Client built from cfg.
func NewClient(cfg types.PubMedConfig) *Client {
	return &Client{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// esearch JSON response (retmode=json).
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
	Error  string        `json:"error"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// Search resolves query to a list of PMIDs via esearch, requesting at
// most Config.MaxResults IDs (default 10). PubMed search syntax passes
// through untouched, so field tags like "crispr[Title]" work.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty query")
	}

	maxResults := c.Config.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"json"},
	}
	c.addContactParams(params)

	resp, err := httputil.Get(ctx, c.Client, "PubMed esearch", esearchBase+"?"+params.Encode(), c.Config.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var er esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	if er.Error != "" {
		return nil, fmt.Errorf("PubMed esearch error: %s", er.Error)
	}

	return er.Result.IDList, nil
}

// efetch XML response (PubmedArticleSet).
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string        `xml:"MedlineCitation>PMID"`
	Article articleRecord `xml:"MedlineCitation>Article"`
}

type articleRecord struct {
	Title   string       `xml:"ArticleTitle"`
	PubDate pubDate      `xml:"Journal>JournalIssue>PubDate"`
	Authors []authorNode `xml:"AuthorList>Author"`
}

type pubDate struct {
	Year        string `xml:"Year"`
	MedlineDate string `xml:"MedlineDate"`
}

type authorNode struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	Initials       string   `xml:"Initials"`
	CollectiveName string   `xml:"CollectiveName"`
	Affiliations   []string `xml:"AffiliationInfo>Affiliation"`
}

// Fetch retrieves full article metadata for the given PMIDs via efetch,
// in one batched request. An empty PMID list returns no papers without
// touching the network.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]types.Paper, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
	}
	c.addContactParams(params)

	resp, err := httputil.Get(ctx, c.Client, "PubMed efetch", efetchBase+"?"+params.Encode(), c.Config.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var set articleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}

	papers := make([]types.Paper, 0, len(set.Articles))
	for _, a := range set.Articles {
		papers = append(papers, toPaper(a))
	}
	return papers, nil
}

// FetchQuery runs the two-step pipeline: esearch for PMIDs, then efetch
// for their metadata. A query with no matches returns an empty result
// without issuing the efetch request. Progress diagnostics go to w.
func (c *Client) FetchQuery(ctx context.Context, query string, w io.Writer) ([]types.Paper, error) {
	pmids, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "esearch matched %d PMID(s)\n", len(pmids))
	if len(pmids) == 0 {
		return nil, nil
	}
	return c.Fetch(ctx, pmids)
}

// addContactParams attaches the E-utilities politeness parameters. NCBI
// asks every client to identify itself via tool and email; api_key
// raises the per-second request allowance.
func (c *Client) addContactParams(params url.Values) {
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
}

func toPaper(a pubmedArticle) types.Paper {
	p := types.Paper{
		PMID:  strings.TrimSpace(a.PMID),
		Title: strings.TrimSpace(a.Article.Title),
		Year:  a.Article.PubDate.year(),
	}
	for _, au := range a.Article.Authors {
		author := types.Author{
			LastName:       strings.TrimSpace(au.LastName),
			ForeName:       strings.TrimSpace(au.ForeName),
			Initials:       strings.TrimSpace(au.Initials),
			CollectiveName: strings.TrimSpace(au.CollectiveName),
		}
		for _, aff := range au.Affiliations {
			if aff = strings.TrimSpace(aff); aff != "" {
				author.Affiliations = append(author.Affiliations, aff)
			}
		}
		p.Authors = append(p.Authors, author)
	}
	return p
}

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// year returns the publication year: the Year element when present,
// otherwise the first four-digit run in MedlineDate, which PubMed uses
// for ranges like "2023 Nov-Dec". Empty when neither yields a year.
func (d pubDate) year() string {
	if y := strings.TrimSpace(d.Year); y != "" {
		return y
	}
	return yearPattern.FindString(d.MedlineDate)
}
