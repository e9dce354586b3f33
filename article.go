package pubtext

import (
	"context"
	"strings"
	"time"
)

// Article identifies one journal article. Identities are read from the
// journal registry and never mutated by extraction.
type Article struct {
	PMID    string `json:"pmid"`
	DOI     string `json:"doi"`
	ISSN    string `json:"issn"`
	Journal string `json:"journal"`
	Year    int    `json:"year"`
	PMCID   string `json:"pmcid,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.PMID == "" {
		return Errorf(EINVALID, "article pmid required")
	}
	if a.ISSN != "" && NormalizeISSN(a.ISSN) == "" {
		return Errorf(EINVALID, "article %s: malformed issn %q", a.PMID, a.ISSN)
	}
	return nil
}

// URL returns the DOI resolver URL for the article, or "" without a DOI.
func (a *Article) URL() string {
	if a.DOI == "" {
		return ""
	}
	return "https://doi.org/" + a.DOI
}

// NormalizeISSN returns the ISSN in canonical NNNN-NNNX form.
// Returns "" if s is not an ISSN.
func NormalizeISSN(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		switch {
		case r >= '0' && r <= '9', r == 'X':
			b.WriteRune(r)
		case r == '-' || r == ' ':
		default:
			return ""
		}
	}
	digits := b.String()
	if len(digits) != 8 || strings.ContainsRune(digits[:7], 'X') {
		return ""
	}
	return digits[:4] + "-" + digits[4:]
}

// State is a point in the per-article extraction lifecycle.
type State string

// Extraction states. Fetched, parsed and classified are transient; an
// article's stored status ends in complete, partial, failed or skipped.
const (
	StateFetched    State = "fetched"
	StateParsed     State = "parsed"
	StateClassified State = "classified"
	StateComplete   State = "complete"
	StatePartial    State = "partial"
	StateFailed     State = "failed"
	StateSkipped    State = "skipped"
)

// Status is the outcome of the most recent extraction of an article.
type Status struct {
	State      State     `json:"state"`
	Missing    string    `json:"missing"`
	Publisher  string    `json:"publisher"`
	RecordHash string    `json:"recordHash"`
	RunID      string    `json:"runId"`
	Error      string    `json:"error,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ArticleService represents a service for managing article identities and
// their extraction status.
type ArticleService interface {
	// CreateArticle registers a new article identity.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByPMID retrieves an article by PubMed ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByPMID(ctx context.Context, pmid string) (*Article, error)

	// FindArticles retrieves articles matching the filter, ordered by pmid.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// FindStatus retrieves the last extraction status of an article.
	// Returns ENOTFOUND if the article has never been processed.
	FindStatus(ctx context.Context, pmid string) (*Status, error)

	// UpdateStatus records the outcome of an extraction.
	// Returns ENOTFOUND if the article does not exist.
	UpdateStatus(ctx context.Context, pmid string, status *Status) error

	// CountByState returns the number of articles per stored state.
	CountByState(ctx context.Context) (map[State]int, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	PMIDs []string `json:"pmids"`
	ISSN  *string  `json:"issn"`
	State *State   `json:"state"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleSource supplies the raw bytes of fetched articles.
type ArticleSource interface {
	// Open returns the article's HTML or XML bytes and their modification
	// time. Returns ENOTFOUND if the article has not been fetched.
	Open(ctx context.Context, article *Article) ([]byte, time.Time, error)
}
