package pubtext

import (
	"context"
	"time"
)

// Publisher opens the raw bytes of one article as a Locator. Each publisher
// family knows its own page layout.
type Publisher interface {
	// Name returns the publisher's identifier (e.g., "plos", "jats").
	Name() string

	// Open parses data into a fresh tree and returns its locator.
	// Returns EINVALID if data cannot be parsed and ESTRUCTURE if the
	// publisher's article wrapper is absent.
	Open(data []byte) (Locator, error)
}

// PublisherDetector identifies the publisher of an article from its bytes.
type PublisherDetector interface {
	// Detect returns the publisher name, or "" if it cannot be determined.
	Detect(data []byte) string
}

// Detectors tries each detector in order and returns the first publisher
// name found.
type Detectors []PublisherDetector

// Detect implements PublisherDetector.
func (ds Detectors) Detect(data []byte) string {
	for _, d := range ds {
		if name := d.Detect(data); name != "" {
			return name
		}
	}
	return ""
}

// JournalSource records how a journal's publisher was resolved.
type JournalSource string

// Resolution sources, in the order they are tried.
const (
	SourceRegistry JournalSource = "registry"
	SourceDetected JournalSource = "detected"
	SourceFallback JournalSource = "fallback"
)

// Journal binds an ISSN to the publisher whose layout its articles use.
type Journal struct {
	ISSN      string
	Name      string
	Publisher Publisher

	// RequireAll fails articles that lack any of abstract, results or methods.
	RequireAll bool

	// Source is set by Resolve.
	Source JournalSource
}

// Resolver selects the journal and publisher for an article.
type Resolver interface {
	// Resolve returns the journal for the article.
	// Returns ENOTFOUND if no publisher can handle it.
	Resolve(article *Article, data []byte) (*Journal, error)
}

// Result is the outcome of extracting one article.
type Result struct {
	Record *Record
	State  State

	// Stage is the last non-terminal state the article reached: fetched,
	// parsed or classified. It tells where a failed article stopped.
	Stage State

	Missing   string
	Publisher string
	Title     string
	Xrefs     []Xref
}

// Extractor turns the raw bytes of one article into a cleaned record.
type Extractor interface {
	// Extract runs the extraction pipeline. Failures that are specific to
	// the article (unparsable bytes, missing wrapper, missing required
	// sections) are reported as a Result in StateFailed along with an
	// application error.
	Extract(article *Article, data []byte) (*Result, error)
}

// HTMLLocator is implemented by locators that can render a flattened
// fragment back to HTML for previews.
type HTMLLocator interface {
	// HTML rewrites the fragment like Strings does and returns its markup.
	HTML(f Fragment) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// RecordStore persists cleaned records.
type RecordStore interface {
	// ModTime returns the modification time of the stored record and
	// whether it exists.
	ModTime(ctx context.Context, pmid string) (time.Time, bool, error)

	// Save replaces the stored record in one step; readers never observe
	// a partially written record.
	Save(ctx context.Context, pmid string, rec *Record) error

	// Load reads a stored record.
	// Returns ENOTFOUND if the record does not exist.
	Load(ctx context.Context, pmid string) (*Record, error)

	// Touch marks an existing record as current without rewriting it.
	Touch(ctx context.Context, pmid string) error
}
