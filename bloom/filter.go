// Package bloom provides approximate DOI deduplication using Bloom filters.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/pubtext"
)

// Filter wraps a Bloom filter for DOI deduplication. DOIs are compared
// case-insensitively, with resolver prefixes removed.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a DOI to the filter.
func (f *Filter) Add(doi string) {
	f.f.AddString(NormalizeDOI(doi))
}

// Test returns true if the DOI might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(doi string) bool {
	return f.f.TestString(NormalizeDOI(doi))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Unique returns the cross-references whose DOI was not seen before,
// adding each to the filter. Entries without a DOI are dropped.
func (f *Filter) Unique(xrefs []pubtext.Xref) []pubtext.Xref {
	var out []pubtext.Xref
	for _, x := range xrefs {
		doi := NormalizeDOI(x.DOI)
		if doi == "" || f.f.TestOrAddString(doi) {
			continue
		}
		out = append(out, x)
	}
	return out
}

// doiPrefixes are stripped from DOIs before comparison.
var doiPrefixes = []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/", "doi:"}

// NormalizeDOI returns the lower-cased DOI without resolver prefix.
func NormalizeDOI(doi string) string {
	doi = strings.ToLower(strings.TrimSpace(doi))
	for _, p := range doiPrefixes {
		doi = strings.TrimPrefix(doi, p)
	}
	return strings.TrimSpace(doi)
}
