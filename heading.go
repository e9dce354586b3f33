package pubtext

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MatchMode selects how a heading is compared against a vocabulary.
type MatchMode int

const (
	// MatchExact requires the normalized heading to equal a term.
	MatchExact MatchMode = iota

	// MatchSuffix also accepts headings ending in a term on a word
	// boundary ("2.4 Statistical methods" matches "methods").
	MatchSuffix
)

// Vocabulary is an immutable set of section title synonyms.
type Vocabulary struct {
	terms []string
}

// NewVocabulary returns a vocabulary of the normalized terms.
func NewVocabulary(terms ...string) Vocabulary {
	v := Vocabulary{terms: make([]string, 0, len(terms))}
	for _, t := range terms {
		v.terms = append(v.terms, NormalizeHeading(t))
	}
	return v
}

// Section title vocabularies. "results and discussiom" is a publisher typo
// seen in live markup and is matched deliberately.
var (
	AbstractTitles = NewVocabulary("abstract")

	ResultsTitles = NewVocabulary(
		"results",
		"results and discussion",
		"result",
		"results and discussiom",
	)

	MethodsTitles = NewVocabulary(
		"methods",
		"materials and methods",
		"material and methods",
		"experimental procedures",
		"experimental section",
		"methods and materials",
	)
)

// Terms returns a copy of the vocabulary's normalized terms.
func (v Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Match reports whether heading names a section in the vocabulary.
func (v Vocabulary) Match(heading string, mode MatchMode) bool {
	h := NormalizeHeading(heading)
	if h == "" {
		return false
	}
	for _, t := range v.terms {
		if h == t {
			return true
		}
		if mode == MatchSuffix && strings.HasSuffix(h, " "+t) {
			return true
		}
	}
	return false
}

// headingNumber matches leading section numbering such as "2.", "2.1" or "II.".
var headingNumber = regexp.MustCompile(`^(?:\d+(?:\.\d+)*\.?|[ivx]+\.)\s+`)

// NormalizeHeading case-folds a heading, applies NFKC, collapses whitespace
// and drops leading section numbers and trailing ":" or ".".
func NormalizeHeading(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	s = strings.Join(strings.Fields(s), " ")
	s = headingNumber.ReplaceAllString(s, "")
	s = strings.TrimRight(s, ":.")
	return strings.TrimSpace(s)
}
