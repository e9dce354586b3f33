package pubtext

// Fragment is an ordered selection of document-tree nodes that belong to one
// logical section. The node representation is owned by the Locator that
// produced it; callers only hand fragments back to that Locator.
type Fragment interface {
	// Len returns the number of nodes in the fragment.
	Len() int
}

// IsEmpty reports whether f is nil or selects no nodes.
func IsEmpty(f Fragment) bool {
	return f == nil || f.Len() == 0
}

// Locator answers where the sections of one parsed article are and how to
// flatten them. A Locator owns its parsed tree; Strings rewrites the tree in
// place, so a Locator must not be reused after its fragments were flattened.
type Locator interface {
	// Abstract, Results and Methods return the located section, or an empty
	// fragment if the article has none. They never fail.
	Abstract() Fragment
	Results() Fragment
	Methods() Fragment

	// Title returns the article title, or "" if none could be found.
	Title() string

	// Strings replaces citations, figures and tables in the fragment with
	// placeholder tokens and returns one whitespace-collapsed string per
	// paragraph.
	Strings(f Fragment) []string
}

// FullTextLocator is implemented by locators that can return the article
// body when neither Results nor Methods are structured.
type FullTextLocator interface {
	FullText() Fragment
}

// XrefLocator is implemented by locators that can read the bibliography.
type XrefLocator interface {
	Xrefs() []Xref
}

// Xref is one bibliography cross-reference.
type Xref struct {
	DOI   string `json:"doi"`
	Title string `json:"title"`
}

// memo caches one computed value, including a zero or empty one.
type memo[T any] struct {
	done bool
	val  T
}

func (m *memo[T]) get(fn func() T) T {
	if !m.done {
		m.val = fn()
		m.done = true
	}
	return m.val
}

// Document wraps a Locator and memoizes each accessor, so the locator
// heuristics run at most once per article. A Document is not safe for
// concurrent use.
type Document struct {
	loc Locator

	abstract memo[Fragment]
	results  memo[Fragment]
	methods  memo[Fragment]
	fullText memo[Fragment]
	title    memo[string]
	xrefs    memo[[]Xref]
}

// NewDocument returns a Document backed by loc.
func NewDocument(loc Locator) *Document {
	return &Document{loc: loc}
}

// Abstract returns the memoized abstract fragment.
func (d *Document) Abstract() Fragment {
	return d.abstract.get(d.loc.Abstract)
}

// Results returns the memoized results fragment.
func (d *Document) Results() Fragment {
	return d.results.get(d.loc.Results)
}

// Methods returns the memoized methods fragment.
func (d *Document) Methods() Fragment {
	return d.methods.get(d.loc.Methods)
}

// FullText returns the memoized full-text fragment. It is nil when the
// locator does not implement FullTextLocator.
func (d *Document) FullText() Fragment {
	return d.fullText.get(func() Fragment {
		if ft, ok := d.loc.(FullTextLocator); ok {
			return ft.FullText()
		}
		return nil
	})
}

// Title returns the memoized title.
func (d *Document) Title() string {
	return d.title.get(d.loc.Title)
}

// Xrefs returns the memoized cross-references. It is nil when the locator
// does not implement XrefLocator.
func (d *Document) Xrefs() []Xref {
	return d.xrefs.get(func() []Xref {
		if xl, ok := d.loc.(XrefLocator); ok {
			return xl.Xrefs()
		}
		return nil
	})
}

// Strings flattens a fragment through the underlying locator.
// Empty fragments flatten to nil without touching the tree.
func (d *Document) Strings(f Fragment) []string {
	if IsEmpty(f) {
		return nil
	}
	return d.loc.Strings(f)
}

// HasAllSections reports whether abstract, results and methods were all found.
func (d *Document) HasAllSections() bool {
	return !IsEmpty(d.Abstract()) && !IsEmpty(d.Results()) && !IsEmpty(d.Methods())
}

// HasResultsOrMethods reports whether at least one of results or methods
// was found.
func (d *Document) HasResultsOrMethods() bool {
	return !IsEmpty(d.Results()) || !IsEmpty(d.Methods())
}

// Missing returns the absent sections as a compact flag: "a" for the
// abstract, "m" for methods and "r" for results, in that order.
func (d *Document) Missing() string {
	var s string
	if IsEmpty(d.Abstract()) {
		s += "a"
	}
	if IsEmpty(d.Methods()) {
		s += "m"
	}
	if IsEmpty(d.Results()) {
		s += "r"
	}
	return s
}
