package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pubtext"
	"golang.org/x/net/html"
)

var (
	_ pubtext.Locator         = (*Model)(nil)
	_ pubtext.FullTextLocator = (*Model)(nil)
	_ pubtext.XrefLocator     = (*Model)(nil)
	_ pubtext.HTMLLocator     = (*Model)(nil)
	_ pubtext.Fragment        = Fragment{}
)

// Layout describes where one publisher family puts things on its article
// pages. Selector lists are tried in order; the first one that matches wins.
type Layout struct {
	// Name identifies the publisher family (e.g., "plos").
	Name string

	// Root selects the article wrapper. Opening a page without it fails
	// with ESTRUCTURE.
	Root string

	// Title selectors. The citation_title meta tag and <title> are tried
	// after them.
	Title []string

	// Structural selectors that name a section directly by class or id.
	Abstract []string
	Results  []string
	Methods  []string

	// Sections selects section containers whose first Heading is matched
	// against the title vocabularies using Match.
	Sections string
	Heading  string
	Match    pubtext.MatchMode

	// FlatHeadings selects headings in pages without section containers;
	// a section runs until the next heading of the same or a higher level.
	FlatHeadings string

	// Blocks selects paragraph-level nodes. Each block flattens to one string.
	Blocks string

	Citations     string
	Figures       string
	FigureCaption string
	Tables        string
	TableCaption  string

	// FullText selectors locate the article body when results and methods
	// are not structured. Nodes inside the abstract are excluded.
	FullText []string

	// References selects bibliography entries; ReferenceTitle selects the
	// cited title inside an entry.
	References     string
	ReferenceTitle string
}

// Fragment is a selection of nodes in a parsed HTML page.
type Fragment struct {
	Selection *goquery.Selection
}

// Len returns the number of selected nodes.
func (f Fragment) Len() int {
	if f.Selection == nil {
		return 0
	}
	return f.Selection.Length()
}

// Model locates sections in one parsed HTML page according to a Layout.
// Strings mutates the page; a Model must not be reused afterwards.
type Model struct {
	doc    *goquery.Document
	root   *goquery.Selection
	layout Layout
}

// NewModel returns a Model for doc. Returns ESTRUCTURE if the layout's root
// wrapper is absent.
func NewModel(doc *goquery.Document, layout Layout) (*Model, error) {
	root := doc.Selection
	if layout.Root != "" {
		root = doc.Find(layout.Root).First()
		if root.Length() == 0 {
			return nil, pubtext.Errorf(pubtext.ESTRUCTURE, "%s: article wrapper %q not found", layout.Name, layout.Root)
		}
	}
	return &Model{doc: doc, root: root, layout: layout}, nil
}

// Abstract returns the abstract, located structurally and then by heading.
func (m *Model) Abstract() pubtext.Fragment {
	return m.locate(m.layout.Abstract, pubtext.AbstractTitles)
}

// Results returns the results section.
func (m *Model) Results() pubtext.Fragment {
	return m.locate(m.layout.Results, pubtext.ResultsTitles)
}

// Methods returns the methods section.
func (m *Model) Methods() pubtext.Fragment {
	return m.locate(m.layout.Methods, pubtext.MethodsTitles)
}

// FullText returns the article body without the abstract.
func (m *Model) FullText() pubtext.Fragment {
	sel := m.first(m.layout.FullText)
	if sel.Length() == 0 {
		return Fragment{Selection: sel}
	}
	abs := m.Abstract().(Fragment)
	if abs.Len() > 0 {
		sel = sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return !within(s.Nodes[0], abs.Selection.Nodes)
		})
	}
	return Fragment{Selection: sel}
}

// Title returns the article title. Publisher selectors are tried first,
// then the citation_title meta tag, then the <title> element.
func (m *Model) Title() string {
	for _, s := range m.layout.Title {
		if t := pubtext.CollapseWhitespace(m.doc.Find(s).First().Text()); t != "" {
			return t
		}
	}
	if t, ok := m.doc.Find("meta[name='citation_title']").Attr("content"); ok {
		if t = pubtext.CollapseWhitespace(t); t != "" {
			return t
		}
	}
	return pubtext.CollapseWhitespace(m.doc.Find("title").First().Text())
}

var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s"<>]+`)

// Xrefs returns the bibliography entries that carry a DOI.
func (m *Model) Xrefs() []pubtext.Xref {
	if m.layout.References == "" {
		return nil
	}
	var xrefs []pubtext.Xref
	m.root.Find(m.layout.References).Each(func(_ int, ref *goquery.Selection) {
		doi := ""
		ref.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			if strings.Contains(href, "doi.org/") || strings.Contains(href, "doi=10.") {
				doi = doiPattern.FindString(href)
			}
			return doi == ""
		})
		if doi == "" {
			doi = doiPattern.FindString(ref.Text())
		}
		if doi == "" {
			return
		}
		title := ""
		if m.layout.ReferenceTitle != "" {
			title = pubtext.CollapseWhitespace(ref.Find(m.layout.ReferenceTitle).First().Text())
		}
		xrefs = append(xrefs, pubtext.Xref{DOI: strings.TrimRight(doi, ".,;"), Title: title})
	})
	return xrefs
}

// locate applies the section-locator chain: structural selectors, then
// heading match over section containers, then a flat-heading scan.
func (m *Model) locate(structural []string, vocab pubtext.Vocabulary) pubtext.Fragment {
	if sel := m.first(structural); sel.Length() > 0 {
		return Fragment{Selection: sel.First()}
	}
	if sel := m.matchSections(vocab); sel != nil {
		return Fragment{Selection: sel}
	}
	if sel := m.matchFlatHeadings(vocab); sel != nil {
		return Fragment{Selection: sel}
	}
	return Fragment{}
}

// first returns the matches of the first selector that matches anything.
func (m *Model) first(selectors []string) *goquery.Selection {
	for _, s := range selectors {
		if sel := m.root.Find(s); sel.Length() > 0 {
			return sel
		}
	}
	return m.root.Slice(0, 0)
}

func (m *Model) matchSections(vocab pubtext.Vocabulary) *goquery.Selection {
	if m.layout.Sections == "" || m.layout.Heading == "" {
		return nil
	}
	var found *goquery.Selection
	m.root.Find(m.layout.Sections).EachWithBreak(func(_ int, sec *goquery.Selection) bool {
		heading := sec.Find(m.layout.Heading).First()
		if vocab.Match(heading.Text(), m.layout.Match) {
			found = sec
			return false
		}
		return true
	})
	return found
}

func (m *Model) matchFlatHeadings(vocab pubtext.Vocabulary) *goquery.Selection {
	if m.layout.FlatHeadings == "" {
		return nil
	}
	var found *goquery.Selection
	m.root.Find(m.layout.FlatHeadings).EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !vocab.Match(h.Text(), m.layout.Match) {
			return true
		}
		if body := h.NextUntil(m.stopAt(h)); body.Length() > 0 {
			found = body
			return false
		}
		return true
	})
	return found
}

// stopAt returns the selector ending a flat section opened by heading h.
func (m *Model) stopAt(h *goquery.Selection) string {
	name := goquery.NodeName(h)
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		stop := make([]string, 0, 6)
		for l := byte('1'); l <= name[1]; l++ {
			stop = append(stop, "h"+string(l))
		}
		return strings.Join(stop, ", ")
	}
	return m.layout.FlatHeadings
}

// within reports whether n is one of roots or a descendant of one.
func within(n *html.Node, roots []*html.Node) bool {
	for ; n != nil; n = n.Parent {
		for _, r := range roots {
			if n == r {
				return true
			}
		}
	}
	return false
}
