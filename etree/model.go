// Package etree implements document models for full-text XML articles
// (JATS as served by PubMed Central, and Elsevier's full-text XML).
package etree

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pubtext"
)

var (
	_ pubtext.Locator         = (*Model)(nil)
	_ pubtext.FullTextLocator = (*Model)(nil)
	_ pubtext.XrefLocator     = (*Model)(nil)
	_ pubtext.Fragment        = Fragment(nil)
)

// placeholderAttr marks the block elements that replace figures and tables.
const placeholderAttr = "pubtext-placeholder"

// Placeholder text for rewritten elements.
const (
	CitationToken = "CITATION"
	FigureFormat  = "[[FIGURE: %s]]"
	TableFormat   = "[[TABLE: %s]]"
)

// Tag matches elements by their prefixed tag and, when Attr is set, by an
// attribute value.
type Tag struct {
	Name  string
	Attr  string
	Value string
}

func (t Tag) matches(e *etree.Element) bool {
	if e.FullTag() != t.Name {
		return false
	}
	return t.Attr == "" || e.SelectAttrValue(t.Attr, "") == t.Value
}

func matchAny(tags []Tag, e *etree.Element) bool {
	for _, t := range tags {
		if t.matches(e) {
			return true
		}
	}
	return false
}

// Layout describes one XML dialect. Paths use etree's XPath subset and are
// evaluated relative to the article root; the first path that matches wins.
type Layout struct {
	Name string

	// Root paths locate the article element. Documents without it fail
	// with ESTRUCTURE.
	Root []string

	Title    []string
	Abstract []string
	Results  []string
	Methods  []string

	// Section elements are scanned in document order and matched on the
	// text of their Heading child.
	Section Tag
	Heading string
	Match   pubtext.MatchMode

	Blocks    []Tag
	Citations []Tag
	Figures   []Tag
	Tables    []Tag
	Caption   string

	FullText []string

	References     Tag
	ReferenceDOI   []string
	ReferenceTitle []string
}

// Fragment is a list of elements in a parsed XML document.
type Fragment []*etree.Element

// Len returns the number of elements.
func (f Fragment) Len() int { return len(f) }

// Model locates sections in one parsed XML document according to a Layout.
// Strings mutates the document; a Model must not be reused afterwards.
type Model struct {
	root   *etree.Element
	layout Layout
}

// NewModel returns a Model for doc. Returns ESTRUCTURE if none of the
// layout's root paths match.
func NewModel(doc *etree.Document, layout Layout) (*Model, error) {
	for _, p := range layout.Root {
		if root := doc.FindElement(p); root != nil {
			return &Model{root: root, layout: layout}, nil
		}
	}
	return nil, pubtext.Errorf(pubtext.ESTRUCTURE, "%s: article element not found", layout.Name)
}

// Abstract returns the abstract.
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

// FullText returns the article body.
func (m *Model) FullText() pubtext.Fragment {
	if e := m.first(m.layout.FullText); e != nil {
		return Fragment{e}
	}
	return Fragment(nil)
}

// Title returns the article title, or "".
func (m *Model) Title() string {
	if e := m.first(m.layout.Title); e != nil {
		return pubtext.CollapseWhitespace(text(e))
	}
	return ""
}

var doiPattern = regexp.MustCompile(`10\.\d{4,9}/\S+`)

// Xrefs returns the bibliography entries that carry a DOI.
func (m *Model) Xrefs() []pubtext.Xref {
	if m.layout.References.Name == "" {
		return nil
	}
	var xrefs []pubtext.Xref
	walk(m.root, func(e *etree.Element) bool {
		if !m.layout.References.matches(e) {
			return true
		}
		doi := doiPattern.FindString(firstText(e, m.layout.ReferenceDOI))
		if doi != "" {
			xrefs = append(xrefs, pubtext.Xref{
				DOI:   strings.TrimRight(doi, ".,;"),
				Title: firstText(e, m.layout.ReferenceTitle),
			})
		}
		return false
	})
	return xrefs
}

// Strings replaces citations, figures and tables in f with placeholder
// tokens and returns the whitespace-collapsed text of each block.
func (m *Model) Strings(f pubtext.Fragment) []string {
	frag, ok := f.(Fragment)
	if !ok || len(frag) == 0 {
		return nil
	}
	m.rewrite(frag)

	var out []string
	for _, root := range frag {
		walk(root, func(e *etree.Element) bool {
			if !m.isBlock(e) {
				return true
			}
			if s := pubtext.CollapseWhitespace(text(e)); s != "" {
				out = append(out, s)
			}
			return false
		})
	}
	return out
}

func (m *Model) rewrite(frag Fragment) {
	var cites, figs, tables []*etree.Element
	for _, root := range frag {
		walk(root, func(e *etree.Element) bool {
			switch {
			case matchAny(m.layout.Citations, e):
				cites = append(cites, e)
			case matchAny(m.layout.Figures, e):
				figs = append(figs, e)
			case matchAny(m.layout.Tables, e):
				tables = append(tables, e)
			}
			return true
		})
	}
	for _, e := range cites {
		replace(e, etree.NewText(CitationToken))
	}
	for _, e := range figs {
		replace(e, m.placeholder(fmt.Sprintf(FigureFormat, m.caption(e))))
	}
	for _, e := range tables {
		replace(e, m.placeholder(fmt.Sprintf(TableFormat, m.caption(e))))
	}
}

func (m *Model) placeholder(s string) *etree.Element {
	tag := "p"
	if len(m.layout.Blocks) > 0 {
		tag = m.layout.Blocks[0].Name
	}
	e := etree.NewElement(tag)
	e.CreateAttr(placeholderAttr, "true")
	e.SetText(" " + s + " ")
	return e
}

func (m *Model) caption(e *etree.Element) string {
	if m.layout.Caption == "" {
		return ""
	}
	c := e.FindElement(m.layout.Caption)
	if c == nil {
		return ""
	}
	return pubtext.CollapseWhitespace(text(c))
}

func (m *Model) isBlock(e *etree.Element) bool {
	return matchAny(m.layout.Blocks, e) || e.SelectAttr(placeholderAttr) != nil
}

// locate tries the structural paths, then the section headings.
func (m *Model) locate(paths []string, vocab pubtext.Vocabulary) pubtext.Fragment {
	if e := m.first(paths); e != nil {
		return Fragment{e}
	}
	if m.layout.Section.Name == "" {
		return Fragment(nil)
	}
	var found *etree.Element
	walk(m.root, func(e *etree.Element) bool {
		if found != nil {
			return false
		}
		if m.layout.Section.matches(e) && vocab.Match(m.heading(e), m.layout.Match) {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		return Fragment(nil)
	}
	return Fragment{found}
}

func (m *Model) heading(sec *etree.Element) string {
	for _, c := range sec.ChildElements() {
		if c.FullTag() == m.layout.Heading {
			return text(c)
		}
	}
	return ""
}

func (m *Model) first(paths []string) *etree.Element {
	for _, p := range paths {
		if e := m.root.FindElement(p); e != nil {
			return e
		}
	}
	return nil
}

// firstText returns the collapsed text of the first path matching under e.
func firstText(e *etree.Element, paths []string) string {
	for _, p := range paths {
		if c := e.FindElement(p); c != nil {
			if s := pubtext.CollapseWhitespace(text(c)); s != "" {
				return s
			}
		}
	}
	return ""
}

// walk visits e and its descendants in document order. Children of an
// element are skipped when fn returns false for it.
func walk(e *etree.Element, fn func(*etree.Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.ChildElements() {
		walk(c, fn)
	}
}

// text concatenates the character data under e.
func text(e *etree.Element) string {
	var b strings.Builder
	var collect func(*etree.Element)
	collect = func(e *etree.Element) {
		for _, t := range e.Child {
			switch t := t.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				collect(t)
			}
		}
	}
	collect(e)
	return b.String()
}

// replace swaps e for t in e's parent.
func replace(e *etree.Element, t etree.Token) {
	parent := e.Parent()
	if parent == nil {
		return
	}
	i := e.Index()
	parent.RemoveChildAt(i)
	parent.InsertChildAt(i, t)
}
