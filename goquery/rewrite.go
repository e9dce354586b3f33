package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pubtext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// placeholderClass marks the paragraphs that replace figures and tables.
const placeholderClass = "pubtext-placeholder"

// Placeholder text for rewritten nodes.
const (
	CitationToken = "CITATION"
	FigureFormat  = "[[FIGURE: %s]]"
	TableFormat   = "[[TABLE: %s]]"
)

// Strings rewrites citations, figures and tables in f into placeholder
// tokens and returns the whitespace-collapsed text of each block.
// Returns nil for fragments that were not produced by this package.
func (m *Model) Strings(f pubtext.Fragment) []string {
	sel, ok := m.rewrite(f)
	if !ok {
		return nil
	}
	var out []string
	m.blocks(sel).Each(func(_ int, b *goquery.Selection) {
		if text := pubtext.CollapseWhitespace(b.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// HTML rewrites f like Strings and returns the markup of its blocks.
func (m *Model) HTML(f pubtext.Fragment) (string, error) {
	sel, ok := m.rewrite(f)
	if !ok {
		return "", nil
	}
	var b strings.Builder
	var err error
	m.blocks(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var h string
		if h, err = goquery.OuterHtml(s); err != nil {
			return false
		}
		b.WriteString(h)
		b.WriteString("\n")
		return true
	})
	if err != nil {
		return "", pubtext.Errorf(pubtext.EINTERNAL, "render fragment: %v", err)
	}
	return b.String(), nil
}

func (m *Model) rewrite(f pubtext.Fragment) (*goquery.Selection, bool) {
	frag, ok := f.(Fragment)
	if !ok || frag.Len() == 0 {
		return nil, false
	}
	sel := frag.Selection
	if m.layout.Citations != "" {
		findSelf(sel, m.layout.Citations).Each(func(_ int, c *goquery.Selection) {
			toText(c.Nodes[0], CitationToken)
		})
	}
	if m.layout.Figures != "" {
		findSelf(sel, m.layout.Figures).Each(func(_ int, fig *goquery.Selection) {
			toPlaceholder(fig.Nodes[0], fmt.Sprintf(FigureFormat, caption(fig, m.layout.FigureCaption)))
		})
	}
	if m.layout.Tables != "" {
		findSelf(sel, m.layout.Tables).Each(func(_ int, tbl *goquery.Selection) {
			toPlaceholder(tbl.Nodes[0], fmt.Sprintf(TableFormat, caption(tbl, m.layout.TableCaption)))
		})
	}
	return sel, true
}

// blocks returns the outermost block nodes of sel in document order.
func (m *Model) blocks(sel *goquery.Selection) *goquery.Selection {
	selector := "p." + placeholderClass
	if m.layout.Blocks != "" {
		selector = m.layout.Blocks + ", " + selector
	}
	all := findSelf(sel, selector)
	return all.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return !within(s.Nodes[0].Parent, all.Nodes)
	})
}

// caption returns the collapsed caption text, or "" without a caption.
func caption(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return pubtext.CollapseWhitespace(s.Find(selector).First().Text())
}

// findSelf returns the nodes of sel matching selector together with their
// matching descendants, in document order.
func findSelf(sel *goquery.Selection, selector string) *goquery.Selection {
	var nodes []*html.Node
	sel.Each(func(_ int, s *goquery.Selection) {
		if s.Is(selector) {
			nodes = append(nodes, s.Nodes[0])
		}
		nodes = append(nodes, s.Find(selector).Nodes...)
	})
	return sel.Slice(0, 0).AddNodes(nodes...)
}

// toText turns n into a text node, dropping its subtree.
func toText(n *html.Node, text string) {
	clearChildren(n)
	n.Type = html.TextNode
	n.Data = text
	n.DataAtom = 0
	n.Namespace = ""
	n.Attr = nil
}

// toPlaceholder turns n into a placeholder paragraph holding text.
func toPlaceholder(n *html.Node, text string) {
	clearChildren(n)
	n.Type = html.ElementNode
	n.Data = "p"
	n.DataAtom = atom.P
	n.Namespace = ""
	n.Attr = []html.Attribute{{Key: "class", Val: placeholderClass}}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: " " + text + " "})
}

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}
