package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pubtext"
)

var _ pubtext.Publisher = (*Publisher)(nil)

// Selector fragments shared by several layouts.
const (
	headings    = "h1, h2, h3, h4"
	paragraphs  = "p"
	figureTags  = "figure, div.fig, div.figure"
	figCaptions = "figcaption, .caption, .fig-caption"
	tableTags   = "div.table-wrap, table"
	tabCaptions = "caption, .caption, .table-caption"
)

// leafDivs selects divs holding prose directly rather than wrapping other
// blocks or headings.
const leafDivs = "div:not(:has(p, div, section, figure, table, h1, h2, h3, h4, h5, h6))"

// Publisher opens HTML article pages of one publisher family.
type Publisher struct {
	layout Layout
	wrap   func(*Model) pubtext.Locator
}

// NewPublisher returns a Publisher driven only by layout.
func NewPublisher(layout Layout) *Publisher {
	return &Publisher{layout: layout}
}

// Name returns the publisher's identifier.
func (p *Publisher) Name() string {
	return p.layout.Name
}

// Layout returns the page layout the publisher matches against.
func (p *Publisher) Layout() Layout {
	return p.layout
}

// Open parses an HTML page and returns its locator.
// Returns ESTRUCTURE if the publisher's article wrapper is absent.
func (p *Publisher) Open(data []byte) (pubtext.Locator, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, pubtext.Errorf(pubtext.EINVALID, "%s: failed to parse HTML: %v", p.layout.Name, err)
	}
	m, err := NewModel(doc, p.layout)
	if err != nil {
		return nil, err
	}
	if p.wrap != nil {
		return p.wrap(m), nil
	}
	return m, nil
}

// Publishers returns every HTML publisher family, generic first.
func Publishers() []*Publisher {
	return []*Publisher{
		NewGenericPublisher(),
		NewPLOSPublisher(),
		NewWileyPublisher(),
		NewScienceDirectPublisher(),
		NewNaturePublisher(),
		NewSpringerPublisher(),
		NewOUPPublisher(),
		NewPNASPublisher(),
		NewCellPublisher(),
		NewHighWirePublisher(),
		NewFrontiersPublisher(),
		NewPMCPublisher(),
		NewACSPublisher(),
		NewMDPIPublisher(),
		NewELifePublisher(),
		NewSciencePublisher(),
	}
}
