package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/pubtext"
)

var _ pubtext.Publisher = (*Publisher)(nil)

// Publisher opens XML articles of one dialect.
type Publisher struct {
	layout Layout
}

// NewPublisher returns a Publisher for layout.
func NewPublisher(layout Layout) *Publisher {
	return &Publisher{layout: layout}
}

// Name returns the dialect's identifier.
func (p *Publisher) Name() string {
	return p.layout.Name
}

// Open parses an XML document and returns its locator.
// Returns EINVALID for malformed XML and ESTRUCTURE if the article element
// is absent.
func (p *Publisher) Open(data []byte) (pubtext.Locator, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, pubtext.Errorf(pubtext.EINVALID, "%s: failed to parse XML: %v", p.layout.Name, err)
	}
	return NewModel(doc, p.layout)
}

// Publishers returns every XML dialect.
func Publishers() []*Publisher {
	return []*Publisher{NewJATSPublisher(), NewElsevierPublisher()}
}
