package readability

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Publisher implements pubtext.Publisher at compile time.
var _ pubtext.Publisher = (*Publisher)(nil)

// Publisher opens pages from unknown publishers using go-readability to
// find the article body, then reads it with the generic heading model.
type Publisher struct {
	generic *goquery.Publisher
}

// NewPublisher creates a new Publisher.
func NewPublisher() *Publisher {
	return &Publisher{generic: goquery.NewGenericPublisher()}
}

// Name returns the publisher's identifier.
func (p *Publisher) Name() string {
	return "readability"
}

// Open extracts the article body of an HTML page and returns its locator.
func (p *Publisher) Open(data []byte) (pubtext.Locator, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, pubtext.Errorf(pubtext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, pubtext.Errorf(pubtext.ESTRUCTURE, "readability: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, pubtext.Errorf(pubtext.ESTRUCTURE, "readability: no article content")
	}

	page := "<html><head><title>" + html.EscapeString(article.Title) + "</title></head><body>" +
		article.Content + "</body></html>"
	return p.generic.Open([]byte(page))
}
