package trafilatura

import (
	"bytes"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Publisher implements pubtext.Publisher at compile time.
var _ pubtext.Publisher = (*Publisher)(nil)

// Publisher opens pages from unknown publishers. go-trafilatura strips the
// page boilerplate first, then the generic heading model reads what is left.
type Publisher struct {
	generic *goquery.Publisher
}

// NewPublisher creates a new Publisher.
func NewPublisher() *Publisher {
	return &Publisher{generic: goquery.NewGenericPublisher()}
}

// Name returns the publisher's identifier.
func (p *Publisher) Name() string {
	return "trafilatura"
}

// Open extracts the main content of an HTML page and returns its locator.
// Returns ESTRUCTURE if no main content could be found.
func (p *Publisher) Open(data []byte) (pubtext.Locator, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, pubtext.Errorf(pubtext.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(data), opts)
	if err != nil {
		return nil, pubtext.Errorf(pubtext.ESTRUCTURE, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, pubtext.Errorf(pubtext.ESTRUCTURE, "trafilatura: no main content")
	}

	var buf bytes.Buffer
	buf.WriteString("<html><head><title>")
	buf.WriteString(html.EscapeString(result.Metadata.Title))
	buf.WriteString("</title></head><body>")
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, pubtext.Errorf(pubtext.EINTERNAL, "render content: %v", err)
	}
	buf.WriteString("</body></html>")

	return p.generic.Open(buf.Bytes())
}
