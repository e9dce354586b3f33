package mock

import "github.com/fwojciec/pubtext"

var (
	_ pubtext.Publisher         = (*Publisher)(nil)
	_ pubtext.PublisherDetector = (*PublisherDetector)(nil)
	_ pubtext.Resolver          = (*Resolver)(nil)
)

// Publisher is a mock implementation of pubtext.Publisher.
type Publisher struct {
	NameFn func() string
	OpenFn func(data []byte) (pubtext.Locator, error)
}

func (p *Publisher) Name() string {
	return p.NameFn()
}

func (p *Publisher) Open(data []byte) (pubtext.Locator, error) {
	return p.OpenFn(data)
}

// PublisherDetector is a mock implementation of pubtext.PublisherDetector.
type PublisherDetector struct {
	DetectFn func(data []byte) string
}

func (d *PublisherDetector) Detect(data []byte) string {
	return d.DetectFn(data)
}

// Resolver is a mock implementation of pubtext.Resolver.
type Resolver struct {
	ResolveFn func(article *pubtext.Article, data []byte) (*pubtext.Journal, error)
}

func (r *Resolver) Resolve(article *pubtext.Article, data []byte) (*pubtext.Journal, error) {
	return r.ResolveFn(article, data)
}
