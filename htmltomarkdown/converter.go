// Package htmltomarkdown renders flattened article sections as Markdown for
// previews.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pubtext"
)

// Ensure Converter implements pubtext.Converter at compile time.
var _ pubtext.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert section HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pubtext.Errorf(pubtext.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", pubtext.Errorf(pubtext.EINTERNAL, "convert to markdown: %v", err)
	}

	return result, nil
}

// Section renders one section as Markdown under a level-two heading.
// Returns "" for empty section HTML.
func (c *Converter) Section(kind pubtext.SectionKind, html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	md, err := c.Convert(html)
	if err != nil {
		return "", err
	}
	return "## " + kind.Title() + "\n\n" + strings.TrimSpace(md) + "\n", nil
}
