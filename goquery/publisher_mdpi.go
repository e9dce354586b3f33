package goquery

// NewMDPIPublisher returns the publisher for mdpi.com. MDPI tags sections
// with a type attribute that names the section directly.
func NewMDPIPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "mdpi",
		Root:          "div.html-body, article",
		Title:         []string{"h1.title"},
		Abstract:      []string{"section.html-abstract", "div.art-abstract"},
		Results:       []string{"section[type='results']"},
		Methods:       []string{"section[type='methods']", "section[type='materials|methods']"},
		Sections:      "section",
		Heading:       "h2",
		Blocks:        "div.html-p, p",
		Citations:     "a.html-bibr",
		Figures:       "div.html-fig-wrap, div.html-fig_container",
		FigureCaption: "div.html-fig_description, div.html-caption",
		Tables:        "div.html-table-wrap",
		TableCaption:  "div.html-caption",
		FullText:      []string{"div.html-p"},
	})
}
