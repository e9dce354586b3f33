package goquery

// NewACSPublisher returns the publisher for pubs.acs.org.
func NewACSPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "acs",
		Root:          "div.article_content, #articleBody",
		Title:         []string{"h1.article_header-title", "span.hlFld-Title"},
		Abstract:      []string{"div.article_abstract", "#abstractBox"},
		Sections:      "div.NLM_sec_level_1",
		Heading:       "h2",
		Blocks:        "div.NLM_p, p",
		Citations:     "a.ref, a[href^='#ref']",
		Figures:       "figure",
		FigureCaption: "figcaption",
		Tables:        "div.NLM_table-wrap",
		TableCaption:  "div.NLM_caption",
		FullText:      []string{"div.NLM_p"},
	})
}
