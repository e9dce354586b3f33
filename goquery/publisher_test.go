package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Publisher implements pubtext.Publisher at compile time.
var _ pubtext.Publisher = (*goquery.Publisher)(nil)

// wrappers holds the smallest page each publisher accepts.
var wrappers = map[string]string{
	"generic":       `<html><body></body></html>`,
	"plos":          `<div id="artText"></div>`,
	"wiley":         `<div class="article__body"></div>`,
	"sciencedirect": `<article></article>`,
	"nature":        `<div class="c-article-body"></div>`,
	"springer":      `<main><article></article></main>`,
	"oup":           `<div class="widget-ArticleFulltext"></div>`,
	"pnas":          `<article></article>`,
	"cell":          `<div class="article"></div>`,
	"highwire":      `<div class="fulltext-view"></div>`,
	"frontiers":     `<div class="JournalFullText"></div>`,
	"pmc":           `<main><article></article></main>`,
	"acs":           `<div class="article_content"></div>`,
	"mdpi":          `<div class="html-body"></div>`,
	"elife":         `<main></main>`,
	"science":       `<article></article>`,
}

// open returns the locator for page using the named publisher.
func open(t *testing.T, name, page string) pubtext.Locator {
	t.Helper()
	for _, p := range goquery.Publishers() {
		if p.Name() == name {
			loc, err := p.Open([]byte(page))
			require.NoError(t, err)
			return loc
		}
	}
	t.Fatalf("unknown publisher %q", name)
	return nil
}

func TestPublishers(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(wrappers))
	for _, p := range goquery.Publishers() {
		names = append(names, p.Name())
		assert.Equal(t, p.Name(), p.Layout().Name)
	}

	assert.Len(t, names, len(wrappers))
	assert.Equal(t, "generic", names[0])
}

func TestPublishers_EmptySectionsAreSafe(t *testing.T) {
	t.Parallel()

	for _, p := range goquery.Publishers() {
		t.Run(p.Name(), func(t *testing.T) {
			t.Parallel()

			page, ok := wrappers[p.Name()]
			require.True(t, ok, "no wrapper page for %s", p.Name())

			loc, err := p.Open([]byte(page))
			require.NoError(t, err)
			doc := pubtext.NewDocument(loc)

			assert.True(t, pubtext.IsEmpty(doc.Abstract()))
			assert.True(t, pubtext.IsEmpty(doc.Results()))
			assert.True(t, pubtext.IsEmpty(doc.Methods()))
			assert.True(t, pubtext.IsEmpty(doc.FullText()))
			assert.Equal(t, "amr", doc.Missing())
			assert.Nil(t, doc.Strings(doc.Results()))
			assert.Empty(t, doc.Xrefs())
		})
	}
}

func TestPublishers_MissingWrapper(t *testing.T) {
	t.Parallel()

	for _, p := range goquery.Publishers() {
		if p.Name() == "generic" {
			continue
		}
		t.Run(p.Name(), func(t *testing.T) {
			t.Parallel()

			_, err := p.Open([]byte(`<html><body><div class="page"><p>Not an article.</p></div></body></html>`))

			assert.Equal(t, pubtext.ESTRUCTURE, pubtext.ErrorCode(err))
		})
	}
}

func TestGenericPublisher(t *testing.T) {
	t.Parallel()

	t.Run("locates abstract and flat results and methods headings", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "generic", `<html><body>
<div class="abstract"><h2>Abstract</h2><p>Background text.</p></div>
<h2>Results</h2>
<p>We found X.</p>
<h2>Materials and Methods</h2>
<p>We did Y.</p>
</body></html>`)

		assert.Equal(t, "Background text.", text(loc, loc.Abstract()))
		assert.Equal(t, "We found X.", text(loc, loc.Results()))
		assert.Equal(t, "We did Y.", text(loc, loc.Methods()))
	})

	t.Run("returns body paragraphs as full text without headings", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "generic", `<html><body>
<div class="abstract"><p>Background text.</p></div>
<p>First body paragraph.</p>
<p>Second body paragraph.</p>
</body></html>`)
		ft, ok := loc.(pubtext.FullTextLocator)
		require.True(t, ok)

		assert.True(t, pubtext.IsEmpty(loc.Results()))
		assert.True(t, pubtext.IsEmpty(loc.Methods()))
		assert.Equal(t, "First body paragraph. Second body paragraph.", text(loc, ft.FullText()))
	})

	t.Run("keeps prose held directly in divs", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "generic", `<html><body>
<h2>Results</h2>
<div>We found X.</div>
<figure><figcaption>Fig 1</figcaption></figure>
<h2>Methods</h2>
<div class="para"><span>We did</span> Y.</div>
</body></html>`)

		assert.Equal(t, []string{"We found X.", "[[FIGURE: Fig 1]]"}, loc.Strings(loc.Results()))
		assert.Equal(t, "We did Y.", text(loc, loc.Methods()))
	})

	t.Run("does not repeat a div wrapping paragraphs", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "generic", `<html><body>
<h2>Results</h2>
<div class="wrapper"><p>First.</p><p>Second.</p></div>
</body></html>`)

		assert.Equal(t, []string{"First.", "Second."}, loc.Strings(loc.Results()))
	})
}

func TestPLOSPublisher(t *testing.T) {
	t.Parallel()

	loc := open(t, "plos", `<html><head><title>PLOS ONE</title></head><body>
<h1 id="artTitle">Growth of cells</h1>
<div class="article-text" id="artText">
<div class="abstract toc-section abstract-type-"><h2>Abstract</h2><p>We studied growth.</p></div>
<div class="abstract toc-section abstract-type-summary"><h2>Author summary</h2><p>Plain summary.</p></div>
<div class="section toc-section" id="sec1"><h2>Introduction</h2><p>Intro.</p></div>
<div class="section toc-section" id="sec2"><h2>Results</h2>
<p>Growth doubled <a class="ref-tip" href="#pone.0000001-Smith1">[1]</a>.</p>
<div class="figure"><div class="figcaption">Fig 1. Growth curve</div></div>
</div>
<div class="section toc-section" id="sec3"><h2>Materials and methods</h2><p>Cells were cultured.</p></div>
<ol class="references">
<li><span class="title">Cell growth.</span> <a href="https://doi.org/10.1371/journal.pone.0000002">View Article</a></li>
</ol>
</div></body></html>`)

	assert.Equal(t, "Growth of cells", loc.Title())
	assert.Equal(t, "We studied growth.", text(loc, loc.Abstract()))
	assert.Equal(t, "Growth doubled CITATION. [[FIGURE: Fig 1. Growth curve]]", text(loc, loc.Results()))
	assert.Equal(t, "Cells were cultured.", text(loc, loc.Methods()))

	xl, ok := loc.(pubtext.XrefLocator)
	require.True(t, ok)
	assert.Equal(t, []pubtext.Xref{{DOI: "10.1371/journal.pone.0000002", Title: "Cell growth."}}, xl.Xrefs())
}

func TestNaturePublisher(t *testing.T) {
	t.Parallel()

	t.Run("merges methods sections in document order", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "nature", `<html><body><div class="c-article-body">
<section data-title="Abstract"><p>Short abstract.</p></section>
<section data-title="Methods summary"><h2>Methods summary</h2><p>Summary of methods.</p></section>
<section data-title="Results"><h2>Results</h2><p>Result text.</p></section>
<section data-title="Online Methods"><h2>Online Methods</h2><p>Detailed methods.</p></section>
</div></body></html>`)

		assert.Equal(t, "Short abstract.", text(loc, loc.Abstract()))
		assert.Equal(t, "Result text.", text(loc, loc.Results()))
		assert.Equal(t, 2, loc.Methods().Len())
		assert.Equal(t, "Summary of methods. Detailed methods.", text(loc, loc.Methods()))
	})

	t.Run("falls back to heading match", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "nature", `<html><body><div class="c-article-body">
<section data-title="Materials and methods"><h2>Materials and methods</h2><p>Heading methods.</p></section>
</div></body></html>`)

		assert.Equal(t, "Heading methods.", text(loc, loc.Methods()))
	})
}

func TestCellPublisher(t *testing.T) {
	t.Parallel()

	loc := open(t, "cell", `<html><body><div class="article">
<section id="author-abstract"><h2>Summary</h2><div class="section-paragraph">Cell summary.</div></section>
<section id="sec2"><h2>Results</h2><div class="section-paragraph">Cell results.</div></section>
<section id="sec4"><h2>STAR★Methods</h2><div class="section-paragraph">Key resources.</div></section>
</div></body></html>`)

	assert.Equal(t, "Cell summary.", text(loc, loc.Abstract()))
	assert.Equal(t, "Cell results.", text(loc, loc.Results()))
	assert.Equal(t, "Key resources.", text(loc, loc.Methods()))
}

func TestOUPPublisher(t *testing.T) {
	t.Parallel()

	t.Run("matches flat headings by suffix", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "oup", `<html><body><div class="widget-ArticleFulltext">
<section class="abstract"><p class="chapter-para">OUP abstract.</p></section>
<h2 class="section-title">Experimental results</h2>
<p class="chapter-para">Screen hits.</p>
<h2 class="section-title">Statistical methods</h2>
<p class="chapter-para">Tests used.</p>
</div></body></html>`)

		assert.Equal(t, "OUP abstract.", text(loc, loc.Abstract()))
		assert.Equal(t, "Screen hits.", text(loc, loc.Results()))
		assert.Equal(t, "Tests used.", text(loc, loc.Methods()))
	})

	t.Run("structural class wins over suffix match", func(t *testing.T) {
		t.Parallel()

		loc := open(t, "oup", `<html><body><div class="widget-ArticleFulltext">
<h2 class="section-title">Preliminary results</h2>
<p class="chapter-para">Suffix match.</p>
<section class="results"><p class="chapter-para">Structural match.</p></section>
</div></body></html>`)

		assert.Equal(t, "Structural match.", text(loc, loc.Results()))
	})
}

func TestHighWirePublisher(t *testing.T) {
	t.Parallel()

	loc := open(t, "highwire", `<html><body><div class="article fulltext-view">
<div class="section abstract"><p>HW abstract.</p></div>
<div class="section"><h2>Results</h2><p>Heading results.</p></div>
<div class="section results"><h2>Findings</h2><p>Class results <a class="xref-bibr" href="#ref-1">1</a>.</p>
<div class="table"><div class="table-caption">Table 1. Strains</div><table><tr><td>x</td></tr></table></div></div>
<div class="section materials-methods"><h2>Experimental Procedures</h2><p>Procedures.</p></div>
</div></body></html>`)

	assert.Equal(t, "HW abstract.", text(loc, loc.Abstract()))
	assert.Equal(t, "Class results CITATION. [[TABLE: Table 1. Strains]]", text(loc, loc.Results()))
	assert.Equal(t, "Procedures.", text(loc, loc.Methods()))
}

func TestMDPIPublisher(t *testing.T) {
	t.Parallel()

	loc := open(t, "mdpi", `<html><body><div class="html-body">
<section class="html-abstract"><div class="html-p">MDPI abstract.</div></section>
<section type="results"><h2>2. Results</h2><div class="html-p">Typed results.</div></section>
<section type="methods"><h2>4. Materials and Methods</h2><div class="html-p">Typed methods.</div></section>
</div></body></html>`)

	assert.Equal(t, "MDPI abstract.", text(loc, loc.Abstract()))
	assert.Equal(t, "Typed results.", text(loc, loc.Results()))
	assert.Equal(t, "Typed methods.", text(loc, loc.Methods()))
}

func TestELifePublisher_Xrefs(t *testing.T) {
	t.Parallel()

	loc := open(t, "elife", `<html><body><main>
<ol class="reference-list">
<li><a class="reference__title" href="#">A cited study</a> <a class="doi__link" href="https://doi.org/10.7554/eLife.00001">https://doi.org/10.7554/eLife.00001</a></li>
<li><a class="reference__title" href="#">A book</a></li>
</ol>
</main></body></html>`)

	xl, ok := loc.(pubtext.XrefLocator)
	require.True(t, ok)
	assert.Equal(t, []pubtext.Xref{{DOI: "10.7554/eLife.00001", Title: "A cited study"}}, xl.Xrefs())
}

func TestFrontiersPublisher(t *testing.T) {
	t.Parallel()

	loc := open(t, "frontiers", `<html><body><div class="article-section">
<div class="JournalAbstract"><h1>Title</h1><p>Frontiers abstract.</p></div>
<div class="JournalFullText">
<h2>Results</h2><p>Frontiers results <a href="#B1">Smith, 2001</a>.</p>
<div class="FigureDesc"><p><strong>Figure 1.</strong> Expression levels.</p></div>
<h2>Materials and Methods</h2><p>Frontiers methods.</p>
</div></div></body></html>`)

	assert.Equal(t, "Frontiers abstract.", text(loc, loc.Abstract()))
	assert.Equal(t, "Frontiers results CITATION. [[FIGURE: Figure 1. Expression levels.]]", text(loc, loc.Results()))
	assert.Equal(t, "Frontiers methods.", text(loc, loc.Methods()))
	assert.False(t, strings.Contains(text(loc, loc.Methods()), "Results"))
}
