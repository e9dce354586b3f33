package clean_test

import (
	"testing"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/clean"
	"github.com/fwojciec/pubtext/goquery"
	"github.com/fwojciec/pubtext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeSections = `<html><body>
<div class="abstract"><h2>Abstract</h2><p>Background text.</p></div>
<h2>Results</h2>
<p>We found X.</p>
<h2>Materials and Methods</h2>
<p>We did Y.</p>
</body></html>`

const abstractAndBody = `<html><body>
<div class="abstract"><p>Background text.</p></div>
<p>First body paragraph.</p>
<p>Second body paragraph.</p>
</body></html>`

const noMethods = `<html><body>
<div class="abstract"><h2>Abstract</h2><p>Background text.</p></div>
<h2>Results</h2>
<p>We found X.</p>
</body></html>`

func genericExtractor() *clean.Extractor {
	return &clean.Extractor{Resolver: pubtext.NewRegistry(nil, goquery.NewGenericPublisher())}
}

func article(pmid string) *pubtext.Article {
	return &pubtext.Article{PMID: pmid, DOI: "10.1000/" + pmid, ISSN: "0000-0019"}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("emits abstract, results and methods in order", func(t *testing.T) {
		t.Parallel()

		res, err := genericExtractor().Extract(article("1"), []byte(threeSections))

		require.NoError(t, err)
		assert.Equal(t, pubtext.StateComplete, res.State)
		assert.Empty(t, res.Missing)
		assert.Equal(t, pubtext.StateClassified, res.Stage)
		assert.Equal(t, "generic", res.Publisher)
		assert.Equal(t, "!~ABS~! Background text.\n!~RES~! We found X.\n!~MM~! We did Y.\n", pubtext.FormatRecord(res.Record))
	})

	t.Run("falls back to full text without results and methods", func(t *testing.T) {
		t.Parallel()

		res, err := genericExtractor().Extract(article("2"), []byte(abstractAndBody))

		require.NoError(t, err)
		assert.Equal(t, pubtext.StatePartial, res.State)
		assert.Equal(t, "mr", res.Missing)
		assert.Equal(t, "!~ABS~! Background text.\n!~FT~! First body paragraph. Second body paragraph.\n", pubtext.FormatRecord(res.Record))
	})

	t.Run("is partial when one of results and methods is missing", func(t *testing.T) {
		t.Parallel()

		res, err := genericExtractor().Extract(article("3"), []byte(noMethods))

		require.NoError(t, err)
		assert.Equal(t, pubtext.StatePartial, res.State)
		assert.Equal(t, "m", res.Missing)
		assert.Equal(t, "!~ABS~! Background text.\n!~RES~! We found X.\n", pubtext.FormatRecord(res.Record))
	})

	t.Run("fails a missing section when all are required", func(t *testing.T) {
		t.Parallel()

		e := genericExtractor()
		e.RequireAll = true

		res, err := e.Extract(article("4"), []byte(noMethods))

		require.Error(t, err)
		assert.Equal(t, pubtext.ENOTFOUND, pubtext.ErrorCode(err))
		assert.Equal(t, pubtext.StateFailed, res.State)
		assert.Equal(t, pubtext.StateClassified, res.Stage)
		assert.Equal(t, "m", res.Missing)
		assert.Nil(t, res.Record)
	})

	t.Run("honors the journal's required sections policy", func(t *testing.T) {
		t.Parallel()

		r := pubtext.NewRegistry(nil, nil)
		require.NoError(t, r.Register(&pubtext.Journal{ISSN: "0000-0019", Publisher: goquery.NewGenericPublisher(), RequireAll: true}))
		e := &clean.Extractor{Resolver: r}

		res, err := e.Extract(article("5"), []byte(noMethods))

		require.Error(t, err)
		assert.Equal(t, pubtext.StateFailed, res.State)
	})

	t.Run("normalizes numbers when enabled", func(t *testing.T) {
		t.Parallel()

		e := genericExtractor()
		e.Normalize = true

		res, err := e.Extract(article("6"), []byte(`<html><body>
<h2>Results</h2><p>Cells were incubated at 37°C for 2 h</p>
</body></html>`))

		require.NoError(t, err)
		text, ok := res.Record.Text(pubtext.KindResults)
		require.True(t, ok)
		assert.Equal(t, "Cells were incubated at NUMBER_°C for NUMBER_h", text)
	})

	t.Run("fails when nothing is located", func(t *testing.T) {
		t.Parallel()

		res, err := genericExtractor().Extract(article("7"), []byte(`<html><body><div class="abstract"><p>Only.</p></div></body></html>`))

		require.Error(t, err)
		assert.Equal(t, pubtext.StateFailed, res.State)
		assert.Equal(t, pubtext.StateClassified, res.Stage)
		assert.Equal(t, "mr", res.Missing)
	})

	t.Run("stops at parsed when the page has no sections", func(t *testing.T) {
		t.Parallel()

		res, err := genericExtractor().Extract(article("11"), []byte(`<html><body><ul><li>Home</li><li>Journals</li></ul></body></html>`))

		assert.Equal(t, pubtext.ENOTFOUND, pubtext.ErrorCode(err))
		assert.Equal(t, pubtext.StateFailed, res.State)
		assert.Equal(t, pubtext.StateParsed, res.Stage)
		assert.Equal(t, "amr", res.Missing)
		assert.Nil(t, res.Record)
	})

	t.Run("fails when the publisher cannot open the bytes", func(t *testing.T) {
		t.Parallel()

		broken := &mock.Publisher{
			NameFn: func() string { return "broken" },
			OpenFn: func([]byte) (pubtext.Locator, error) {
				return nil, pubtext.Errorf(pubtext.ESTRUCTURE, "article wrapper not found")
			},
		}
		e := &clean.Extractor{Resolver: pubtext.NewRegistry(nil, broken)}

		res, err := e.Extract(article("8"), []byte("<html/>"))

		assert.Equal(t, pubtext.ESTRUCTURE, pubtext.ErrorCode(err))
		assert.Equal(t, pubtext.StateFailed, res.State)
		assert.Equal(t, pubtext.StateFetched, res.Stage)
		assert.Equal(t, "broken", res.Publisher)
	})

	t.Run("fails when no publisher resolves", func(t *testing.T) {
		t.Parallel()

		e := &clean.Extractor{Resolver: pubtext.NewRegistry(nil, nil)}

		res, err := e.Extract(article("9"), []byte("<html/>"))

		assert.Equal(t, pubtext.ENOTFOUND, pubtext.ErrorCode(err))
		assert.Equal(t, pubtext.StateFailed, res.State)
	})

	t.Run("rejects an article without pmid", func(t *testing.T) {
		t.Parallel()

		res, err := genericExtractor().Extract(&pubtext.Article{}, []byte(threeSections))

		assert.Equal(t, pubtext.EINVALID, pubtext.ErrorCode(err))
		assert.Equal(t, pubtext.StateFailed, res.State)
	})

	t.Run("reports the article title", func(t *testing.T) {
		t.Parallel()

		res, err := genericExtractor().Extract(article("10"), []byte(`<html><head><title>Growth</title></head><body>
<h2>Results</h2><p>We found X.</p>
</body></html>`))

		require.NoError(t, err)
		assert.Equal(t, "Growth", res.Title)
		assert.Empty(t, res.Xrefs)
	})
}
