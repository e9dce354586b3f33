package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/mock"
	pubslog "github.com/fwojciec/pubtext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs state, missing sections and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		rec := pubtext.NewRecord()
		rec.Set(pubtext.KindAbstract, "Background text.")
		rec.Set(pubtext.KindResults, "We found X.")
		inner := &mock.Extractor{
			ExtractFn: func(article *pubtext.Article, data []byte) (*pubtext.Result, error) {
				return &pubtext.Result{Record: rec, State: pubtext.StatePartial, Missing: "m", Publisher: "plos"}, nil
			},
		}

		e := pubslog.NewLoggingExtractor(inner, debugLogger(&buf))
		res, err := e.Extract(&pubtext.Article{PMID: "123", DOI: "10.1000/x"}, []byte("<html/>"))

		require.NoError(t, err)
		assert.Equal(t, pubtext.StatePartial, res.State)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "pmid=123")
		assert.Contains(t, output, "url=https://doi.org/10.1000/x")
		assert.Contains(t, output, "publisher=plos")
		assert.Contains(t, output, "state=partial")
		assert.Contains(t, output, "missing=m")
		assert.Contains(t, output, "blocks=2")
		assert.Contains(t, output, "bytes=7")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(article *pubtext.Article, data []byte) (*pubtext.Result, error) {
				return &pubtext.Result{State: pubtext.StateFailed, Stage: pubtext.StateFetched}, pubtext.Errorf(pubtext.ESTRUCTURE, "article wrapper not found")
			},
		}

		e := pubslog.NewLoggingExtractor(inner, debugLogger(&buf))
		_, err := e.Extract(&pubtext.Article{PMID: "123"}, nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "state=failed")
		assert.Contains(t, output, "stage=fetched")
		assert.Contains(t, output, "article wrapper not found")
	})

	t.Run("stays silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(article *pubtext.Article, data []byte) (*pubtext.Result, error) {
				return &pubtext.Result{State: pubtext.StateComplete}, nil
			},
		}

		_, err := pubslog.NewLoggingExtractor(inner, logger).Extract(&pubtext.Article{PMID: "1"}, nil)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
