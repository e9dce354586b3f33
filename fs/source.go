// Package fs provides file-based storage for fetched articles and cleaned
// records.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/pubtext"
)

// Ensure Source implements pubtext.ArticleSource at compile time.
var _ pubtext.ArticleSource = (*Source)(nil)

// sourceExts lists the file extensions a fetched article may have, in
// lookup order.
var sourceExts = []string{".html", ".xml"}

// Source reads fetched articles stored as <dir>/<pmid>.html or
// <dir>/<pmid>.xml.
type Source struct {
	dir string
}

// NewSource creates a new Source reading from dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Open returns the bytes and modification time of the article's file.
// Returns ENOTFOUND if the article has not been fetched.
func (s *Source) Open(ctx context.Context, article *pubtext.Article) ([]byte, time.Time, error) {
	if err := validPMID(article.PMID); err != nil {
		return nil, time.Time{}, err
	}
	for _, ext := range sourceExts {
		path := filepath.Join(s.dir, article.PMID+ext)
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, time.Time{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, time.Time{}, err
		}
		return data, info.ModTime(), nil
	}
	return nil, time.Time{}, pubtext.Errorf(pubtext.ENOTFOUND, "article %s not fetched", article.PMID)
}

// PMIDs returns the ids of all fetched articles in dir, sorted.
func (s *Source) PMIDs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var pmids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".html" && ext != ".xml" {
			continue
		}
		pmid := strings.TrimSuffix(e.Name(), ext)
		if !seen[pmid] {
			seen[pmid] = true
			pmids = append(pmids, pmid)
		}
	}
	return pmids, nil
}

func validPMID(pmid string) error {
	if pmid == "" || strings.ContainsAny(pmid, `/\`) || pmid == "." || pmid == ".." {
		return pubtext.Errorf(pubtext.EINVALID, "invalid pmid %q", pmid)
	}
	return nil
}
