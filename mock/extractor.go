package mock

import (
	"context"
	"time"

	"github.com/fwojciec/pubtext"
)

var (
	_ pubtext.Extractor      = (*Extractor)(nil)
	_ pubtext.RecordStore    = (*RecordStore)(nil)
	_ pubtext.ArticleSource  = (*ArticleSource)(nil)
	_ pubtext.ArticleService = (*ArticleService)(nil)
)

// Extractor is a mock implementation of pubtext.Extractor.
type Extractor struct {
	ExtractFn func(article *pubtext.Article, data []byte) (*pubtext.Result, error)
}

func (e *Extractor) Extract(article *pubtext.Article, data []byte) (*pubtext.Result, error) {
	return e.ExtractFn(article, data)
}

// RecordStore is a mock implementation of pubtext.RecordStore.
type RecordStore struct {
	ModTimeFn func(ctx context.Context, pmid string) (time.Time, bool, error)
	SaveFn    func(ctx context.Context, pmid string, rec *pubtext.Record) error
	LoadFn    func(ctx context.Context, pmid string) (*pubtext.Record, error)
	TouchFn   func(ctx context.Context, pmid string) error
}

func (s *RecordStore) ModTime(ctx context.Context, pmid string) (time.Time, bool, error) {
	return s.ModTimeFn(ctx, pmid)
}

func (s *RecordStore) Save(ctx context.Context, pmid string, rec *pubtext.Record) error {
	return s.SaveFn(ctx, pmid, rec)
}

func (s *RecordStore) Load(ctx context.Context, pmid string) (*pubtext.Record, error) {
	return s.LoadFn(ctx, pmid)
}

func (s *RecordStore) Touch(ctx context.Context, pmid string) error {
	return s.TouchFn(ctx, pmid)
}

// ArticleSource is a mock implementation of pubtext.ArticleSource.
type ArticleSource struct {
	OpenFn func(ctx context.Context, article *pubtext.Article) ([]byte, time.Time, error)
}

func (s *ArticleSource) Open(ctx context.Context, article *pubtext.Article) ([]byte, time.Time, error) {
	return s.OpenFn(ctx, article)
}

// ArticleService is a mock implementation of pubtext.ArticleService.
type ArticleService struct {
	CreateArticleFn     func(ctx context.Context, article *pubtext.Article) error
	FindArticleByPMIDFn func(ctx context.Context, pmid string) (*pubtext.Article, error)
	FindArticlesFn      func(ctx context.Context, filter pubtext.ArticleFilter) ([]*pubtext.Article, error)
	FindStatusFn        func(ctx context.Context, pmid string) (*pubtext.Status, error)
	UpdateStatusFn      func(ctx context.Context, pmid string, status *pubtext.Status) error
	CountByStateFn      func(ctx context.Context) (map[pubtext.State]int, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *pubtext.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByPMID(ctx context.Context, pmid string) (*pubtext.Article, error) {
	return s.FindArticleByPMIDFn(ctx, pmid)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter pubtext.ArticleFilter) ([]*pubtext.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) FindStatus(ctx context.Context, pmid string) (*pubtext.Status, error) {
	return s.FindStatusFn(ctx, pmid)
}

func (s *ArticleService) UpdateStatus(ctx context.Context, pmid string, status *pubtext.Status) error {
	return s.UpdateStatusFn(ctx, pmid, status)
}

func (s *ArticleService) CountByState(ctx context.Context) (map[pubtext.State]int, error) {
	return s.CountByStateFn(ctx)
}
