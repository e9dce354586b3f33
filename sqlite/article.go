package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/pubtext"
)

// Compile-time interface verification.
var _ pubtext.ArticleService = (*ArticleService)(nil)

// ArticleService implements pubtext.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle registers a new article. The ISSN is stored normalized.
func (s *ArticleService) CreateArticle(ctx context.Context, article *pubtext.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	if article.ISSN != "" {
		article.ISSN = pubtext.NormalizeISSN(article.ISSN)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO articles (pmid, doi, issn, journal, year, pmcid, title, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.PMID, article.DOI, article.ISSN, article.Journal, article.Year, article.PMCID, article.Title,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return pubtext.Errorf(pubtext.EINVALID, "article %s already exists", article.PMID)
	}
	return nil
}

const articleColumns = "a.pmid, a.doi, a.issn, a.journal, a.year, a.pmcid, a.title"

func scanArticle(sc interface{ Scan(...any) error }) (*pubtext.Article, error) {
	var a pubtext.Article
	if err := sc.Scan(&a.PMID, &a.DOI, &a.ISSN, &a.Journal, &a.Year, &a.PMCID, &a.Title); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindArticleByPMID retrieves an article by PubMed ID.
func (s *ArticleService) FindArticleByPMID(ctx context.Context, pmid string) (*pubtext.Article, error) {
	article, err := scanArticle(s.db.QueryRowContext(ctx,
		"SELECT "+articleColumns+" FROM articles a WHERE a.pmid = ?", pmid))
	if err == sql.ErrNoRows {
		return nil, pubtext.Errorf(pubtext.ENOTFOUND, "article %s not found", pmid)
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, ordered by pmid.
func (s *ArticleService) FindArticles(ctx context.Context, filter pubtext.ArticleFilter) ([]*pubtext.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles a LEFT JOIN statuses s ON s.pmid = a.pmid WHERE 1=1")

	if len(filter.PMIDs) > 0 {
		query.WriteString(" AND a.pmid IN (?" + strings.Repeat(", ?", len(filter.PMIDs)-1) + ")")
		for _, pmid := range filter.PMIDs {
			args = append(args, pmid)
		}
	}
	if filter.ISSN != nil {
		query.WriteString(" AND a.issn = ?")
		args = append(args, pubtext.NormalizeISSN(*filter.ISSN))
	}
	if filter.State != nil {
		query.WriteString(" AND s.state = ?")
		args = append(args, string(*filter.State))
	}

	query.WriteString(" ORDER BY a.pmid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*pubtext.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// FindStatus retrieves the last extraction status of an article.
func (s *ArticleService) FindStatus(ctx context.Context, pmid string) (*pubtext.Status, error) {
	var status pubtext.Status
	var state, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT state, missing, publisher, record_hash, run_id, error, updated_at
		FROM statuses
		WHERE pmid = ?
	`, pmid).Scan(&state, &status.Missing, &status.Publisher, &status.RecordHash, &status.RunID,
		&status.Error, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, pubtext.Errorf(pubtext.ENOTFOUND, "article %s has no status", pmid)
	}
	if err != nil {
		return nil, err
	}

	status.State = pubtext.State(state)
	if status.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &status, nil
}

// UpdateStatus records the outcome of an extraction, replacing the
// previous status.
func (s *ArticleService) UpdateStatus(ctx context.Context, pmid string, status *pubtext.Status) error {
	if _, err := s.FindArticleByPMID(ctx, pmid); err != nil {
		return err
	}
	if status.UpdatedAt.IsZero() {
		status.UpdatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO statuses (pmid, state, missing, publisher, record_hash, run_id, error, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(pmid) DO UPDATE SET
			state = excluded.state,
			missing = excluded.missing,
			publisher = excluded.publisher,
			record_hash = excluded.record_hash,
			run_id = excluded.run_id,
			error = excluded.error,
			updated_at = excluded.updated_at
	`, pmid, string(status.State), status.Missing, status.Publisher, status.RecordHash, status.RunID,
		status.Error, status.UpdatedAt.UTC().Format(time.RFC3339))

	return err
}

// CountByState returns the number of articles per stored state.
func (s *ArticleService) CountByState(ctx context.Context) (map[pubtext.State]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT state, COUNT(*) FROM statuses GROUP BY state")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[pubtext.State]int)
	for rows.Next() {
		var state string
		var n int
		if err := rows.Scan(&state, &n); err != nil {
			return nil, err
		}
		counts[pubtext.State(state)] = n
	}
	return counts, rows.Err()
}
