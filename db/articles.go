package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

const articleColumns = `id, competition_id, title, summary, content, image_url,
						author, published, published_at, created`

func (db *postgresDB) ListArticles(ctx context.Context, competitionID int32) ([]model.Article, error) {
	const query = `SELECT ` + articleColumns + `
					FROM articles
					WHERE competition_id=@competitionID AND published
					ORDER BY published_at DESC NULLS LAST, id DESC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"competitionID": competitionID})
	if err != nil {
		return nil, fmt.Errorf("error listing articles: %w", err)
	}
	defer rows.Close()

	results := make([]model.Article, 0, 8)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning article: %w", err)
		}
		results = append(results, *a)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetArticle(ctx context.Context, id int32) (*model.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles WHERE id=@id`

	a, err := scanArticle(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("error scanning article %d: %w", id, err)
	}
	return a, nil
}

func (db *postgresDB) AddArticle(ctx context.Context, a *model.Article) error {
	const query = `INSERT INTO articles (
		competition_id,
		title,
		summary,
		content,
		image_url,
		author,
		published,
		published_at
	) VALUES (
		@competitionID,
		@title,
		@summary,
		@content,
		@imageURL,
		@author,
		@published,
		@publishedAt
	) RETURNING id, created`

	if a.Published && a.PublishedAt.IsZero() {
		a.PublishedAt = db.clock.Now().UTC()
	}
	args := pgx.NamedArgs{
		"competitionID": a.CompetitionID,
		"title":         a.Title,
		"summary":       nullString(a.Summary),
		"content":       a.Content,
		"imageURL":      nullString(a.ImageURL),
		"author":        nullString(a.Author),
		"published":     a.Published,
		"publishedAt":   nullTimestamptz(a.PublishedAt),
	}

	var created pgtype.Timestamptz
	if err := db.pool.QueryRow(ctx, query, args).Scan(&a.ID, &created); err != nil {
		return fmt.Errorf("error inserting article '%s': %w", a.Title, err)
	}
	a.Created = created.Time
	return nil
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	var result model.Article
	var summary, imageURL, author sql.NullString
	var publishedAt, created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.CompetitionID,
		&result.Title,
		&summary,
		&result.Content,
		&imageURL,
		&author,
		&result.Published,
		&publishedAt,
		&created)
	if err != nil {
		return nil, err
	}

	result.Summary = valueOrEmpty(summary)
	result.ImageURL = valueOrEmpty(imageURL)
	result.Author = valueOrEmpty(author)
	result.PublishedAt = publishedAt.Time
	result.Created = created.Time
	return &result, nil
}

func (db *postgresDB) ListComments(ctx context.Context, articleID int32) ([]model.Comment, error) {
	const query = `SELECT id::text, article_id, author, content, created
					FROM comments WHERE article_id=@articleID
					ORDER BY created DESC, seq DESC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"articleID": articleID})
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	results := make([]model.Comment, 0, 16)
	for rows.Next() {
		var c model.Comment
		var created pgtype.Timestamptz
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Content, &created); err != nil {
			return nil, fmt.Errorf("error scanning comment: %w", err)
		}
		c.Created = created.Time
		results = append(results, c)
	}
	return results, rows.Err()
}

func (db *postgresDB) AddComment(ctx context.Context, c *model.Comment) error {
	const query = `INSERT INTO comments (id, article_id, author, content, created)
					VALUES (@id, @articleID, @author, @content, @created)`

	if c.Created.IsZero() {
		c.Created = db.clock.Now().UTC()
	}
	args := pgx.NamedArgs{
		"id":        c.ID,
		"articleID": c.ArticleID,
		"author":    c.Author,
		"content":   c.Content,
		"created":   nullTimestamptz(c.Created),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting comment for article %d: %w", c.ArticleID, err)
	}
	return nil
}
