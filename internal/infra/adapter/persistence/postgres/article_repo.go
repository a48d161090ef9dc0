package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"dalahus/internal/domain/entity"
	"dalahus/internal/repository"
)

type ArticleRepo struct{ db repository.DB }

func NewArticleRepo(db repository.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, body, published_at, broker_id
FROM articles
ORDER BY published_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Body,
			&article.PublishedAt, &article.BrokerID); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// ListWithRelations loads every article with its broker and comments in two
// queries total: a LEFT JOIN for the to-one broker relation and a single
// ANY($1) batch for the to-many comments. The query count stays bounded no
// matter how many articles exist.
func (repo *ArticleRepo) ListWithRelations(ctx context.Context) ([]repository.ArticleWithRelations, error) {
	const query = `
SELECT a.id, a.title, a.body, a.published_at, a.broker_id,
       b.id, b.name, b.email, b.phone, b.title, b.bio
FROM articles a
LEFT JOIN brokers b ON a.broker_id = b.id
ORDER BY a.published_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListWithRelations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithRelations, 0, 32)
	ids := make([]int64, 0, 32)
	for rows.Next() {
		var article entity.Article
		var brokerID sql.NullInt64
		var name, email, phone, title, bio sql.NullString
		if err := rows.Scan(&article.ID, &article.Title, &article.Body,
			&article.PublishedAt, &article.BrokerID,
			&brokerID, &name, &email, &phone, &title, &bio); err != nil {
			return nil, fmt.Errorf("ListWithRelations: Scan: %w", err)
		}

		var broker *entity.Broker
		if brokerID.Valid {
			broker = &entity.Broker{
				ID:    brokerID.Int64,
				Name:  name.String,
				Email: email.String,
				Phone: phone.String,
				Title: title.String,
				Bio:   bio.String,
			}
		}
		result = append(result, repository.ArticleWithRelations{
			Article:  &article,
			Broker:   broker,
			Comments: []*entity.Comment{},
		})
		ids = append(ids, article.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWithRelations: rows.Err: %w", err)
	}
	if len(result) == 0 {
		return result, nil
	}

	comments, err := repo.commentsForArticles(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		if list, ok := comments[result[i].Article.ID]; ok {
			result[i].Comments = list
		}
	}
	return result, nil
}

// commentsForArticles fetches the comments of all given articles in one
// batched query, keyed by article id and ordered oldest first within each
// article.
func (repo *ArticleRepo) commentsForArticles(ctx context.Context, ids []int64) (map[int64][]*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_name, body, created_at
FROM comments
WHERE article_id = ANY($1)
ORDER BY created_at ASC`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("commentsForArticles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make(map[int64][]*entity.Comment, len(ids))
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleID,
			&comment.AuthorName, &comment.Body, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("commentsForArticles: Scan: %w", err)
		}
		comments[comment.ArticleID] = append(comments[comment.ArticleID], &comment)
	}
	return comments, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, body, published_at, broker_id
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Body,
			&article.PublishedAt, &article.BrokerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) GetOrFail(ctx context.Context, id int64) (*entity.Article, error) {
	article, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, fmt.Errorf("GetOrFail: article %d: %w", id, entity.ErrNotFound)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	article.Normalize(time.Now())

	const query = `
INSERT INTO articles (title, body, published_at, broker_id)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Body, article.PublishedAt, article.BrokerID,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", mapError(err))
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	const query = `
UPDATE articles SET
       title        = $1,
       body         = $2,
       published_at = $3,
       broker_id    = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Body, article.PublishedAt, article.BrokerID, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: article %d: %w", article.ID, entity.ErrNotFound)
	}
	return nil
}

// Delete removes an article. Its comments go with it through the ON DELETE
// CASCADE on comments.article_id; no application-level fan-out.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
