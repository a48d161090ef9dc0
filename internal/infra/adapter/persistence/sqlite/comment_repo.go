package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dalahus/internal/domain/entity"
	"dalahus/internal/repository"
)

// CommentRepo implements the CommentRepository interface using SQLite.
type CommentRepo struct{ db repository.DB }

// NewCommentRepo creates a new SQLite-backed comment repository.
func NewCommentRepo(db repository.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListForArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_name, body, created_at
FROM comments
WHERE article_id = ?
ORDER BY created_at ASC
`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListForArticle: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleID,
			&comment.AuthorName, &comment.Body, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListForArticle: Scan: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_name, body, created_at
FROM comments
WHERE id = ?
LIMIT 1
`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ArticleID,
			&comment.AuthorName, &comment.Body, &comment.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}
	comment.Normalize(time.Now())

	const query = `
INSERT INTO comments (article_id, author_name, body, created_at)
VALUES (?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		comment.ArticleID, comment.AuthorName, comment.Body, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	comment.ID = id
	return nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM comments WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *CommentRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
