package repository

import (
	"context"

	"dalahus/internal/domain/entity"
)

// CommentRepository provides access to comment rows.
type CommentRepository interface {
	// ListForArticle returns the comments of one article, oldest first.
	ListForArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// Create inserts a comment. A non-existent article id is rejected by the
	// foreign key and surfaced as entity.ErrNotFound.
	Create(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
