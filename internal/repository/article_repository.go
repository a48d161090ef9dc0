package repository

import (
	"context"

	"dalahus/internal/domain/entity"
)

// ArticleWithRelations is an article together with its related rows, fully
// populated so the consumer never triggers follow-up queries while rendering.
// Broker is nil for articles without a credited author; Comments is ordered
// oldest first.
type ArticleWithRelations struct {
	Article  *entity.Article
	Broker   *entity.Broker
	Comments []*entity.Comment
}

// ArticleRepository provides access to news article rows.
// All listing operations return newest-publish-date-first order.
type ArticleRepository interface {
	List(ctx context.Context) ([]*entity.Article, error)
	// ListWithRelations retrieves all articles with broker and comments
	// eagerly loaded in a bounded number of queries: one join for the
	// to-one broker relation and one batched lookup for all comments,
	// regardless of how many articles exist.
	ListWithRelations(ctx context.Context) ([]ArticleWithRelations, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)
	GetOrFail(ctx context.Context, id int64) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article; the schema cascades the delete to its
	// comments.
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
