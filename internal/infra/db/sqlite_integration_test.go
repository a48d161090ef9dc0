package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dalahus/internal/domain/entity"
	"dalahus/internal/infra/adapter/persistence/sqlite"
)

// openMigratedSQLite opens a throwaway on-disk database with the real driver
// and applies the full schema, so the PRAGMA and DDL paths run for real
// instead of against a mock.
func openMigratedSQLite(t *testing.T) *sql.DB {
	t.Helper()

	handle, err := OpenSQLite(filepath.Join(t.TempDir(), "dalahus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = handle.Close() })

	require.NoError(t, MigrateUp(handle, DialectSQLite))
	return handle
}

func TestSQLite_CascadeDeleteRemovesComments(t *testing.T) {
	handle := openMigratedSQLite(t)
	ctx := context.Background()

	articles := sqlite.NewArticleRepo(handle)
	comments := sqlite.NewCommentRepo(handle)

	article := &entity.Article{Title: "Visning i helgen", Body: "Välkommen."}
	require.NoError(t, articles.Create(ctx, article))
	require.NotZero(t, article.ID)

	for _, body := range []string{"Vi kommer!", "Vilken tid öppnar ni?"} {
		comment := &entity.Comment{ArticleID: article.ID, AuthorName: "Stina", Body: body}
		require.NoError(t, comments.Create(ctx, comment))
	}

	count, err := comments.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	deleted, err := articles.Delete(ctx, article.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err = comments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "deleting an article must remove its comments")

	remaining, err := comments.ListForArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSQLite_CommentRequiresExistingArticle(t *testing.T) {
	handle := openMigratedSQLite(t)
	ctx := context.Background()

	comments := sqlite.NewCommentRepo(handle)

	comment := &entity.Comment{ArticleID: 9999, AuthorName: "Kalle", Body: "Hej"}
	err := comments.Create(ctx, comment)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	count, err := comments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSQLite_BrokerEmailUnique(t *testing.T) {
	handle := openMigratedSQLite(t)
	ctx := context.Background()

	brokers := sqlite.NewBrokerRepo(handle)

	first := &entity.Broker{Name: "Anna Ståhl", Email: "anna.stahl@dalahus.se"}
	require.NoError(t, brokers.Create(ctx, first))

	second := &entity.Broker{Name: "Anna S", Email: "anna.stahl@dalahus.se"}
	err := brokers.Create(ctx, second)
	assert.ErrorIs(t, err, entity.ErrDuplicate)

	count, err := brokers.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSQLite_MigrateUpIsIdempotent(t *testing.T) {
	handle := openMigratedSQLite(t)

	require.NoError(t, MigrateUp(handle, DialectSQLite))
	assert.NoError(t, MigrateDown(handle))
}
