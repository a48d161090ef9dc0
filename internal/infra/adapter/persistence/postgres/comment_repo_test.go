package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"dalahus/internal/domain/entity"
	pg "dalahus/internal/infra/adapter/persistence/postgres"
)

func TestCommentRepo_ListForArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM comments").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "article_id", "author_name", "body", "created_at",
		}).
			AddRow(int64(1), int64(10), "Kalle Anka", "först", now.Add(-time.Hour)).
			AddRow(int64(2), int64(10), "Stina Persson", "sist", now))

	repo := pg.NewCommentRepo(db)
	got, err := repo.ListForArticle(context.Background(), 10)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListForArticle err=%v len=%d", err, len(got))
	}
	if got[0].AuthorName != "Kalle Anka" {
		t.Fatalf("order: first=%q", got[0].AuthorName)
	}
}

func TestCommentRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(int64(10), "Kalle Anka", "Bra artikel!", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := pg.NewCommentRepo(db)
	comment := &entity.Comment{
		ArticleID: 10, AuthorName: "Kalle Anka",
		Body: "Bra artikel!", CreatedAt: now,
	}
	if err := repo.Create(context.Background(), comment); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if comment.ID != 3 {
		t.Fatalf("Create id=%d, want 3", comment.ID)
	}
}

// A comment pointing at a missing article trips the foreign key, surfaced as
// the domain's not-found sentinel.
func TestCommentRepo_Create_MissingArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			ConstraintName: "comments_article_id_fkey",
		})

	repo := pg.NewCommentRepo(db)
	err := repo.Create(context.Background(), &entity.Comment{
		ArticleID: 999, AuthorName: "Kalle Anka", Body: "x", CreatedAt: time.Now(),
	})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Create err=%v, want ErrNotFound", err)
	}
}

func TestCommentRepo_Delete_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewCommentRepo(db)
	ok, err := repo.Delete(context.Background(), 99)
	if err != nil || ok {
		t.Fatalf("Delete ok=%v err=%v", ok, err)
	}
}
