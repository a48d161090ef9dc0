package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"dalahus/internal/domain/entity"
	pg "dalahus/internal/infra/adapter/persistence/postgres"
	"dalahus/internal/repository"
)

/* ─────────────────────────── helpers ─────────────────────────── */

func articleColumns() []string {
	return []string{"id", "title", "body", "published_at", "broker_id"}
}

func articleRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows(articleColumns()).
		AddRow(a.ID, a.Title, a.Body, a.PublishedAt, a.BrokerID)
}

func joinColumns() []string {
	return []string{
		"id", "title", "body", "published_at", "broker_id",
		"id", "name", "email", "phone", "title", "bio",
	}
}

func commentColumns() []string {
	return []string{"id", "article_id", "author_name", "body", "created_at"}
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC)
	brokerID := int64(2)
	want := &entity.Article{
		ID: 1, Title: "Nytt kontor i Ludvika", Body: "text",
		PublishedAt: now, BrokerID: &brokerID,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(articleRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(articleColumns()))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("absent row: got=%+v err=%v", got, err)
	}
}

/* ─────────────────────────── 2. List ─────────────────────────── */

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM articles").
		WillReturnRows(articleRow(&entity.Article{
			ID: 1, Title: "x", Body: "y", PublishedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

/* ──────────────────── 3. ListWithRelations ──────────────────── */

// Two articles, one with a credited broker and comments, one without either.
// Exactly two queries must run: the join and the batched comment lookup.
func TestArticleRepo_ListWithRelations(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC)
	brokerID := int64(2)

	mock.ExpectQuery("LEFT JOIN brokers").
		WillReturnRows(sqlmock.NewRows(joinColumns()).
			AddRow(int64(10), "Med mäklare", "body1", now, brokerID,
				brokerID, "Bosse Andersson", "bosse.andersson@dalahus.se",
				"070-234 56 78", "Fastighetsmäklare", "bio").
			AddRow(int64(11), "Utan mäklare", "body2", now.Add(-time.Hour), nil,
				nil, nil, nil, nil, nil, nil))

	mock.ExpectQuery("FROM comments").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(commentColumns()).
			AddRow(int64(100), int64(10), "Kalle Anka", "Bra!", now.Add(time.Minute)).
			AddRow(int64(101), int64(10), "Stina Persson", "Tack!", now.Add(2*time.Minute)))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListWithRelations(context.Background())
	if err != nil {
		t.Fatalf("ListWithRelations err=%v", err)
	}

	want := []repository.ArticleWithRelations{
		{
			Article: &entity.Article{
				ID: 10, Title: "Med mäklare", Body: "body1",
				PublishedAt: now, BrokerID: &brokerID,
			},
			Broker: &entity.Broker{
				ID: 2, Name: "Bosse Andersson",
				Email: "bosse.andersson@dalahus.se",
				Phone: "070-234 56 78", Title: "Fastighetsmäklare", Bio: "bio",
			},
			Comments: []*entity.Comment{
				{ID: 100, ArticleID: 10, AuthorName: "Kalle Anka",
					Body: "Bra!", CreatedAt: now.Add(time.Minute)},
				{ID: 101, ArticleID: 10, AuthorName: "Stina Persson",
					Body: "Tack!", CreatedAt: now.Add(2 * time.Minute)},
			},
		},
		{
			Article: &entity.Article{
				ID: 11, Title: "Utan mäklare", Body: "body2",
				PublishedAt: now.Add(-time.Hour),
			},
			Broker:   nil,
			Comments: []*entity.Comment{},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// No articles means the comment query never runs.
func TestArticleRepo_ListWithRelations_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("LEFT JOIN brokers").
		WillReturnRows(sqlmock.NewRows(joinColumns()))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListWithRelations(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("ListWithRelations err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 4. Create ─────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC)
	brokerID := int64(2)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs("title", "body", now, &brokerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := pg.NewArticleRepo(db)
	article := &entity.Article{
		Title: "title", Body: "body", PublishedAt: now, BrokerID: &brokerID,
	}
	if err := repo.Create(context.Background(), article); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if article.ID != 5 {
		t.Fatalf("Create id=%d, want 5", article.ID)
	}
}

/* ─────────────────────────── 5. Delete ─────────────────────────── */

func TestArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	ok, err := repo.Delete(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("Delete ok=%v err=%v", ok, err)
	}
}

/* ─────────────────────────── 6. Update ─────────────────────────── */

func TestArticleRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{
		ID: 99, Title: "t", Body: "b", PublishedAt: time.Now(),
	})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Update err=%v, want ErrNotFound", err)
	}
}
