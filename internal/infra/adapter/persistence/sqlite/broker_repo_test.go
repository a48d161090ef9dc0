package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"dalahus/internal/domain/entity"
	sq "dalahus/internal/infra/adapter/persistence/sqlite"
)

func brokerColumns() []string {
	return []string{"id", "name", "email", "phone", "title", "bio"}
}

func TestBrokerRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Broker{
		ID: 1, Name: "Anna Ståhl", Email: "anna.stahl@dalahus.se",
		Phone: "070-1234567", Title: "Fastighetsmäklare", Bio: "Falun",
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(brokerColumns()).
			AddRow(want.ID, want.Name, want.Email, want.Phone, want.Title, want.Bio))

	repo := sq.NewBrokerRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrokerRepo_Get_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM brokers").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(brokerColumns()))

	repo := sq.NewBrokerRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("absent row: got=%+v err=%v", got, err)
	}
}

func TestBrokerRepo_GetOrFail_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM brokers").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(brokerColumns()))

	repo := sq.NewBrokerRepo(db)
	if _, err := repo.GetOrFail(context.Background(), 99); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("GetOrFail err=%v, want ErrNotFound", err)
	}
}

func TestBrokerRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO brokers")).
		WithArgs("Bosse Andersson", "bosse.andersson@dalahus.se", "", "", "").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := sq.NewBrokerRepo(db)
	broker := &entity.Broker{Name: "Bosse Andersson", Email: "bosse.andersson@dalahus.se"}
	if err := repo.Create(context.Background(), broker); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if broker.ID != 7 {
		t.Fatalf("assigned id=%d, want 7", broker.ID)
	}
}

// The modernc driver reports constraint failures through the error text.
func TestBrokerRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO brokers")).
		WillReturnError(fmt.Errorf("constraint failed: UNIQUE constraint failed: brokers.email (2067)"))

	repo := sq.NewBrokerRepo(db)
	err := repo.Create(context.Background(), &entity.Broker{
		Name: "Anna Ståhl", Email: "anna.stahl@dalahus.se",
	})
	if !errors.Is(err, entity.ErrDuplicate) {
		t.Fatalf("Create err=%v, want ErrDuplicate", err)
	}
}

func TestBrokerRepo_Create_Invalid(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := sq.NewBrokerRepo(db)
	err := repo.Create(context.Background(), &entity.Broker{Name: "No Email"})

	var verr *entity.ValidationError
	if !errors.As(err, &verr) || verr.Field != "email" {
		t.Fatalf("Create err=%v, want ValidationError on email", err)
	}
}

func TestBrokerRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE brokers")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := sq.NewBrokerRepo(db)
	err := repo.Update(context.Background(), &entity.Broker{
		ID: 99, Name: "Anna Ståhl", Email: "anna.stahl@dalahus.se",
	})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Update err=%v, want ErrNotFound", err)
	}
}

func TestBrokerRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM brokers")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := sq.NewBrokerRepo(db)
	deleted, err := repo.Delete(context.Background(), 1)
	if err != nil || !deleted {
		t.Fatalf("Delete deleted=%v err=%v", deleted, err)
	}
}

func TestBrokerRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM brokers")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	repo := sq.NewBrokerRepo(db)
	count, err := repo.Count(context.Background())
	if err != nil || count != 2 {
		t.Fatalf("Count=%d err=%v", count, err)
	}
}
