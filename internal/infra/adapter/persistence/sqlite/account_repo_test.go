package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"dalahus/internal/domain/entity"
	sq "dalahus/internal/infra/adapter/persistence/sqlite"
)

func TestAccountRepo_GetByUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM accounts").
		WithArgs("pdo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}).
			AddRow(int64(2), "pdo", "123", entity.RoleUser))

	repo := sq.NewAccountRepo(db)
	got, err := repo.GetByUsername(context.Background(), "pdo")
	if err != nil {
		t.Fatalf("GetByUsername err=%v", err)
	}
	if got == nil || got.Username != "pdo" || got.Role != entity.RoleUser {
		t.Fatalf("got=%+v", got)
	}
}

func TestAccountRepo_GetByUsername_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM accounts").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}))

	repo := sq.NewAccountRepo(db)
	got, err := repo.GetByUsername(context.Background(), "nobody")
	if err != nil || got != nil {
		t.Fatalf("absent: got=%+v err=%v", got, err)
	}
}

// The modernc driver reports constraint failures through the error text.
func TestAccountRepo_Create_DuplicateUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WillReturnError(fmt.Errorf("constraint failed: UNIQUE constraint failed: accounts.username (2067)"))

	repo := sq.NewAccountRepo(db)
	err := repo.Create(context.Background(), &entity.Account{
		Username: "pei", Password: "1234", Role: entity.RoleAdmin,
	})
	if !errors.Is(err, entity.ErrDuplicate) {
		t.Fatalf("Create err=%v, want ErrDuplicate", err)
	}
}
