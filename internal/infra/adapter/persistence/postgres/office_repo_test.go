package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"dalahus/internal/domain/entity"
	pg "dalahus/internal/infra/adapter/persistence/postgres"
)

func TestOfficeRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Office{
		ID: 1, Name: "Dalahus Falun", Address: "Åsgatan 12, 791 71 Falun",
		Lat: 60.6065, Lon: 15.6355, Manager: "Anna Ståhl",
		ImageURL: "/static/img/kontor-falun.jpg",
	}

	mock.ExpectQuery("FROM offices").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "address", "lat", "lon", "manager", "image_url",
		}).AddRow(want.ID, want.Name, want.Address, want.Lat, want.Lon,
			want.Manager, want.ImageURL))

	repo := pg.NewOfficeRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOfficeRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE offices")).
		WithArgs("Dalahus Falun", "Åsgatan 12", 60.6065, 15.6355,
			"Anna Ståhl", "/img.jpg", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewOfficeRepo(db)
	err := repo.Update(context.Background(), &entity.Office{
		ID: 1, Name: "Dalahus Falun", Address: "Åsgatan 12",
		Lat: 60.6065, Lon: 15.6355, Manager: "Anna Ståhl", ImageURL: "/img.jpg",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestOfficeRepo_Create_InvalidCoordinates(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewOfficeRepo(db)
	err := repo.Create(context.Background(), &entity.Office{
		Name: "Dalahus Falun", Address: "Åsgatan 12", Lat: 120, Lon: 15,
	})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) || verr.Field != "lat" {
		t.Fatalf("Create err=%v, want ValidationError on lat", err)
	}
}
