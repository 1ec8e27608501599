package search

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestAdd_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now())
	mock.ExpectQuery(`INSERT\s+INTO\s+search_history`).
		WithArgs(int64(9), "golang").
		WillReturnRows(rows)

	got, err := repo.Add(context.Background(), 9, "golang")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.ID != 11 || got.Keyword != "golang" {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestAdd_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+search_history`).
		WithArgs(int64(9), "golang").
		WillReturnError(errors.New("db down"))

	_, err := repo.Add(context.Background(), 9, "golang")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestList_RespectsLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "keyword", "created_at"}).
		AddRow(int64(2), "generics", time.Now()).
		AddRow(int64(1), "golang", time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*keyword,\s*created_at\s+FROM\s+search_history.*LIMIT\s+\$2`).
		WithArgs(int64(9), 100).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 9, 100)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Keyword != "generics" {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestTrim_DeletesOldEntries(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)DELETE\s+FROM\s+search_history.*NOT\s+IN`).
		WithArgs(int64(9), 100).
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.Trim(context.Background(), 9, 100); err != nil {
		t.Fatalf("Trim error: %v", err)
	}
}
