package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jaiganesh5555/arcade/internal/model"
)

func newUserRepoMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(db), mock
}

func TestUserCreate(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (name, email, auth_hash) VALUES (?, ?, ?)`)).
		WithArgs("Ann", "a@x.com", "hash").
		WillReturnResult(sqlmock.NewResult(12, 1))

	user := &model.User{Name: "Ann", Email: "a@x.com", AuthHash: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID != 12 {
		t.Errorf("Create() ID = %d, want 12", user.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'users.email'"))

	err := repo.Create(context.Background(), &model.User{Name: "Ann", Email: "a@x.com", AuthHash: "hash"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserGetByEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "auth_hash", "created_at", "updated_at"}).
		AddRow(3, "Ann", "a@x.com", "hash", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, auth_hash, created_at, updated_at FROM users WHERE email = ?`)).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if user.ID != 3 || user.Name != "Ann" {
		t.Errorf("GetByEmail() = %+v, want ID 3 / Ann", user)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, auth_hash, created_at, updated_at FROM users WHERE email = ?`)).
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "auth_hash", "created_at", "updated_at"}))

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, auth_hash, created_at, updated_at FROM users WHERE id = ?`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "auth_hash", "created_at", "updated_at"}))

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("Error 1062: Duplicate entry 'x' for key 'users.email'")) {
		t.Error("MySQL 1062 error should be a duplicate entry error")
	}
}
