package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/eventify/eventify-go/internal/model"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "Ana", "529.982.247-25", "ana@example.com", "1234").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserRepository(db)
	user := &model.User{ID: "u1", Name: "Ana", CPF: "529.982.247-25", Email: "ana@example.com", PIN: "1234"}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUserRepository_Create_DuplicateCPF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '529.982.247-25' for key 'users.cpf'"))

	repo := NewUserRepository(db)
	user := &model.User{ID: "u1", CPF: "529.982.247-25"}

	if err := repo.Create(context.Background(), user); !errors.Is(err, ErrDuplicateCPF) {
		t.Errorf("expected ErrDuplicateCPF, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "cpf", "email", "pin", "created_at", "updated_at"}).
		AddRow("u1", "Ana", "529.982.247-25", "ana@example.com", "1234", now, now)

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewUserRepository(db)

	user, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Name != "Ana" || user.PIN != "1234" {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cpf", "email", "pin", "created_at", "updated_at"}))

	repo := NewUserRepository(db)

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewUserRepository(db)

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
