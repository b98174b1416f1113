package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/eventify/eventify-go/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicateCPF = errors.New("cpf already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, name, cpf, email, pin) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.CPF, user.Email, user.PIN)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCPF
		}
		return err
	}
	return nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, name, cpf, email, pin, created_at, updated_at FROM users WHERE id = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.CPF, &user.Email, &user.PIN, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// Update persists the mutable fields of a user. MySQL reports zero
// affected rows for a no-op update, so existence is the caller's concern.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET name = ?, email = ?, pin = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PIN, user.ID)
	return err
}

// Delete removes a user record. Participation rows are removed by the
// relation table's foreign key cascade.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
