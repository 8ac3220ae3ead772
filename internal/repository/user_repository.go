// internal/repository/user_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tracker/internal/models"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and returns the generated id. A duplicate
// username surfaces as the driver's unique-violation error; callers map it
// with database.IsUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	if r.db.DriverName() == "postgres" {
		var id int64
		query := r.db.Rebind(`INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`)
		if err := r.db.QueryRowxContext(ctx, query, username, passwordHash).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert user: %w", err)
		}
		return id, nil
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO users (username, password_hash) VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetByUsername returns the user with the given username, or sql.ErrNoRows.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := r.db.Rebind(`SELECT id, username, password_hash FROM users WHERE username = ?`)
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether a user with the given username exists.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM users WHERE username = ?`)
	if err := r.db.GetContext(ctx, &count, query, username); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return count > 0, nil
}
