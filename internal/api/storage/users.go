package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
)

// CreateUser inserts a new user. Returns domain.ErrEmailTaken when the
// email unique constraint fires.
func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (
			user_id, email, password_hash, role, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		user.UserID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail fetches a user by their unique email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `
		SELECT user_id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	err := s.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
