package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/aayushkhanal47/jobboard-be/internal/worker/domain"
)

// Storage handles all database operations for the worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// GetApplicationDetails loads an application together with the job title and
// the applicant/poster emails needed to address a notification
func (s *Storage) GetApplicationDetails(ctx context.Context, applicationID string) (*domain.ApplicationDetails, error) {
	query := `
		SELECT a.application_id,
		       a.status,
		       applicant.email AS applicant_email,
		       j.title AS job_title,
		       poster.email AS poster_email
		FROM applications a
		JOIN users applicant ON applicant.user_id = a.user_id
		JOIN jobs j ON j.job_id = a.job_id
		JOIN users poster ON poster.user_id = j.posted_by
		WHERE a.application_id = $1
	`

	var details domain.ApplicationDetails
	if err := s.db.GetContext(ctx, &details, query, applicationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application details: %w", err)
	}

	return &details, nil
}

// CreateNotification inserts a notification outbox row
func (s *Storage) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (
			notification_id, application_id, recipient, subject, body, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		notification.NotificationID,
		notification.ApplicationID,
		notification.Recipient,
		notification.Subject,
		notification.Body,
		notification.Status,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.logger.Info("Notification queued",
		slog.String("notification_id", notification.NotificationID),
		slog.String("application_id", notification.ApplicationID),
		slog.String("recipient", notification.Recipient),
	)

	return nil
}
