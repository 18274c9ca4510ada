package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
)

// CreateApplication inserts a new application. Returns
// domain.ErrAlreadyApplied when the (user, job) unique constraint fires.
func (s *Storage) CreateApplication(ctx context.Context, app *model.Application) error {
	query := `
		INSERT INTO applications (
			application_id, user_id, job_id, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		app.ApplicationID,
		app.UserID,
		app.JobID,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// ListApplicationsByUser returns the caller's applications with the job
// record embedded
func (s *Storage) ListApplicationsByUser(ctx context.Context, userID string) ([]model.ApplicationWithJob, error) {
	query := `
		SELECT a.application_id, a.user_id, a.job_id, a.status, a.created_at, a.updated_at,
		       j.job_id AS "job.job_id", j.title AS "job.title",
		       j.description AS "job.description", j.location AS "job.location",
		       j.salary AS "job.salary", j.type AS "job.type",
		       j.status AS "job.status", j.posted_by AS "job.posted_by",
		       j.created_at AS "job.created_at", j.updated_at AS "job.updated_at"
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
	`

	var apps []model.ApplicationWithJob
	err := s.db.SelectContext(ctx, &apps, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// ListApplicationsByJob returns all applications for a job with the
// applicant's email joined in
func (s *Storage) ListApplicationsByJob(ctx context.Context, jobID string) ([]model.ApplicationWithApplicant, error) {
	query := `
		SELECT a.application_id, a.user_id, a.job_id, a.status, a.created_at, a.updated_at,
		       u.email AS applicant_email
		FROM applications a
		JOIN users u ON u.user_id = a.user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
	`

	var apps []model.ApplicationWithApplicant
	err := s.db.SelectContext(ctx, &apps, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for job: %w", err)
	}

	return apps, nil
}

// UpdateApplicationStatus sets an application's review status and returns
// the updated record
func (s *Storage) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) (*model.Application, error) {
	var app model.Application
	query := `
		UPDATE applications
		SET status = $1,
		    updated_at = NOW()
		WHERE application_id = $2
		RETURNING application_id, user_id, job_id, status, created_at, updated_at
	`

	err := s.db.GetContext(ctx, &app, query, status, applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return &app, nil
}
