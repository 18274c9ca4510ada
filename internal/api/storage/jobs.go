package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
)

// JobFilter narrows the public job listing
type JobFilter struct {
	Location  string
	Type      string
	MinSalary int64
	MaxSalary int64
	Search    string
}

// CreateJob inserts a new job posting
func (s *Storage) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (
			job_id, title, description, location, salary,
			type, status, posted_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		job.JobID,
		job.Title,
		job.Description,
		job.Location,
		job.Salary,
		job.Type,
		job.Status,
		job.PostedBy,
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetJobByID fetches a single job
func (s *Storage) GetJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	var job model.Job
	query := `
		SELECT job_id, title, description, location, salary,
		       type, status, posted_by, created_at, updated_at
		FROM jobs
		WHERE job_id = $1
	`

	err := s.db.GetContext(ctx, &job, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// buildListOpenJobsQuery assembles the filtered listing query. Only OPEN
// jobs are ever returned, newest first.
func buildListOpenJobsQuery(filter JobFilter) (string, []interface{}) {
	query := `
		SELECT j.job_id, j.title, j.description, j.location, j.salary,
		       j.type, j.status, j.posted_by, j.created_at, j.updated_at,
		       u.email AS poster_email, u.role AS poster_role
		FROM jobs j
		JOIN users u ON u.user_id = j.posted_by
		WHERE j.status = $1
	`
	args := []interface{}{domain.JobStatusOpen}
	argIdx := 2

	if filter.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}

	if filter.Type != "" {
		query += fmt.Sprintf(" AND j.type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}

	if filter.MinSalary > 0 {
		query += fmt.Sprintf(" AND j.salary >= $%d", argIdx)
		args = append(args, filter.MinSalary)
		argIdx++
	}

	if filter.MaxSalary > 0 {
		query += fmt.Sprintf(" AND j.salary <= $%d", argIdx)
		args = append(args, filter.MaxSalary)
		argIdx++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (j.title ILIKE $%d OR j.description ILIKE $%d)", argIdx, argIdx+1)
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
		argIdx += 2
	}

	query += " ORDER BY j.created_at DESC"

	return query, args
}

// ListOpenJobs lists OPEN jobs matching the filter, newest first, with the
// poster's public fields joined in
func (s *Storage) ListOpenJobs(ctx context.Context, filter JobFilter) ([]model.JobWithPoster, error) {
	query, args := buildListOpenJobsQuery(filter)

	var jobs []model.JobWithPoster
	err := s.db.SelectContext(ctx, &jobs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJob persists a modified job record
func (s *Storage) UpdateJob(ctx context.Context, job *model.Job) error {
	query := `
		UPDATE jobs
		SET title = $1,
		    description = $2,
		    location = $3,
		    salary = $4,
		    type = $5,
		    status = $6,
		    updated_at = NOW()
		WHERE job_id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		job.Title,
		job.Description,
		job.Location,
		job.Salary,
		job.Type,
		job.Status,
		job.JobID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}

// UpdateJobStatus sets a job's status and returns the updated record
func (s *Storage) UpdateJobStatus(ctx context.Context, jobID string, status domain.JobStatus) (*model.Job, error) {
	var job model.Job
	query := `
		UPDATE jobs
		SET status = $1,
		    updated_at = NOW()
		WHERE job_id = $2
		RETURNING job_id, title, description, location, salary,
		          type, status, posted_by, created_at, updated_at
	`

	err := s.db.GetContext(ctx, &job, query, status, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	return &job, nil
}

// DeleteJob removes a job and, via cascade, its applications
func (s *Storage) DeleteJob(ctx context.Context, jobID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}
