package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/aayushkhanal47/jobboard-be/internal/api/auth"
	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/dto"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
	"github.com/aayushkhanal47/jobboard-be/internal/api/storage"
	"github.com/aayushkhanal47/jobboard-be/shared/postgresql"
)

// UserStore is the user persistence surface handlers depend on
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// JobStore is the job persistence surface handlers depend on
type JobStore interface {
	CreateJob(ctx context.Context, job *model.Job) error
	GetJobByID(ctx context.Context, jobID string) (*model.Job, error)
	ListOpenJobs(ctx context.Context, filter storage.JobFilter) ([]model.JobWithPoster, error)
	UpdateJob(ctx context.Context, job *model.Job) error
	UpdateJobStatus(ctx context.Context, jobID string, status domain.JobStatus) (*model.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
}

// ApplicationStore is the application persistence surface handlers depend on
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *model.Application) error
	ListApplicationsByUser(ctx context.Context, userID string) ([]model.ApplicationWithJob, error)
	ListApplicationsByJob(ctx context.Context, jobID string) ([]model.ApplicationWithApplicant, error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) (*model.Application, error)
}

// DashboardStore computes the admin dashboard aggregate
type DashboardStore interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// EventPublisher publishes application lifecycle events for the worker
type EventPublisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger       *slog.Logger
	DB           *postgresql.Client
	Users        UserStore
	Jobs         JobStore
	Applications ApplicationStore
	Dashboard    DashboardStore
	Publisher    EventPublisher
	Tokens       *auth.TokenIssuer
	BcryptCost   int
}

func jobToDTO(job *model.Job) dto.JobDTO {
	d := dto.JobDTO{
		JobID:       job.JobID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Type:        string(job.Type),
		Status:      string(job.Status),
		PostedBy:    job.PostedBy,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   job.UpdatedAt.Format(time.RFC3339),
	}

	if job.Salary.Valid {
		salary := job.Salary.Int64
		d.Salary = &salary
	}

	return d
}

func applicationToDTO(app *model.Application) dto.ApplicationDTO {
	return dto.ApplicationDTO{
		ApplicationID: app.ApplicationID,
		UserID:        app.UserID,
		JobID:         app.JobID,
		Status:        string(app.Status),
		CreatedAt:     app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     app.UpdatedAt.Format(time.RFC3339),
	}
}
