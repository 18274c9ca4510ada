package model

import (
	"database/sql"
	"time"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
)

// User is a registered account
type User struct {
	UserID       string      `db:"user_id"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	Role         domain.Role `db:"role"`
	CreatedAt    time.Time   `db:"created_at"`
}

// Job is a job posting created by an admin
type Job struct {
	JobID       string           `db:"job_id"`
	Title       string           `db:"title"`
	Description string           `db:"description"`
	Location    string           `db:"location"`
	Salary      sql.NullInt64    `db:"salary"`
	Type        domain.JobType   `db:"type"`
	Status      domain.JobStatus `db:"status"`
	PostedBy    string           `db:"posted_by"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

// JobWithPoster is a job joined with its poster's public fields
type JobWithPoster struct {
	Job
	PosterEmail string      `db:"poster_email"`
	PosterRole  domain.Role `db:"poster_role"`
}

// Application links an applicant to a job
type Application struct {
	ApplicationID string                   `db:"application_id"`
	UserID        string                   `db:"user_id"`
	JobID         string                   `db:"job_id"`
	Status        domain.ApplicationStatus `db:"status"`
	CreatedAt     time.Time                `db:"created_at"`
	UpdatedAt     time.Time                `db:"updated_at"`
}

// ApplicationWithJob is an application joined with its job record
type ApplicationWithJob struct {
	Application
	Job Job `db:"job"`
}

// ApplicationWithApplicant is an application joined with the applicant's email
type ApplicationWithApplicant struct {
	Application
	ApplicantEmail string `db:"applicant_email"`
}

// JobApplicationCount is one row of the dashboard's top-jobs ranking
type JobApplicationCount struct {
	JobID    string `db:"job_id"`
	JobTitle string `db:"title"`
	Count    int64  `db:"count"`
}

// DashboardStats is the admin dashboard aggregate
type DashboardStats struct {
	TotalJobs            int64
	TotalUsers           int64
	TotalApplications    int64
	ApplicationsByStatus map[domain.ApplicationStatus]int64
	TopJobs              []JobApplicationCount
}
