package storage

import (
	"context"
	"fmt"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
)

// topJobsLimit caps the dashboard's most-applied-to ranking
const topJobsLimit = 5

// GetDashboardStats computes the admin dashboard aggregate. Each count is a
// separate read; the dashboard tolerates slight skew between them.
func (s *Storage) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		ApplicationsByStatus: make(map[domain.ApplicationStatus]int64),
	}

	if err := s.db.GetContext(ctx, &stats.TotalJobs, `SELECT COUNT(*) FROM jobs`); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	if err := s.db.GetContext(ctx, &stats.TotalUsers, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if err := s.db.GetContext(ctx, &stats.TotalApplications, `SELECT COUNT(*) FROM applications`); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	var statusCounts []struct {
		Status domain.ApplicationStatus `db:"status"`
		Count  int64                    `db:"count"`
	}

	err := s.db.SelectContext(ctx, &statusCounts, `
		SELECT status, COUNT(*) AS count
		FROM applications
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications by status: %w", err)
	}

	for _, sc := range statusCounts {
		stats.ApplicationsByStatus[sc.Status] = sc.Count
	}

	err = s.db.SelectContext(ctx, &stats.TopJobs, `
		SELECT j.job_id, j.title, COUNT(a.application_id) AS count
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		GROUP BY j.job_id, j.title, j.created_at
		ORDER BY count DESC, j.created_at DESC
		LIMIT $1
	`, topJobsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank jobs by applications: %w", err)
	}

	return stats, nil
}
