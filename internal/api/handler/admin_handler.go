package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aayushkhanal47/jobboard-be/internal/api/auth"
	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/dto"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	logger       *slog.Logger
	jobs         JobStore
	applications ApplicationStore
	dashboard    DashboardStore
	publisher    EventPublisher
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(deps *Dependencies) *AdminHandler {
	return &AdminHandler{
		logger:       deps.Logger,
		jobs:         deps.Jobs,
		applications: deps.Applications,
		dashboard:    deps.Dashboard,
		publisher:    deps.Publisher,
	}
}

// UpdateJobStatus handles PATCH /api/v1/admin/jobs/:id/status
func (h *AdminHandler) UpdateJobStatus(c *gin.Context) {
	jobID := c.Param("id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "id must be a valid UUID",
		})
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid job status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid job status",
		})
		return
	}

	job, err := h.jobs.UpdateJobStatus(c.Request.Context(), jobID, domain.JobStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.logger.Error("Failed to update job status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update job status",
		})
		return
	}

	h.logger.Info("Job status updated",
		slog.String("job_id", jobID),
		slog.String("status", req.Status),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Job status updated",
		"job":     jobToDTO(job),
	})
}

// ListApplicationsForJob handles GET /api/v1/admin/applications/:jobId
func (h *AdminHandler) ListApplicationsForJob(c *gin.Context) {
	jobID := c.Param("jobId")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "jobId must be a valid UUID",
		})
		return
	}

	apps, err := h.applications.ListApplicationsByJob(c.Request.Context(), jobID)
	if err != nil {
		h.logger.Error("Failed to list applications for job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list applications",
		})
		return
	}

	response := make([]dto.ApplicationDTO, len(apps))
	for i := range apps {
		d := applicationToDTO(&apps[i].Application)
		d.ApplicantEmail = apps[i].ApplicantEmail
		response[i] = d
	}

	c.JSON(http.StatusOK, dto.ListApplicationsResponse{Applications: response})
}

// UpdateApplicationStatus handles PATCH /api/v1/admin/applications/:id
func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	applicationID := c.Param("id")
	if _, err := uuid.Parse(applicationID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "id must be a valid UUID",
		})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid application status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status",
		})
		return
	}

	app, err := h.applications.UpdateApplicationStatus(c.Request.Context(), applicationID, domain.ApplicationStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		h.logger.Error("Failed to update application status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update application status",
		})
		return
	}

	h.logger.Info("Application status updated",
		slog.String("application_id", applicationID),
		slog.String("status", req.Status),
	)

	publishApplicationEvent(c.Request.Context(), h.logger, h.publisher, EventApplicationStatusChanged, app.ApplicationID)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated",
		"application": applicationToDTO(app),
	})
}

// Dashboard handles GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch dashboard data",
		})
		return
	}

	applicationStats := make([]dto.ApplicationStatusCount, 0, len(stats.ApplicationsByStatus))
	for _, status := range []domain.ApplicationStatus{
		domain.ApplicationStatusPending,
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
	} {
		if count, ok := stats.ApplicationsByStatus[status]; ok {
			applicationStats = append(applicationStats, dto.ApplicationStatusCount{
				Status: string(status),
				Count:  count,
			})
		}
	}

	topJobs := make([]dto.TopJob, len(stats.TopJobs))
	for i, tj := range stats.TopJobs {
		topJobs[i] = dto.TopJob{
			JobID:    tj.JobID,
			JobTitle: tj.JobTitle,
			Count:    tj.Count,
		}
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		TotalJobs:         stats.TotalJobs,
		TotalUsers:        stats.TotalUsers,
		TotalApplications: stats.TotalApplications,
		ApplicationStats:  applicationStats,
		TopJobs:           topJobs,
	})
}

// seedJobs is the fixed sample data inserted by the seed endpoint
var seedJobs = []struct {
	Title       string
	Description string
	Location    string
	Salary      int64
	Type        domain.JobType
}{
	{"Registered Nurse", "Provide patient care and assist doctors in procedures.", "Bharatpur, Nepal", 40000, domain.JobTypeOther},
	{"Mechanical Engineer", "Design and develop mechanical systems and components.", "Pune, India", 60000, domain.JobTypeEngineering},
	{"Software Developer", "Develop web applications using Node.js and React.", "San Francisco, USA", 90000, domain.JobTypeEngineering},
	{"IT Support Specialist", "Provide technical assistance to clients and employees.", "Bangalore, India", 50000, domain.JobTypeOther},
	{"Graphic Designer", "Design creatives for digital and print media.", "London, UK", 35000, domain.JobTypeDesign},
	{"Digital Marketing Manager", "Lead SEO, SEM, and social media campaigns.", "Mumbai, India", 65000, domain.JobTypeMarketing},
	{"Civil Engineer", "Manage and oversee construction projects.", "New Delhi, India", 70000, domain.JobTypeEngineering},
	{"AI Research Intern", "Assist in machine learning and LLM projects.", "Kathmandu, Nepal", 30000, domain.JobTypeOther},
	{"Content Writer", "Create engaging blog and website content.", "New York, USA", 45000, domain.JobTypeOther},
	{"Frontend Developer", "Build pixel-perfect UIs using modern frameworks.", "Chennai, India", 55000, domain.JobTypeEngineering},
}

// Seed handles POST /api/v1/admin/seed
// Inserts sample OPEN jobs attributed to the calling admin
func (h *AdminHandler) Seed(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created := 0
	for _, seed := range seedJobs {
		job := model.Job{
			JobID:       uuid.New().String(),
			Title:       seed.Title,
			Description: seed.Description,
			Location:    seed.Location,
			Salary:      sql.NullInt64{Int64: seed.Salary, Valid: true},
			Type:        seed.Type,
			Status:      domain.JobStatusOpen,
			PostedBy:    claims.UserID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := h.jobs.CreateJob(c.Request.Context(), &job); err != nil {
			h.logger.Error("Failed to seed job",
				slog.String("title", seed.Title),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to seed jobs",
			})
			return
		}
		created++
	}

	h.logger.Info("Seeded sample jobs",
		slog.Int("count", created),
		slog.String("posted_by", claims.UserID),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Sample jobs created",
		"count":   created,
	})
}
