package handler

import (
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

// ApplicationHandler handles job applications from regular users
type ApplicationHandler struct {
	logger       *slog.Logger
	jobs         JobStore
	applications ApplicationStore
	publisher    EventPublisher
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{
		logger:       deps.Logger,
		jobs:         deps.Jobs,
		applications: deps.Applications,
		publisher:    deps.Publisher,
	}
}

// Apply handles POST /api/v1/applications/:jobId
// Creates a PENDING application; a user may apply to a job at most once
func (h *ApplicationHandler) Apply(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID := c.Param("jobId")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "jobId must be a valid UUID",
		})
		return
	}

	if _, err := h.jobs.GetJobByID(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.logger.Error("Failed to get job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to apply",
		})
		return
	}

	app := model.Application{
		ApplicationID: uuid.New().String(),
		UserID:        claims.UserID,
		JobID:         jobID,
		Status:        domain.ApplicationStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.applications.CreateApplication(c.Request.Context(), &app); err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			c.JSON(http.StatusConflict, gin.H{"error": "Already applied"})
			return
		}
		h.logger.Error("Failed to create application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to apply",
		})
		return
	}

	h.logger.Info("Application submitted",
		slog.String("application_id", app.ApplicationID),
		slog.String("job_id", jobID),
		slog.String("user_id", claims.UserID),
	)

	publishApplicationEvent(c.Request.Context(), h.logger, h.publisher, EventApplicationSubmitted, app.ApplicationID)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Applied successfully",
		"application": applicationToDTO(&app),
	})
}

// ListMine handles GET /api/v1/applications/me
// Lists the caller's applications with the job record embedded
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	apps, err := h.applications.ListApplicationsByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("Failed to list applications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list applications",
		})
		return
	}

	response := make([]dto.ApplicationDTO, len(apps))
	for i := range apps {
		d := applicationToDTO(&apps[i].Application)
		jobDTO := jobToDTO(&apps[i].Job)
		d.Job = &jobDTO
		response[i] = d
	}

	c.JSON(http.StatusOK, dto.ListApplicationsResponse{Applications: response})
}
