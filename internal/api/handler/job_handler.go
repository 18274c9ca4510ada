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
	"github.com/aayushkhanal47/jobboard-be/internal/api/storage"
)

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger *slog.Logger
	jobs   JobStore
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
	}
}

// CreateJob handles POST /api/v1/jobs
// Creates a job posting owned by the calling admin
func (h *JobHandler) CreateJob(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid create job request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job := model.Job{
		JobID:       uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        domain.JobType(req.Type),
		Status:      domain.JobStatusOpen,
		PostedBy:    claims.UserID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if req.Salary != nil {
		job.Salary = sql.NullInt64{Int64: *req.Salary, Valid: true}
	}

	if err := h.jobs.CreateJob(c.Request.Context(), &job); err != nil {
		h.logger.Error("Failed to create job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create job",
		})
		return
	}

	h.logger.Info("Job created",
		slog.String("job_id", job.JobID),
		slog.String("posted_by", job.PostedBy),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Job created successfully",
		"job":     jobToDTO(&job),
	})
}

// ListJobs handles GET /api/v1/jobs
// Public listing of OPEN jobs with optional filters
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter := storage.JobFilter{
		Location:  req.Location,
		Type:      req.Type,
		MinSalary: req.MinSalary,
		MaxSalary: req.MaxSalary,
		Search:    req.Search,
	}

	jobs, err := h.jobs.ListOpenJobs(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list jobs",
		})
		return
	}

	jobResponse := make([]dto.JobDTO, len(jobs))
	for i := range jobs {
		d := jobToDTO(&jobs[i].Job)
		d.PosterEmail = jobs[i].PosterEmail
		jobResponse[i] = d
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: jobResponse})
}

// GetJob handles GET /api/v1/jobs/:id
// Retrieves a single job; requires authentication
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "id must be a valid UUID",
		})
		return
	}

	job, err := h.jobs.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.logger.Error("Failed to get job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get job",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": jobToDTO(job)})
}

// UpdateJob handles PUT /api/v1/jobs/:id
// Partial update; only the posting admin may modify a job
func (h *JobHandler) UpdateJob(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID := c.Param("id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "id must be a valid UUID",
		})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid update job request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.jobs.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.logger.Error("Failed to get job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update job",
		})
		return
	}

	if job.PostedBy != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You can only update your own jobs",
		})
		return
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = sql.NullInt64{Int64: *req.Salary, Valid: true}
	}
	if req.Type != nil {
		job.Type = domain.JobType(*req.Type)
	}

	if err := h.jobs.UpdateJob(c.Request.Context(), job); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.logger.Error("Failed to update job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update job",
		})
		return
	}

	h.logger.Info("Job updated", slog.String("job_id", job.JobID))

	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated",
		"job":     jobToDTO(job),
	})
}

// DeleteJob handles DELETE /api/v1/jobs/:id
// Only the posting admin may delete a job
func (h *JobHandler) DeleteJob(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID := c.Param("id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "id must be a valid UUID",
		})
		return
	}

	job, err := h.jobs.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.logger.Error("Failed to get job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete job",
		})
		return
	}

	if job.PostedBy != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You can only delete your own jobs",
		})
		return
	}

	if err := h.jobs.DeleteJob(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.logger.Error("Failed to delete job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete job",
		})
		return
	}

	h.logger.Info("Job deleted", slog.String("job_id", jobID))

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
