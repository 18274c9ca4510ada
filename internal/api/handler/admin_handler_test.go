package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/dto"
	"github.com/aayushkhanal47/jobboard-be/internal/api/handler"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
)

func TestUpdateJobStatus(t *testing.T) {
	t.Run("closes an open job", func(t *testing.T) {
		env := newTestEnv()
		jobID := uuid.New().String()
		env.addJob(jobID, "admin-1", domain.JobStatusOpen)
		r := env.router()
		token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

		w := performJSON(r, http.MethodPatch, "/api/v1/admin/jobs/"+jobID+"/status", token, gin.H{
			"status": "CLOSED",
		})

		require.Equal(t, http.StatusOK, w.Code)

		stored, err := env.jobs.GetJobByID(context.Background(), jobID)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusClosed, stored.Status)
	})

	t.Run("invalid status value", func(t *testing.T) {
		env := newTestEnv()
		jobID := uuid.New().String()
		env.addJob(jobID, "admin-1", domain.JobStatusOpen)
		r := env.router()
		token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

		w := performJSON(r, http.MethodPatch, "/api/v1/admin/jobs/"+jobID+"/status", token, gin.H{
			"status": "PAUSED",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown job", func(t *testing.T) {
		env := newTestEnv()
		r := env.router()
		token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

		w := performJSON(r, http.MethodPatch, "/api/v1/admin/jobs/"+uuid.New().String()+"/status", token, gin.H{
			"status": "CLOSED",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		env := newTestEnv()
		jobID := uuid.New().String()
		env.addJob(jobID, "admin-1", domain.JobStatusOpen)
		r := env.router()
		token := env.tokenFor(t, "user-1", domain.RoleUser)

		w := performJSON(r, http.MethodPatch, "/api/v1/admin/jobs/"+jobID+"/status", token, gin.H{
			"status": "CLOSED",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListApplicationsForJob(t *testing.T) {
	env := newTestEnv()
	jobID := uuid.New().String()
	env.addJob(jobID, "admin-1", domain.JobStatusOpen)

	appID := uuid.New().String()
	env.applications.apps[appID] = &model.Application{
		ApplicationID: appID,
		UserID:        "user-1",
		JobID:         jobID,
		Status:        domain.ApplicationStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	env.applications.userEmail["user-1"] = "alice@example.com"

	r := env.router()
	token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

	w := performJSON(r, http.MethodGet, "/api/v1/admin/applications/"+jobID, token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListApplicationsResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, appID, resp.Applications[0].ApplicationID)
	assert.Equal(t, "alice@example.com", resp.Applications[0].ApplicantEmail)
}

func TestUpdateApplicationStatus(t *testing.T) {
	setup := func(env *testEnv) string {
		jobID := uuid.New().String()
		env.addJob(jobID, "admin-1", domain.JobStatusOpen)

		appID := uuid.New().String()
		env.applications.apps[appID] = &model.Application{
			ApplicationID: appID,
			UserID:        "user-1",
			JobID:         jobID,
			Status:        domain.ApplicationStatusPending,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		return appID
	}

	t.Run("accepts an application and publishes an event", func(t *testing.T) {
		env := newTestEnv()
		appID := setup(env)
		r := env.router()
		token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

		w := performJSON(r, http.MethodPatch, "/api/v1/admin/applications/"+appID, token, gin.H{
			"status": "ACCEPTED",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.ApplicationStatusAccepted, env.applications.apps[appID].Status)

		require.Len(t, env.publisher.events, 1)
		assert.Equal(t, handler.EventApplicationStatusChanged, env.publisher.events[0].Event)
		assert.Equal(t, appID, env.publisher.events[0].ApplicationID)
	})

	t.Run("PENDING is not a valid target status", func(t *testing.T) {
		env := newTestEnv()
		appID := setup(env)
		r := env.router()
		token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

		w := performJSON(r, http.MethodPatch, "/api/v1/admin/applications/"+appID, token, gin.H{
			"status": "PENDING",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown application", func(t *testing.T) {
		env := newTestEnv()
		r := env.router()
		token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

		w := performJSON(r, http.MethodPatch, "/api/v1/admin/applications/"+uuid.New().String(), token, gin.H{
			"status": "REJECTED",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDashboard(t *testing.T) {
	env := newTestEnv()
	env.dashboard.stats = &model.DashboardStats{
		TotalJobs:         12,
		TotalUsers:        40,
		TotalApplications: 95,
		ApplicationsByStatus: map[domain.ApplicationStatus]int64{
			domain.ApplicationStatusPending:  50,
			domain.ApplicationStatusAccepted: 30,
			domain.ApplicationStatusRejected: 15,
		},
		TopJobs: []model.JobApplicationCount{
			{JobID: "job-1", JobTitle: "Backend Engineer", Count: 20},
			{JobID: "job-2", JobTitle: "Designer", Count: 12},
		},
	}
	r := env.router()
	token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

	w := performJSON(r, http.MethodGet, "/api/v1/admin/dashboard", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(12), resp.TotalJobs)
	assert.Equal(t, int64(40), resp.TotalUsers)
	assert.Equal(t, int64(95), resp.TotalApplications)

	require.Len(t, resp.ApplicationStats, 3)
	assert.Equal(t, []dto.ApplicationStatusCount{
		{Status: "PENDING", Count: 50},
		{Status: "ACCEPTED", Count: 30},
		{Status: "REJECTED", Count: 15},
	}, resp.ApplicationStats)

	require.Len(t, resp.TopJobs, 2)
	assert.Equal(t, "job-1", resp.TopJobs[0].JobID)
	assert.Equal(t, int64(20), resp.TopJobs[0].Count)
}

func TestSeed(t *testing.T) {
	t.Run("inserts sample jobs owned by the caller", func(t *testing.T) {
		env := newTestEnv()
		r := env.router()
		token := env.tokenFor(t, "admin-1", domain.RoleAdmin)

		w := performJSON(r, http.MethodPost, "/api/v1/admin/seed", token, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\"count\":10")

		assert.Len(t, env.jobs.jobs, 10)
		for _, job := range env.jobs.jobs {
			assert.Equal(t, "admin-1", job.PostedBy)
			assert.Equal(t, domain.JobStatusOpen, job.Status)
		}
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		env := newTestEnv()
		r := env.router()
		token := env.tokenFor(t, "user-1", domain.RoleUser)

		w := performJSON(r, http.MethodPost, "/api/v1/admin/seed", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
