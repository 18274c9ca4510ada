package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aayushkhanal47/jobboard-be/internal/api/auth"
	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/handler"
	"github.com/aayushkhanal47/jobboard-be/internal/api/model"
	"github.com/aayushkhanal47/jobboard-be/internal/api/router"
	"github.com/aayushkhanal47/jobboard-be/internal/api/storage"
)

// In-memory fakes implementing the handler storage interfaces. They mirror
// the database behavior the handlers rely on, including unique-constraint
// style duplicate rejection.

type fakeUserStore struct {
	byEmail map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	copied := *user
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	user, exists := f.byEmail[email]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

type fakeJobStore struct {
	jobs map[string]*model.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[string]*model.Job)}
}

func (f *fakeJobStore) CreateJob(_ context.Context, job *model.Job) error {
	copied := *job
	f.jobs[job.JobID] = &copied
	return nil
}

func (f *fakeJobStore) GetJobByID(_ context.Context, jobID string) (*model.Job, error) {
	job, exists := f.jobs[jobID]
	if !exists {
		return nil, domain.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobStore) ListOpenJobs(_ context.Context, filter storage.JobFilter) ([]model.JobWithPoster, error) {
	var result []model.JobWithPoster
	for _, job := range f.jobs {
		if job.Status != domain.JobStatusOpen {
			continue
		}
		if filter.Type != "" && string(job.Type) != filter.Type {
			continue
		}
		result = append(result, model.JobWithPoster{Job: *job, PosterEmail: "poster@example.com"})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeJobStore) UpdateJob(_ context.Context, job *model.Job) error {
	if _, exists := f.jobs[job.JobID]; !exists {
		return domain.ErrJobNotFound
	}
	copied := *job
	copied.UpdatedAt = time.Now()
	f.jobs[job.JobID] = &copied
	return nil
}

func (f *fakeJobStore) UpdateJobStatus(_ context.Context, jobID string, status domain.JobStatus) (*model.Job, error) {
	job, exists := f.jobs[jobID]
	if !exists {
		return nil, domain.ErrJobNotFound
	}
	job.Status = status
	job.UpdatedAt = time.Now()
	copied := *job
	return &copied, nil
}

func (f *fakeJobStore) DeleteJob(_ context.Context, jobID string) error {
	if _, exists := f.jobs[jobID]; !exists {
		return domain.ErrJobNotFound
	}
	delete(f.jobs, jobID)
	return nil
}

type fakeApplicationStore struct {
	apps      map[string]*model.Application
	jobs      *fakeJobStore
	userEmail map[string]string
}

func newFakeApplicationStore(jobs *fakeJobStore) *fakeApplicationStore {
	return &fakeApplicationStore{
		apps:      make(map[string]*model.Application),
		jobs:      jobs,
		userEmail: make(map[string]string),
	}
}

func (f *fakeApplicationStore) CreateApplication(_ context.Context, app *model.Application) error {
	for _, existing := range f.apps {
		if existing.UserID == app.UserID && existing.JobID == app.JobID {
			return domain.ErrAlreadyApplied
		}
	}
	copied := *app
	f.apps[app.ApplicationID] = &copied
	return nil
}

func (f *fakeApplicationStore) ListApplicationsByUser(_ context.Context, userID string) ([]model.ApplicationWithJob, error) {
	var result []model.ApplicationWithJob
	for _, app := range f.apps {
		if app.UserID != userID {
			continue
		}
		job := f.jobs.jobs[app.JobID]
		result = append(result, model.ApplicationWithJob{Application: *app, Job: *job})
	}
	return result, nil
}

func (f *fakeApplicationStore) ListApplicationsByJob(_ context.Context, jobID string) ([]model.ApplicationWithApplicant, error) {
	var result []model.ApplicationWithApplicant
	for _, app := range f.apps {
		if app.JobID != jobID {
			continue
		}
		result = append(result, model.ApplicationWithApplicant{
			Application:    *app,
			ApplicantEmail: f.userEmail[app.UserID],
		})
	}
	return result, nil
}

func (f *fakeApplicationStore) UpdateApplicationStatus(_ context.Context, applicationID string, status domain.ApplicationStatus) (*model.Application, error) {
	app, exists := f.apps[applicationID]
	if !exists {
		return nil, domain.ErrApplicationNotFound
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	copied := *app
	return &copied, nil
}

type fakeDashboardStore struct {
	stats *model.DashboardStats
}

func (f *fakeDashboardStore) GetDashboardStats(_ context.Context) (*model.DashboardStats, error) {
	return f.stats, nil
}

type fakePublisher struct {
	events []publishedEvent
}

type publishedEvent struct {
	Event         string `json:"event"`
	ApplicationID string `json:"application_id"`
}

func (f *fakePublisher) Publish(_ context.Context, body []byte, _ string) error {
	var event publishedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	f.events = append(f.events, event)
	return nil
}

// testEnv bundles the fakes behind a router for end-to-end handler tests
type testEnv struct {
	users        *fakeUserStore
	jobs         *fakeJobStore
	applications *fakeApplicationStore
	dashboard    *fakeDashboardStore
	publisher    *fakePublisher
	tokens       *auth.TokenIssuer
	deps         *handler.Dependencies
}

func newTestEnv() *testEnv {
	users := newFakeUserStore()
	jobs := newFakeJobStore()
	applications := newFakeApplicationStore(jobs)
	dashboard := &fakeDashboardStore{stats: &model.DashboardStats{
		ApplicationsByStatus: make(map[domain.ApplicationStatus]int64),
	}}
	publisher := &fakePublisher{}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	return &testEnv{
		users:        users,
		jobs:         jobs,
		applications: applications,
		dashboard:    dashboard,
		publisher:    publisher,
		tokens:       tokens,
		deps: &handler.Dependencies{
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
			Users:        users,
			Jobs:         jobs,
			Applications: applications,
			Dashboard:    dashboard,
			Publisher:    publisher,
			Tokens:       tokens,
			BcryptCost:   4, // minimum cost keeps tests fast
		},
	}
}

// router builds the full HTTP surface over the fakes so tests exercise the
// same middleware chain production requests pass through
func (e *testEnv) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.SetupRouter(e.deps)
}

func (e *testEnv) tokenFor(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	token, err := e.tokens.Issue(userID, role)
	require.NoError(t, err)
	return token
}

func performJSON(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) addJob(jobID, postedBy string, status domain.JobStatus) *model.Job {
	job := &model.Job{
		JobID:       jobID,
		Title:       "Dev",
		Description: "Build things well",
		Location:    "Remote",
		Salary:      sql.NullInt64{Int64: 90000, Valid: true},
		Type:        domain.JobTypeEngineering,
		Status:      status,
		PostedBy:    postedBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	e.jobs.jobs[jobID] = job
	return job
}
