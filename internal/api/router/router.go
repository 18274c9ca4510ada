package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
	"github.com/aayushkhanal47/jobboard-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if deps.DB != nil {
			if err := deps.DB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"service": "jobboard-api-service",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "jobboard-api-service",
		})
	})

	authHandler := handler.NewAuthHandler(deps)
	jobHandler := handler.NewJobHandler(deps)
	applicationHandler := handler.NewApplicationHandler(deps)
	adminHandler := handler.NewAdminHandler(deps)

	requireAuth := RequireAuth(deps.Logger, deps.Tokens)
	requireAdmin := RequireRole(string(domain.RoleAdmin))
	requireUser := RequireRole(string(domain.RoleUser))

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/signin", authHandler.Signin)
		}

		jobs := v1.Group("/jobs")
		{
			// GET /api/v1/jobs - public listing of OPEN jobs
			jobs.GET("", jobHandler.ListJobs)

			// POST /api/v1/jobs - create a job (admin)
			jobs.POST("", requireAuth, requireAdmin, jobHandler.CreateJob)

			// GET /api/v1/jobs/:id - get job details (any authenticated user)
			jobs.GET("/:id", requireAuth, jobHandler.GetJob)

			// PUT /api/v1/jobs/:id - partial update (admin, owner only)
			jobs.PUT("/:id", requireAuth, requireAdmin, jobHandler.UpdateJob)

			// DELETE /api/v1/jobs/:id - delete (admin, owner only)
			jobs.DELETE("/:id", requireAuth, requireAdmin, jobHandler.DeleteJob)
		}

		applications := v1.Group("/applications", requireAuth, requireUser)
		{
			// GET /api/v1/applications/me - caller's applications
			applications.GET("/me", applicationHandler.ListMine)

			// POST /api/v1/applications/:jobId - apply to a job
			applications.POST("/:jobId", applicationHandler.Apply)
		}

		admin := v1.Group("/admin", requireAuth, requireAdmin)
		{
			admin.PATCH("/jobs/:id/status", adminHandler.UpdateJobStatus)
			admin.GET("/applications/:jobId", adminHandler.ListApplicationsForJob)
			admin.PATCH("/applications/:id", adminHandler.UpdateApplicationStatus)
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.POST("/seed", adminHandler.Seed)
		}
	}

	return r
}
