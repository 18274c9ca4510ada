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

// AuthHandler handles signup and signin
type AuthHandler struct {
	logger     *slog.Logger
	users      UserStore
	tokens     *auth.TokenIssuer
	bcryptCost int
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(deps *Dependencies) *AuthHandler {
	return &AuthHandler{
		logger:     deps.Logger,
		users:      deps.Users,
		tokens:     deps.Tokens,
		bcryptCost: deps.BcryptCost,
	}
}

// Signup handles POST /api/v1/auth/signup
// Creates an account and returns a signed token
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid signup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleUser
	}

	passwordHash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.Error("Failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create user",
		})
		return
	}

	user := model.User{
		UserID:       uuid.New().String(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := h.users.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "User already exists",
			})
			return
		}
		h.logger.Error("Failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create user",
		})
		return
	}

	token, err := h.tokens.Issue(user.UserID, user.Role)
	if err != nil {
		h.logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue token",
		})
		return
	}

	h.logger.Info("User signed up",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
	)

	c.JSON(http.StatusOK, dto.TokenResponse{JWT: token})
}

// Signin handles POST /api/v1/auth/signin
// Verifies credentials and returns a signed token. Unknown email and wrong
// password get the same response so the endpoint does not reveal which
// emails are registered.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid signin request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		h.logger.Error("Failed to look up user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to sign in",
		})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	token, err := h.tokens.Issue(user.UserID, user.Role)
	if err != nil {
		h.logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue token",
		})
		return
	}

	h.logger.Info("User signed in", slog.String("user_id", user.UserID))

	c.JSON(http.StatusOK, dto.TokenResponse{JWT: token})
}
