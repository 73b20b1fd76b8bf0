package v1

import (
	"net/http"

	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC    domain.AuthUsecase
	profileUC domain.ProfileUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, profileUC domain.ProfileUsecase) {
	handler := &AuthHandler{authUC: authUC, profileUC: profileUC}

	public.POST("/auth/register", handler.Register)
	public.POST("/auth/login", handler.Login)
	protected.GET("/auth/me", handler.Me)
}

// Register creates an account and returns a bearer token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", result)
}

// Login verifies credentials and returns a fresh token plus the profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me returns the caller's identity and profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	// Gin's context carries the auth keys, so pass it down directly.
	profile, err := h.profileUC.Get(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", gin.H{
		"user_id": userID,
		"profile": profile,
	})
}
