package v1

import (
	"net/http"
	"time"

	"go-jobhunt-backend/config"
	"go-jobhunt-backend/internal/delivery/http/middleware"
	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

const Version = "2.0.0"

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	SearchUC      domain.SearchUsecase
	Tokens        *auth.TokenService
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"status":    "healthy",
			"version":   Version,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Credential endpoints get a tighter limit than the rest of the API
	authPublic := api.Group("")
	authPublic.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitAuthThreshold,
		Window:    window,
		KeyPrefix: "rl:auth:",
	}))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(authPublic, protected, deps.AuthUC, deps.ProfileUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewJobHandler(protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	// Public mock search feeding the CSV ledger
	NewSearchHandler(r, deps.SearchUC)

	return r
}
