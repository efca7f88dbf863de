package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nextskill-backend/internal/resumes"
	"nextskill-backend/internal/services/health"
	"nextskill-backend/internal/shared/config"
	"nextskill-backend/internal/shared/metrics"
	"nextskill-backend/internal/shared/server/middleware"
	"nextskill-backend/internal/shared/server/respond"
)

const uploadRateGroup = "UPLOAD"

// RouterDeps carries the handlers and services the router wires up.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	uploadLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			uploadRateGroup: {Rate: deps.Config.UploadRPS, Burst: deps.Config.UploadBurst},
		},
		DefaultGroup: uploadRateGroup,
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api, uploadLimit)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
