package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ustazlink/survey-backend/internal/config"
	"github.com/ustazlink/survey-backend/internal/handler"
	"github.com/ustazlink/survey-backend/internal/middleware"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/response"
	"github.com/ustazlink/survey-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Survey    *handler.SurveyHandler
	Question  *handler.QuestionHandler
	Analytics *handler.AnalyticsHandler
	Export    *handler.ExportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for public submissions (10 per minute per IP).
	submitLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 1. Auth Group (Public) ────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Survey Group (Public) ──────────────────────────────────────
	surveys := router.Group("/api/v1/surveys")
	{
		surveys.POST("/student", submitLimiter.Middleware(), handlers.Survey.SubmitStudent)
		surveys.POST("/teacher", submitLimiter.Middleware(), handlers.Survey.SubmitTeacher)

		surveys.GET("/student", handlers.Survey.ListStudents)
		surveys.GET("/teacher", handlers.Survey.ListTeachers)

		// Static paths must be registered alongside /:id; Gin matches the
		// static child first and falls back to the param.
		surveys.GET("/student/check-phone", handlers.Survey.CheckPhone(model.SurveyTypeStudent))
		surveys.GET("/teacher/check-phone", handlers.Survey.CheckPhone(model.SurveyTypeTeacher))

		surveys.GET("/student/:id", handlers.Survey.GetStudent)
		surveys.GET("/teacher/:id", handlers.Survey.GetTeacher)
	}

	// ─── 3. Question Catalog (Public Read) ─────────────────────────────
	questions := router.Group("/api/v1/questions")
	{
		questions.GET("", handlers.Question.List)
		questions.GET("/:id", handlers.Question.Get)
	}

	// ─── 4. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/me", handlers.Auth.Me)

		// Analytics dashboard
		adminAPI.GET("/analytics/students", handlers.Analytics.Students)
		adminAPI.GET("/analytics/teachers", handlers.Analytics.Teachers)
		adminAPI.GET("/analytics/summary", handlers.Analytics.Summary)
		adminAPI.GET("/analytics/filtered", handlers.Analytics.Filtered)
		adminAPI.GET("/analytics/users", handlers.Analytics.Users)

		// Question catalog management
		adminAPI.POST("/questions", handlers.Question.Create)
		adminAPI.PUT("/questions/:id", handlers.Question.Update)
		adminAPI.POST("/questions/reset", handlers.Question.Reset)

		// Offline export
		adminAPI.GET("/export/surveys", handlers.Export.Download)
	}

	return router
}
