package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/lasudevlab/learnhub-backend/internal/handlers"
	"github.com/lasudevlab/learnhub-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName     string
	AllowedOrigins  []string
	MediaRoot       string
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ProfileHandler  *handlers.ProfileHandler
	LearningHandler *handlers.LearningHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "learnhub"
	}
	router.Use(otelgin.Middleware(serviceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Refresh-Token"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	if cfg.MediaRoot != "" {
		// Avatar objects live under MEDIA_ROOT and are addressed by the
		// /media URLs the media store hands out.
		router.Static("/media", cfg.MediaRoot)
	}
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)

	papi := protected.Group("/api")
	// Profile
	papi.GET("/profile", cfg.ProfileHandler.GetProfile)
	papi.PATCH("/profile", cfg.ProfileHandler.UpdateProfile)
	papi.POST("/profile/avatar", cfg.ProfileHandler.UploadAvatar)
	// Modules & lessons
	papi.GET("/modules", cfg.LearningHandler.GetModules)
	papi.GET("/modules/:id", cfg.LearningHandler.GetModule)
	papi.GET("/modules/:id/lessons/:lessonId", cfg.LearningHandler.GetLesson)
	papi.POST("/modules/:id/lessons/:lessonId/complete", cfg.LearningHandler.CompleteLesson)
	// Quizzes
	papi.GET("/quizzes", cfg.LearningHandler.GetQuizzes)
	papi.GET("/quizzes/:id", cfg.LearningHandler.GetQuiz)
	papi.POST("/quizzes/:id/submit", cfg.LearningHandler.SubmitQuiz)
	// Progress & leaderboard
	papi.GET("/progress", cfg.LearningHandler.GetProgress)
	papi.GET("/leaderboard", cfg.LearningHandler.GetLeaderboard)
	// Certificates
	papi.GET("/certificates", cfg.LearningHandler.GetCertificates)
	papi.POST("/certificates/:courseId", cfg.LearningHandler.GenerateCertificate)

	return router
}
