package app

import (
	"github.com/gin-gonic/gin"

	"github.com/lasudevlab/learnhub-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:     cfg.ServiceName,
		AllowedOrigins:  cfg.AllowedOrigins,
		MediaRoot:       cfg.MediaRoot,
		AuthHandler:     handlers.Auth,
		AuthMiddleware:  middleware.Auth,
		ProfileHandler:  handlers.Profile,
		LearningHandler: handlers.Learning,
	})
}
