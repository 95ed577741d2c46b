package app

import (
	"github.com/lasudevlab/learnhub-backend/internal/handlers"
	"github.com/lasudevlab/learnhub-backend/internal/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Learning *handlers.LearningHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     handlers.NewAuthHandler(services.Auth),
		Profile:  handlers.NewProfileHandler(services.Profile, services.Avatar),
		Learning: handlers.NewLearningHandler(log, services.Learning, services.Profile),
	}
}
