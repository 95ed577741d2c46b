package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/cache"
	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/media"
	"github.com/lasudevlab/learnhub-backend/internal/services"
)

type Services struct {
	Avatar   services.AvatarService
	Auth     services.AuthService
	Profile  services.ProfileService
	Learning services.LearningService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, lbCache *cache.Cache) (Services, error) {
	log.Info("Wiring services...")

	mediaStore, err := media.NewLocalStore(log, cfg.MediaRoot, cfg.MediaBaseURL)
	if err != nil {
		return Services{}, fmt.Errorf("init media store: %w", err)
	}

	avatarService, err := services.NewAvatarService(log, mediaStore)
	if err != nil {
		return Services{}, fmt.Errorf("init avatar service: %w", err)
	}

	authService := services.NewAuthService(
		db,
		log,
		reposet.Profile,
		avatarService,
		reposet.UserToken,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	profileService := services.NewProfileService(db, log, reposet.Profile, reposet.LessonProgress, reposet.QuizAttempt)
	learningService := services.NewLearningService(
		db,
		log,
		reposet.Profile,
		reposet.LessonProgress,
		reposet.QuizAttempt,
		reposet.Certificate,
		lbCache,
	)

	return Services{
		Avatar:   avatarService,
		Auth:     authService,
		Profile:  profileService,
		Learning: learningService,
	}, nil
}
