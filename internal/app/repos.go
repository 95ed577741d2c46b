package app

import (
	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/repos"
)

type Repos struct {
	Profile        repos.ProfileRepo
	UserToken      repos.UserTokenRepo
	LessonProgress repos.LessonProgressRepo
	QuizAttempt    repos.QuizAttemptRepo
	Certificate    repos.CertificateRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile:        repos.NewProfileRepo(db, log),
		UserToken:      repos.NewUserTokenRepo(db, log),
		LessonProgress: repos.NewLessonProgressRepo(db, log),
		QuizAttempt:    repos.NewQuizAttemptRepo(db, log),
		Certificate:    repos.NewCertificateRepo(db, log),
	}
}
