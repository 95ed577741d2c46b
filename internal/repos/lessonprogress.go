package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

type LessonProgressRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LessonProgress, error)
	GetByUserAndLesson(ctx context.Context, tx *gorm.DB, userID uuid.UUID, moduleID, lessonID string) (*types.LessonProgress, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.LessonProgress) error
}

type lessonProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonProgressRepo(db *gorm.DB, baseLog *logger.Logger) LessonProgressRepo {
	return &lessonProgressRepo{db: db, log: baseLog.With("repo", "LessonProgressRepo")}
}

func (r *lessonProgressRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LessonProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.LessonProgress
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lessonProgressRepo) GetByUserAndLesson(ctx context.Context, tx *gorm.DB, userID uuid.UUID, moduleID, lessonID string) (*types.LessonProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil || moduleID == "" || lessonID == "" {
		return nil, nil
	}

	var result types.LessonProgress
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND module_id = ? AND lesson_id = ?", userID, moduleID, lessonID).
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// Upsert keys on the unique (user_id, module_id, lesson_id) index. The assign
// map is built explicitly so that zero values (completed=false, score=0)
// overwrite the stored row; the latest write wins.
func (r *lessonProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.LessonProgress) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	assign := map[string]interface{}{
		"lesson_title":  row.LessonTitle,
		"completed":     row.Completed,
		"score":         row.Score,
		"time_spent":    row.TimeSpent,
		"attempts":      row.Attempts,
		"completed_at":  row.CompletedAt,
		"last_accessed": row.LastAccessed,
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND module_id = ? AND lesson_id = ?", row.UserID, row.ModuleID, row.LessonID).
		Assign(assign).
		FirstOrCreate(row).Error; err != nil {
		return err
	}
	return nil
}
