package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

type ProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Profile) ([]*types.Profile, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Profile, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Profile, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	ListByXP(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Profile, error)
	ListRanked(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Profile) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Profile{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns (nil, nil) when no profile exists for the id.
func (r *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil, nil
	}

	var result types.Profile
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *profileRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if email == "" {
		return nil, nil
	}

	var result types.Profile
	if err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *profileRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFields writes the given columns with no read-back and no version
// check; the last writer wins.
func (r *profileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil || len(fields) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return err
	}
	return nil
}

func (r *profileRepo) ListByXP(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Profile
	query := transaction.WithContext(ctx).Order("xp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListRanked applies the three-level leaderboard ordering: xp, then level,
// then completed lessons, all descending.
func (r *profileRepo) ListRanked(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Profile
	query := transaction.WithContext(ctx).
		Order("xp DESC").
		Order("level DESC").
		Order("completed_lessons DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
