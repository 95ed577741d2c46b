package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/repos"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

// ProfileService owns the progression state of a student: xp, level, streak
// and badges. Level is always derived as xp/1000 + 1.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error
	AwardXP(ctx context.Context, userID uuid.UUID, amount int) error
	UpdateStreak(ctx context.Context, userID uuid.UUID) error
	AwardBadge(ctx context.Context, userID uuid.UUID, badgeName string) error
	GetLeaderboard(ctx context.Context, limit int) ([]*types.Profile, error)
	GetLessonProgress(ctx context.Context, userID uuid.UUID) ([]*types.LessonProgress, error)
	GetQuizAttempts(ctx context.Context, userID uuid.UUID) ([]*types.QuizAttempt, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	lessonRepo  repos.LessonProgressRepo
	attemptRepo repos.QuizAttemptRepo

	now func() time.Time
}

func NewProfileService(
	db *gorm.DB,
	log *logger.Logger,
	profileRepo repos.ProfileRepo,
	lessonRepo repos.LessonProgressRepo,
	attemptRepo repos.QuizAttemptRepo,
) ProfileService {
	return &profileService{
		db:          db,
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
		lessonRepo:  lessonRepo,
		attemptRepo: attemptRepo,
		now:         time.Now,
	}
}

func (ps *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	return ps.profileRepo.GetByID(ctx, nil, userID)
}

// UpdateProfile merges the given columns and stamps updated_at. There is no
// optimistic-concurrency check; concurrent writers for the same user follow
// last-write-wins.
func (ps *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	fields := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		fields[k] = v
	}
	fields["updated_at"] = ps.now().UTC()
	if err := ps.profileRepo.UpdateFields(ctx, nil, userID, fields); err != nil {
		ps.log.Error("Failed to update profile", "user_id", userID, "error", err)
		return fmt.Errorf("Failed to update profile: %w", err)
	}
	return nil
}

// AwardXP adds amount to the stored xp and re-derives the level. This is a
// read-modify-write over the gateway with no transaction or lock: two
// concurrent awards for the same user can lose an increment. Callers pass
// non-negative amounts; the engine does not validate the sign.
func (ps *profileService) AwardXP(ctx context.Context, userID uuid.UUID, amount int) error {
	profile, err := ps.profileRepo.GetByID(ctx, nil, userID)
	if err != nil {
		ps.log.Error("Failed to load profile for xp award", "user_id", userID, "error", err)
		return fmt.Errorf("Failed to load profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile %s not found", userID)
	}

	newXP := profile.XP + amount
	newLevel := newXP/1000 + 1

	return ps.UpdateProfile(ctx, userID, map[string]interface{}{
		"xp":    newXP,
		"level": newLevel,
	})
}

// UpdateStreak compares last_activity to the current UTC date:
// yesterday continues the streak, today leaves it unchanged, anything older
// resets it to 1. last_activity is always stamped to today.
func (ps *profileService) UpdateStreak(ctx context.Context, userID uuid.UUID) error {
	profile, err := ps.profileRepo.GetByID(ctx, nil, userID)
	if err != nil {
		ps.log.Error("Failed to load profile for streak update", "user_id", userID, "error", err)
		return fmt.Errorf("Failed to load profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile %s not found", userID)
	}

	today := ps.now().UTC().Format("2006-01-02")
	yesterday := ps.now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	newStreak := profile.Streak
	switch {
	case profile.LastActivity == yesterday:
		newStreak++
	case profile.LastActivity != today:
		newStreak = 1
	}

	return ps.UpdateProfile(ctx, userID, map[string]interface{}{
		"streak":        newStreak,
		"last_activity": today,
	})
}

// AwardBadge adds the badge to the profile's set if absent. Re-awarding a
// held badge is a no-op that still succeeds.
func (ps *profileService) AwardBadge(ctx context.Context, userID uuid.UUID, badgeName string) error {
	profile, err := ps.profileRepo.GetByID(ctx, nil, userID)
	if err != nil {
		ps.log.Error("Failed to load profile for badge award", "user_id", userID, "error", err)
		return fmt.Errorf("Failed to load profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile %s not found", userID)
	}

	badges := profile.BadgeList()
	for _, b := range badges {
		if b == badgeName {
			return nil
		}
	}

	if err := profile.SetBadges(append(badges, badgeName)); err != nil {
		return fmt.Errorf("Failed to encode badges: %w", err)
	}
	return ps.UpdateProfile(ctx, userID, map[string]interface{}{
		"badges": profile.Badges,
	})
}

func (ps *profileService) GetLeaderboard(ctx context.Context, limit int) ([]*types.Profile, error) {
	profiles, err := ps.profileRepo.ListByXP(ctx, nil, limit)
	if err != nil {
		ps.log.Error("Failed to fetch leaderboard", "error", err)
		return nil, fmt.Errorf("Failed to fetch leaderboard: %w", err)
	}
	return profiles, nil
}

func (ps *profileService) GetLessonProgress(ctx context.Context, userID uuid.UUID) ([]*types.LessonProgress, error) {
	return ps.lessonRepo.GetByUserID(ctx, nil, userID)
}

func (ps *profileService) GetQuizAttempts(ctx context.Context, userID uuid.UUID) ([]*types.QuizAttempt, error) {
	return ps.attemptRepo.GetByUserID(ctx, nil, userID)
}
