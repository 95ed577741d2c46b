package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

func testLogger() *logger.Logger {
	log, err := logger.New("development")
	if err != nil {
		panic(err)
	}
	return log
}

func testProfile(id uuid.UUID, mut func(*types.Profile)) *types.Profile {
	p := &types.Profile{
		ID:       id,
		Email:    id.String() + "@example.com",
		FullName: "Ada Lovelace",
		Level:    1,
	}
	if mut != nil {
		mut(p)
	}
	return p
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*types.Profile
}

func newFakeProfileRepo(profiles ...*types.Profile) *fakeProfileRepo {
	m := make(map[uuid.UUID]*types.Profile, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &fakeProfileRepo{profiles: m}
}

func (r *fakeProfileRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Profile) ([]*types.Profile, error) {
	for _, p := range rows {
		r.profiles[p.ID] = p
	}
	return rows, nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Profile, error) {
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	p, _ := r.GetByEmail(ctx, tx, email)
	return p != nil, nil
}

func (r *fakeProfileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	p, ok := r.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "full_name":
			p.FullName = v.(string)
		case "course":
			p.Course = v.(string)
		case "avatar_key":
			p.AvatarKey = v.(string)
		case "avatar_url":
			p.AvatarURL = v.(string)
		case "xp":
			p.XP = v.(int)
		case "level":
			p.Level = v.(int)
		case "streak":
			p.Streak = v.(int)
		case "last_activity":
			p.LastActivity = v.(string)
		case "badges":
			p.Badges = v.(datatypes.JSON)
		case "completed_lessons":
			p.CompletedLessons = v.(int)
		case "completed_quizzes":
			p.CompletedQuizzes = v.(int)
		case "total_study_hours":
			p.TotalStudyHours = v.(float64)
		case "updated_at":
			p.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (r *fakeProfileRepo) ListByXP(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Profile, error) {
	return r.ListRanked(ctx, tx, limit)
}

func (r *fakeProfileRepo) ListRanked(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Profile, error) {
	out := make([]*types.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].XP != out[j].XP {
			return out[i].XP > out[j].XP
		}
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].CompletedLessons > out[j].CompletedLessons
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeLessonRepo struct {
	rows []*types.LessonProgress
}

func (r *fakeLessonRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LessonProgress, error) {
	var out []*types.LessonProgress
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeLessonRepo) GetByUserAndLesson(ctx context.Context, tx *gorm.DB, userID uuid.UUID, moduleID, lessonID string) (*types.LessonProgress, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.ModuleID == moduleID && row.LessonID == lessonID {
			return row, nil
		}
	}
	return nil, nil
}

func (r *fakeLessonRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.LessonProgress) error {
	for i, existing := range r.rows {
		if existing.UserID == row.UserID && existing.ModuleID == row.ModuleID && existing.LessonID == row.LessonID {
			r.rows[i] = row
			return nil
		}
	}
	r.rows = append(r.rows, row)
	return nil
}

type fakeAttemptRepo struct {
	rows []*types.QuizAttempt
}

func (r *fakeAttemptRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.QuizAttempt) ([]*types.QuizAttempt, error) {
	r.rows = append(r.rows, rows...)
	return rows, nil
}

func (r *fakeAttemptRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.QuizAttempt, error) {
	var out []*types.QuizAttempt
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeAttemptRepo) GetByUserAndQuizID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, quizID string) ([]*types.QuizAttempt, error) {
	var out []*types.QuizAttempt
	for _, row := range r.rows {
		if row.UserID == userID && row.QuizID == quizID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeCertRepo struct {
	rows []*types.Certificate
}

func (r *fakeCertRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Certificate) ([]*types.Certificate, error) {
	r.rows = append(r.rows, rows...)
	return rows, nil
}

func (r *fakeCertRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Certificate, error) {
	var out []*types.Certificate
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}
