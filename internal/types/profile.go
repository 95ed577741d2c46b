package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the per-student row behind the dashboard: identity plus every
// progression counter (xp, level, streak, badges, totals). Created once at
// registration, mutated on every award, never deleted.
type Profile struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email            string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password         string         `gorm:"not null;column:password" json:"-"`
	FullName         string         `gorm:"column:full_name" json:"full_name"`
	Course           string         `gorm:"column:course" json:"course"`
	AvatarKey        string         `gorm:"column:avatar_key" json:"avatar_key"`
	AvatarURL        string         `gorm:"column:avatar_url" json:"avatar_url"`
	XP               int            `gorm:"column:xp;not null;default:0" json:"xp"`
	Level            int            `gorm:"column:level;not null;default:1" json:"level"`
	Streak           int            `gorm:"column:streak;not null;default:0" json:"streak"`
	LastActivity     string         `gorm:"column:last_activity" json:"last_activity"`
	Badges           datatypes.JSON `gorm:"type:jsonb;column:badges" json:"badges"`
	CompletedLessons int            `gorm:"column:completed_lessons;not null;default:0" json:"completed_lessons"`
	CompletedQuizzes int            `gorm:"column:completed_quizzes;not null;default:0" json:"completed_quizzes"`
	TotalStudyHours  float64        `gorm:"column:total_study_hours;not null;default:0" json:"total_study_hours"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// BadgeList decodes the jsonb badge set. A missing or malformed column reads
// as no badges rather than an error.
func (p *Profile) BadgeList() []string {
	if len(p.Badges) == 0 {
		return []string{}
	}
	var badges []string
	if err := json.Unmarshal(p.Badges, &badges); err != nil {
		return []string{}
	}
	return badges
}

func (p *Profile) SetBadges(badges []string) error {
	raw, err := json.Marshal(badges)
	if err != nil {
		return err
	}
	p.Badges = datatypes.JSON(raw)
	return nil
}
