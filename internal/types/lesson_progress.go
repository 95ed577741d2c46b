package types

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress is one row per (user, module, lesson). Writes go through an
// upsert, so re-completing a lesson overwrites score and time instead of
// adding a second row.
type LessonProgress struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_module_lesson,unique" json:"user_id"`
	Profile      *Profile   `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"profile,omitempty"`
	ModuleID     string     `gorm:"not null;index:idx_user_module_lesson,unique" json:"module_id"`
	LessonID     string     `gorm:"not null;index:idx_user_module_lesson,unique" json:"lesson_id"`
	LessonTitle  string     `gorm:"column:lesson_title" json:"lesson_title"`
	Completed    bool       `gorm:"column:completed;not null;default:false" json:"completed"`
	Score        int        `gorm:"column:score;not null;default:0" json:"score"`
	TimeSpent    int        `gorm:"column:time_spent;not null;default:0" json:"time_spent"`
	Attempts     int        `gorm:"column:attempts;not null;default:1" json:"attempts"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	LastAccessed time.Time  `gorm:"column:last_accessed" json:"last_accessed"`
	CreatedAt    time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (LessonProgress) TableName() string { return "lesson_progress" }
