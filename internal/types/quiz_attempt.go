package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttempt rows are append-only: every submission inserts a new row and the
// best attempt is computed at read time as the max percentage.
type QuizAttempt struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Profile        *Profile       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"profile,omitempty"`
	QuizID         string         `gorm:"not null;index" json:"quiz_id"`
	QuizTitle      string         `gorm:"column:quiz_title" json:"quiz_title"`
	Score          int            `gorm:"column:score;not null;default:0" json:"score"`
	MaxScore       int            `gorm:"column:max_score;not null;default:0" json:"max_score"`
	Percentage     int            `gorm:"column:percentage;not null;default:0" json:"percentage"`
	TimeTaken      int            `gorm:"column:time_taken" json:"time_taken"`
	Answers        datatypes.JSON `gorm:"type:jsonb;column:answers" json:"answers"`
	CorrectAnswers int            `gorm:"column:correct_answers;not null;default:0" json:"correct_answers"`
	TotalQuestions int            `gorm:"column:total_questions;not null;default:0" json:"total_questions"`
	Difficulty     string         `gorm:"column:difficulty" json:"difficulty"`
	XPEarned       int            `gorm:"column:xp_earned;not null;default:0" json:"xp_earned"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
