package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Certificate rows are written once when eligibility is met and never mutated.
type Certificate struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Profile           *Profile       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"profile,omitempty"`
	CourseID          string         `gorm:"not null" json:"course_id"`
	CourseTitle       string         `gorm:"column:course_title" json:"course_title"`
	CertificateNumber string         `gorm:"uniqueIndex;not null;column:certificate_number" json:"certificate_number"`
	FinalScore        int            `gorm:"column:final_score;not null;default:0" json:"final_score"`
	TotalLessons      int            `gorm:"column:total_lessons;not null;default:0" json:"total_lessons"`
	TotalQuizzes      int            `gorm:"column:total_quizzes;not null;default:0" json:"total_quizzes"`
	StudyHours        float64        `gorm:"column:study_hours;not null;default:0" json:"study_hours"`
	Skills            datatypes.JSON `gorm:"type:jsonb;column:skills" json:"skills"`
	Instructor        string         `gorm:"column:instructor" json:"instructor"`
	Institution       string         `gorm:"column:institution" json:"institution"`
	IssuedAt          time.Time      `gorm:"column:issued_at;not null;default:now()" json:"issued_at"`
}

func (Certificate) TableName() string { return "certificates" }
