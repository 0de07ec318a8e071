// file: internals/features/lms/levels/model/level_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type LevelModel struct {
	LevelID               uuid.UUID `gorm:"column:level_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"level_id"`
	LevelSubjectID        uuid.UUID `gorm:"column:level_subject_id;type:uuid;not null;index:idx_levels_subject" json:"level_subject_id"`
	LevelName             string    `gorm:"column:level_name;type:varchar(150);not null" json:"level_name"`
	LevelOrder            int       `gorm:"column:level_order;not null;default:0" json:"level_order"`
	LevelPassingQuestions int       `gorm:"column:level_passing_questions;not null;default:1" json:"level_passing_questions"`

	LevelCreatedAt time.Time      `gorm:"column:level_created_at;autoCreateTime" json:"level_created_at"`
	LevelUpdatedAt time.Time      `gorm:"column:level_updated_at;autoUpdateTime" json:"level_updated_at"`
	LevelDeletedAt gorm.DeletedAt `gorm:"column:level_deleted_at" json:"level_deleted_at,omitempty"`
}

func (LevelModel) TableName() string { return "levels" }

/* =============================================================================
   MODEL: user_level_completes
   Satu record per (user, level), menyimpan skor TERBAIK sepanjang masa:
   total_points dan no_of_correct_questions masing-masing di-max independen
   (kombinasi "terbaik" bisa berasal dari attempt berbeda).
   Feedback SELALU di-refresh pada completion yang lolos, meski skor tidak naik.
============================================================================= */
type UserLevelCompleteModel struct {
	UserLevelCompleteID uuid.UUID `gorm:"column:user_level_complete_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_level_complete_id"`
	UserID              uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_level_completes,priority:1" json:"user_id"`
	LevelID             uuid.UUID `gorm:"column:level_id;type:uuid;not null;uniqueIndex:uq_user_level_completes,priority:2" json:"level_id"`

	TotalPoints          int `gorm:"column:total_points;not null;default:0" json:"total_points"`
	NoOfCorrectQuestions int `gorm:"column:no_of_correct_questions;not null;default:0" json:"no_of_correct_questions"`

	Strengths       pq.StringArray `gorm:"column:strengths;type:text[]" json:"strengths"`
	Weaknesses      pq.StringArray `gorm:"column:weaknesses;type:text[]" json:"weaknesses"`
	Recommendations pq.StringArray `gorm:"column:recommendations;type:text[]" json:"recommendations"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserLevelCompleteModel) TableName() string { return "user_level_completes" }
