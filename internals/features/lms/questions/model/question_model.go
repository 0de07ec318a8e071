// file: internals/features/lms/questions/model/question_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: QuestionType ('mcq','fill_in_blank','matching')
   Closed set — setiap dispatch WAJIB switch exhaustive dengan default error.
============================================================================= */
type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "mcq"
	QuestionTypeFillInBlank QuestionType = "fill_in_blank"
	QuestionTypeMatching    QuestionType = "matching"
)

func (t QuestionType) String() string { return string(t) }
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeFillInBlank, QuestionTypeMatching:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (t *QuestionType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = QuestionType(v)
	case []byte:
		*t = QuestionType(string(v))
	default:
		return fmt.Errorf("unsupported type for QuestionType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid QuestionType: %q", *t)
	}
	return nil
}
func (t QuestionType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid QuestionType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   ENUM-like: Difficulty ('easy','medium','hard')
============================================================================= */
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

func (d *Difficulty) Scan(value any) error {
	if value == nil {
		*d = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*d = Difficulty(v)
	case []byte:
		*d = Difficulty(string(v))
	default:
		return fmt.Errorf("unsupported type for Difficulty: %T", value)
	}
	if !d.Valid() {
		return fmt.Errorf("invalid Difficulty: %q", *d)
	}
	return nil
}
func (d Difficulty) Value() (driver.Value, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid Difficulty: %q", d)
	}
	return string(d), nil
}

/* =============================================================================
   MODEL: questions
   - question_type & question_level_id immutable setelah create (dijaga controller).
   - question_is_ready = derived, dihitung ulang tiap mutasi answer sub-entity.
============================================================================= */
type QuestionModel struct {
	QuestionID          uuid.UUID    `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionLevelID     uuid.UUID    `gorm:"column:question_level_id;type:uuid;not null;index:idx_questions_level" json:"question_level_id"`
	QuestionTitle       string       `gorm:"column:question_title;type:text;not null" json:"question_title"`
	QuestionExplanation *string      `gorm:"column:question_explanation;type:text" json:"question_explanation,omitempty"`
	QuestionDifficulty  Difficulty   `gorm:"column:question_difficulty;type:varchar(8);not null" json:"question_difficulty"`
	QuestionType        QuestionType `gorm:"column:question_type;type:varchar(16);not null" json:"question_type"`
	QuestionIsReady     bool         `gorm:"column:question_is_ready;not null;default:false" json:"question_is_ready"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at" json:"question_deleted_at,omitempty"`

	// Sub-entities (dimuat sesuai type, tidak pernah campur)
	MCQAnswers    []MCQAnswerModel    `gorm:"foreignKey:MCQAnswerQuestionID;references:QuestionID" json:"mcq_answers,omitempty"`
	BlankSegments []BlankSegmentModel `gorm:"foreignKey:BlankSegmentQuestionID;references:QuestionID" json:"blank_segments,omitempty"`
	BlankAnswers  []BlankAnswerModel  `gorm:"foreignKey:BlankAnswerQuestionID;references:QuestionID" json:"blank_answers,omitempty"`
	MatchingPairs []MatchingPairModel `gorm:"foreignKey:MatchingPairQuestionID;references:QuestionID" json:"matching_pairs,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) IsMCQ() bool         { return m.QuestionType == QuestionTypeMCQ }
func (m *QuestionModel) IsFillInBlank() bool { return m.QuestionType == QuestionTypeFillInBlank }
func (m *QuestionModel) IsMatching() bool    { return m.QuestionType == QuestionTypeMatching }
