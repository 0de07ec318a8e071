// file: internals/features/lms/responses/model/question_response_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   MODEL: question_responses
   Satu record logis per (user, question). Resubmit menimpa record lama
   (termasuk created_at di-refresh) — yang disimpan SELALU attempt terakhir,
   bukan attempt terbaik. History attempt tidak dipertahankan.
============================================================================= */
type QuestionResponseModel struct {
	QuestionResponseID         uuid.UUID `gorm:"column:question_response_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_response_id"`
	QuestionResponseUserID     uuid.UUID `gorm:"column:question_response_user_id;type:uuid;not null;uniqueIndex:uq_question_responses_user_question,priority:1" json:"question_response_user_id"`
	QuestionResponseQuestionID uuid.UUID `gorm:"column:question_response_question_id;type:uuid;not null;uniqueIndex:uq_question_responses_user_question,priority:2;index:idx_question_responses_question" json:"question_response_question_id"`

	QuestionResponseIsCorrect    bool `gorm:"column:question_response_is_correct;not null" json:"question_response_is_correct"`
	QuestionResponsePointsEarned int  `gorm:"column:question_response_points_earned;not null;default:0" json:"question_response_points_earned"`
	QuestionResponseTimeSeconds  int  `gorm:"column:question_response_time_seconds;not null;default:0" json:"question_response_time_seconds"`

	// mcq: opsi yang dipilih; blank/matching: payload mentah submission
	QuestionResponseChosenAnswerID *uuid.UUID     `gorm:"column:question_response_chosen_answer_id;type:uuid" json:"question_response_chosen_answer_id,omitempty"`
	QuestionResponseData           datatypes.JSON `gorm:"column:question_response_data;type:jsonb" json:"question_response_data,omitempty"`

	QuestionResponseCreatedAt time.Time `gorm:"column:question_response_created_at;not null;default:now()" json:"question_response_created_at"`
}

func (QuestionResponseModel) TableName() string { return "question_responses" }

// ApplyAttempt menimpa isi record dengan attempt terbaru. Identitas record
// (id, user, question) tidak disentuh; created_at di-set ke waktu attempt.
func (m *QuestionResponseModel) ApplyAttempt(
	isCorrect bool,
	points, timeSeconds int,
	chosenAnswerID *uuid.UUID,
	responseData datatypes.JSON,
	at time.Time,
) {
	m.QuestionResponseIsCorrect = isCorrect
	m.QuestionResponsePointsEarned = points
	m.QuestionResponseTimeSeconds = timeSeconds
	m.QuestionResponseChosenAnswerID = chosenAnswerID
	m.QuestionResponseData = responseData
	m.QuestionResponseCreatedAt = at
}
