// file: internals/features/lms/levels/dto/level_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	lmodel "kuisku_backend/internals/features/lms/levels/model"
	lservice "kuisku_backend/internals/features/lms/levels/service"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type CreateLevelRequest struct {
	LevelSubjectID        uuid.UUID `json:"level_subject_id" validate:"required"`
	LevelName             string    `json:"level_name" validate:"required"`
	LevelOrder            int       `json:"level_order" validate:"gte=0"`
	LevelPassingQuestions int       `json:"level_passing_questions" validate:"required,gte=1"`
}

func (r *CreateLevelRequest) ToModel() *lmodel.LevelModel {
	return &lmodel.LevelModel{
		LevelSubjectID:        r.LevelSubjectID,
		LevelName:             strings.TrimSpace(r.LevelName),
		LevelOrder:            r.LevelOrder,
		LevelPassingQuestions: r.LevelPassingQuestions,
	}
}

type UpdateLevelRequest struct {
	LevelName             *string `json:"level_name"`
	LevelOrder            *int    `json:"level_order" validate:"omitempty,gte=0"`
	LevelPassingQuestions *int    `json:"level_passing_questions" validate:"omitempty,gte=1"`
}

func (r *UpdateLevelRequest) ApplyToModel(m *lmodel.LevelModel) {
	if r.LevelName != nil {
		if t := strings.TrimSpace(*r.LevelName); t != "" {
			m.LevelName = t
		}
	}
	if r.LevelOrder != nil {
		m.LevelOrder = *r.LevelOrder
	}
	if r.LevelPassingQuestions != nil {
		m.LevelPassingQuestions = *r.LevelPassingQuestions
	}
}

/* =========================================================
   RESPONSES
========================================================= */

type LevelResponse struct {
	LevelID               uuid.UUID `json:"level_id"`
	LevelSubjectID        uuid.UUID `json:"level_subject_id"`
	LevelName             string    `json:"level_name"`
	LevelOrder            int       `json:"level_order"`
	LevelPassingQuestions int       `json:"level_passing_questions"`
	ReadyQuestionCount    int64     `json:"ready_question_count"`
	LevelCreatedAt        time.Time `json:"level_created_at"`
}

func FromModelLevel(m *lmodel.LevelModel, readyCount int64) *LevelResponse {
	return &LevelResponse{
		LevelID:               m.LevelID,
		LevelSubjectID:        m.LevelSubjectID,
		LevelName:             m.LevelName,
		LevelOrder:            m.LevelOrder,
		LevelPassingQuestions: m.LevelPassingQuestions,
		ReadyQuestionCount:    readyCount,
		LevelCreatedAt:        m.LevelCreatedAt,
	}
}

/* =========================================================
   COMPLETE LEVEL
========================================================= */

type CompleteLevelRequest struct {
	AnsweredQuestionsInLevel []uuid.UUID `json:"answered_questions_in_level" validate:"required,min=1"`
}

type CompleteLevelResponse struct {
	Summary    lservice.CompletionSummary     `json:"summary"`
	Completion *lmodel.UserLevelCompleteModel `json:"completion,omitempty"`
}
