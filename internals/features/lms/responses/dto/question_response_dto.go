// file: internals/features/lms/responses/dto/question_response_dto.go
package dto

import (
	"github.com/google/uuid"

	rmodel "kuisku_backend/internals/features/lms/responses/model"
	rservice "kuisku_backend/internals/features/lms/responses/service"
	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

/* =========================================================
   SUBMIT
========================================================= */

type SubmitResponseRequest struct {
	QuestionID   uuid.UUID           `json:"question_id" validate:"required"`
	QuestionType qmodel.QuestionType `json:"question_type" validate:"required,oneof=mcq fill_in_blank matching"`
	ResponseTime int                 `json:"response_time" validate:"gte=0"` // detik

	SelectedAnswerID *uuid.UUID                 `json:"selected_answer_id,omitempty"` // mcq
	Blanks           []rservice.BlankSubmission `json:"blanks,omitempty"`             // fill_in_blank
	Pairs            []rservice.PairSubmission  `json:"pairs,omitempty"`              // matching
}

func (r *SubmitResponseRequest) ToSubmission() *rservice.Submission {
	return &rservice.Submission{
		QuestionType:     r.QuestionType,
		SelectedAnswerID: r.SelectedAnswerID,
		Blanks:           r.Blanks,
		Pairs:            r.Pairs,
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type SubmitResponseResult struct {
	Response    rmodel.QuestionResponseModel `json:"response"`
	CorrectData rservice.CorrectData         `json:"correct_data"`
}
