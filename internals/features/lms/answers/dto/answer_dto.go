// file: internals/features/lms/answers/dto/answer_dto.go
package dto

/* =========================================================
   Request payloads untuk mutasi answer sub-entity
========================================================= */

type AddMCQOptionRequest struct {
	Value     string `json:"value" validate:"required"`
	IsCorrect *bool  `json:"is_correct"`
}

type AddBlankAnswerRequest struct {
	BlankIndex int    `json:"blank_index" validate:"gte=0"`
	Value      string `json:"value" validate:"required"`
}

type AddMatchingPairRequest struct {
	LeftItem  string `json:"left_item" validate:"required"`
	RightItem string `json:"right_item" validate:"required"`
	Order     *int   `json:"order" validate:"omitempty,gte=0"`
}

// SetBlankCorrectnessRequest: is_correct nil = toggle.
type SetBlankCorrectnessRequest struct {
	IsCorrect *bool `json:"is_correct"`
}
