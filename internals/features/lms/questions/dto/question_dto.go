// file: internals/features/lms/questions/dto/question_dto.go
package dto

import (
	"math/rand"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

/* =========================================================
   CREATE
   Payload sub-data mengikuti question_type; kirim sub-data
   tipe lain = TypeMismatch (400).
========================================================= */

type CreateMCQOptionInput struct {
	Value     string `json:"value" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type CreateBlankSegmentInput struct {
	Text    string `json:"text" validate:"required"`
	IsBlank bool   `json:"is_blank"`
	Order   int    `json:"order" validate:"gte=0"`
}

type CreateBlankAnswerInput struct {
	BlankIndex int    `json:"blank_index" validate:"gte=0"`
	Value      string `json:"value" validate:"required"`
}

type CreateMatchingPairInput struct {
	LeftItem  string `json:"left_item" validate:"required"`
	RightItem string `json:"right_item" validate:"required"`
	Order     int    `json:"order" validate:"gte=0"`
}

type CreateQuestionRequest struct {
	QuestionLevelID     uuid.UUID           `json:"question_level_id" validate:"required"`
	QuestionTitle       string              `json:"question_title" validate:"required"`
	QuestionExplanation *string             `json:"question_explanation"`
	QuestionDifficulty  qmodel.Difficulty   `json:"question_difficulty" validate:"required,oneof=easy medium hard"`
	QuestionType        qmodel.QuestionType `json:"question_type" validate:"required,oneof=mcq fill_in_blank matching"`

	MCQOptions    []CreateMCQOptionInput    `json:"mcq_options,omitempty"`
	BlankSegments []CreateBlankSegmentInput `json:"blank_segments,omitempty"`
	BlankAnswers  []CreateBlankAnswerInput  `json:"blank_answers,omitempty"`
	MatchingPairs []CreateMatchingPairInput `json:"matching_pairs,omitempty"`
}

// ToModel membangun QuestionModel + sub-entity sesuai tipe.
// Sub-data milik tipe lain yang ikut terkirim = TypeMismatch.
func (r *CreateQuestionRequest) ToModel() (*qmodel.QuestionModel, error) {
	m := &qmodel.QuestionModel{
		QuestionLevelID:     r.QuestionLevelID,
		QuestionTitle:       strings.TrimSpace(r.QuestionTitle),
		QuestionExplanation: trimPtr(r.QuestionExplanation),
		QuestionDifficulty:  r.QuestionDifficulty,
		QuestionType:        r.QuestionType,
	}

	switch r.QuestionType {
	case qmodel.QuestionTypeMCQ:
		if len(r.BlankSegments) > 0 || len(r.BlankAnswers) > 0 || len(r.MatchingPairs) > 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Soal mcq tidak boleh membawa data blank/matching")
		}
		if len(r.MCQOptions) > 4 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Opsi mcq maksimal 4")
		}
		for _, op := range r.MCQOptions {
			v := strings.TrimSpace(op.Value)
			if v == "" {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Value opsi tidak boleh kosong")
			}
			m.MCQAnswers = append(m.MCQAnswers, qmodel.MCQAnswerModel{
				MCQAnswerValue:     v,
				MCQAnswerIsCorrect: op.IsCorrect,
			})
		}

	case qmodel.QuestionTypeFillInBlank:
		if len(r.MCQOptions) > 0 || len(r.MatchingPairs) > 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Soal fill_in_blank tidak boleh membawa data mcq/matching")
		}
		if len(r.BlankSegments) == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Soal fill_in_blank wajib punya segments")
		}
		blankCount := 0
		for _, seg := range r.BlankSegments {
			if strings.TrimSpace(seg.Text) == "" && !seg.IsBlank {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Text segment tidak boleh kosong")
			}
			if seg.IsBlank {
				blankCount++
			}
			m.BlankSegments = append(m.BlankSegments, qmodel.BlankSegmentModel{
				BlankSegmentText:    seg.Text,
				BlankSegmentIsBlank: seg.IsBlank,
				BlankSegmentOrder:   seg.Order,
			})
		}
		if blankCount == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Soal fill_in_blank wajib punya minimal 1 blank")
		}
		for _, ans := range r.BlankAnswers {
			v := strings.TrimSpace(ans.Value)
			if v == "" {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Value jawaban blank tidak boleh kosong")
			}
			if ans.BlankIndex < 0 || ans.BlankIndex >= blankCount {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Blank index di luar jumlah blank")
			}
			m.BlankAnswers = append(m.BlankAnswers, qmodel.BlankAnswerModel{
				BlankAnswerBlankIndex: ans.BlankIndex,
				BlankAnswerValue:      v,
				BlankAnswerIsCorrect:  true,
			})
		}

	case qmodel.QuestionTypeMatching:
		if len(r.MCQOptions) > 0 || len(r.BlankSegments) > 0 || len(r.BlankAnswers) > 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Soal matching tidak boleh membawa data mcq/blank")
		}
		seenLeft := map[string]bool{}
		seenRight := map[string]bool{}
		for _, p := range r.MatchingPairs {
			left := strings.TrimSpace(p.LeftItem)
			right := strings.TrimSpace(p.RightItem)
			if left == "" || right == "" {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Item matching tidak boleh kosong")
			}
			lk, rk := strings.ToLower(left), strings.ToLower(right)
			if seenLeft[lk] || seenRight[rk] {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Item matching duplikat dalam satu soal")
			}
			seenLeft[lk], seenRight[rk] = true, true
			m.MatchingPairs = append(m.MatchingPairs, qmodel.MatchingPairModel{
				MatchingPairLeftItem:  left,
				MatchingPairRightItem: right,
				MatchingPairOrder:     p.Order,
			})
		}

	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "question_type tidak dikenal")
	}

	return m, nil
}

/* =========================================================
   UPDATE (partial) — type & level immutable
========================================================= */

type UpdateQuestionRequest struct {
	QuestionTitle       *string            `json:"question_title"`
	QuestionExplanation *string            `json:"question_explanation"`
	QuestionDifficulty  *qmodel.Difficulty `json:"question_difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func (r *UpdateQuestionRequest) ApplyToModel(m *qmodel.QuestionModel) error {
	if r.QuestionTitle != nil {
		t := strings.TrimSpace(*r.QuestionTitle)
		if t == "" {
			return fiber.NewError(fiber.StatusBadRequest, "question_title tidak boleh kosong")
		}
		m.QuestionTitle = t
	}
	if r.QuestionExplanation != nil {
		m.QuestionExplanation = trimPtr(r.QuestionExplanation)
	}
	if r.QuestionDifficulty != nil {
		m.QuestionDifficulty = *r.QuestionDifficulty
	}
	return nil
}

/* =========================================================
   RESPONSES
========================================================= */

// QuestionResponse: view lengkap untuk teacher/admin (answer key terlihat).
type QuestionResponse struct {
	QuestionID          uuid.UUID           `json:"question_id"`
	QuestionLevelID     uuid.UUID           `json:"question_level_id"`
	QuestionTitle       string              `json:"question_title"`
	QuestionExplanation *string             `json:"question_explanation,omitempty"`
	QuestionDifficulty  qmodel.Difficulty   `json:"question_difficulty"`
	QuestionType        qmodel.QuestionType `json:"question_type"`
	QuestionIsReady     bool                `json:"question_is_ready"`
	QuestionCreatedAt   time.Time           `json:"question_created_at"`

	MCQAnswers    []qmodel.MCQAnswerModel    `json:"mcq_answers,omitempty"`
	BlankSegments []qmodel.BlankSegmentModel `json:"blank_segments,omitempty"`
	BlankAnswers  []qmodel.BlankAnswerModel  `json:"blank_answers,omitempty"`
	MatchingPairs []qmodel.MatchingPairModel `json:"matching_pairs,omitempty"`
}

func FromModelQuestion(m *qmodel.QuestionModel) *QuestionResponse {
	return &QuestionResponse{
		QuestionID:          m.QuestionID,
		QuestionLevelID:     m.QuestionLevelID,
		QuestionTitle:       m.QuestionTitle,
		QuestionExplanation: m.QuestionExplanation,
		QuestionDifficulty:  m.QuestionDifficulty,
		QuestionType:        m.QuestionType,
		QuestionIsReady:     m.QuestionIsReady,
		QuestionCreatedAt:   m.QuestionCreatedAt,
		MCQAnswers:          m.MCQAnswers,
		BlankSegments:       m.BlankSegments,
		BlankAnswers:        m.BlankAnswers,
		MatchingPairs:       m.MatchingPairs,
	}
}

func FromModelsQuestions(ms []qmodel.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelQuestion(&ms[i]))
	}
	return out
}

/* =========================================================
   STUDENT VIEW — answer key tidak pernah bocor pre-submission
========================================================= */

type StudentMCQOption struct {
	MCQAnswerID uuid.UUID `json:"mcq_answer_id"`
	Value       string    `json:"value"`
}

type StudentBlankSegment struct {
	Text    string `json:"text"`
	IsBlank bool   `json:"is_blank"`
	Order   int    `json:"order"`
}

type StudentMatchingView struct {
	LeftItems  []string `json:"left_items"`  // urutan kanonik
	RightItems []string `json:"right_items"` // di-shuffle untuk display
}

type StudentQuestionResponse struct {
	QuestionID         uuid.UUID           `json:"question_id"`
	QuestionLevelID    uuid.UUID           `json:"question_level_id"`
	QuestionTitle      string              `json:"question_title"`
	QuestionDifficulty qmodel.Difficulty   `json:"question_difficulty"`
	QuestionType       qmodel.QuestionType `json:"question_type"`

	MCQOptions    []StudentMCQOption    `json:"mcq_options,omitempty"`
	BlankSegments []StudentBlankSegment `json:"blank_segments,omitempty"`
	Matching      *StudentMatchingView  `json:"matching,omitempty"`
}

func FromModelQuestionForStudent(m *qmodel.QuestionModel) *StudentQuestionResponse {
	out := &StudentQuestionResponse{
		QuestionID:         m.QuestionID,
		QuestionLevelID:    m.QuestionLevelID,
		QuestionTitle:      m.QuestionTitle,
		QuestionDifficulty: m.QuestionDifficulty,
		QuestionType:       m.QuestionType,
	}

	switch m.QuestionType {
	case qmodel.QuestionTypeMCQ:
		for _, op := range m.MCQAnswers {
			out.MCQOptions = append(out.MCQOptions, StudentMCQOption{
				MCQAnswerID: op.MCQAnswerID,
				Value:       op.MCQAnswerValue,
			})
		}
	case qmodel.QuestionTypeFillInBlank:
		for _, seg := range m.BlankSegments {
			out.BlankSegments = append(out.BlankSegments, StudentBlankSegment{
				Text:    seg.BlankSegmentText,
				IsBlank: seg.BlankSegmentIsBlank,
				Order:   seg.BlankSegmentOrder,
			})
		}
	case qmodel.QuestionTypeMatching:
		mv := &StudentMatchingView{}
		for _, p := range m.MatchingPairs {
			mv.LeftItems = append(mv.LeftItems, p.MatchingPairLeftItem)
			mv.RightItems = append(mv.RightItems, p.MatchingPairRightItem)
		}
		// kanan di-shuffle supaya pasangan tidak ketebak dari urutan;
		// pakai rand global yang sudah ber-mutex, handler konkuren aman
		rand.Shuffle(len(mv.RightItems), func(i, j int) {
			mv.RightItems[i], mv.RightItems[j] = mv.RightItems[j], mv.RightItems[i]
		})
		out.Matching = mv
	}

	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
