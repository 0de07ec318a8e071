// file: internals/features/lms/questions/service/question_loader.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

// LoadQuestionWithAnswers memuat soal + sub-entity answer key sesuai tipenya.
// Not found diteruskan sebagai gorm.ErrRecordNotFound (caller yang mapping ke HTTP).
func LoadQuestionWithAnswers(db *gorm.DB, questionID uuid.UUID) (*qmodel.QuestionModel, error) {
	var q qmodel.QuestionModel
	if err := db.First(&q, "question_id = ?", questionID).Error; err != nil {
		return nil, err
	}

	switch q.QuestionType {
	case qmodel.QuestionTypeMCQ:
		if err := db.Where("mcq_answer_question_id = ?", questionID).
			Order("mcq_answer_created_at ASC").
			Find(&q.MCQAnswers).Error; err != nil {
			return nil, err
		}
	case qmodel.QuestionTypeFillInBlank:
		if err := db.Where("blank_segment_question_id = ?", questionID).
			Order("blank_segment_order ASC").
			Find(&q.BlankSegments).Error; err != nil {
			return nil, err
		}
		if err := db.Where("blank_answer_question_id = ?", questionID).
			Order("blank_answer_blank_index ASC").
			Find(&q.BlankAnswers).Error; err != nil {
			return nil, err
		}
	case qmodel.QuestionTypeMatching:
		if err := db.Where("matching_pair_question_id = ?", questionID).
			Order("matching_pair_order ASC").
			Find(&q.MatchingPairs).Error; err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown question type: %q", q.QuestionType)
	}
	return &q, nil
}
