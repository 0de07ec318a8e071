// file: internals/features/lms/questions/service/readiness_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

/* =========================================================
   Readiness Validator
   Soal hanya boleh tampil ke student bila answer key-nya lengkap.
   Aturan per tipe:
   - mcq           : tepat 4 opsi DAN tepat 1 correct
   - fill_in_blank : setiap blank index punya >=1 jawaban, tanpa index liar
   - matching      : minimal 3 pasangan
========================================================= */

const (
	MCQRequiredOptions   = 4
	MatchingMinimumPairs = 3
)

// IsReadyMCQ: tepat 4 opsi dan tepat 1 yang correct.
func IsReadyMCQ(options []qmodel.MCQAnswerModel) bool {
	if len(options) != MCQRequiredOptions {
		return false
	}
	correct := 0
	for _, op := range options {
		if op.MCQAnswerIsCorrect {
			correct++
		}
	}
	return correct == 1
}

// IsReadyFillInBlank: setiap segment blank (urut) harus tercakup minimal satu
// BlankAnswer pada index-nya, dan tidak ada BlankAnswer yang menunjuk index
// di luar jumlah blank (cek korespondensi index yang ketat, bukan sekadar
// jumlah yang sama).
func IsReadyFillInBlank(segments []qmodel.BlankSegmentModel, answers []qmodel.BlankAnswerModel) bool {
	blankCount := 0
	for _, seg := range segments {
		if seg.BlankSegmentIsBlank {
			blankCount++
		}
	}
	if blankCount == 0 {
		return false
	}

	covered := make(map[int]bool, blankCount)
	for _, ans := range answers {
		idx := ans.BlankAnswerBlankIndex
		if idx < 0 || idx >= blankCount {
			return false // jawaban menunjuk blank yang tidak ada
		}
		covered[idx] = true
	}
	return len(covered) == blankCount
}

// IsReadyMatching: minimal 3 pasangan.
func IsReadyMatching(pairs []qmodel.MatchingPairModel) bool {
	return len(pairs) >= MatchingMinimumPairs
}

// IsReady dispatch exhaustive per tipe soal.
func IsReady(q *qmodel.QuestionModel) (bool, error) {
	switch q.QuestionType {
	case qmodel.QuestionTypeMCQ:
		return IsReadyMCQ(q.MCQAnswers), nil
	case qmodel.QuestionTypeFillInBlank:
		return IsReadyFillInBlank(q.BlankSegments, q.BlankAnswers), nil
	case qmodel.QuestionTypeMatching:
		return IsReadyMatching(q.MatchingPairs), nil
	default:
		return false, fmt.Errorf("unknown question type: %q", q.QuestionType)
	}
}

/* =========================================================
   Recompute & persist
========================================================= */

// RecomputeReadiness memuat sub-entity sesuai tipe, menghitung ulang ready,
// lalu mem-persist flag ke questions. Dipanggil di dalam transaksi yang sama
// dengan mutasi answer sub-entity.
func RecomputeReadiness(tx *gorm.DB, questionID uuid.UUID) (bool, error) {
	var q qmodel.QuestionModel
	if err := tx.First(&q, "question_id = ?", questionID).Error; err != nil {
		return false, err
	}

	switch q.QuestionType {
	case qmodel.QuestionTypeMCQ:
		if err := tx.Where("mcq_answer_question_id = ?", questionID).
			Find(&q.MCQAnswers).Error; err != nil {
			return false, err
		}
	case qmodel.QuestionTypeFillInBlank:
		if err := tx.Where("blank_segment_question_id = ?", questionID).
			Order("blank_segment_order ASC").
			Find(&q.BlankSegments).Error; err != nil {
			return false, err
		}
		if err := tx.Where("blank_answer_question_id = ?", questionID).
			Find(&q.BlankAnswers).Error; err != nil {
			return false, err
		}
	case qmodel.QuestionTypeMatching:
		if err := tx.Where("matching_pair_question_id = ?", questionID).
			Order("matching_pair_order ASC").
			Find(&q.MatchingPairs).Error; err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown question type: %q", q.QuestionType)
	}

	ready, err := IsReady(&q)
	if err != nil {
		return false, err
	}
	if ready != q.QuestionIsReady {
		if err := tx.Model(&qmodel.QuestionModel{}).
			Where("question_id = ?", questionID).
			Update("question_is_ready", ready).Error; err != nil {
			return false, err
		}
	}
	return ready, nil
}
