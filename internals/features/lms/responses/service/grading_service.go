// file: internals/features/lms/responses/service/grading_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

/* =========================================================
   Grading Engine — murni, deterministik, tanpa akses store.
   Semua penilaian all-or-nothing per tipe (tanpa partial credit).
========================================================= */

var (
	ErrTypeMismatch        = errors.New("tipe submission tidak sesuai dengan tipe soal")
	ErrAnswerNotInQuestion = errors.New("jawaban yang dipilih bukan milik soal ini")
	ErrEmptySubmission     = errors.New("submission kosong")
)

type BlankSubmission struct {
	BlankIndex int    `json:"blank_index"`
	Value      string `json:"value"`
}

type PairSubmission struct {
	LeftItem  string `json:"left_item"`
	RightItem string `json:"right_item"`
}

// Submission: payload jawaban student, sudah di-decode controller.
type Submission struct {
	QuestionType     qmodel.QuestionType `json:"question_type"`
	SelectedAnswerID *uuid.UUID          `json:"selected_answer_id,omitempty"` // mcq
	Blanks           []BlankSubmission   `json:"blanks,omitempty"`             // fill_in_blank
	Pairs            []PairSubmission    `json:"pairs,omitempty"`              // matching
}

// CorrectData: kunci jawaban yang diungkap SETELAH submit (tidak pernah sebelum).
type CorrectData struct {
	CorrectAnswerID  *uuid.UUID          `json:"correct_answer_id,omitempty"`  // mcq
	AcceptableValues map[int][]string    `json:"acceptable_values,omitempty"`  // fill_in_blank
	CorrectPairs     []PairSubmission    `json:"correct_pairs,omitempty"`      // matching
}

type GradeResult struct {
	IsCorrect   bool
	CorrectData CorrectData
}

// normalizeText: trim + collapse whitespace + lowercase (aturan match blank/matching).
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

/* =========================================================
   Grade — dispatch exhaustive per tipe
========================================================= */

func Grade(sub *Submission, q *qmodel.QuestionModel) (*GradeResult, error) {
	if sub == nil {
		return nil, ErrEmptySubmission
	}
	if sub.QuestionType != q.QuestionType {
		return nil, ErrTypeMismatch
	}

	switch q.QuestionType {
	case qmodel.QuestionTypeMCQ:
		return gradeMCQ(sub, q)
	case qmodel.QuestionTypeFillInBlank:
		return gradeFillInBlank(sub, q)
	case qmodel.QuestionTypeMatching:
		return gradeMatching(sub, q)
	default:
		return nil, fmt.Errorf("unknown question type: %q", q.QuestionType)
	}
}

func gradeMCQ(sub *Submission, q *qmodel.QuestionModel) (*GradeResult, error) {
	if sub.SelectedAnswerID == nil || *sub.SelectedAnswerID == uuid.Nil {
		return nil, ErrEmptySubmission
	}

	var chosen *qmodel.MCQAnswerModel
	var correctID *uuid.UUID
	for i := range q.MCQAnswers {
		op := &q.MCQAnswers[i]
		if op.MCQAnswerID == *sub.SelectedAnswerID {
			chosen = op
		}
		if op.MCQAnswerIsCorrect {
			id := op.MCQAnswerID
			correctID = &id
		}
	}
	if chosen == nil {
		return nil, ErrAnswerNotInQuestion
	}

	return &GradeResult{
		IsCorrect:   chosen.MCQAnswerIsCorrect,
		CorrectData: CorrectData{CorrectAnswerID: correctID},
	}, nil
}

func gradeFillInBlank(sub *Submission, q *qmodel.QuestionModel) (*GradeResult, error) {
	if len(sub.Blanks) == 0 {
		return nil, ErrEmptySubmission
	}

	// kunci: index → set value yang diterima (dinormalisasi)
	acceptable := map[int]map[string]bool{}
	reveal := map[int][]string{}
	for _, ans := range q.BlankAnswers {
		if !ans.BlankAnswerIsCorrect {
			continue
		}
		idx := ans.BlankAnswerBlankIndex
		if acceptable[idx] == nil {
			acceptable[idx] = map[string]bool{}
		}
		acceptable[idx][normalizeText(ans.BlankAnswerValue)] = true
		reveal[idx] = append(reveal[idx], ans.BlankAnswerValue)
	}

	// jawaban student: index → value (entri ganda utk index sama: terakhir menang)
	submitted := map[int]string{}
	for _, b := range sub.Blanks {
		submitted[b.BlankIndex] = b.Value
	}

	correct := true
	// 1) entri liar (index tidak ada di kunci) → salah total
	for idx := range submitted {
		if acceptable[idx] == nil {
			correct = false
			break
		}
	}
	// 2) setiap index kunci harus terisi dan match salah satu value yang diterima
	if correct {
		for idx, values := range acceptable {
			v, ok := submitted[idx]
			if !ok || !values[normalizeText(v)] {
				correct = false
				break
			}
		}
	}

	return &GradeResult{
		IsCorrect:   correct,
		CorrectData: CorrectData{AcceptableValues: reveal},
	}, nil
}

func gradeMatching(sub *Submission, q *qmodel.QuestionModel) (*GradeResult, error) {
	if len(sub.Pairs) == 0 {
		return nil, ErrEmptySubmission
	}

	key := map[string]string{}
	reveal := make([]PairSubmission, 0, len(q.MatchingPairs))
	for _, p := range q.MatchingPairs {
		key[normalizeText(p.MatchingPairLeftItem)] = normalizeText(p.MatchingPairRightItem)
		reveal = append(reveal, PairSubmission{
			LeftItem:  p.MatchingPairLeftItem,
			RightItem: p.MatchingPairRightItem,
		})
	}

	correct := true
	matched := map[string]bool{}
	for _, p := range sub.Pairs {
		left := normalizeText(p.LeftItem)
		want, ok := key[left]
		if !ok || want != normalizeText(p.RightItem) {
			correct = false
			break
		}
		matched[left] = true
	}
	// semua sisi kiri kunci harus tercakup (subset benar ≠ benar)
	if correct && len(matched) != len(key) {
		correct = false
	}

	return &GradeResult{
		IsCorrect:   correct,
		CorrectData: CorrectData{CorrectPairs: reveal},
	}, nil
}

/* =========================================================
   Points
========================================================= */

const (
	pointsEasy   = 10
	pointsMedium = 15
	pointsHard   = 20

	timeBonusPoints  = 2
	timeBonusSeconds = 60
)

// CalculatePoints: 0 kalau salah; benar = base per difficulty + bonus waktu
// flat +2 bila timeTaken <= 60 detik.
func CalculatePoints(isCorrect bool, difficulty qmodel.Difficulty, timeTakenSeconds int) int {
	if !isCorrect {
		return 0
	}
	points := 0
	switch difficulty {
	case qmodel.DifficultyEasy:
		points = pointsEasy
	case qmodel.DifficultyMedium:
		points = pointsMedium
	case qmodel.DifficultyHard:
		points = pointsHard
	}
	if timeTakenSeconds >= 0 && timeTakenSeconds <= timeBonusSeconds {
		points += timeBonusPoints
	}
	return points
}
