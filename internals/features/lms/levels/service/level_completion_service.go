// file: internals/features/lms/levels/service/level_completion_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	lmodel "kuisku_backend/internals/features/lms/levels/model"
	qmodel "kuisku_backend/internals/features/lms/questions/model"
	rmodel "kuisku_backend/internals/features/lms/responses/model"
)

/* =========================================================
   Level Completion Aggregator
   Input: daftar question ID yang dijawab di sesi ini.
   Validasi ketat → hitung skor → kalau lolos threshold,
   merge best-ever ke user_level_completes dalam tx + row lock.
========================================================= */

var (
	ErrLevelNotFound           = errors.New("level tidak ditemukan")
	ErrNoAnsweredQuestions     = errors.New("daftar answered questions kosong")
	ErrInvalidAnsweredQuestion = errors.New("answered question tidak valid untuk level ini")
	ErrMissingResponse         = errors.New("answered question belum punya jawaban tersimpan")
)

type LevelCompletionService struct {
	DB *gorm.DB
}

func NewLevelCompletionService(db *gorm.DB) *LevelCompletionService {
	return &LevelCompletionService{DB: db}
}

/* =========================================================
   Pure: ringkasan skor & merge best-ever
========================================================= */

type CompletionSummary struct {
	TotalAnswered    int     `json:"total_answered"`
	CorrectCount     int     `json:"correct_count"`
	TotalPoints      int     `json:"total_points"`
	Percentage       float64 `json:"percentage"`
	PassingQuestions int     `json:"passing_questions"`
	IsComplete       bool    `json:"is_complete"`
}

// SummarizeResponses menghitung ringkasan skor dari kumpulan response
// terhadap passing threshold level.
func SummarizeResponses(responses []rmodel.QuestionResponseModel, passingQuestions int) CompletionSummary {
	s := CompletionSummary{
		TotalAnswered:    len(responses),
		PassingQuestions: passingQuestions,
	}
	for _, r := range responses {
		if r.QuestionResponseIsCorrect {
			s.CorrectCount++
		}
		s.TotalPoints += r.QuestionResponsePointsEarned
	}
	if s.TotalAnswered > 0 {
		s.Percentage = float64(s.CorrectCount) / float64(s.TotalAnswered) * 100
	}
	s.IsComplete = s.CorrectCount >= passingQuestions
	return s
}

type Feedback struct {
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// MergeBest menerapkan aturan best-ever ke record existing:
// total_points dan no_of_correct_questions di-max MASING-MASING (independen),
// feedback selalu ditimpa dengan yang baru.
func MergeBest(existing *lmodel.UserLevelCompleteModel, totalPoints, correctCount int, fb Feedback) {
	if totalPoints > existing.TotalPoints {
		existing.TotalPoints = totalPoints
	}
	if correctCount > existing.NoOfCorrectQuestions {
		existing.NoOfCorrectQuestions = correctCount
	}
	existing.Strengths = fb.Strengths
	existing.Weaknesses = fb.Weaknesses
	existing.Recommendations = fb.Recommendations
}

// BuildFeedback menyusun feedback sederhana dari performa per difficulty.
func BuildFeedback(questions []qmodel.QuestionModel, responsesByQuestion map[uuid.UUID]rmodel.QuestionResponseModel) Feedback {
	correctByDiff := map[qmodel.Difficulty]int{}
	totalByDiff := map[qmodel.Difficulty]int{}
	var wrongTitles []string

	for _, q := range questions {
		r, ok := responsesByQuestion[q.QuestionID]
		if !ok {
			continue
		}
		totalByDiff[q.QuestionDifficulty]++
		if r.QuestionResponseIsCorrect {
			correctByDiff[q.QuestionDifficulty]++
		} else {
			wrongTitles = append(wrongTitles, q.QuestionTitle)
		}
	}

	var fb Feedback
	for _, d := range []qmodel.Difficulty{qmodel.DifficultyEasy, qmodel.DifficultyMedium, qmodel.DifficultyHard} {
		total := totalByDiff[d]
		if total == 0 {
			continue
		}
		correct := correctByDiff[d]
		label := strings.ToUpper(d.String())
		if correct == total {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Semua soal %s terjawab benar", label))
		} else if correct*2 < total {
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Soal %s masih banyak yang salah (%d dari %d benar)", label, correct, total))
			fb.Recommendations = append(fb.Recommendations, fmt.Sprintf("Pelajari kembali materi soal %s", label))
		}
	}
	for _, t := range wrongTitles {
		fb.Recommendations = append(fb.Recommendations, "Ulangi soal: "+t)
	}
	return fb
}

/* =========================================================
   CompleteLevel — read-validate-compute-persist (all or nothing)
========================================================= */

type CompletionResult struct {
	Summary    CompletionSummary
	Completion *lmodel.UserLevelCompleteModel // nil kalau belum lolos
}

func (s *LevelCompletionService) CompleteLevel(
	ctx context.Context,
	userID uuid.UUID,
	levelID uuid.UUID,
	answeredQuestionIDs []uuid.UUID,
) (*CompletionResult, error) {
	if len(answeredQuestionIDs) == 0 {
		return nil, ErrNoAnsweredQuestions
	}

	db := s.DB.WithContext(ctx)

	// 1) Level harus ada
	var level lmodel.LevelModel
	if err := db.First(&level, "level_id = ?", levelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}

	// 2) Validasi setiap ID: soal ada DAN milik level ini (tanpa duplikat)
	seen := map[uuid.UUID]bool{}
	uniqueIDs := make([]uuid.UUID, 0, len(answeredQuestionIDs))
	for _, id := range answeredQuestionIDs {
		if seen[id] {
			return nil, fmt.Errorf("%w: question %s dikirim ganda", ErrInvalidAnsweredQuestion, id)
		}
		seen[id] = true
		uniqueIDs = append(uniqueIDs, id)
	}

	var questions []qmodel.QuestionModel
	if err := db.Where("question_id IN ? AND question_level_id = ?", uniqueIDs, levelID).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) != len(uniqueIDs) {
		return nil, fmt.Errorf("%w: ada question di luar level atau tidak ditemukan", ErrInvalidAnsweredQuestion)
	}

	// 3) Setiap answered question wajib punya response tersimpan.
	//    Kalau tidak ada → input inkonsisten, tolak bersih (bukan dianggap salah).
	var responses []rmodel.QuestionResponseModel
	if err := db.Where("question_response_user_id = ? AND question_response_question_id IN ?", userID, uniqueIDs).
		Find(&responses).Error; err != nil {
		return nil, err
	}
	responsesByQuestion := make(map[uuid.UUID]rmodel.QuestionResponseModel, len(responses))
	for _, r := range responses {
		responsesByQuestion[r.QuestionResponseQuestionID] = r
	}
	for _, id := range uniqueIDs {
		if _, ok := responsesByQuestion[id]; !ok {
			return nil, fmt.Errorf("%w: question %s", ErrMissingResponse, id)
		}
	}

	// 4) Hitung ringkasan
	summary := SummarizeResponses(responses, level.LevelPassingQuestions)

	// 5) Belum lolos → balikin skor saja, JANGAN persist apa pun
	if !summary.IsComplete {
		return &CompletionResult{Summary: summary}, nil
	}

	// 6-7) Lolos → upsert best-ever dalam satu tx + row lock per (user, level)
	fb := BuildFeedback(questions, responsesByQuestion)

	var completion lmodel.UserLevelCompleteModel
	if err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&completion, "user_id = ? AND level_id = ?", userID, levelID).Error

		switch {
		case err == nil:
			MergeBest(&completion, summary.TotalPoints, summary.CorrectCount, fb)
			return tx.Save(&completion).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			completion = lmodel.UserLevelCompleteModel{
				UserID:               userID,
				LevelID:              levelID,
				TotalPoints:          summary.TotalPoints,
				NoOfCorrectQuestions: summary.CorrectCount,
				Strengths:            fb.Strengths,
				Weaknesses:           fb.Weaknesses,
				Recommendations:      fb.Recommendations,
			}
			if cerr := tx.Create(&completion).Error; cerr != nil {
				if isUniqueViolation(cerr) {
					// sesi lain menang race create → lock lalu merge
					if lerr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
						First(&completion, "user_id = ? AND level_id = ?", userID, levelID).Error; lerr != nil {
						return lerr
					}
					MergeBest(&completion, summary.TotalPoints, summary.CorrectCount, fb)
					return tx.Save(&completion).Error
				}
				return cerr
			}
			return nil
		default:
			return err
		}
	}); err != nil {
		return nil, err
	}

	return &CompletionResult{Summary: summary, Completion: &completion}, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}
