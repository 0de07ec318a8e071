// file: internals/features/lms/levels/service/level_completion_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	lmodel "kuisku_backend/internals/features/lms/levels/model"
	qmodel "kuisku_backend/internals/features/lms/questions/model"
	rmodel "kuisku_backend/internals/features/lms/responses/model"
)

func responses(flags []bool, points []int) []rmodel.QuestionResponseModel {
	out := make([]rmodel.QuestionResponseModel, len(flags))
	for i := range flags {
		out[i] = rmodel.QuestionResponseModel{
			QuestionResponseIsCorrect:    flags[i],
			QuestionResponsePointsEarned: points[i],
		}
	}
	return out
}

func TestSummarizeResponses(t *testing.T) {
	tests := []struct {
		name     string
		flags    []bool
		points   []int
		passing  int
		correct  int
		total    int
		pct      float64
		complete bool
	}{
		{
			name:  "lolos threshold",
			flags: []bool{true, true, false, true}, points: []int{12, 15, 0, 20},
			passing: 3, correct: 3, total: 47, pct: 75, complete: true,
		},
		{
			name:  "tepat di threshold",
			flags: []bool{true, true}, points: []int{10, 10},
			passing: 2, correct: 2, total: 20, pct: 100, complete: true,
		},
		{
			name:  "di bawah threshold",
			flags: []bool{true, false, false}, points: []int{22, 0, 0},
			passing: 2, correct: 1, total: 22, pct: 100.0 / 3.0, complete: false,
		},
		{
			name:  "tanpa response",
			flags: nil, points: nil,
			passing: 1, correct: 0, total: 0, pct: 0, complete: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := SummarizeResponses(responses(tc.flags, tc.points), tc.passing)
			assert.Equal(t, len(tc.flags), s.TotalAnswered)
			assert.Equal(t, tc.correct, s.CorrectCount)
			assert.Equal(t, tc.total, s.TotalPoints)
			assert.InDelta(t, tc.pct, s.Percentage, 0.0001)
			assert.Equal(t, tc.complete, s.IsComplete)
		})
	}
}

func TestMergeBest(t *testing.T) {
	t.Run("max per kolom independen", func(t *testing.T) {
		existing := &lmodel.UserLevelCompleteModel{
			TotalPoints:          50,
			NoOfCorrectQuestions: 3,
		}
		// attempt baru: points lebih rendah TAPI correct lebih tinggi
		MergeBest(existing, 40, 5, Feedback{})
		assert.Equal(t, 50, existing.TotalPoints)
		assert.Equal(t, 5, existing.NoOfCorrectQuestions)
	})

	t.Run("attempt lebih baik menimpa", func(t *testing.T) {
		existing := &lmodel.UserLevelCompleteModel{
			TotalPoints:          30,
			NoOfCorrectQuestions: 2,
		}
		MergeBest(existing, 60, 4, Feedback{})
		assert.Equal(t, 60, existing.TotalPoints)
		assert.Equal(t, 4, existing.NoOfCorrectQuestions)
	})

	t.Run("attempt lebih buruk tidak menurunkan", func(t *testing.T) {
		existing := &lmodel.UserLevelCompleteModel{
			TotalPoints:          80,
			NoOfCorrectQuestions: 6,
		}
		MergeBest(existing, 10, 1, Feedback{})
		assert.Equal(t, 80, existing.TotalPoints)
		assert.Equal(t, 6, existing.NoOfCorrectQuestions)
	})

	t.Run("feedback selalu ditimpa", func(t *testing.T) {
		existing := &lmodel.UserLevelCompleteModel{
			TotalPoints:     100,
			Strengths:       []string{"lama"},
			Weaknesses:      []string{"lama"},
			Recommendations: []string{"lama"},
		}
		MergeBest(existing, 10, 0, Feedback{
			Strengths:       []string{"baru kuat"},
			Weaknesses:      []string{"baru lemah"},
			Recommendations: []string{"baru saran"},
		})
		assert.Equal(t, 100, existing.TotalPoints) // skor tetap best-ever
		assert.Equal(t, []string{"baru kuat"}, []string(existing.Strengths))
		assert.Equal(t, []string{"baru lemah"}, []string(existing.Weaknesses))
		assert.Equal(t, []string{"baru saran"}, []string(existing.Recommendations))
	})
}

func TestBuildFeedback(t *testing.T) {
	mkQuestion := func(diff qmodel.Difficulty, title string) qmodel.QuestionModel {
		return qmodel.QuestionModel{
			QuestionID:         uuid.New(),
			QuestionTitle:      title,
			QuestionDifficulty: diff,
		}
	}

	easy1 := mkQuestion(qmodel.DifficultyEasy, "Penjumlahan")
	easy2 := mkQuestion(qmodel.DifficultyEasy, "Pengurangan")
	hard1 := mkQuestion(qmodel.DifficultyHard, "Integral")
	hard2 := mkQuestion(qmodel.DifficultyHard, "Limit")

	byQ := map[uuid.UUID]rmodel.QuestionResponseModel{
		easy1.QuestionID: {QuestionResponseIsCorrect: true},
		easy2.QuestionID: {QuestionResponseIsCorrect: true},
		hard1.QuestionID: {QuestionResponseIsCorrect: false},
		hard2.QuestionID: {QuestionResponseIsCorrect: false},
	}

	fb := BuildFeedback([]qmodel.QuestionModel{easy1, easy2, hard1, hard2}, byQ)

	assert.Contains(t, fb.Strengths, "Semua soal EASY terjawab benar")
	assert.NotEmpty(t, fb.Weaknesses)
	assert.Contains(t, fb.Recommendations, "Ulangi soal: Integral")
	assert.Contains(t, fb.Recommendations, "Ulangi soal: Limit")
}
