// file: internals/features/lms/responses/service/grading_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

func mcqQuestion(correctIdx int) (*qmodel.QuestionModel, []uuid.UUID) {
	ids := make([]uuid.UUID, 4)
	q := &qmodel.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionType: qmodel.QuestionTypeMCQ,
	}
	for i := 0; i < 4; i++ {
		ids[i] = uuid.New()
		q.MCQAnswers = append(q.MCQAnswers, qmodel.MCQAnswerModel{
			MCQAnswerID:         ids[i],
			MCQAnswerQuestionID: q.QuestionID,
			MCQAnswerValue:      string(rune('A' + i)),
			MCQAnswerIsCorrect:  i == correctIdx,
		})
	}
	return q, ids
}

func TestGradeMCQ(t *testing.T) {
	q, ids := mcqQuestion(2)

	t.Run("opsi benar", func(t *testing.T) {
		res, err := Grade(&Submission{
			QuestionType:     qmodel.QuestionTypeMCQ,
			SelectedAnswerID: &ids[2],
		}, q)
		require.NoError(t, err)
		assert.True(t, res.IsCorrect)
		require.NotNil(t, res.CorrectData.CorrectAnswerID)
		assert.Equal(t, ids[2], *res.CorrectData.CorrectAnswerID)
	})

	t.Run("opsi salah tetap mengungkap kunci", func(t *testing.T) {
		res, err := Grade(&Submission{
			QuestionType:     qmodel.QuestionTypeMCQ,
			SelectedAnswerID: &ids[0],
		}, q)
		require.NoError(t, err)
		assert.False(t, res.IsCorrect)
		require.NotNil(t, res.CorrectData.CorrectAnswerID)
		assert.Equal(t, ids[2], *res.CorrectData.CorrectAnswerID)
	})

	t.Run("opsi milik soal lain ditolak", func(t *testing.T) {
		foreign := uuid.New()
		_, err := Grade(&Submission{
			QuestionType:     qmodel.QuestionTypeMCQ,
			SelectedAnswerID: &foreign,
		}, q)
		assert.ErrorIs(t, err, ErrAnswerNotInQuestion)
	})

	t.Run("submission kosong ditolak", func(t *testing.T) {
		_, err := Grade(&Submission{QuestionType: qmodel.QuestionTypeMCQ}, q)
		assert.ErrorIs(t, err, ErrEmptySubmission)
	})

	t.Run("tipe tidak cocok ditolak", func(t *testing.T) {
		_, err := Grade(&Submission{
			QuestionType: qmodel.QuestionTypeMatching,
			Pairs:        []PairSubmission{{LeftItem: "a", RightItem: "b"}},
		}, q)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("deterministik untuk input sama", func(t *testing.T) {
		sub := &Submission{
			QuestionType:     qmodel.QuestionTypeMCQ,
			SelectedAnswerID: &ids[2],
		}
		first, err := Grade(sub, q)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Grade(sub, q)
			require.NoError(t, err)
			assert.Equal(t, first.IsCorrect, again.IsCorrect)
		}
	})
}

func blankQuestion() *qmodel.QuestionModel {
	q := &qmodel.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionType: qmodel.QuestionTypeFillInBlank,
	}
	// 2 blank: index 0 menerima "Jakarta"/"DKI Jakarta", index 1 menerima "Indonesia"
	q.BlankAnswers = []qmodel.BlankAnswerModel{
		{BlankAnswerQuestionID: q.QuestionID, BlankAnswerBlankIndex: 0, BlankAnswerValue: "Jakarta", BlankAnswerIsCorrect: true},
		{BlankAnswerQuestionID: q.QuestionID, BlankAnswerBlankIndex: 0, BlankAnswerValue: "DKI Jakarta", BlankAnswerIsCorrect: true},
		{BlankAnswerQuestionID: q.QuestionID, BlankAnswerBlankIndex: 1, BlankAnswerValue: "Indonesia", BlankAnswerIsCorrect: true},
		// jawaban yang di-unmark tidak ikut jadi kunci
		{BlankAnswerQuestionID: q.QuestionID, BlankAnswerBlankIndex: 1, BlankAnswerValue: "Nusantara", BlankAnswerIsCorrect: false},
	}
	return q
}

func TestGradeFillInBlank(t *testing.T) {
	q := blankQuestion()

	tests := []struct {
		name    string
		blanks  []BlankSubmission
		correct bool
	}{
		{
			name: "semua blank benar",
			blanks: []BlankSubmission{
				{BlankIndex: 0, Value: "Jakarta"},
				{BlankIndex: 1, Value: "Indonesia"},
			},
			correct: true,
		},
		{
			name: "value alternatif diterima",
			blanks: []BlankSubmission{
				{BlankIndex: 0, Value: "DKI Jakarta"},
				{BlankIndex: 1, Value: "Indonesia"},
			},
			correct: true,
		},
		{
			name: "normalisasi case dan spasi",
			blanks: []BlankSubmission{
				{BlankIndex: 0, Value: "  jaKARta  "},
				{BlankIndex: 1, Value: "INDONESIA"},
			},
			correct: true,
		},
		{
			name: "satu blank salah = salah total",
			blanks: []BlankSubmission{
				{BlankIndex: 0, Value: "Jakarta"},
				{BlankIndex: 1, Value: "Malaysia"},
			},
			correct: false,
		},
		{
			name: "blank tidak lengkap = salah",
			blanks: []BlankSubmission{
				{BlankIndex: 0, Value: "Jakarta"},
			},
			correct: false,
		},
		{
			name: "index liar = salah",
			blanks: []BlankSubmission{
				{BlankIndex: 0, Value: "Jakarta"},
				{BlankIndex: 1, Value: "Indonesia"},
				{BlankIndex: 7, Value: "ekstra"},
			},
			correct: false,
		},
		{
			name: "jawaban unmarked bukan kunci",
			blanks: []BlankSubmission{
				{BlankIndex: 0, Value: "Jakarta"},
				{BlankIndex: 1, Value: "Nusantara"},
			},
			correct: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Grade(&Submission{
				QuestionType: qmodel.QuestionTypeFillInBlank,
				Blanks:       tc.blanks,
			}, q)
			require.NoError(t, err)
			assert.Equal(t, tc.correct, res.IsCorrect)
		})
	}

	t.Run("tanpa blank = submission kosong", func(t *testing.T) {
		_, err := Grade(&Submission{QuestionType: qmodel.QuestionTypeFillInBlank}, q)
		assert.ErrorIs(t, err, ErrEmptySubmission)
	})

	t.Run("correct data mengungkap semua value per index", func(t *testing.T) {
		res, err := Grade(&Submission{
			QuestionType: qmodel.QuestionTypeFillInBlank,
			Blanks:       []BlankSubmission{{BlankIndex: 0, Value: "x"}},
		}, q)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Jakarta", "DKI Jakarta"}, res.CorrectData.AcceptableValues[0])
		assert.ElementsMatch(t, []string{"Indonesia"}, res.CorrectData.AcceptableValues[1])
	})
}

func matchingQuestion() *qmodel.QuestionModel {
	q := &qmodel.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionType: qmodel.QuestionTypeMatching,
	}
	q.MatchingPairs = []qmodel.MatchingPairModel{
		{MatchingPairQuestionID: q.QuestionID, MatchingPairLeftItem: "Ayam", MatchingPairRightItem: "Telur", MatchingPairOrder: 0},
		{MatchingPairQuestionID: q.QuestionID, MatchingPairLeftItem: "Sapi", MatchingPairRightItem: "Susu", MatchingPairOrder: 1},
		{MatchingPairQuestionID: q.QuestionID, MatchingPairLeftItem: "Lebah", MatchingPairRightItem: "Madu", MatchingPairOrder: 2},
	}
	return q
}

func TestGradeMatching(t *testing.T) {
	q := matchingQuestion()

	tests := []struct {
		name    string
		pairs   []PairSubmission
		correct bool
	}{
		{
			name: "semua pasangan benar",
			pairs: []PairSubmission{
				{LeftItem: "Ayam", RightItem: "Telur"},
				{LeftItem: "Sapi", RightItem: "Susu"},
				{LeftItem: "Lebah", RightItem: "Madu"},
			},
			correct: true,
		},
		{
			name: "urutan submit bebas + normalisasi",
			pairs: []PairSubmission{
				{LeftItem: "lebah", RightItem: " MADU "},
				{LeftItem: "AYAM", RightItem: "telur"},
				{LeftItem: "Sapi", RightItem: "susu"},
			},
			correct: true,
		},
		{
			name: "satu pasangan tertukar = salah total",
			pairs: []PairSubmission{
				{LeftItem: "Ayam", RightItem: "Susu"},
				{LeftItem: "Sapi", RightItem: "Telur"},
				{LeftItem: "Lebah", RightItem: "Madu"},
			},
			correct: false,
		},
		{
			name: "subset benar tidak cukup",
			pairs: []PairSubmission{
				{LeftItem: "Ayam", RightItem: "Telur"},
			},
			correct: false,
		},
		{
			name: "left di luar soal = salah",
			pairs: []PairSubmission{
				{LeftItem: "Ayam", RightItem: "Telur"},
				{LeftItem: "Sapi", RightItem: "Susu"},
				{LeftItem: "Kuda", RightItem: "Madu"},
			},
			correct: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Grade(&Submission{
				QuestionType: qmodel.QuestionTypeMatching,
				Pairs:        tc.pairs,
			}, q)
			require.NoError(t, err)
			assert.Equal(t, tc.correct, res.IsCorrect)
		})
	}

	t.Run("correct data mengungkap kunci apa adanya", func(t *testing.T) {
		res, err := Grade(&Submission{
			QuestionType: qmodel.QuestionTypeMatching,
			Pairs:        []PairSubmission{{LeftItem: "Ayam", RightItem: "Telur"}},
		}, q)
		require.NoError(t, err)
		require.Len(t, res.CorrectData.CorrectPairs, 3)
		assert.Equal(t, "Ayam", res.CorrectData.CorrectPairs[0].LeftItem)
	})
}

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name       string
		isCorrect  bool
		difficulty qmodel.Difficulty
		timeTaken  int
		want       int
	}{
		{"salah = 0 walau cepat", false, qmodel.DifficultyHard, 10, 0},
		{"easy cepat dapat bonus", true, qmodel.DifficultyEasy, 45, 12},
		{"easy lambat tanpa bonus", true, qmodel.DifficultyEasy, 61, 10},
		{"medium tepat di batas bonus", true, qmodel.DifficultyMedium, 60, 17},
		{"hard lambat", true, qmodel.DifficultyHard, 300, 20},
		{"hard cepat", true, qmodel.DifficultyHard, 0, 22},
		{"waktu negatif tanpa bonus", true, qmodel.DifficultyMedium, -1, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculatePoints(tc.isCorrect, tc.difficulty, tc.timeTaken)
			assert.Equal(t, tc.want, got)
		})
	}
}
