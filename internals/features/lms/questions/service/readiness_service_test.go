// file: internals/features/lms/questions/service/readiness_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

func mcqOptions(total, correct int) []qmodel.MCQAnswerModel {
	out := make([]qmodel.MCQAnswerModel, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, qmodel.MCQAnswerModel{
			MCQAnswerValue:     "opsi",
			MCQAnswerIsCorrect: i < correct,
		})
	}
	return out
}

func TestIsReadyMCQ(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		want    bool
	}{
		{"4 opsi 1 correct", 4, 1, true},
		{"kurang dari 4 opsi", 3, 1, false},
		{"lebih dari 4 opsi", 5, 1, false},
		{"tanpa correct", 4, 0, false},
		{"dua correct", 4, 2, false},
		{"kosong", 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsReadyMCQ(mcqOptions(tc.total, tc.correct)))
		})
	}
}

func blankSegments(blanks int) []qmodel.BlankSegmentModel {
	out := []qmodel.BlankSegmentModel{
		{BlankSegmentText: "Ibukota", BlankSegmentIsBlank: false, BlankSegmentOrder: 0},
	}
	for i := 0; i < blanks; i++ {
		out = append(out, qmodel.BlankSegmentModel{
			BlankSegmentIsBlank: true,
			BlankSegmentOrder:   i + 1,
		})
	}
	return out
}

func blankAnswersAt(indexes ...int) []qmodel.BlankAnswerModel {
	out := make([]qmodel.BlankAnswerModel, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, qmodel.BlankAnswerModel{
			BlankAnswerBlankIndex: idx,
			BlankAnswerValue:      "jawaban",
			BlankAnswerIsCorrect:  true,
		})
	}
	return out
}

func TestIsReadyFillInBlank(t *testing.T) {
	tests := []struct {
		name    string
		blanks  int
		indexes []int
		want    bool
	}{
		{"semua blank tercakup", 2, []int{0, 1}, true},
		{"beberapa value untuk index sama tetap ready", 2, []int{0, 0, 1}, true},
		{"ada blank tanpa jawaban", 2, []int{0}, false},
		{"index di luar jumlah blank", 2, []int{0, 1, 2}, false},
		{"index negatif", 1, []int{-1}, false},
		// jumlah sama tapi index tidak berkorespondensi
		{"jumlah cocok tapi index dobel", 2, []int{0, 0}, false},
		{"tanpa jawaban sama sekali", 2, nil, false},
		{"soal tanpa blank", 0, nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IsReadyFillInBlank(blankSegments(tc.blanks), blankAnswersAt(tc.indexes...))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsReadyMatching(t *testing.T) {
	pairs := func(n int) []qmodel.MatchingPairModel {
		out := make([]qmodel.MatchingPairModel, n)
		return out
	}

	assert.False(t, IsReadyMatching(pairs(0)))
	assert.False(t, IsReadyMatching(pairs(2)))
	assert.True(t, IsReadyMatching(pairs(3)))
	assert.True(t, IsReadyMatching(pairs(10)))
}

func TestIsReadyDispatch(t *testing.T) {
	t.Run("per tipe", func(t *testing.T) {
		mcq := &qmodel.QuestionModel{
			QuestionType: qmodel.QuestionTypeMCQ,
			MCQAnswers:   mcqOptions(4, 1),
		}
		ready, err := IsReady(mcq)
		assert.NoError(t, err)
		assert.True(t, ready)

		blank := &qmodel.QuestionModel{
			QuestionType:  qmodel.QuestionTypeFillInBlank,
			BlankSegments: blankSegments(1),
			BlankAnswers:  blankAnswersAt(0),
		}
		ready, err = IsReady(blank)
		assert.NoError(t, err)
		assert.True(t, ready)
	})

	t.Run("tipe tidak dikenal", func(t *testing.T) {
		q := &qmodel.QuestionModel{QuestionType: qmodel.QuestionType("essay")}
		_, err := IsReady(q)
		assert.Error(t, err)
	})
}
