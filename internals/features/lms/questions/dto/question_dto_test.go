// file: internals/features/lms/questions/dto/question_dto_test.go
package dto

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

func matchingQuestionModel() *qmodel.QuestionModel {
	q := &qmodel.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionType: qmodel.QuestionTypeMatching,
	}
	pairs := [][2]string{
		{"Ayam", "Telur"}, {"Sapi", "Susu"}, {"Lebah", "Madu"}, {"Ulat", "Sutra"},
	}
	for i, p := range pairs {
		q.MatchingPairs = append(q.MatchingPairs, qmodel.MatchingPairModel{
			MatchingPairQuestionID: q.QuestionID,
			MatchingPairLeftItem:   p[0],
			MatchingPairRightItem:  p[1],
			MatchingPairOrder:      i,
		})
	}
	return q
}

func TestFromModelQuestionForStudentMatching(t *testing.T) {
	q := matchingQuestionModel()

	view := FromModelQuestionForStudent(q)
	require.NotNil(t, view.Matching)

	// kiri urutan kanonik, kanan multiset sama (cuma diacak)
	assert.Equal(t, []string{"Ayam", "Sapi", "Lebah", "Ulat"}, view.Matching.LeftItems)
	assert.ElementsMatch(t, []string{"Telur", "Susu", "Madu", "Sutra"}, view.Matching.RightItems)
}

// Render view student dari banyak handler sekaligus harus aman (shuffle via
// rand global yang ber-mutex, bukan generator milik satu controller).
func TestFromModelQuestionForStudentConcurrent(t *testing.T) {
	q := matchingQuestionModel()

	const workers = 8
	const rounds = 200

	var wg sync.WaitGroup
	views := make([][]*StudentQuestionResponse, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				views[w] = append(views[w], FromModelQuestionForStudent(q))
			}
		}(w)
	}
	wg.Wait()

	for _, perWorker := range views {
		for _, v := range perWorker {
			require.NotNil(t, v.Matching)
			assert.ElementsMatch(t,
				[]string{"Telur", "Susu", "Madu", "Sutra"},
				v.Matching.RightItems)
		}
	}
}

func TestFromModelQuestionForStudentNeverLeaksKey(t *testing.T) {
	q := &qmodel.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionType: qmodel.QuestionTypeMCQ,
	}
	for i := 0; i < 4; i++ {
		q.MCQAnswers = append(q.MCQAnswers, qmodel.MCQAnswerModel{
			MCQAnswerID:         uuid.New(),
			MCQAnswerQuestionID: q.QuestionID,
			MCQAnswerValue:      "opsi",
			MCQAnswerIsCorrect:  i == 1,
		})
	}

	view := FromModelQuestionForStudent(q)
	require.Len(t, view.MCQOptions, 4)
	for _, op := range view.MCQOptions {
		// StudentMCQOption memang tidak punya field correctness;
		// pastikan value & id saja yang keluar
		assert.NotEmpty(t, op.Value)
		assert.NotEqual(t, uuid.Nil, op.MCQAnswerID)
	}
}
