// file: internals/features/lms/responses/model/question_response_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

// Resubmit menimpa record yang sama: setelah attempt kedua, satu-satunya
// record mencerminkan attempt kedua seluruhnya, identitasnya tidak berubah.
func TestApplyAttemptResubmitOverwrites(t *testing.T) {
	recID := uuid.New()
	userID := uuid.New()
	questionID := uuid.New()
	firstChosen := uuid.New()
	secondChosen := uuid.New()

	record := QuestionResponseModel{
		QuestionResponseID:         recID,
		QuestionResponseUserID:     userID,
		QuestionResponseQuestionID: questionID,
	}

	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	record.ApplyAttempt(false, 0, 90, &firstChosen, nil, t1)

	assert.False(t, record.QuestionResponseIsCorrect)
	assert.Equal(t, 0, record.QuestionResponsePointsEarned)
	assert.Equal(t, &firstChosen, record.QuestionResponseChosenAnswerID)
	assert.Equal(t, t1, record.QuestionResponseCreatedAt)

	// attempt kedua: benar dan lebih cepat
	t2 := t1.Add(5 * time.Minute)
	record.ApplyAttempt(true, 17, 40, &secondChosen, nil, t2)

	assert.True(t, record.QuestionResponseIsCorrect)
	assert.Equal(t, 17, record.QuestionResponsePointsEarned)
	assert.Equal(t, 40, record.QuestionResponseTimeSeconds)
	assert.Equal(t, &secondChosen, record.QuestionResponseChosenAnswerID)
	assert.Equal(t, t2, record.QuestionResponseCreatedAt, "created_at ikut di-refresh")

	// identitas record tidak pernah disentuh
	assert.Equal(t, recID, record.QuestionResponseID)
	assert.Equal(t, userID, record.QuestionResponseUserID)
	assert.Equal(t, questionID, record.QuestionResponseQuestionID)
}

// Attempt kedua dengan hasil lebih buruk TETAP menang (last wins, bukan best).
func TestApplyAttemptLastWinsNotBest(t *testing.T) {
	record := QuestionResponseModel{
		QuestionResponseID:         uuid.New(),
		QuestionResponseUserID:     uuid.New(),
		QuestionResponseQuestionID: uuid.New(),
	}

	record.ApplyAttempt(true, 22, 30, nil, datatypes.JSON(`[{"blank_index":0,"value":"a"}]`), time.Now())
	record.ApplyAttempt(false, 0, 120, nil, datatypes.JSON(`[{"blank_index":0,"value":"b"}]`), time.Now())

	assert.False(t, record.QuestionResponseIsCorrect)
	assert.Equal(t, 0, record.QuestionResponsePointsEarned)
	assert.Equal(t, datatypes.JSON(`[{"blank_index":0,"value":"b"}]`), record.QuestionResponseData)
}
