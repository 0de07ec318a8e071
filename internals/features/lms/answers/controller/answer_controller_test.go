// file: internals/features/lms/answers/controller/answer_controller_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
)

func mcqOptionSet(correctIdx int) []qmodel.MCQAnswerModel {
	out := make([]qmodel.MCQAnswerModel, 4)
	for i := range out {
		out[i] = qmodel.MCQAnswerModel{
			MCQAnswerID:        uuid.New(),
			MCQAnswerValue:     "opsi",
			MCQAnswerIsCorrect: i == correctIdx,
		}
	}
	return out
}

// applyPlan mensimulasikan eksekusi plan pada state opsi (apa yang dilakukan
// tx update di SetMCQCorrectness).
func applyPlan(options []qmodel.MCQAnswerModel, plan mcqCorrectnessPlan) {
	for i := range options {
		if plan.Unmark != nil && options[i].MCQAnswerID == *plan.Unmark {
			options[i].MCQAnswerIsCorrect = false
		}
		if plan.Mark != nil && options[i].MCQAnswerID == *plan.Mark {
			options[i].MCQAnswerIsCorrect = true
		}
	}
}

func correctCount(options []qmodel.MCQAnswerModel) int {
	n := 0
	for _, op := range options {
		if op.MCQAnswerIsCorrect {
			n++
		}
	}
	return n
}

func TestPlanMCQCorrectness(t *testing.T) {
	t.Run("belum ada correct → mark target", func(t *testing.T) {
		options := mcqOptionSet(-1)
		target := options[2].MCQAnswerID

		plan := planMCQCorrectness(options, target)
		require.NotNil(t, plan.Mark)
		assert.Equal(t, target, *plan.Mark)
		assert.Nil(t, plan.Unmark)

		applyPlan(options, plan)
		assert.Equal(t, 1, correctCount(options))
		assert.True(t, options[2].MCQAnswerIsCorrect)
	})

	t.Run("target sedang correct → unmark", func(t *testing.T) {
		options := mcqOptionSet(1)
		target := options[1].MCQAnswerID

		plan := planMCQCorrectness(options, target)
		require.NotNil(t, plan.Unmark)
		assert.Equal(t, target, *plan.Unmark)
		assert.Nil(t, plan.Mark)

		applyPlan(options, plan)
		assert.Equal(t, 0, correctCount(options))
	})

	t.Run("opsi lain correct → swap atomik", func(t *testing.T) {
		options := mcqOptionSet(0)
		target := options[3].MCQAnswerID

		plan := planMCQCorrectness(options, target)
		require.NotNil(t, plan.Mark)
		require.NotNil(t, plan.Unmark)
		assert.Equal(t, target, *plan.Mark)
		assert.Equal(t, options[0].MCQAnswerID, *plan.Unmark)

		applyPlan(options, plan)
		assert.Equal(t, 1, correctCount(options))
		assert.False(t, options[0].MCQAnswerIsCorrect)
		assert.True(t, options[3].MCQAnswerIsCorrect)
	})

	// setelah transisi mana pun, jumlah opsi correct selalu 0 atau 1
	t.Run("correct-set selalu 0 atau 1", func(t *testing.T) {
		for correctIdx := -1; correctIdx < 4; correctIdx++ {
			for targetIdx := 0; targetIdx < 4; targetIdx++ {
				options := mcqOptionSet(correctIdx)
				applyPlan(options, planMCQCorrectness(options, options[targetIdx].MCQAnswerID))
				n := correctCount(options)
				assert.LessOrEqual(t, n, 1, "correctIdx=%d targetIdx=%d", correctIdx, targetIdx)
			}
		}
	})
}

func TestMCQOptionSetFull(t *testing.T) {
	assert.False(t, mcqOptionSetFull(0))
	assert.False(t, mcqOptionSetFull(3))
	assert.True(t, mcqOptionSetFull(4))
	assert.True(t, mcqOptionSetFull(5))
}
