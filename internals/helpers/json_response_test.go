// file: internals/helpers/json_response_test.go
package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationMessages(t *testing.T) {
	type payload struct {
		Title     string `validate:"required"`
		PerBatch  int    `validate:"gte=1"`
		Threshold int    `validate:"min=3"`
	}

	v := validator.New()
	err := v.Struct(&payload{Title: "", PerBatch: 0, Threshold: 1})
	require.Error(t, err)

	msgs := ValidationMessages(err)
	require.Contains(t, msgs, "title")
	require.Contains(t, msgs, "perbatch")
	require.Contains(t, msgs, "threshold")
	assert.Contains(t, msgs["title"][0], "required")
	assert.Contains(t, msgs["threshold"][0], "min")
	assert.Contains(t, msgs["threshold"][0], "(3)")
}

func TestValidationMessagesNonValidatorError(t *testing.T) {
	msgs := ValidationMessages(errors.New("payload rusak"))
	require.Contains(t, msgs, "_")
	assert.Equal(t, []string{"payload rusak"}, msgs["_"])
}

func TestValidationMessagesValidStruct(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	err := validator.New().Struct(&payload{Name: "ok"})
	require.NoError(t, err)
	assert.Empty(t, ValidationMessages(err))
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
