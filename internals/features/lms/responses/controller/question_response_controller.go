// file: internals/features/lms/responses/controller/question_response_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qmodel "kuisku_backend/internals/features/lms/questions/model"
	qservice "kuisku_backend/internals/features/lms/questions/service"
	rdto "kuisku_backend/internals/features/lms/responses/dto"
	rmodel "kuisku_backend/internals/features/lms/responses/model"
	rservice "kuisku_backend/internals/features/lms/responses/service"
	helper "kuisku_backend/internals/helpers"
	helperAuth "kuisku_backend/internals/helpers/auth"
)

/* =========================================================
   Response Ledger
   Satu record per (user, question); resubmit = overwrite in place.
========================================================= */

type QuestionResponseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionResponseController(db *gorm.DB) *QuestionResponseController {
	return &QuestionResponseController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================================================
   SUBMIT — grade lalu upsert
========================================================= */

// POST /responses
func (ctl *QuestionResponseController) Submit(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req rdto.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	// 1) Load soal + answer key
	q, err := qservice.LoadQuestionWithAnswers(ctl.DB, req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}
	if !q.QuestionIsReady {
		return helper.JsonError(c, fiber.StatusBadRequest, "Soal belum siap menerima jawaban")
	}

	// 2) Grade (murni, sebelum tulis apa pun)
	result, err := rservice.Grade(req.ToSubmission(), q)
	if err != nil {
		switch {
		case errors.Is(err, rservice.ErrTypeMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Tipe submission tidak sesuai dengan tipe soal")
		case errors.Is(err, rservice.ErrAnswerNotInQuestion):
			return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban yang dipilih bukan milik soal ini")
		case errors.Is(err, rservice.ErrEmptySubmission):
			return helper.JsonError(c, fiber.StatusBadRequest, "Submission kosong")
		default:
			return helper.FromFiberError(c, err)
		}
	}

	points := rservice.CalculatePoints(result.IsCorrect, q.QuestionDifficulty, req.ResponseTime)

	// 3) Payload tersimpan: mcq = chosen id, selain itu = raw submission
	var chosenID *uuid.UUID
	var responseData datatypes.JSON
	switch q.QuestionType {
	case qmodel.QuestionTypeMCQ:
		chosenID = req.SelectedAnswerID
	case qmodel.QuestionTypeFillInBlank:
		b, _ := json.Marshal(req.Blanks)
		responseData = datatypes.JSON(b)
	case qmodel.QuestionTypeMatching:
		b, _ := json.Marshal(req.Pairs)
		responseData = datatypes.JSON(b)
	}

	// 4) Upsert: attempt terakhir menang, created_at di-refresh
	var record rmodel.QuestionResponseModel
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, "question_response_user_id = ? AND question_response_question_id = ?", userID, req.QuestionID).Error

		switch {
		case err == nil:
			record.ApplyAttempt(result.IsCorrect, points, req.ResponseTime, chosenID, responseData, time.Now())
			return tx.Save(&record).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = rmodel.QuestionResponseModel{
				QuestionResponseUserID:     userID,
				QuestionResponseQuestionID: req.QuestionID,
			}
			record.ApplyAttempt(result.IsCorrect, points, req.ResponseTime, chosenID, responseData, time.Now())
			if cerr := tx.Create(&record).Error; cerr != nil {
				if isUniqueViolation(cerr) {
					// submit lain menang race create → lock lalu overwrite
					if lerr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
						First(&record, "question_response_user_id = ? AND question_response_question_id = ?", userID, req.QuestionID).Error; lerr != nil {
						return lerr
					}
					record.ApplyAttempt(result.IsCorrect, points, req.ResponseTime, chosenID, responseData, time.Now())
					return tx.Save(&record).Error
				}
				return cerr
			}
			return nil
		default:
			return err
		}
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Jawaban berhasil disubmit", rdto.SubmitResponseResult{
		Response:    record,
		CorrectData: result.CorrectData,
	})
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

/* =========================================================
   READ — response milik sendiri
========================================================= */

// GET /questions/:id/my-response
func (ctl *QuestionResponseController) GetMyResponse(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	var record rmodel.QuestionResponseModel
	if err := ctl.DB.First(&record,
		"question_response_user_id = ? AND question_response_question_id = ?", userID, questionID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada jawaban untuk soal ini")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Jawaban ditemukan", record)
}
