// file: internals/features/lms/answers/controller/answer_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	adto "kuisku_backend/internals/features/lms/answers/dto"
	qmodel "kuisku_backend/internals/features/lms/questions/model"
	qservice "kuisku_backend/internals/features/lms/questions/service"
	helper "kuisku_backend/internals/helpers"
	helperAuth "kuisku_backend/internals/helpers/auth"
)

/* =========================================================
   Answer Store
   Semua mutasi: cek scope → mutasi + recompute ready dalam
   SATU transaksi → balikin state terbaru.
========================================================= */

type AnswerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================================================
   Shared helpers
========================================================= */

func (ctl *AnswerController) loadQuestion(questionID uuid.UUID) (*qmodel.QuestionModel, error) {
	var q qmodel.QuestionModel
	if err := ctl.DB.First(&q, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return nil, err
	}
	return &q, nil
}

func (ctl *AnswerController) ensureAuthorScope(c *fiber.Ctx, levelID uuid.UUID) error {
	var gidStr string
	if err := ctl.DB.Raw(`
		SELECT s.subject_grade_id::text
		FROM levels l
		JOIN subjects s ON s.subject_id = l.level_subject_id AND s.subject_deleted_at IS NULL
		WHERE l.level_id = ? AND l.level_deleted_at IS NULL
	`, levelID).Scan(&gidStr).Error; err != nil {
		return err
	}
	if strings.TrimSpace(gidStr) == "" {
		return fiber.NewError(fiber.StatusNotFound, "Level tidak ditemukan")
	}
	gid, err := uuid.Parse(gidStr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Grade ID level tidak valid")
	}
	return helperAuth.EnsureCanManageGrade(c, ctl.DB, gid)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// mcqOptionSetFull: soal mcq maksimal 4 opsi.
func mcqOptionSetFull(count int64) bool {
	return count >= int64(qservice.MCQRequiredOptions)
}

// mcqCorrectnessPlan: transisi correctness yang harus dieksekusi dalam tx.
type mcqCorrectnessPlan struct {
	Mark   *uuid.UUID // opsi yang di-set correct
	Unmark *uuid.UUID // opsi yang di-unset
}

// planMCQCorrectness memutuskan transisi dari state opsi yang sudah ter-lock:
// belum ada yang correct → mark target; target sedang correct → unmark;
// opsi lain yang correct → swap (unmark lama + mark target). Hasilnya tidak
// pernah menyisakan lebih dari satu opsi correct.
func planMCQCorrectness(options []qmodel.MCQAnswerModel, targetID uuid.UUID) mcqCorrectnessPlan {
	var current *qmodel.MCQAnswerModel
	for i := range options {
		if options[i].MCQAnswerIsCorrect {
			current = &options[i]
			break
		}
	}

	switch {
	case current == nil:
		return mcqCorrectnessPlan{Mark: &targetID}
	case current.MCQAnswerID == targetID:
		return mcqCorrectnessPlan{Unmark: &targetID}
	default:
		currentID := current.MCQAnswerID
		return mcqCorrectnessPlan{Mark: &targetID, Unmark: &currentID}
	}
}

/* =========================================================
   ADD MCQ OPTION
========================================================= */

// POST /questions/:id/mcq-options
func (ctl *AnswerController) AddMCQOption(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	var req adto.AddMCQOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	value := strings.TrimSpace(req.Value)
	if value == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Value opsi tidak boleh kosong")
	}

	q, err := ctl.loadQuestion(questionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !q.IsMCQ() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe soal bukan mcq")
	}
	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	opt := qmodel.MCQAnswerModel{
		MCQAnswerQuestionID: questionID,
		MCQAnswerValue:      value,
		MCQAnswerIsCorrect:  req.IsCorrect != nil && *req.IsCorrect,
	}

	var ready bool
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// lock row soal dulu: add konkuren pada soal yang sama diserialisasi,
		// guard max-4 tidak bisa kecolongan count basi
		var locked qmodel.QuestionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "question_id = ?", questionID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&qmodel.MCQAnswerModel{}).
			Where("mcq_answer_question_id = ?", questionID).
			Count(&count).Error; err != nil {
			return err
		}
		if mcqOptionSetFull(count) {
			return fiber.NewError(fiber.StatusBadRequest, "Opsi mcq sudah maksimal (4)")
		}
		if err := tx.Create(&opt).Error; err != nil {
			return err
		}
		r, err := qservice.RecomputeReadiness(tx, questionID)
		if err != nil {
			return err
		}
		ready = r
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Opsi berhasil ditambahkan", fiber.Map{
		"mcq_answer":        opt,
		"question_is_ready": ready,
	})
}

/* =========================================================
   ADD BLANK ANSWER
========================================================= */

// POST /questions/:id/blank-answers
func (ctl *AnswerController) AddBlankAnswer(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	var req adto.AddBlankAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	value := strings.TrimSpace(req.Value)
	if value == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Value jawaban tidak boleh kosong")
	}

	q, err := ctl.loadQuestion(questionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !q.IsFillInBlank() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe soal bukan fill_in_blank")
	}
	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	ans := qmodel.BlankAnswerModel{
		BlankAnswerQuestionID: questionID,
		BlankAnswerBlankIndex: req.BlankIndex,
		BlankAnswerValue:      value,
		BlankAnswerIsCorrect:  true,
	}

	var ready bool
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// index harus menunjuk segment blank yang ada
		var blankCount int64
		if err := tx.Model(&qmodel.BlankSegmentModel{}).
			Where("blank_segment_question_id = ? AND blank_segment_is_blank = TRUE", questionID).
			Count(&blankCount).Error; err != nil {
			return err
		}
		if int64(req.BlankIndex) >= blankCount {
			return fiber.NewError(fiber.StatusBadRequest, "Blank index tidak menunjuk segment blank yang ada")
		}

		// satu index boleh beberapa value berbeda; value sama (dinormalisasi) = duplikat
		var existing []qmodel.BlankAnswerModel
		if err := tx.Where("blank_answer_question_id = ? AND blank_answer_blank_index = ?", questionID, req.BlankIndex).
			Find(&existing).Error; err != nil {
			return err
		}
		for _, e := range existing {
			if normalize(e.BlankAnswerValue) == normalize(value) {
				return fiber.NewError(fiber.StatusBadRequest, "Jawaban untuk blank index ini sudah ada")
			}
		}

		if err := tx.Create(&ans).Error; err != nil {
			return err
		}
		r, err := qservice.RecomputeReadiness(tx, questionID)
		if err != nil {
			return err
		}
		ready = r
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Jawaban blank berhasil ditambahkan", fiber.Map{
		"blank_answer":      ans,
		"question_is_ready": ready,
	})
}

/* =========================================================
   ADD MATCHING PAIR
========================================================= */

// POST /questions/:id/matching-pairs
func (ctl *AnswerController) AddMatchingPair(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	var req adto.AddMatchingPairRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	left := strings.TrimSpace(req.LeftItem)
	right := strings.TrimSpace(req.RightItem)
	if left == "" || right == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Item matching tidak boleh kosong")
	}

	q, err := ctl.loadQuestion(questionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !q.IsMatching() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe soal bukan matching")
	}
	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	pair := qmodel.MatchingPairModel{
		MatchingPairQuestionID: questionID,
		MatchingPairLeftItem:   left,
		MatchingPairRightItem:  right,
	}

	var ready bool
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var existing []qmodel.MatchingPairModel
		if err := tx.Where("matching_pair_question_id = ?", questionID).
			Order("matching_pair_order ASC").
			Find(&existing).Error; err != nil {
			return err
		}
		for _, e := range existing {
			if normalize(e.MatchingPairLeftItem) == normalize(left) ||
				normalize(e.MatchingPairRightItem) == normalize(right) {
				return fiber.NewError(fiber.StatusBadRequest, "Item matching duplikat dalam satu soal")
			}
		}

		if req.Order != nil {
			pair.MatchingPairOrder = *req.Order
		} else {
			pair.MatchingPairOrder = len(existing)
		}

		if err := tx.Create(&pair).Error; err != nil {
			return err
		}
		r, err := qservice.RecomputeReadiness(tx, questionID)
		if err != nil {
			return err
		}
		ready = r
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Pasangan berhasil ditambahkan", fiber.Map{
		"matching_pair":     pair,
		"question_is_ready": ready,
	})
}

/* =========================================================
   SET MCQ CORRECTNESS (atomic swap)
========================================================= */

// PATCH /mcq-answers/:id/correctness
// - belum ada yang correct  → target jadi correct
// - target sedang correct   → unmark
// - opsi lain yang correct  → swap atomik (lama false, target true)
func (ctl *AnswerController) SetMCQCorrectness(c *fiber.Ctx) error {
	answerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jawaban tidak valid")
	}

	var target qmodel.MCQAnswerModel
	if err := ctl.DB.First(&target, "mcq_answer_id = ?", answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	q, err := ctl.loadQuestion(target.MCQAnswerQuestionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ready bool
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// lock semua opsi soal ini supaya reader konkuren tidak melihat
		// state setengah-swap
		var options []qmodel.MCQAnswerModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("mcq_answer_question_id = ?", target.MCQAnswerQuestionID).
			Find(&options).Error; err != nil {
			return err
		}

		plan := planMCQCorrectness(options, answerID)
		if plan.Unmark != nil {
			if err := tx.Model(&qmodel.MCQAnswerModel{}).
				Where("mcq_answer_id = ?", *plan.Unmark).
				Update("mcq_answer_is_correct", false).Error; err != nil {
				return err
			}
		}
		if plan.Mark != nil {
			if err := tx.Model(&qmodel.MCQAnswerModel{}).
				Where("mcq_answer_id = ?", *plan.Mark).
				Update("mcq_answer_is_correct", true).Error; err != nil {
				return err
			}
		}

		r, err := qservice.RecomputeReadiness(tx, target.MCQAnswerQuestionID)
		if err != nil {
			return err
		}
		ready = r
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Correctness berhasil diubah", fiber.Map{
		"question_id":       target.MCQAnswerQuestionID,
		"question_is_ready": ready,
	})
}

/* =========================================================
   SET BLANK CORRECTNESS
========================================================= */

// PATCH /blank-answers/:id/correctness — set eksplisit, atau toggle kalau body kosong.
// Beberapa jawaban blank boleh correct bersamaan.
func (ctl *AnswerController) SetBlankCorrectness(c *fiber.Ctx) error {
	answerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jawaban tidak valid")
	}

	var req adto.SetBlankCorrectnessRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	var ans qmodel.BlankAnswerModel
	if err := ctl.DB.First(&ans, "blank_answer_id = ?", answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	q, err := ctl.loadQuestion(ans.BlankAnswerQuestionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	newVal := !ans.BlankAnswerIsCorrect
	if req.IsCorrect != nil {
		newVal = *req.IsCorrect
	}

	var ready bool
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&qmodel.BlankAnswerModel{}).
			Where("blank_answer_id = ?", answerID).
			Update("blank_answer_is_correct", newVal).Error; err != nil {
			return err
		}
		r, err := qservice.RecomputeReadiness(tx, ans.BlankAnswerQuestionID)
		if err != nil {
			return err
		}
		ready = r
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Correctness berhasil diubah", fiber.Map{
		"blank_answer_id":   answerID,
		"is_correct":        newVal,
		"question_is_ready": ready,
	})
}

/* =========================================================
   DELETE sub-entity (semua jenis) + recompute ready
========================================================= */

func (ctl *AnswerController) DeleteMCQOption(c *fiber.Ctx) error {
	return ctl.deleteSubEntity(c, "mcq")
}

func (ctl *AnswerController) DeleteBlankAnswer(c *fiber.Ctx) error {
	return ctl.deleteSubEntity(c, "blank")
}

func (ctl *AnswerController) DeleteMatchingPair(c *fiber.Ctx) error {
	return ctl.deleteSubEntity(c, "matching")
}

func (ctl *AnswerController) deleteSubEntity(c *fiber.Ctx, kind string) error {
	answerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jawaban tidak valid")
	}

	var questionID uuid.UUID
	switch kind {
	case "mcq":
		var m qmodel.MCQAnswerModel
		if err := ctl.DB.First(&m, "mcq_answer_id = ?", answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
			}
			return helper.FromFiberError(c, err)
		}
		questionID = m.MCQAnswerQuestionID
	case "blank":
		var m qmodel.BlankAnswerModel
		if err := ctl.DB.First(&m, "blank_answer_id = ?", answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
			}
			return helper.FromFiberError(c, err)
		}
		questionID = m.BlankAnswerQuestionID
	case "matching":
		var m qmodel.MatchingPairModel
		if err := ctl.DB.First(&m, "matching_pair_id = ?", answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Pasangan tidak ditemukan")
			}
			return helper.FromFiberError(c, err)
		}
		questionID = m.MatchingPairQuestionID
	}

	q, err := ctl.loadQuestion(questionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ready bool
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		switch kind {
		case "mcq":
			if err := tx.Delete(&qmodel.MCQAnswerModel{}, "mcq_answer_id = ?", answerID).Error; err != nil {
				return err
			}
		case "blank":
			if err := tx.Delete(&qmodel.BlankAnswerModel{}, "blank_answer_id = ?", answerID).Error; err != nil {
				return err
			}
		case "matching":
			if err := tx.Delete(&qmodel.MatchingPairModel{}, "matching_pair_id = ?", answerID).Error; err != nil {
				return err
			}
		}
		r, err := qservice.RecomputeReadiness(tx, questionID)
		if err != nil {
			return err
		}
		ready = r
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Jawaban berhasil dihapus", fiber.Map{
		"question_id":       questionID,
		"question_is_ready": ready,
	})
}
