// file: internals/features/lms/levels/controller/level_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ldto "kuisku_backend/internals/features/lms/levels/dto"
	lmodel "kuisku_backend/internals/features/lms/levels/model"
	lservice "kuisku_backend/internals/features/lms/levels/service"
	helper "kuisku_backend/internals/helpers"
	helperAuth "kuisku_backend/internals/helpers/auth"
)

/* =========================================================
   Controller
========================================================= */

type LevelController struct {
	DB         *gorm.DB
	Validator  *validator.Validate
	Completion *lservice.LevelCompletionService
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{
		DB:         db,
		Validator:  validator.New(),
		Completion: lservice.NewLevelCompletionService(db),
	}
}

/* =========================================================
   Scope helpers
========================================================= */

func (ctl *LevelController) gradeIDForSubject(subjectID uuid.UUID) (uuid.UUID, error) {
	var gidStr string
	if err := ctl.DB.Raw(`
		SELECT subject_grade_id::text FROM subjects
		WHERE subject_id = ? AND subject_deleted_at IS NULL
	`, subjectID).Scan(&gidStr).Error; err != nil {
		return uuid.Nil, err
	}
	if strings.TrimSpace(gidStr) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	gid, err := uuid.Parse(gidStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Grade ID subject tidak valid")
	}
	return gid, nil
}

func (ctl *LevelController) readyQuestionCount(levelID uuid.UUID) (int64, error) {
	var count int64
	err := ctl.DB.Table("questions").
		Where("question_level_id = ? AND question_is_ready = TRUE AND question_deleted_at IS NULL", levelID).
		Count(&count).Error
	return count, err
}

/* =========================================================
   CRUD (teacher scoped / admin)
========================================================= */

// POST /levels
func (ctl *LevelController) Create(c *fiber.Ctx) error {
	var req ldto.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	gradeID, err := ctl.gradeIDForSubject(req.LevelSubjectID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCanManageGrade(c, ctl.DB, gradeID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Level berhasil dibuat", ldto.FromModelLevel(m, 0))
}

// GET /levels?subject_id=
func (ctl *LevelController) List(c *fiber.Ctx) error {
	dbq := ctl.DB.Model(&lmodel.LevelModel{}).Where("level_deleted_at IS NULL")

	if s := strings.TrimSpace(c.Query("subject_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		dbq = dbq.Where("level_subject_id = ?", id)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []lmodel.LevelModel
	if err := dbq.Order("level_order ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]ldto.LevelResponse, 0, len(rows))
	for i := range rows {
		count, err := ctl.readyQuestionCount(rows[i].LevelID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		out = append(out, *ldto.FromModelLevel(&rows[i], count))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar level", out, &p)
}

// GET /levels/:id
func (ctl *LevelController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var m lmodel.LevelModel
	if err := ctl.DB.First(&m, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	count, err := ctl.readyQuestionCount(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail level", ldto.FromModelLevel(&m, count))
}

// PATCH /levels/:id
func (ctl *LevelController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var req ldto.UpdateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var m lmodel.LevelModel
	if err := ctl.DB.First(&m, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	gradeID, err := ctl.gradeIDForSubject(m.LevelSubjectID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCanManageGrade(c, ctl.DB, gradeID); err != nil {
		return helper.FromFiberError(c, err)
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	count, err := ctl.readyQuestionCount(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Level berhasil diperbarui", ldto.FromModelLevel(&m, count))
}

// DELETE /levels/:id
func (ctl *LevelController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var m lmodel.LevelModel
	if err := ctl.DB.First(&m, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	gradeID, err := ctl.gradeIDForSubject(m.LevelSubjectID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCanManageGrade(c, ctl.DB, gradeID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Level berhasil dihapus", fiber.Map{"level_id": id})
}

/* =========================================================
   COMPLETE LEVEL (student)
========================================================= */

// POST /levels/:id/complete
func (ctl *LevelController) CompleteLevel(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var req ldto.CompleteLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	result, err := ctl.Completion.CompleteLevel(c.UserContext(), userID, levelID, req.AnsweredQuestionsInLevel)
	if err != nil {
		switch {
		case errors.Is(err, lservice.ErrLevelNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Level tidak ditemukan")
		case errors.Is(err, lservice.ErrNoAnsweredQuestions),
			errors.Is(err, lservice.ErrInvalidAnsweredQuestion),
			errors.Is(err, lservice.ErrMissingResponse):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.FromFiberError(c, err)
		}
	}

	msg := "Level belum lolos, coba lagi"
	if result.Summary.IsComplete {
		msg = "Level berhasil diselesaikan"
	}
	return helper.JsonOK(c, msg, ldto.CompleteLevelResponse{
		Summary:    result.Summary,
		Completion: result.Completion,
	})
}

// GET /levels/:id/my-completion
func (ctl *LevelController) GetMyCompletion(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var m lmodel.UserLevelCompleteModel
	if err := ctl.DB.First(&m, "user_id = ? AND level_id = ?", userID, levelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada completion untuk level ini")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Completion ditemukan", m)
}
