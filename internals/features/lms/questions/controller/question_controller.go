// file: internals/features/lms/questions/controller/question_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qdto "kuisku_backend/internals/features/lms/questions/dto"
	qmodel "kuisku_backend/internals/features/lms/questions/model"
	qservice "kuisku_backend/internals/features/lms/questions/service"
	helper "kuisku_backend/internals/helpers"
	helperAuth "kuisku_backend/internals/helpers/auth"
)

/* =========================================================
   Controller
========================================================= */

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================================================
   Scope helpers
========================================================= */

// gradeIDForLevel: level → subject → grade (untuk scope teacher).
func (ctl *QuestionController) gradeIDForLevel(levelID uuid.UUID) (uuid.UUID, error) {
	var gidStr string
	if err := ctl.DB.Raw(`
		SELECT s.subject_grade_id::text
		FROM levels l
		JOIN subjects s ON s.subject_id = l.level_subject_id AND s.subject_deleted_at IS NULL
		WHERE l.level_id = ? AND l.level_deleted_at IS NULL
	`, levelID).Scan(&gidStr).Error; err != nil {
		return uuid.Nil, err
	}
	if strings.TrimSpace(gidStr) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Level tidak ditemukan")
	}
	gid, err := uuid.Parse(gidStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Grade ID level tidak valid")
	}
	return gid, nil
}

func (ctl *QuestionController) ensureAuthorScope(c *fiber.Ctx, levelID uuid.UUID) error {
	gradeID, err := ctl.gradeIDForLevel(levelID)
	if err != nil {
		return err
	}
	return helperAuth.EnsureCanManageGrade(c, ctl.DB, gradeID)
}

/* =========================================================
   CREATE (teacher scoped / admin)
========================================================= */

// POST /questions
func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	var req qdto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	if err := ctl.ensureAuthorScope(c, req.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// create + hitung ready awal dalam satu transaksi
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		ready, err := qservice.IsReady(m)
		if err != nil {
			return err
		}
		if ready {
			m.QuestionIsReady = true
			return tx.Model(&qmodel.QuestionModel{}).
				Where("question_id = ?", m.QuestionID).
				Update("question_is_ready", true).Error
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Soal berhasil dibuat", qdto.FromModelQuestion(m))
}

/* =========================================================
   READ
========================================================= */

// GET /questions?level_id=&type=&difficulty=&page=&per_page=
func (ctl *QuestionController) List(c *fiber.Ctx) error {
	dbq := ctl.DB.Model(&qmodel.QuestionModel{}).
		Where("question_deleted_at IS NULL")

	if s := strings.TrimSpace(c.Query("level_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
		}
		dbq = dbq.Where("question_level_id = ?", id)
	}
	if t := qmodel.QuestionType(strings.TrimSpace(c.Query("type"))); t != "" {
		if !t.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "type tidak valid")
		}
		dbq = dbq.Where("question_type = ?", t)
	}
	if d := qmodel.Difficulty(strings.TrimSpace(c.Query("difficulty"))); d != "" {
		if !d.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "difficulty tidak valid")
		}
		dbq = dbq.Where("question_difficulty = ?", d)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []qmodel.QuestionModel
	if err := dbq.Order("question_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar soal", qdto.FromModelsQuestions(rows), &p)
}

// GET /questions/:id — view lengkap (answer key) untuk teacher/admin
func (ctl *QuestionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	q, err := qservice.LoadQuestionWithAnswers(ctl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail soal", qdto.FromModelQuestion(q))
}

// GET /questions/:id/student — view student (tanpa answer key, kanan matching di-shuffle)
func (ctl *QuestionController) GetByIDForStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	q, err := qservice.LoadQuestionWithAnswers(ctl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}
	if !q.QuestionIsReady {
		return helper.JsonError(c, fiber.StatusBadRequest, "Soal belum siap ditampilkan")
	}
	return helper.JsonOK(c, "Detail soal", qdto.FromModelQuestionForStudent(q))
}

/* =========================================================
   UPDATE — type & level immutable
========================================================= */

// PATCH /questions/:id
func (ctl *QuestionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	var req qdto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var q qmodel.QuestionModel
	if err := ctl.DB.First(&q, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := req.ApplyToModel(&q); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Save(&q).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Soal berhasil diperbarui", qdto.FromModelQuestion(&q))
}

/* =========================================================
   DELETE — cascade sub-entity + responses
========================================================= */

// DELETE /questions/:id
func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	var q qmodel.QuestionModel
	if err := ctl.DB.First(&q, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	if err := ctl.ensureAuthorScope(c, q.QuestionLevelID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mcq_answer_question_id = ?", id).Delete(&qmodel.MCQAnswerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blank_segment_question_id = ?", id).Delete(&qmodel.BlankSegmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blank_answer_question_id = ?", id).Delete(&qmodel.BlankAnswerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("matching_pair_question_id = ?", id).Delete(&qmodel.MatchingPairModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM question_responses WHERE question_response_question_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&q).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Soal berhasil dihapus", fiber.Map{"question_id": id})
}
