// file: internals/features/lms/academics/controller/academics_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adto "kuisku_backend/internals/features/lms/academics/dto"
	amodel "kuisku_backend/internals/features/lms/academics/model"
	helper "kuisku_backend/internals/helpers"
)

/* =========================================================
   Controller — CRUD tipis hierarki school → grade → subject
========================================================= */

type AcademicsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicsController(db *gorm.DB) *AcademicsController {
	return &AcademicsController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========== SCHOOLS ========== */

// POST /schools (admin)
func (ctl *AcademicsController) CreateSchool(c *fiber.Ctx) error {
	var req adto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "School berhasil dibuat", m)
}

// GET /schools
func (ctl *AcademicsController) ListSchools(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	dbq := ctl.DB.Model(&amodel.SchoolModel{}).Where("school_deleted_at IS NULL")

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []amodel.SchoolModel
	if err := dbq.Order("school_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar school", rows, &p)
}

/* ========== GRADES ========== */

// POST /grades (admin)
func (ctl *AcademicsController) CreateGrade(c *fiber.Ctx) error {
	var req adto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var school amodel.SchoolModel
	if err := ctl.DB.First(&school, "school_id = ?", req.GradeSchoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Grade berhasil dibuat", m)
}

// GET /grades?school_id=
func (ctl *AcademicsController) ListGrades(c *fiber.Ctx) error {
	dbq := ctl.DB.Model(&amodel.GradeModel{}).Where("grade_deleted_at IS NULL")
	if s := strings.TrimSpace(c.Query("school_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
		}
		dbq = dbq.Where("grade_school_id = ?", id)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []amodel.GradeModel
	if err := dbq.Order("grade_order ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar grade", rows, &p)
}

/* ========== SUBJECTS ========== */

// POST /subjects (admin)
func (ctl *AcademicsController) CreateSubject(c *fiber.Ctx) error {
	var req adto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var grade amodel.GradeModel
	if err := ctl.DB.First(&grade, "grade_id = ?", req.SubjectGradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Subject berhasil dibuat", m)
}

// GET /subjects?grade_id=
func (ctl *AcademicsController) ListSubjects(c *fiber.Ctx) error {
	dbq := ctl.DB.Model(&amodel.SubjectModel{}).Where("subject_deleted_at IS NULL")
	if s := strings.TrimSpace(c.Query("grade_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "grade_id tidak valid")
		}
		dbq = dbq.Where("subject_grade_id = ?", id)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []amodel.SubjectModel
	if err := dbq.Order("subject_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar subject", rows, &p)
}

/* ========== TEACHER ↔ GRADE ========== */

// POST /teacher-grades (admin) — assign guru ke grade yang diajar
func (ctl *AcademicsController) AssignTeacherGrade(c *fiber.Ctx) error {
	var req adto.AssignTeacherGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var grade amodel.GradeModel
	if err := ctl.DB.First(&grade, "grade_id = ?", req.GradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	m := amodel.TeacherGradeModel{
		TeacherGradeTeacherID: req.TeacherID,
		TeacherGradeGradeID:   req.GradeID,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Teacher berhasil di-assign ke grade", m)
}
