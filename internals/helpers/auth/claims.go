// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kuisku_backend/internals/constants"
)

// Ambil user_id dari c.Locals("user_id").
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// Ambil role dari c.Locals("userRole").
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan pada token")
	}
	return role, nil
}

func IsStudent(c *fiber.Ctx) bool {
	role, _ := c.Locals("userRole").(string)
	return role == constants.RoleStudent
}

func IsTeacher(c *fiber.Ctx) bool {
	role, _ := c.Locals("userRole").(string)
	return role == constants.RoleTeacher
}

func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("userRole").(string)
	return role == constants.RoleAdmin
}

// GradeID student dari token (locals "grade_id"), boleh kosong untuk teacher/admin.
func GetGradeIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("grade_id")
	if v == nil {
		return uuid.Nil, nil
	}
	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, nil
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Grade ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Grade ID pada token tidak valid")
	}
}

// TeacherTeachesGrade: cek guru memang mengajar grade tsb (tabel teacher_grades).
func TeacherTeachesGrade(db *gorm.DB, teacherID, gradeID uuid.UUID) (bool, error) {
	if teacherID == uuid.Nil || gradeID == uuid.Nil {
		return false, nil
	}
	var ok bool
	if err := db.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM teacher_grades
			WHERE teacher_grade_teacher_id = ? AND teacher_grade_grade_id = ?
		)
	`, teacherID, gradeID).Scan(&ok).Error; err != nil {
		return false, err
	}
	return ok, nil
}

// EnsureCanManageGrade: admin bebas, teacher wajib mengajar grade tsb.
func EnsureCanManageGrade(c *fiber.Ctx, db *gorm.DB, gradeID uuid.UUID) error {
	if IsAdmin(c) {
		return nil
	}
	if !IsTeacher(c) {
		return fiber.NewError(fiber.StatusForbidden, "Hanya teacher atau admin yang diizinkan")
	}
	teacherID, err := GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	ok, err := TeacherTeachesGrade(db, teacherID, gradeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek scope grade")
	}
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "Grade di luar scope mengajar Anda")
	}
	return nil
}
