// file: internals/features/lms/academics/route/admin_route.go
package route

import (
	academicsController "kuisku_backend/internals/features/lms/academics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: kelola hierarki school → grade → subject
plus assignment guru ke grade.
*/
func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := academicsController.NewAcademicsController(db)

	r.Post("/schools", ctl.CreateSchool)              // POST /api/a/schools
	r.Post("/grades", ctl.CreateGrade)                // POST /api/a/grades
	r.Post("/subjects", ctl.CreateSubject)            // POST /api/a/subjects
	r.Post("/teacher-grades", ctl.AssignTeacherGrade) // POST /api/a/teacher-grades
}
