// file: internals/features/lms/academics/route/user_route.go
package route

import (
	academicsController "kuisku_backend/internals/features/lms/academics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// User routes: read-only hierarki akademik.
func AcademicsUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := academicsController.NewAcademicsController(db)

	r.Get("/schools", ctl.ListSchools)   // GET /api/u/schools
	r.Get("/grades", ctl.ListGrades)     // GET /api/u/grades?school_id=
	r.Get("/subjects", ctl.ListSubjects) // GET /api/u/subjects?grade_id=
}
