// file: internals/features/lms/levels/route/teacher_route.go
package route

import (
	levelController "kuisku_backend/internals/features/lms/levels/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Teacher routes: kelola level (unit kuis) per subject.
*/
func LevelTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := levelController.NewLevelController(db)

	levels := r.Group("/levels")
	levels.Post("/", ctl.Create)      // POST   /api/t/levels
	levels.Get("/", ctl.List)         // GET    /api/t/levels?subject_id=
	levels.Get("/:id", ctl.GetByID)   // GET    /api/t/levels/:id
	levels.Patch("/:id", ctl.Update)  // PATCH  /api/t/levels/:id
	levels.Delete("/:id", ctl.Delete) // DELETE /api/t/levels/:id
}
