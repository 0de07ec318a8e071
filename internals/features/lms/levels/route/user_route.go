// file: internals/features/lms/levels/route/user_route.go
package route

import (
	levelController "kuisku_backend/internals/features/lms/levels/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
User routes: lihat level + klaim penyelesaian level.
*/
func LevelUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := levelController.NewLevelController(db)

	levels := r.Group("/levels")
	levels.Get("/", ctl.List)                             // GET  /api/u/levels?subject_id=
	levels.Get("/:id", ctl.GetByID)                       // GET  /api/u/levels/:id
	levels.Post("/:id/complete", ctl.CompleteLevel)       // POST /api/u/levels/:id/complete
	levels.Get("/:id/my-completion", ctl.GetMyCompletion) // GET  /api/u/levels/:id/my-completion
}
