// file: internals/features/lms/questions/route/teacher_route.go
package route

import (
	questionController "kuisku_backend/internals/features/lms/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Teacher routes: authoring soal (CRUD).
Mount contoh: QuestionTeacherRoutes(app.Group("/api/t"), db)
*/
func QuestionTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := questionController.NewQuestionController(db)

	questions := r.Group("/questions")
	questions.Post("/", ctl.Create)      // POST   /api/t/questions
	questions.Get("/", ctl.List)         // GET    /api/t/questions?level_id=&type=&difficulty=
	questions.Get("/:id", ctl.GetByID)   // GET    /api/t/questions/:id (view lengkap + kunci)
	questions.Patch("/:id", ctl.Update)  // PATCH  /api/t/questions/:id
	questions.Delete("/:id", ctl.Delete) // DELETE /api/t/questions/:id (cascade sub-entity)
}
