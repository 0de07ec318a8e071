// file: internals/features/lms/questions/route/user_route.go
package route

import (
	questionController "kuisku_backend/internals/features/lms/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
User routes: view soal untuk pengerjaan (tanpa kunci jawaban,
hanya soal yang sudah ready).
*/
func QuestionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := questionController.NewQuestionController(db)

	questions := r.Group("/questions")
	questions.Get("/:id", ctl.GetByIDForStudent) // GET /api/u/questions/:id
}
