// file: internals/features/lms/answers/route/teacher_route.go
package route

import (
	answerController "kuisku_backend/internals/features/lms/answers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Teacher routes: kelola answer store per soal.
Setiap mutasi otomatis recompute readiness soal.
*/
func AnswerTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := answerController.NewAnswerController(db)

	questions := r.Group("/questions")
	questions.Post("/:id/mcq-options", ctl.AddMCQOption)       // POST /api/t/questions/:id/mcq-options
	questions.Post("/:id/blank-answers", ctl.AddBlankAnswer)   // POST /api/t/questions/:id/blank-answers
	questions.Post("/:id/matching-pairs", ctl.AddMatchingPair) // POST /api/t/questions/:id/matching-pairs

	mcq := r.Group("/mcq-answers")
	mcq.Patch("/:id/correctness", ctl.SetMCQCorrectness) // PATCH  /api/t/mcq-answers/:id/correctness (swap atomik)
	mcq.Delete("/:id", ctl.DeleteMCQOption)              // DELETE /api/t/mcq-answers/:id

	blank := r.Group("/blank-answers")
	blank.Patch("/:id/correctness", ctl.SetBlankCorrectness) // PATCH  /api/t/blank-answers/:id/correctness
	blank.Delete("/:id", ctl.DeleteBlankAnswer)              // DELETE /api/t/blank-answers/:id

	matching := r.Group("/matching-pairs")
	matching.Delete("/:id", ctl.DeleteMatchingPair) // DELETE /api/t/matching-pairs/:id
}
