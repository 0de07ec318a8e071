// file: internals/features/lms/responses/route/user_route.go
package route

import (
	responseController "kuisku_backend/internals/features/lms/responses/controller"
	middlewares "kuisku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
User routes: submit jawaban + lihat response terakhir sendiri.
Submit dibatasi rate limiter khusus.
*/
func ResponseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := responseController.NewQuestionResponseController(db)

	r.Post("/question-responses", middlewares.SubmitRateLimiter(), ctl.Submit) // POST /api/u/question-responses
	r.Get("/questions/:id/my-response", ctl.GetMyResponse)                     // GET  /api/u/questions/:id/my-response
}
