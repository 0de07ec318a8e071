// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuisku_backend/internals/constants"
	academicsRoute "kuisku_backend/internals/features/lms/academics/route"
	answerRoute "kuisku_backend/internals/features/lms/answers/route"
	levelRoute "kuisku_backend/internals/features/lms/levels/route"
	questionRoute "kuisku_backend/internals/features/lms/questions/route"
	responseRoute "kuisku_backend/internals/features/lms/responses/route"
	authMiddleware "kuisku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PRIVATE (semua role login)
	log.Println("[INFO] Setting up PRIVATE group (/api/u)...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// TEACHER (teacher + admin)
	log.Println("[INFO] Setting up TEACHER group (/api/t)...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("authoring kuis"),
			constants.TeacherAndAbove...,
		),
	)

	// ADMIN
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("administrasi akademik"),
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academics routes...")
	academicsRoute.AcademicsAdminRoutes(admin, db)
	academicsRoute.AcademicsUserRoutes(user, db)

	log.Println("[INFO] Mounting Level routes...")
	levelRoute.LevelTeacherRoutes(teacher, db)
	levelRoute.LevelUserRoutes(user, db)

	log.Println("[INFO] Mounting Question routes...")
	questionRoute.QuestionTeacherRoutes(teacher, db)
	questionRoute.QuestionUserRoutes(user, db)

	log.Println("[INFO] Mounting Answer routes...")
	answerRoute.AnswerTeacherRoutes(teacher, db)

	log.Println("[INFO] Mounting Response routes...")
	responseRoute.ResponseUserRoutes(user, db)
}
