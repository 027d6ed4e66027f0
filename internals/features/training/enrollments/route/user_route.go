// internals/features/training/enrollments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollctrl "franquiaedu_backend/internals/features/training/enrollments/controller"
	"franquiaedu_backend/internals/services/mailer"
)

func EnrollmentUserRoutes(user fiber.Router, db *gorm.DB, m mailer.Mailer) {
	h := enrollctrl.NewEnrollmentController(db, m)

	enrollments := user.Group("/enrollments")
	enrollments.Post("/", h.RequestEnrollment)
	enrollments.Post("/self-paced", h.RequestSelfPacedEnrollment)
	enrollments.Get("/", h.ListMyEnrollments)
}
