// internals/features/training/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollctrl "franquiaedu_backend/internals/features/training/enrollments/controller"
	authMiddleware "franquiaedu_backend/internals/middlewares/auth"
	"franquiaedu_backend/internals/services/mailer"
)

func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB, m mailer.Mailer) {
	h := enrollctrl.NewEnrollmentController(db, m)

	enrollments := admin.Group("/enrollments", authMiddleware.IsAdmin("inscrições"))
	enrollments.Post("/", h.AdminEnroll)
	enrollments.Delete("/:id", h.RemoveEnrollment)
}
