// internals/features/training/turmas/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	turmactrl "franquiaedu_backend/internals/features/training/turmas/controller"
	authMiddleware "franquiaedu_backend/internals/middlewares/auth"
)

func TurmaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := turmactrl.NewTurmaController(db)

	turmas := admin.Group("/turmas", authMiddleware.IsAdmin("turmas"))

	turmas.Post("/", h.CreateTurma)
	turmas.Post("/:id/transition", h.TransitionTurma)
	turmas.Post("/:id/close-enrollment", h.ForceCloseEnrollment)
}
