// internals/features/training/turmas/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	turmactrl "franquiaedu_backend/internals/features/training/turmas/controller"
)

func TurmaUserRoutes(user fiber.Router, db *gorm.DB) {
	h := turmactrl.NewTurmaController(db)

	turmas := user.Group("/turmas")
	turmas.Get("/", h.ListTurmas)
	turmas.Get("/:id", h.GetTurmaByID)
}
