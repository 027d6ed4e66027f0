// internals/features/training/progress/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressctrl "franquiaedu_backend/internals/features/training/progress/controller"
)

func ProgressUserRoutes(user fiber.Router, db *gorm.DB) {
	h := progressctrl.NewProgressController(db)

	progress := user.Group("/progress")
	progress.Post("/", h.RecordLessonProgress)
	progress.Get("/unlock", h.EvaluateUnlock)
}
