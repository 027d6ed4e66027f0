// internals/features/training/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendancectrl "franquiaedu_backend/internals/features/training/attendance/controller"
	authMiddleware "franquiaedu_backend/internals/middlewares/auth"
)

// AttendanceAdminRoutes: sessões e presença são operação de instrutor/admin.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := attendancectrl.NewAttendanceController(db)

	guard := authMiddleware.IsInstrutorOrAbove("presença")

	admin.Post("/sessions", guard, h.CreateSession)
	admin.Get("/turmas/:id/sessions", guard, h.ListSessions)
	admin.Post("/attendances", guard, h.MarkAttendance)
}
