// internals/features/training/courses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursectrl "franquiaedu_backend/internals/features/training/courses/controller"
	authMiddleware "franquiaedu_backend/internals/middlewares/auth"
)

// CourseAdminRoutes registra o CRUD de catálogo (cursos, módulos, aulas).
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	course := coursectrl.NewCourseController(db)
	catalog := coursectrl.NewCatalogController(db)

	guard := authMiddleware.IsAdmin("catálogo")

	courses := admin.Group("/courses", guard)
	courses.Post("/", course.CreateCourse)
	courses.Put("/:id", course.UpdateCourse)
	courses.Delete("/:id", course.SoftDeleteCourse)

	modules := admin.Group("/modules", guard)
	modules.Post("/", catalog.CreateModule)
	modules.Post("/reorder", catalog.ReorderModules)

	lessons := admin.Group("/lessons", guard)
	lessons.Post("/", catalog.CreateLesson)
	lessons.Post("/reorder", catalog.ReorderLessons)
	lessons.Put("/:id", catalog.UpdateLesson)
	lessons.Delete("/:id", catalog.DeleteLesson)
}
