// internals/features/training/courses/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursectrl "franquiaedu_backend/internals/features/training/courses/controller"
)

// CourseUserRoutes: leitura do catálogo para o aluno logado.
func CourseUserRoutes(user fiber.Router, db *gorm.DB) {
	course := coursectrl.NewCourseController(db)
	catalog := coursectrl.NewCatalogController(db)

	courses := user.Group("/courses")
	courses.Get("/", course.ListCourses)
	courses.Get("/:id", course.GetCourseByID)
	courses.Get("/:id/outline", catalog.GetCourseOutline)
}
