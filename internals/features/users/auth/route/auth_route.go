// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctrl "franquiaedu_backend/internals/features/users/auth/controller"
	"franquiaedu_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := authctrl.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
}
