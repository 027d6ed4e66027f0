package auth

import (
	"github.com/gofiber/fiber/v2"

	"franquiaedu_backend/internals/constants"
	helper "franquiaedu_backend/internals/helpers"
)

// RequireRoles barra a request se o papel do token não estiver na lista.
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		if !constants.RoleIn(role, allowed) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// IsAdmin: atalho para rotas administrativas
func IsAdmin(feature string) fiber.Handler {
	return RequireRoles(feature, constants.AdminAndAbove...)
}

// IsInstrutorOrAbove: instrutor, admin ou owner
func IsInstrutorOrAbove(feature string) fiber.Handler {
	return RequireRoles(feature, constants.InstrutorAndAbove...)
}
