package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converte o erro devolvido por uma Transaction (normalmente
// *fiber.Error) em resposta JSON consistente via helper.Error.
// Se não for *fiber.Error, cai em 500 com a mensagem original.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
