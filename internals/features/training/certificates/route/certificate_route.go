// internals/features/training/certificates/route/certificate_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificatectrl "franquiaedu_backend/internals/features/training/certificates/controller"
)

// CertificateUserRoutes: emissão pelo aluno logado.
func CertificateUserRoutes(user fiber.Router, db *gorm.DB) {
	h := certificatectrl.NewCertificateController(db)
	user.Post("/certificates", h.IssueCertificate)
}

// CertificatePublicRoutes: verificação por código, sem autenticação.
func CertificatePublicRoutes(public fiber.Router, db *gorm.DB) {
	h := certificatectrl.NewCertificateController(db)
	public.Get("/certificates/:code", h.VerifyCertificate)
}
