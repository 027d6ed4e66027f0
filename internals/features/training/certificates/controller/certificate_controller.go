// internals/features/training/certificates/controller/certificate_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"franquiaedu_backend/internals/constants"
	certificateDTO "franquiaedu_backend/internals/features/training/certificates/dto"
	certificateService "franquiaedu_backend/internals/features/training/certificates/service"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	helper "franquiaedu_backend/internals/helpers"
)

type CertificateController struct {
	DB      *gorm.DB
	Service *certificateService.CertificateService
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{
		DB:      db,
		Service: certificateService.NewCertificateService(),
	}
}

var validateCertificate = validator.New()

// POST /api/u/certificates: aluno pede o certificado da própria inscrição
func (h *CertificateController) IssueCertificate(c *fiber.Ctx) error {
	var req certificateDTO.IssueCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCertificate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	if !constants.RoleIn(role, constants.AdminAndAbove) {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		var count int64
		if err := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_id = ? AND enrollment_user_id = ?", req.EnrollmentID, userID).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar a inscrição")
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusForbidden, "Inscrição não pertence ao usuário logado")
		}
	}

	cert, err := h.Service.Issue(h.DB, req.EnrollmentID)
	if err != nil {
		switch {
		case errors.Is(err, certificateService.ErrNotEligible):
			return fiber.NewError(fiber.StatusConflict, "Inscrição ainda não concluída")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Inscrição não encontrada")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao emitir o certificado")
		}
	}

	return helper.JsonCreated(c, "Certificado emitido", certificateDTO.NewCertificateResponse(cert))
}

// GET /api/public/certificates/:code: verificação pública, sem login
func (h *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Código obrigatório")
	}

	cert, err := h.Service.Verify(h.DB, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Certificado não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar o certificado")
	}

	return helper.JsonOK(c, "Certificado válido", certificateDTO.NewCertificateResponse(cert))
}
