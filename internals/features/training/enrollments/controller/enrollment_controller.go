// internals/features/training/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentDTO "franquiaedu_backend/internals/features/training/enrollments/dto"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	enrollmentService "franquiaedu_backend/internals/features/training/enrollments/service"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
	userModel "franquiaedu_backend/internals/features/users/user/model"
	helper "franquiaedu_backend/internals/helpers"
	"franquiaedu_backend/internals/services/mailer"
)

type EnrollmentController struct {
	DB      *gorm.DB
	Service *enrollmentService.EnrollmentService
	Mailer  mailer.Mailer
}

func NewEnrollmentController(db *gorm.DB, m mailer.Mailer) *EnrollmentController {
	return &EnrollmentController{
		DB:      db,
		Service: enrollmentService.NewEnrollmentService(),
		Mailer:  m,
	}
}

var validateEnrollment = validator.New()

func mapEnrollError(err error) error {
	switch {
	case errors.Is(err, turmaService.ErrEnrollmentWindowClosed):
		return fiber.NewError(fiber.StatusConflict, "Janela de inscrição fechada para esta turma")
	case errors.Is(err, turmaService.ErrCapacityExceeded):
		return fiber.NewError(fiber.StatusConflict, "Turma sem vagas disponíveis")
	case errors.Is(err, turmaService.ErrTerminalStateWrite):
		return fiber.NewError(fiber.StatusConflict, "Turma encerrada ou cancelada não aceita inscrições")
	case errors.Is(err, enrollmentService.ErrDuplicateEnrollment):
		return fiber.NewError(fiber.StatusConflict, "Aluno já inscrito nesta turma/curso")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Turma ou curso não encontrado")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar a inscrição")
	}
}

/* ================= Handlers ================= */

// POST /api/u/enrollments: auto-inscrição do aluno numa turma
func (h *EnrollmentController) RequestEnrollment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req enrollmentDTO.RequestEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateEnrollment.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.Service.Enroll(h.DB, userID, req.TurmaID, true)
	if err != nil {
		return mapEnrollError(err)
	}

	h.sendConfirmation(userID, m)

	return helper.JsonCreated(c, "Inscrição realizada", enrollmentDTO.NewEnrollmentResponse(m))
}

// POST /api/u/enrollments/self-paced: inscrição em curso gravado
func (h *EnrollmentController) RequestSelfPacedEnrollment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req enrollmentDTO.RequestSelfPacedEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateEnrollment.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.Service.EnrollSelfPaced(h.DB, userID, req.CourseID)
	if err != nil {
		return mapEnrollError(err)
	}

	return helper.JsonCreated(c, "Inscrição realizada", enrollmentDTO.NewEnrollmentResponse(m))
}

// POST /api/a/enrollments: admin força inscrição (pula só o check de janela)
func (h *EnrollmentController) AdminEnroll(c *fiber.Ctx) error {
	var req enrollmentDTO.AdminEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateEnrollment.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.Service.Enroll(h.DB, req.UserID, req.TurmaID, false)
	if err != nil {
		return mapEnrollError(err)
	}

	return helper.JsonCreated(c, "Inscrição criada pelo admin", enrollmentDTO.NewEnrollmentResponse(m))
}

// GET /api/u/enrollments: inscrições do aluno logado
func (h *EnrollmentController) ListMyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar inscrições")
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := tx.Order("enrollment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar inscrições")
	}

	out := make([]*enrollmentDTO.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, enrollmentDTO.NewEnrollmentResponse(&rows[i]))
	}

	return helper.JsonList(c, "Inscrições listadas", out,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(out)))
}

// DELETE /api/a/enrollments/:id: remoção administrativa (cascateia progresso)
func (h *EnrollmentController) RemoveEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.Service.Remove(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Inscrição não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover a inscrição")
	}

	return helper.JsonDeleted(c, "Inscrição removida", fiber.Map{"enrollment_id": id})
}

func (h *EnrollmentController) sendConfirmation(userID uuid.UUID, m *enrollmentModel.EnrollmentModel) {
	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("[MAIL] inscrição %s: usuário não carregado: %v", m.EnrollmentID, err)
		return
	}
	go func() {
		body := fmt.Sprintf("Olá %s, sua inscrição foi confirmada! Código: %s", user.UserName, m.EnrollmentID)
		if err := h.Mailer.Send(user.UserName, user.Email, "Inscrição confirmada", body); err != nil {
			log.Printf("[MAIL] falha ao enviar confirmação: %v", err)
		}
	}()
}
