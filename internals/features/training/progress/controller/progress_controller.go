// internals/features/training/progress/controller/progress_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"franquiaedu_backend/internals/constants"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	progressDTO "franquiaedu_backend/internals/features/training/progress/dto"
	progressService "franquiaedu_backend/internals/features/training/progress/service"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
	helper "franquiaedu_backend/internals/helpers"
)

type ProgressController struct {
	DB      *gorm.DB
	Service *progressService.ProgressService
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{
		DB:      db,
		Service: progressService.NewProgressService(),
	}
}

var validateProgress = validator.New()

func mapProgressError(err error) error {
	switch {
	case errors.Is(err, turmaService.ErrTerminalStateWrite):
		return fiber.NewError(fiber.StatusConflict, "Turma encerrada ou cancelada: progresso em modo somente leitura")
	case errors.Is(err, progressService.ErrLessonLocked):
		return fiber.NewError(fiber.StatusForbidden, "Aula ainda bloqueada pela trava de progressão")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Inscrição ou aula não encontrada")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gravar o progresso")
	}
}

// garante que a inscrição pertence ao aluno logado (admins passam direto)
func (h *ProgressController) guardOwnership(c *fiber.Ctx, enrollmentID uuid.UUID) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	if constants.RoleIn(role, constants.AdminAndAbove) {
		return nil
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var count int64
	if err := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_id = ? AND enrollment_user_id = ?", enrollmentID, userID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar a inscrição")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Inscrição não pertence ao usuário logado")
	}
	return nil
}

/* ================= Handlers ================= */

// POST /api/u/progress: grava estado de aula e devolve o novo percentual
func (h *ProgressController) RecordLessonProgress(c *fiber.Ctx) error {
	var req progressDTO.RecordLessonProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateProgress.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.guardOwnership(c, req.EnrollmentID); err != nil {
		return err
	}

	percent, err := h.Service.RecordLessonProgress(h.DB, req.EnrollmentID, req.LessonID, req.State, req.WatchTimeSeconds)
	if err != nil {
		return mapProgressError(err)
	}

	return helper.JsonUpdated(c, "Progresso registrado", progressDTO.RecordLessonProgressResponse{
		EnrollmentID:  req.EnrollmentID,
		LessonID:      req.LessonID,
		State:         req.State,
		NewPercentage: percent,
	})
}

// GET /api/u/progress/unlock?lesson_id=&enrollment_id=: consulta do player
func (h *ProgressController) EvaluateUnlock(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Query("lesson_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "lesson_id inválido")
	}
	enrollmentID, err := uuid.Parse(c.Query("enrollment_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "enrollment_id inválido")
	}

	if err := h.guardOwnership(c, enrollmentID); err != nil {
		return err
	}

	unlocked, err := h.Service.EvaluateUnlock(h.DB, enrollmentID, lessonID)
	if err != nil {
		return mapProgressError(err)
	}

	return helper.JsonOK(c, "Avaliação de desbloqueio", progressDTO.EvaluateUnlockResponse{
		LessonID:     lessonID,
		EnrollmentID: enrollmentID,
		Unlocked:     unlocked,
	})
}
