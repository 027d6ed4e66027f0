// internals/features/training/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "franquiaedu_backend/internals/features/training/attendance/dto"
	attendanceService "franquiaedu_backend/internals/features/training/attendance/service"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
	helper "franquiaedu_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *attendanceService.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: attendanceService.NewAttendanceService(),
	}
}

var validateAttendance = validator.New()

func mapAttendanceError(err error) error {
	switch {
	case errors.Is(err, turmaService.ErrTerminalStateWrite):
		return fiber.NewError(fiber.StatusConflict, "Turma encerrada ou cancelada: presença em modo somente leitura")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Sessão, turma ou inscrição não encontrada")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao registrar presença")
	}
}

// POST /api/a/sessions: agenda um encontro de turma ao vivo
func (h *AttendanceController) CreateSession(c *fiber.Ctx) error {
	var req attendanceDTO.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAttendance.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.Service.CreateSession(h.DB, m); err != nil {
		return mapAttendanceError(err)
	}

	return helper.JsonCreated(c, "Sessão agendada", attendanceDTO.NewSessionResponse(m))
}

// GET /api/a/turmas/:id/sessions
func (h *AttendanceController) ListSessions(c *fiber.Ctx) error {
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	sessions, err := h.Service.ListSessions(h.DB, turmaID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar sessões")
	}

	out := make([]*attendanceDTO.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, attendanceDTO.NewSessionResponse(&sessions[i]))
	}
	return helper.JsonOK(c, "Sessões da turma", out)
}

// POST /api/a/attendances: marca (ou corrige) presença
func (h *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAttendance.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	enrollment, err := h.Service.Mark(h.DB, req.SessionID, req.EnrollmentID, req.Present)
	if err != nil {
		return mapAttendanceError(err)
	}

	return helper.JsonUpdated(c, "Presença registrada", attendanceDTO.MarkAttendanceResponse{
		SessionID:          req.SessionID,
		EnrollmentID:       req.EnrollmentID,
		Present:            req.Present,
		EnrollmentStatus:   enrollment.EnrollmentStatus,
		ProgressPercentage: enrollment.EnrollmentProgressPercent,
	})
}
