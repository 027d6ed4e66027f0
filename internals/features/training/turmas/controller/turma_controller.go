// internals/features/training/turmas/controller/turma_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "franquiaedu_backend/internals/features/training/courses/model"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	turmaDTO "franquiaedu_backend/internals/features/training/turmas/dto"
	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
	helper "franquiaedu_backend/internals/helpers"
)

type TurmaController struct {
	DB        *gorm.DB
	Lifecycle *turmaService.LifecycleService
}

func NewTurmaController(db *gorm.DB) *TurmaController {
	return &TurmaController{
		DB:        db,
		Lifecycle: turmaService.NewLifecycleService(),
	}
}

var validateTurma = validator.New()

/* ================= Helpers ================= */

func (h *TurmaController) countEnrollments(db *gorm.DB, turmaID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_turma_id = ? AND enrollment_status <> ?",
			turmaID, enrollmentModel.EnrollmentStatusCancelada).
		Count(&count).Error
	return count, err
}

func mapLifecycleError(err error) error {
	switch {
	case errors.Is(err, turmaService.ErrIllegalTransition):
		return fiber.NewError(fiber.StatusConflict, "Transição de status não permitida para esta turma")
	case errors.Is(err, turmaService.ErrInvalidWindow):
		return fiber.NewError(fiber.StatusBadRequest, "Datas da janela de inscrição fora de ordem")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar a turma")
	}
}

/* ================= Handlers ================= */

// POST /api/a/turmas
func (h *TurmaController) CreateTurma(c *fiber.Ctx) error {
	var req turmaDTO.CreateTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateTurma.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := turmaService.ValidateWindow(req.TurmaEnrollmentOpenAt, req.TurmaEnrollmentCloseAt, req.TurmaCompletionDeadline); err != nil {
		return mapLifecycleError(err)
	}

	// turma só existe para curso ao vivo
	var course courseModel.CourseModel
	if err := h.DB.First(&course, "course_id = ? AND course_deleted_at IS NULL", req.TurmaCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar o curso")
	}
	if course.CourseType != courseModel.CourseTypeAoVivo {
		return fiber.NewError(fiber.StatusBadRequest, "Turmas só podem ser criadas para cursos ao vivo")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar a turma")
	}

	return helper.JsonCreated(c, "Turma criada", turmaDTO.NewTurmaResponse(m, 0))
}

// GET /api/u/turmas
func (h *TurmaController) ListTurmas(c *fiber.Ctx) error {
	var q turmaDTO.ListTurmaQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query inválida")
	}
	if err := validateTurma.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&turmaModel.TurmaModel{})
	if q.CourseID != nil {
		tx = tx.Where("turma_course_id = ?", *q.CourseID)
	}
	if q.Status != nil {
		tx = tx.Where("turma_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar turmas")
	}

	var turmas []turmaModel.TurmaModel
	if err := tx.Order("turma_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&turmas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar turmas")
	}

	out := make([]*turmaDTO.TurmaResponse, 0, len(turmas))
	for i := range turmas {
		count, err := h.countEnrollments(h.DB, turmas[i].TurmaID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar inscrições")
		}
		out = append(out, turmaDTO.NewTurmaResponse(&turmas[i], count))
	}

	return helper.JsonList(c, "Turmas listadas", out,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(out)))
}

// GET /api/u/turmas/:id
func (h *TurmaController) GetTurmaByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m turmaModel.TurmaModel
	if err := h.DB.First(&m, "turma_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar a turma")
	}

	count, err := h.countEnrollments(h.DB, m.TurmaID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar inscrições")
	}

	return helper.JsonOK(c, "Turma encontrada", turmaDTO.NewTurmaResponse(&m, count))
}

// POST /api/a/turmas/:id/transition
// Aplica uma transição do ciclo de vida. Repetir a chegada num estado
// terminal responde sucesso sem mudança (idempotente para dois admins
// concluindo ao mesmo tempo).
func (h *TurmaController) TransitionTurma(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req turmaDTO.TransitionTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateTurma.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	return h.applyTransition(c, id, req.TargetStatus, "Status da turma atualizado")
}

// POST /api/a/turmas/:id/close-enrollment
// Atalho administrativo: inscricoes_abertas → inscricoes_encerradas.
func (h *TurmaController) ForceCloseEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	return h.applyTransition(c, id, turmaModel.TurmaStatusInscricoesEncerradas, "Inscrições encerradas")
}

func (h *TurmaController) applyTransition(c *fiber.Ctx, turmaID uuid.UUID, target, okMessage string) error {
	var out *turmaDTO.TurmaResponse

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m turmaModel.TurmaModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "turma_id = ?", turmaID).Error; err != nil {
			return err
		}

		if _, err := h.Lifecycle.Transition(tx, &m, target); err != nil {
			return err
		}

		count, err := h.countEnrollments(tx, m.TurmaID)
		if err != nil {
			return err
		}
		out = turmaDTO.NewTurmaResponse(&m, count)
		return nil
	})
	if err != nil {
		return mapLifecycleError(err)
	}

	return helper.JsonUpdated(c, okMessage, out)
}
