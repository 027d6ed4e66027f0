// internals/features/training/courses/controller/catalog_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "franquiaedu_backend/internals/features/training/courses/dto"
	courseModel "franquiaedu_backend/internals/features/training/courses/model"
	enrollmentService "franquiaedu_backend/internals/features/training/enrollments/service"
	helper "franquiaedu_backend/internals/helpers"
)

// CatalogController cuida de módulos e aulas (a espinha ordenada do curso).
// Toda mudança no conjunto de aulas recomputa o percentual das inscrições
// do curso na mesma transação.
type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

var validateCatalog = validator.New()

/* ================= Módulos ================= */

// POST /api/a/modules
func (h *CatalogController) CreateModule(c *fiber.Ctx) error {
	var req courseDTO.CreateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCatalog.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, "course_id = ? AND course_deleted_at IS NULL", req.CourseModuleCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar o curso")
	}
	if course.CourseType != courseModel.CourseTypeGravado {
		return fiber.NewError(fiber.StatusBadRequest, "Módulos só existem em cursos gravados")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "Falha ao criar módulo (order_index já usado?)")
	}

	return helper.JsonCreated(c, "Módulo criado", courseDTO.NewModuleResponse(m))
}

// POST /api/a/modules/reorder
func (h *CatalogController) ReorderModules(c *fiber.Ctx) error {
	var req courseDTO.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCatalog.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			res := tx.Model(&courseModel.CourseModuleModel{}).
				Where("course_module_id = ?", item.ID).
				Update("course_module_order_index", item.OrderIndex)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Módulo não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao reordenar módulos")
	}

	return helper.JsonUpdated(c, "Módulos reordenados", fiber.Map{"count": len(req.Items)})
}

/* ================= Aulas ================= */

// POST /api/a/lessons
func (h *CatalogController) CreateLesson(c *fiber.Ctx) error {
	var req courseDTO.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCatalog.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, "course_id = ? AND course_deleted_at IS NULL", req.LessonCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar o curso")
	}

	// curso gravado exige módulo; ao vivo exige aula solta no curso
	if course.CourseType == courseModel.CourseTypeGravado && req.LessonModuleID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Aula de curso gravado precisa de módulo")
	}
	if course.CourseType == courseModel.CourseTypeAoVivo && req.LessonModuleID != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Aula de curso ao vivo não tem módulo")
	}

	m := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		// total de aulas mudou: percentuais cacheados ficam defasados
		return enrollmentService.RecomputeCourseEnrollments(tx, m.LessonCourseID)
	})
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, "Falha ao criar aula (order_index já usado?)")
	}

	return helper.JsonCreated(c, "Aula criada", courseDTO.NewLessonResponse(m))
}

// PUT /api/a/lessons/:id
func (h *CatalogController) UpdateLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m courseModel.LessonModel
	if err := h.DB.First(&m, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Aula não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar a aula")
	}

	var req courseDTO.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCatalog.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(&m)
	if err := h.DB.Model(&courseModel.LessonModel{}).
		Where("lesson_id = ?", m.LessonID).
		Updates(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar a aula")
	}

	return helper.JsonUpdated(c, "Aula atualizada", courseDTO.NewLessonResponse(&m))
}

// DELETE /api/a/lessons/:id
func (h *CatalogController) DeleteLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m courseModel.LessonModel
		if err := tx.First(&m, "lesson_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		return enrollmentService.RecomputeCourseEnrollments(tx, m.LessonCourseID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Aula não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover a aula")
	}

	return helper.JsonDeleted(c, "Aula removida", fiber.Map{"lesson_id": id})
}

// POST /api/a/lessons/reorder
// Reordenar muda o desbloqueio imediatamente: o avaliador sempre lê a ordem
// vigente do banco.
func (h *CatalogController) ReorderLessons(c *fiber.Ctx) error {
	var req courseDTO.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCatalog.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			res := tx.Model(&courseModel.LessonModel{}).
				Where("lesson_id = ?", item.ID).
				Update("lesson_order_index", item.OrderIndex)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Aula não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao reordenar aulas")
	}

	return helper.JsonUpdated(c, "Aulas reordenadas", fiber.Map{"count": len(req.Items)})
}

/* ================= Outline ================= */

// GET /api/u/courses/:id/outline: módulos e aulas ordenados para o player
func (h *CatalogController) GetCourseOutline(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var mods []courseModel.CourseModuleModel
	if err := h.DB.Where("course_module_course_id = ?", courseID).
		Order("course_module_order_index ASC").
		Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao montar o outline")
	}

	var lessons []courseModel.LessonModel
	if err := h.DB.Where("lesson_course_id = ?", courseID).
		Order("lesson_order_index ASC").
		Find(&lessons).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao montar o outline")
	}

	byModule := make(map[uuid.UUID][]courseDTO.LessonResponse)
	loose := make([]courseDTO.LessonResponse, 0)
	for i := range lessons {
		lr := *courseDTO.NewLessonResponse(&lessons[i])
		if lessons[i].LessonModuleID != nil {
			byModule[*lessons[i].LessonModuleID] = append(byModule[*lessons[i].LessonModuleID], lr)
		} else {
			loose = append(loose, lr)
		}
	}

	out := make([]*courseDTO.ModuleResponse, 0, len(mods))
	for i := range mods {
		mr := courseDTO.NewModuleResponse(&mods[i])
		mr.Lessons = byModule[mods[i].CourseModuleID]
		out = append(out, mr)
	}

	return helper.JsonOK(c, "Outline do curso", fiber.Map{
		"modules":       out,
		"loose_lessons": loose,
	})
}
