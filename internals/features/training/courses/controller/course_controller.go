// internals/features/training/courses/controller/course_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "franquiaedu_backend/internals/features/training/courses/dto"
	courseModel "franquiaedu_backend/internals/features/training/courses/model"
	helper "franquiaedu_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validateCourse = validator.New()

// POST /api/a/courses
func (h *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCourse.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar o curso")
	}

	return helper.JsonCreated(c, "Curso criado", courseDTO.NewCourseResponse(m))
}

// GET /api/u/courses
func (h *CourseController) ListCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&courseModel.CourseModel{}).
		Where("course_deleted_at IS NULL")

	if t := c.Query("type"); t != "" {
		tx = tx.Where("course_type = ?", t)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar cursos")
	}

	var courses []courseModel.CourseModel
	if err := tx.Order("course_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar cursos")
	}

	out := make([]*courseDTO.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, courseDTO.NewCourseResponse(&courses[i]))
	}

	return helper.JsonList(c, "Cursos listados", out,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(out)))
}

// GET /api/u/courses/:id
func (h *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m courseModel.CourseModel
	if err := h.DB.First(&m, "course_id = ? AND course_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o curso")
	}

	return helper.JsonOK(c, "Curso encontrado", courseDTO.NewCourseResponse(&m))
}

// PUT /api/a/courses/:id
func (h *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m courseModel.CourseModel
	if err := h.DB.First(&m, "course_id = ? AND course_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o curso")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCourse.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(&m)
	if err := h.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", m.CourseID).
		Updates(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar o curso")
	}

	return helper.JsonUpdated(c, "Curso atualizado", courseDTO.NewCourseResponse(&m))
}

// DELETE /api/a/courses/:id (soft delete)
func (h *CourseController) SoftDeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	now := time.Now()
	res := h.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ? AND course_deleted_at IS NULL", id).
		Update("course_deleted_at", now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover o curso")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
	}

	return helper.JsonDeleted(c, "Curso removido", fiber.Map{"course_id": id})
}
