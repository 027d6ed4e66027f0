package dto

import (
	"time"

	"github.com/google/uuid"

	courseModel "franquiaedu_backend/internals/features/training/courses/model"
)

/* ===================== MÓDULOS ===================== */

type CreateModuleRequest struct {
	CourseModuleCourseID   uuid.UUID `json:"course_module_course_id" validate:"required"`
	CourseModuleName       string    `json:"course_module_name" validate:"required,min=2,max=160"`
	CourseModuleOrderIndex int       `json:"course_module_order_index" validate:"gte=0"`
}

func (r *CreateModuleRequest) ToModel() *courseModel.CourseModuleModel {
	return &courseModel.CourseModuleModel{
		CourseModuleCourseID:   r.CourseModuleCourseID,
		CourseModuleName:       r.CourseModuleName,
		CourseModuleOrderIndex: r.CourseModuleOrderIndex,
	}
}

type ModuleResponse struct {
	CourseModuleID         uuid.UUID        `json:"course_module_id"`
	CourseModuleCourseID   uuid.UUID        `json:"course_module_course_id"`
	CourseModuleName       string           `json:"course_module_name"`
	CourseModuleOrderIndex int              `json:"course_module_order_index"`
	Lessons                []LessonResponse `json:"lessons,omitempty"`
}

func NewModuleResponse(m *courseModel.CourseModuleModel) *ModuleResponse {
	return &ModuleResponse{
		CourseModuleID:         m.CourseModuleID,
		CourseModuleCourseID:   m.CourseModuleCourseID,
		CourseModuleName:       m.CourseModuleName,
		CourseModuleOrderIndex: m.CourseModuleOrderIndex,
	}
}

/* ===================== AULAS ===================== */

type CreateLessonRequest struct {
	LessonCourseID        uuid.UUID  `json:"lesson_course_id" validate:"required"`
	LessonModuleID        *uuid.UUID `json:"lesson_module_id" validate:"omitempty"`
	LessonName            string     `json:"lesson_name" validate:"required,min=2,max=160"`
	LessonOrderIndex      int        `json:"lesson_order_index" validate:"gte=0"`
	LessonDurationSeconds int        `json:"lesson_duration_seconds" validate:"gte=0"`
}

func (r *CreateLessonRequest) ToModel() *courseModel.LessonModel {
	return &courseModel.LessonModel{
		LessonCourseID:        r.LessonCourseID,
		LessonModuleID:        r.LessonModuleID,
		LessonName:            r.LessonName,
		LessonOrderIndex:      r.LessonOrderIndex,
		LessonDurationSeconds: r.LessonDurationSeconds,
	}
}

type UpdateLessonRequest struct {
	LessonName            *string `json:"lesson_name" validate:"omitempty,min=2,max=160"`
	LessonDurationSeconds *int    `json:"lesson_duration_seconds" validate:"omitempty,gte=0"`
}

func (r *UpdateLessonRequest) ApplyToModel(m *courseModel.LessonModel) {
	if r.LessonName != nil {
		m.LessonName = *r.LessonName
	}
	if r.LessonDurationSeconds != nil {
		m.LessonDurationSeconds = *r.LessonDurationSeconds
	}
	now := time.Now()
	m.LessonUpdatedAt = &now
}

// ReorderRequest troca os order_index de um conjunto de itens de uma vez.
// O desbloqueio é sempre recalculado da ordem vigente, então reordenar
// tem efeito imediato sobre o que está liberado.
type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type ReorderItem struct {
	ID         uuid.UUID `json:"id" validate:"required"`
	OrderIndex int       `json:"order_index" validate:"gte=0"`
}

type LessonResponse struct {
	LessonID              uuid.UUID  `json:"lesson_id"`
	LessonCourseID        uuid.UUID  `json:"lesson_course_id"`
	LessonModuleID        *uuid.UUID `json:"lesson_module_id,omitempty"`
	LessonName            string     `json:"lesson_name"`
	LessonOrderIndex      int        `json:"lesson_order_index"`
	LessonDurationSeconds int        `json:"lesson_duration_seconds"`
}

func NewLessonResponse(m *courseModel.LessonModel) *LessonResponse {
	return &LessonResponse{
		LessonID:              m.LessonID,
		LessonCourseID:        m.LessonCourseID,
		LessonModuleID:        m.LessonModuleID,
		LessonName:            m.LessonName,
		LessonOrderIndex:      m.LessonOrderIndex,
		LessonDurationSeconds: m.LessonDurationSeconds,
	}
}
