// internals/features/training/courses/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	courseModel "franquiaedu_backend/internals/features/training/courses/model"
)

/* ===================== REQUESTS ===================== */

type CreateCourseRequest struct {
	CourseName            string  `json:"course_name" validate:"required,min=3,max=160"`
	CourseSlug            string  `json:"course_slug" validate:"required,min=3,max=180"`
	CourseDescription     *string `json:"course_description" validate:"omitempty"`
	CourseType            string  `json:"course_type" validate:"required,oneof=gravado ao_vivo"`
	CourseProgressionLock *bool   `json:"course_progression_lock" validate:"omitempty"`
}

func (r *CreateCourseRequest) ToModel() *courseModel.CourseModel {
	m := &courseModel.CourseModel{
		CourseName:            r.CourseName,
		CourseSlug:            r.CourseSlug,
		CourseDescription:     r.CourseDescription,
		CourseType:            r.CourseType,
		CourseProgressionLock: true,
	}
	if r.CourseProgressionLock != nil {
		m.CourseProgressionLock = *r.CourseProgressionLock
	}
	return m
}

type UpdateCourseRequest struct {
	CourseName            *string `json:"course_name" validate:"omitempty,min=3,max=160"`
	CourseDescription     *string `json:"course_description" validate:"omitempty"`
	CourseProgressionLock *bool   `json:"course_progression_lock" validate:"omitempty"`
	CourseIsActive        *bool   `json:"course_is_active" validate:"omitempty"`
}

func (r *UpdateCourseRequest) ApplyToModel(m *courseModel.CourseModel) {
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.CourseDescription != nil {
		m.CourseDescription = r.CourseDescription
	}
	if r.CourseProgressionLock != nil {
		m.CourseProgressionLock = *r.CourseProgressionLock
	}
	if r.CourseIsActive != nil {
		m.CourseIsActive = *r.CourseIsActive
	}
	now := time.Now()
	m.CourseUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type CourseResponse struct {
	CourseID              uuid.UUID `json:"course_id"`
	CourseName            string    `json:"course_name"`
	CourseSlug            string    `json:"course_slug"`
	CourseDescription     *string   `json:"course_description,omitempty"`
	CourseType            string    `json:"course_type"`
	CourseProgressionLock bool      `json:"course_progression_lock"`
	CourseIsActive        bool      `json:"course_is_active"`
	CourseCreatedAt       time.Time `json:"course_created_at"`
}

func NewCourseResponse(m *courseModel.CourseModel) *CourseResponse {
	return &CourseResponse{
		CourseID:              m.CourseID,
		CourseName:            m.CourseName,
		CourseSlug:            m.CourseSlug,
		CourseDescription:     m.CourseDescription,
		CourseType:            m.CourseType,
		CourseProgressionLock: m.CourseProgressionLock,
		CourseIsActive:        m.CourseIsActive,
		CourseCreatedAt:       m.CourseCreatedAt,
	}
}
