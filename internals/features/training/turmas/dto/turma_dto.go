// internals/features/training/turmas/dto/turma_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
)

/* ===================== REQUESTS ===================== */

type CreateTurmaRequest struct {
	TurmaCourseID uuid.UUID `json:"turma_course_id" validate:"required"`
	TurmaName     string    `json:"turma_name" validate:"required,min=3,max=160"`

	TurmaEnrollmentOpenAt   *time.Time `json:"turma_enrollment_open_at" validate:"omitempty"`
	TurmaEnrollmentCloseAt  *time.Time `json:"turma_enrollment_close_at" validate:"omitempty"`
	TurmaCompletionDeadline *time.Time `json:"turma_completion_deadline" validate:"omitempty"`

	TurmaCapacity     *int       `json:"turma_capacity" validate:"omitempty,gt=0"`
	TurmaInstructorID *uuid.UUID `json:"turma_instructor_id" validate:"omitempty"`
}

func (r *CreateTurmaRequest) ToModel() *turmaModel.TurmaModel {
	return &turmaModel.TurmaModel{
		TurmaCourseID:           r.TurmaCourseID,
		TurmaName:               r.TurmaName,
		TurmaStatus:             turmaModel.TurmaStatusAgendada,
		TurmaEnrollmentOpenAt:   r.TurmaEnrollmentOpenAt,
		TurmaEnrollmentCloseAt:  r.TurmaEnrollmentCloseAt,
		TurmaCompletionDeadline: r.TurmaCompletionDeadline,
		TurmaCapacity:           r.TurmaCapacity,
		TurmaInstructorID:       r.TurmaInstructorID,
	}
}

type TransitionTurmaRequest struct {
	TargetStatus string `json:"target_status" validate:"required,oneof=agendada inscricoes_abertas inscricoes_encerradas em_andamento encerrada cancelada"`
}

type ListTurmaQuery struct {
	CourseID *uuid.UUID `query:"course_id"`
	Status   *string    `query:"status" validate:"omitempty,oneof=agendada inscricoes_abertas inscricoes_encerradas em_andamento encerrada cancelada"`
}

/* ===================== RESPONSES ===================== */

type TurmaResponse struct {
	TurmaID       uuid.UUID `json:"turma_id"`
	TurmaCourseID uuid.UUID `json:"turma_course_id"`
	TurmaName     string    `json:"turma_name"`
	TurmaStatus   string    `json:"turma_status"`

	TurmaEnrollmentOpenAt   *time.Time `json:"turma_enrollment_open_at,omitempty"`
	TurmaEnrollmentCloseAt  *time.Time `json:"turma_enrollment_close_at,omitempty"`
	TurmaCompletionDeadline *time.Time `json:"turma_completion_deadline,omitempty"`

	TurmaCapacity     *int       `json:"turma_capacity,omitempty"`
	TurmaInstructorID *uuid.UUID `json:"turma_instructor_id,omitempty"`

	TurmaEnrollmentsCount int64 `json:"turma_enrollments_count"`

	TurmaStartedAt   *time.Time `json:"turma_started_at,omitempty"`
	TurmaConcludedAt *time.Time `json:"turma_concluded_at,omitempty"`
	TurmaCreatedAt   time.Time  `json:"turma_created_at"`
}

func NewTurmaResponse(m *turmaModel.TurmaModel, enrollmentsCount int64) *TurmaResponse {
	return &TurmaResponse{
		TurmaID:                 m.TurmaID,
		TurmaCourseID:           m.TurmaCourseID,
		TurmaName:               m.TurmaName,
		TurmaStatus:             m.TurmaStatus,
		TurmaEnrollmentOpenAt:   m.TurmaEnrollmentOpenAt,
		TurmaEnrollmentCloseAt:  m.TurmaEnrollmentCloseAt,
		TurmaCompletionDeadline: m.TurmaCompletionDeadline,
		TurmaCapacity:           m.TurmaCapacity,
		TurmaInstructorID:       m.TurmaInstructorID,
		TurmaEnrollmentsCount:   enrollmentsCount,
		TurmaStartedAt:          m.TurmaStartedAt,
		TurmaConcludedAt:        m.TurmaConcludedAt,
		TurmaCreatedAt:          m.TurmaCreatedAt,
	}
}
