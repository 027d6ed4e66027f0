// internals/features/training/enrollments/dto/enrollment_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
)

/* ===================== REQUESTS ===================== */

// Auto-inscrição do aluno numa turma (o user_id vem do token)
type RequestEnrollmentRequest struct {
	TurmaID uuid.UUID `json:"turma_id" validate:"required"`
}

// Inscrição em curso gravado (sem turma)
type RequestSelfPacedEnrollmentRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

// Inscrição forçada por admin (pula o check de janela, nunca o de vagas)
type AdminEnrollRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	TurmaID uuid.UUID `json:"turma_id" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type EnrollmentResponse struct {
	EnrollmentID       uuid.UUID  `json:"enrollment_id"`
	EnrollmentUserID   uuid.UUID  `json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentTurmaID  *uuid.UUID `json:"enrollment_turma_id,omitempty"`

	EnrollmentStatus             string      `json:"enrollment_status"`
	EnrollmentProgressPercent    int         `json:"enrollment_progress_percent"`
	EnrollmentCompletedLessonIDs []uuid.UUID `json:"enrollment_completed_lesson_ids"`

	EnrollmentCreatedAt time.Time `json:"enrollment_created_at"`
}

func NewEnrollmentResponse(m *enrollmentModel.EnrollmentModel) *EnrollmentResponse {
	completed := []uuid.UUID{}
	if len(m.EnrollmentCompletedLessonIDs) > 0 {
		_ = json.Unmarshal(m.EnrollmentCompletedLessonIDs, &completed)
	}
	return &EnrollmentResponse{
		EnrollmentID:                 m.EnrollmentID,
		EnrollmentUserID:             m.EnrollmentUserID,
		EnrollmentCourseID:           m.EnrollmentCourseID,
		EnrollmentTurmaID:            m.EnrollmentTurmaID,
		EnrollmentStatus:             m.EnrollmentStatus,
		EnrollmentProgressPercent:    m.EnrollmentProgressPercent,
		EnrollmentCompletedLessonIDs: completed,
		EnrollmentCreatedAt:          m.EnrollmentCreatedAt,
	}
}
