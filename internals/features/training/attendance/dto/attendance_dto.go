// internals/features/training/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "franquiaedu_backend/internals/features/training/attendance/model"
)

type CreateSessionRequest struct {
	LiveSessionTurmaID     uuid.UUID `json:"live_session_turma_id" validate:"required"`
	LiveSessionName        string    `json:"live_session_name" validate:"required,min=2,max=160"`
	LiveSessionScheduledAt time.Time `json:"live_session_scheduled_at" validate:"required"`
}

func (r *CreateSessionRequest) ToModel() *attendanceModel.LiveSessionModel {
	return &attendanceModel.LiveSessionModel{
		LiveSessionTurmaID:     r.LiveSessionTurmaID,
		LiveSessionName:        r.LiveSessionName,
		LiveSessionScheduledAt: r.LiveSessionScheduledAt,
	}
}

type MarkAttendanceRequest struct {
	SessionID    uuid.UUID `json:"session_id" validate:"required"`
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
	Present      bool      `json:"present"`
}

type SessionResponse struct {
	LiveSessionID          uuid.UUID `json:"live_session_id"`
	LiveSessionTurmaID     uuid.UUID `json:"live_session_turma_id"`
	LiveSessionName        string    `json:"live_session_name"`
	LiveSessionScheduledAt time.Time `json:"live_session_scheduled_at"`
}

func NewSessionResponse(m *attendanceModel.LiveSessionModel) *SessionResponse {
	return &SessionResponse{
		LiveSessionID:          m.LiveSessionID,
		LiveSessionTurmaID:     m.LiveSessionTurmaID,
		LiveSessionName:        m.LiveSessionName,
		LiveSessionScheduledAt: m.LiveSessionScheduledAt,
	}
}

type MarkAttendanceResponse struct {
	SessionID          uuid.UUID `json:"session_id"`
	EnrollmentID       uuid.UUID `json:"enrollment_id"`
	Present            bool      `json:"present"`
	EnrollmentStatus   string    `json:"enrollment_status"`
	ProgressPercentage int       `json:"progress_percentage"`
}
