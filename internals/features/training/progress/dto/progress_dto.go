// internals/features/training/progress/dto/progress_dto.go
package dto

import (
	"github.com/google/uuid"
)

type RecordLessonProgressRequest struct {
	EnrollmentID     uuid.UUID `json:"enrollment_id" validate:"required"`
	LessonID         uuid.UUID `json:"lesson_id" validate:"required"`
	State            string    `json:"state" validate:"required,oneof=nao_iniciada em_progresso concluida"`
	WatchTimeSeconds int       `json:"watch_time_seconds" validate:"gte=0"`
}

type RecordLessonProgressResponse struct {
	EnrollmentID  uuid.UUID `json:"enrollment_id"`
	LessonID      uuid.UUID `json:"lesson_id"`
	State         string    `json:"state"`
	NewPercentage int       `json:"new_percentage"`
}

type EvaluateUnlockResponse struct {
	LessonID     uuid.UUID `json:"lesson_id"`
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	Unlocked     bool      `json:"unlocked"`
}
