// internals/features/training/progress/model/lesson_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LessonProgressNaoIniciada = "nao_iniciada"
	LessonProgressEmProgresso = "em_progresso"
	LessonProgressConcluida   = "concluida"
)

// LessonProgressModel representa a tabela `lesson_progress`.
// Chave lógica: (enrollment_id, lesson_id). A linha nasce no primeiro
// contato do aluno com a aula e só morre junto com a inscrição.
type LessonProgressModel struct {
	LessonProgressID           uuid.UUID `json:"lesson_progress_id" gorm:"column:lesson_progress_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LessonProgressEnrollmentID uuid.UUID `json:"lesson_progress_enrollment_id" gorm:"column:lesson_progress_enrollment_id;type:uuid;not null;uniqueIndex:uq_lesson_progress_pair,priority:1"`
	LessonProgressLessonID     uuid.UUID `json:"lesson_progress_lesson_id" gorm:"column:lesson_progress_lesson_id;type:uuid;not null;uniqueIndex:uq_lesson_progress_pair,priority:2"`

	LessonProgressState            string     `json:"lesson_progress_state" gorm:"column:lesson_progress_state;type:varchar(20);not null;default:'nao_iniciada'"`
	LessonProgressWatchTimeSeconds int        `json:"lesson_progress_watch_time_seconds" gorm:"column:lesson_progress_watch_time_seconds;not null;default:0"`
	LessonProgressCompletedAt      *time.Time `json:"lesson_progress_completed_at,omitempty" gorm:"column:lesson_progress_completed_at"`

	LessonProgressCreatedAt time.Time  `json:"lesson_progress_created_at" gorm:"column:lesson_progress_created_at;not null;autoCreateTime"`
	LessonProgressUpdatedAt *time.Time `json:"lesson_progress_updated_at,omitempty" gorm:"column:lesson_progress_updated_at;autoUpdateTime"`
}

func (LessonProgressModel) TableName() string {
	return "lesson_progress"
}
