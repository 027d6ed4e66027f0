// internals/features/training/turmas/model/turma_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Ciclo de vida da turma. `encerrada` e `cancelada` são terminais.
const (
	TurmaStatusAgendada             = "agendada"
	TurmaStatusInscricoesAbertas    = "inscricoes_abertas"
	TurmaStatusInscricoesEncerradas = "inscricoes_encerradas"
	TurmaStatusEmAndamento          = "em_andamento"
	TurmaStatusEncerrada            = "encerrada"
	TurmaStatusCancelada            = "cancelada"
)

// TurmaModel representa a tabela `turmas` (turma de curso ao vivo)
type TurmaModel struct {
	TurmaID       uuid.UUID `json:"turma_id" gorm:"column:turma_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TurmaCourseID uuid.UUID `json:"turma_course_id" gorm:"column:turma_course_id;type:uuid;not null;index"`
	TurmaName     string    `json:"turma_name" gorm:"column:turma_name;type:varchar(160);not null"`
	TurmaStatus   string    `json:"turma_status" gorm:"column:turma_status;type:varchar(30);not null;default:'agendada';index"`

	TurmaEnrollmentOpenAt   *time.Time `json:"turma_enrollment_open_at,omitempty" gorm:"column:turma_enrollment_open_at"`
	TurmaEnrollmentCloseAt  *time.Time `json:"turma_enrollment_close_at,omitempty" gorm:"column:turma_enrollment_close_at"`
	TurmaCompletionDeadline *time.Time `json:"turma_completion_deadline,omitempty" gorm:"column:turma_completion_deadline"`

	// NULL = sem limite de vagas
	TurmaCapacity *int `json:"turma_capacity,omitempty" gorm:"column:turma_capacity"`

	TurmaInstructorID *uuid.UUID `json:"turma_instructor_id,omitempty" gorm:"column:turma_instructor_id;type:uuid"`

	TurmaStartedAt   *time.Time `json:"turma_started_at,omitempty" gorm:"column:turma_started_at"`
	TurmaConcludedAt *time.Time `json:"turma_concluded_at,omitempty" gorm:"column:turma_concluded_at"`

	TurmaCreatedAt time.Time  `json:"turma_created_at" gorm:"column:turma_created_at;not null;autoCreateTime"`
	TurmaUpdatedAt *time.Time `json:"turma_updated_at,omitempty" gorm:"column:turma_updated_at;autoUpdateTime"`
}

func (TurmaModel) TableName() string {
	return "turmas"
}

// IsTerminal informa se o status não admite mais transições.
func IsTerminal(status string) bool {
	return status == TurmaStatusEncerrada || status == TurmaStatusCancelada
}
