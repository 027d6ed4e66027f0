// internals/features/training/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	EnrollmentStatusAtiva     = "ativa"
	EnrollmentStatusConcluida = "concluida"
	EnrollmentStatusCancelada = "cancelada"
)

// EnrollmentModel representa a tabela `enrollments`.
// Cursos gravados: uma inscrição por (aluno, curso), turma nula; o índice
// único parcial (user, course) WHERE turma IS NULL é o backstop, já que
// NULLs distintos impedem o índice composto de pegar esse caso.
// Cursos ao vivo: uma inscrição por (aluno, turma); o índice único composto
// é o backstop de banco contra a corrida de inscrição concorrente.
type EnrollmentModel struct {
	EnrollmentID       uuid.UUID  `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnrollmentUserID   uuid.UUID  `json:"enrollment_user_id" gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:uq_enrollment_user_turma,priority:1;uniqueIndex:uq_enrollment_user_course_self,priority:1;index"`
	EnrollmentCourseID uuid.UUID  `json:"enrollment_course_id" gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_user_course_self,priority:2,where:enrollment_turma_id IS NULL AND enrollment_status <> 'cancelada';index"`
	EnrollmentTurmaID  *uuid.UUID `json:"enrollment_turma_id,omitempty" gorm:"column:enrollment_turma_id;type:uuid;uniqueIndex:uq_enrollment_user_turma,priority:2"`

	EnrollmentStatus string `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:'ativa'"`

	// cache recomputado, nunca autoritativo por si só
	EnrollmentProgressPercent    int            `json:"enrollment_progress_percent" gorm:"column:enrollment_progress_percent;not null;default:0"`
	EnrollmentCompletedLessonIDs datatypes.JSON `json:"enrollment_completed_lesson_ids" gorm:"column:enrollment_completed_lesson_ids;type:jsonb;not null;default:'[]'"`

	EnrollmentCreatedAt time.Time  `json:"enrollment_created_at" gorm:"column:enrollment_created_at;not null;autoCreateTime"`
	EnrollmentUpdatedAt *time.Time `json:"enrollment_updated_at,omitempty" gorm:"column:enrollment_updated_at;autoUpdateTime"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
