package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel representa a tabela `attendances`.
// Um registro por (sessão, inscrição); presença conta para a conclusão
// de cursos ao vivo.
type AttendanceModel struct {
	AttendanceID           uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceSessionID    uuid.UUID `json:"attendance_session_id" gorm:"column:attendance_session_id;type:uuid;not null;uniqueIndex:uq_attendance_pair,priority:1"`
	AttendanceEnrollmentID uuid.UUID `json:"attendance_enrollment_id" gorm:"column:attendance_enrollment_id;type:uuid;not null;uniqueIndex:uq_attendance_pair,priority:2"`

	AttendancePresent  bool       `json:"attendance_present" gorm:"column:attendance_present;not null;default:false"`
	AttendanceMarkedAt *time.Time `json:"attendance_marked_at,omitempty" gorm:"column:attendance_marked_at"`

	AttendanceCreatedAt time.Time  `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
	AttendanceUpdatedAt *time.Time `json:"attendance_updated_at,omitempty" gorm:"column:attendance_updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
