// internals/features/training/attendance/model/live_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// LiveSessionModel representa a tabela `live_sessions`
// (encontros agendados de uma turma ao vivo)
type LiveSessionModel struct {
	LiveSessionID          uuid.UUID  `json:"live_session_id" gorm:"column:live_session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LiveSessionTurmaID     uuid.UUID  `json:"live_session_turma_id" gorm:"column:live_session_turma_id;type:uuid;not null;index"`
	LiveSessionName        string     `json:"live_session_name" gorm:"column:live_session_name;type:varchar(160);not null"`
	LiveSessionScheduledAt time.Time  `json:"live_session_scheduled_at" gorm:"column:live_session_scheduled_at;not null"`
	LiveSessionCreatedAt   time.Time  `json:"live_session_created_at" gorm:"column:live_session_created_at;not null;autoCreateTime"`
	LiveSessionUpdatedAt   *time.Time `json:"live_session_updated_at,omitempty" gorm:"column:live_session_updated_at;autoUpdateTime"`
}

func (LiveSessionModel) TableName() string {
	return "live_sessions"
}
