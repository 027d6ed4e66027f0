// models/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CourseTypeGravado = "gravado" // conteúdo gravado, progressão por aula
	CourseTypeAoVivo  = "ao_vivo" // turmas ao vivo, progressão por presença
)

// CourseModel representa a tabela `courses`
type CourseModel struct {
	CourseID          uuid.UUID  `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseName        string     `json:"course_name" gorm:"column:course_name;type:varchar(160);not null"`
	CourseSlug        string     `json:"course_slug" gorm:"column:course_slug;type:varchar(180);unique;not null"`
	CourseDescription *string    `json:"course_description,omitempty" gorm:"column:course_description;type:text"`
	CourseType        string     `json:"course_type" gorm:"column:course_type;type:varchar(20);not null;default:'gravado'"`

	// trava de progressão: quando false, toda aula fica liberada (modo preview)
	CourseProgressionLock bool `json:"course_progression_lock" gorm:"column:course_progression_lock;not null;default:true"`

	CourseIsActive  bool       `json:"course_is_active" gorm:"column:course_is_active;not null;default:true"`
	CourseCreatedAt time.Time  `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt *time.Time `json:"course_updated_at,omitempty" gorm:"column:course_updated_at;autoUpdateTime"`
	CourseDeletedAt *time.Time `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
