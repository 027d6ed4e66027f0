package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModuleModel representa a tabela `course_modules`
// (agrupamento ordenado de aulas em cursos gravados)
type CourseModuleModel struct {
	CourseModuleID       uuid.UUID `json:"course_module_id" gorm:"column:course_module_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseModuleCourseID uuid.UUID `json:"course_module_course_id" gorm:"column:course_module_course_id;type:uuid;not null;uniqueIndex:uq_course_module_order,priority:1"`
	CourseModuleName     string    `json:"course_module_name" gorm:"column:course_module_name;type:varchar(160);not null"`

	// order_index único por curso; o desbloqueio usa a posição na sequência
	// ordenada, não o valor bruto (buracos são tolerados)
	CourseModuleOrderIndex int `json:"course_module_order_index" gorm:"column:course_module_order_index;not null;uniqueIndex:uq_course_module_order,priority:2"`

	CourseModuleCreatedAt time.Time  `json:"course_module_created_at" gorm:"column:course_module_created_at;not null;autoCreateTime"`
	CourseModuleUpdatedAt *time.Time `json:"course_module_updated_at,omitempty" gorm:"column:course_module_updated_at;autoUpdateTime"`
}

func (CourseModuleModel) TableName() string {
	return "course_modules"
}
