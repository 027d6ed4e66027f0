package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonModel representa a tabela `lessons`.
// Aulas de curso gravado apontam para um módulo; aulas de curso ao vivo
// apontam direto para o curso (module_id nulo).
type LessonModel struct {
	LessonID       uuid.UUID  `json:"lesson_id" gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LessonCourseID uuid.UUID  `json:"lesson_course_id" gorm:"column:lesson_course_id;type:uuid;not null;index"`
	LessonModuleID *uuid.UUID `json:"lesson_module_id,omitempty" gorm:"column:lesson_module_id;type:uuid;uniqueIndex:uq_lesson_module_order,priority:1"`

	LessonName string `json:"lesson_name" gorm:"column:lesson_name;type:varchar(160);not null"`

	// order_index único dentro do módulo (ou do curso, para ao vivo)
	LessonOrderIndex int `json:"lesson_order_index" gorm:"column:lesson_order_index;not null;uniqueIndex:uq_lesson_module_order,priority:2"`

	LessonDurationSeconds int `json:"lesson_duration_seconds" gorm:"column:lesson_duration_seconds;not null;default:0"`

	LessonCreatedAt time.Time  `json:"lesson_created_at" gorm:"column:lesson_created_at;not null;autoCreateTime"`
	LessonUpdatedAt *time.Time `json:"lesson_updated_at,omitempty" gorm:"column:lesson_updated_at;autoUpdateTime"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
