// internals/features/training/progress/service/progress_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "franquiaedu_backend/internals/features/training/courses/model"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	enrollmentService "franquiaedu_backend/internals/features/training/enrollments/service"
	progressModel "franquiaedu_backend/internals/features/training/progress/model"
	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
)

// ErrLessonLocked: escrita de progresso numa aula que o avaliador considera
// bloqueada. Defesa em profundidade contra cliente pulando o gate da UI.
var ErrLessonLocked = errors.New("aula ainda bloqueada pela trava de progressão")

type ProgressService struct{}

func NewProgressService() *ProgressService {
	return &ProgressService{}
}

// lockForUpdate trava a linha lida (FOR UPDATE). Dois writers da mesma
// inscrição serializam aqui; sem o lock, recomputes concorrentes partem de
// snapshots que não se enxergam e o percentual cacheado pode regredir.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// RecordLessonProgress grava/atualiza o estado de uma aula para uma
// inscrição e recomputa o percentual, tudo numa única transação.
// Rejeita: turma terminal (ErrTerminalStateWrite), aula bloqueada
// (ErrLessonLocked), referências inexistentes (gorm.ErrRecordNotFound).
func (s *ProgressService) RecordLessonProgress(db *gorm.DB, enrollmentID, lessonID uuid.UUID, state string, watchTimeSeconds int) (int, error) {
	newPercent := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment enrollmentModel.EnrollmentModel
		if err := lockForUpdate(tx).First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}
		if enrollment.EnrollmentStatus == enrollmentModel.EnrollmentStatusCancelada {
			return turmaService.ErrTerminalStateWrite
		}

		// inscrição de turma: turma encerrada/cancelada vira somente-leitura
		if enrollment.EnrollmentTurmaID != nil {
			var turma turmaModel.TurmaModel
			if err := tx.First(&turma, "turma_id = ?", *enrollment.EnrollmentTurmaID).Error; err != nil {
				return err
			}
			if turmaModel.IsTerminal(turma.TurmaStatus) {
				return turmaService.ErrTerminalStateWrite
			}
		}

		var lesson courseModel.LessonModel
		if err := tx.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
			return err
		}
		if lesson.LessonCourseID != enrollment.EnrollmentCourseID {
			return gorm.ErrRecordNotFound
		}

		var course courseModel.CourseModel
		if err := tx.First(&course, "course_id = ?", enrollment.EnrollmentCourseID).Error; err != nil {
			return err
		}

		// trava de progressão só rege curso gravado
		if course.CourseType == courseModel.CourseTypeGravado && state != progressModel.LessonProgressNaoIniciada {
			unlocked, err := s.isUnlocked(tx, &course, &enrollment, lessonID)
			if err != nil {
				return err
			}
			if !unlocked {
				return ErrLessonLocked
			}
		}

		now := time.Now()
		row := progressModel.LessonProgressModel{
			LessonProgressEnrollmentID:     enrollmentID,
			LessonProgressLessonID:         lessonID,
			LessonProgressState:            state,
			LessonProgressWatchTimeSeconds: watchTimeSeconds,
		}
		if state == progressModel.LessonProgressConcluida {
			row.LessonProgressCompletedAt = &now
		}

		assignments := map[string]any{
			"lesson_progress_state":              state,
			"lesson_progress_watch_time_seconds": watchTimeSeconds,
			"lesson_progress_updated_at":         now,
		}
		if state == progressModel.LessonProgressConcluida {
			assignments["lesson_progress_completed_at"] = now
		} else {
			assignments["lesson_progress_completed_at"] = nil
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "lesson_progress_enrollment_id"},
				{Name: "lesson_progress_lesson_id"},
			},
			DoUpdates: clause.Assignments(assignments),
		}).Create(&row).Error; err != nil {
			return err
		}

		if err := enrollmentService.RecomputeEnrollment(tx, &enrollment); err != nil {
			return err
		}
		newPercent = enrollment.EnrollmentProgressPercent
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newPercent, nil
}

// EvaluateUnlock responde ao player se uma aula está liberada para a
// inscrição. Somente leitura.
func (s *ProgressService) EvaluateUnlock(db *gorm.DB, enrollmentID, lessonID uuid.UUID) (bool, error) {
	var enrollment enrollmentModel.EnrollmentModel
	if err := db.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
		return false, err
	}

	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", enrollment.EnrollmentCourseID).Error; err != nil {
		return false, err
	}

	// curso ao vivo não tem trava de progressão por aula
	if course.CourseType != courseModel.CourseTypeGravado {
		return true, nil
	}

	return s.isUnlocked(db, &course, &enrollment, lessonID)
}

func (s *ProgressService) isUnlocked(tx *gorm.DB, course *courseModel.CourseModel, enrollment *enrollmentModel.EnrollmentModel, lessonID uuid.UUID) (bool, error) {
	modules, err := LoadCourseOutline(tx, course.CourseID)
	if err != nil {
		return false, err
	}

	completed, err := loadCompletedSet(tx, enrollment.EnrollmentID)
	if err != nil {
		return false, err
	}

	return IsLessonUnlocked(lessonID, modules, completed, course.CourseProgressionLock), nil
}

// LoadCourseOutline monta a visão ordenada módulos→aulas do estado atual do
// banco. Ordenação sempre pelo order_index persistido.
func LoadCourseOutline(tx *gorm.DB, courseID uuid.UUID) ([]OrderedModule, error) {
	var mods []courseModel.CourseModuleModel
	if err := tx.Where("course_module_course_id = ?", courseID).
		Order("course_module_order_index ASC").
		Find(&mods).Error; err != nil {
		return nil, err
	}

	var lessons []courseModel.LessonModel
	if err := tx.Where("lesson_course_id = ? AND lesson_module_id IS NOT NULL", courseID).
		Order("lesson_order_index ASC").
		Find(&lessons).Error; err != nil {
		return nil, err
	}

	byModule := make(map[uuid.UUID][]OrderedLesson, len(mods))
	for _, l := range lessons {
		byModule[*l.LessonModuleID] = append(byModule[*l.LessonModuleID], OrderedLesson{
			ID:         l.LessonID,
			OrderIndex: l.LessonOrderIndex,
		})
	}

	out := make([]OrderedModule, 0, len(mods))
	for _, m := range mods {
		out = append(out, OrderedModule{
			ID:         m.CourseModuleID,
			OrderIndex: m.CourseModuleOrderIndex,
			Lessons:    byModule[m.CourseModuleID],
		})
	}
	return out, nil
}

func loadCompletedSet(tx *gorm.DB, enrollmentID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	if err := tx.Model(&progressModel.LessonProgressModel{}).
		Where("lesson_progress_enrollment_id = ? AND lesson_progress_state = ?",
			enrollmentID, progressModel.LessonProgressConcluida).
		Pluck("lesson_progress_lesson_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
