// internals/features/training/enrollments/service/recompute_service.go
package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attendanceModel "franquiaedu_backend/internals/features/training/attendance/model"
	courseModel "franquiaedu_backend/internals/features/training/courses/model"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	progressModel "franquiaedu_backend/internals/features/training/progress/model"
)

// RecomputeProgress: floor(concluídas * 100 / total), 0 quando total == 0.
// Idempotente; o percentual cacheado na inscrição é sempre função disto.
func RecomputeProgress(completedCount, totalLessonCount int) int {
	if totalLessonCount <= 0 {
		return 0
	}
	return completedCount * 100 / totalLessonCount
}

// RecomputeEnrollment refaz o cache da inscrição (percentual + conjunto de
// aulas concluídas) a partir do lesson_progress e decide conclusão.
// Deve rodar na MESMA transação de quem mudou o progresso/o conjunto de
// aulas do curso. Conclusão: percentual >= 100 OU, para curso ao vivo,
// presenças >= sessões agendadas; as duas regras são avaliadas.
func RecomputeEnrollment(tx *gorm.DB, enrollment *enrollmentModel.EnrollmentModel) error {
	var completedIDs []uuid.UUID
	if err := tx.Model(&progressModel.LessonProgressModel{}).
		Where("lesson_progress_enrollment_id = ? AND lesson_progress_state = ?",
			enrollment.EnrollmentID, progressModel.LessonProgressConcluida).
		Order("lesson_progress_completed_at ASC").
		Pluck("lesson_progress_lesson_id", &completedIDs).Error; err != nil {
		return err
	}

	var totalLessons int64
	if err := tx.Model(&courseModel.LessonModel{}).
		Where("lesson_course_id = ?", enrollment.EnrollmentCourseID).
		Count(&totalLessons).Error; err != nil {
		return err
	}

	percent := RecomputeProgress(len(completedIDs), int(totalLessons))

	completed := percent >= 100
	if !completed && enrollment.EnrollmentTurmaID != nil {
		done, err := attendanceComplete(tx, enrollment)
		if err != nil {
			return err
		}
		completed = done
	}

	status := enrollment.EnrollmentStatus
	if completed && status == enrollmentModel.EnrollmentStatusAtiva {
		status = enrollmentModel.EnrollmentStatusConcluida
	}

	raw, err := json.Marshal(completedIDs)
	if err != nil {
		return err
	}

	now := time.Now()
	updates := map[string]any{
		"enrollment_progress_percent":     percent,
		"enrollment_completed_lesson_ids": datatypes.JSON(raw),
		"enrollment_status":               status,
		"enrollment_updated_at":           now,
	}
	if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_id = ?", enrollment.EnrollmentID).
		Updates(updates).Error; err != nil {
		return err
	}

	enrollment.EnrollmentProgressPercent = percent
	enrollment.EnrollmentCompletedLessonIDs = datatypes.JSON(raw)
	enrollment.EnrollmentStatus = status
	enrollment.EnrollmentUpdatedAt = &now
	return nil
}

// RecomputeCourseEnrollments refaz o cache de todas as inscrições de um
// curso. Chamado quando o conjunto de aulas muda (criar/remover/reordenar).
func RecomputeCourseEnrollments(tx *gorm.DB, courseID uuid.UUID) error {
	var enrollments []enrollmentModel.EnrollmentModel
	if err := tx.Where("enrollment_course_id = ? AND enrollment_status <> ?",
		courseID, enrollmentModel.EnrollmentStatusCancelada).
		Find(&enrollments).Error; err != nil {
		return err
	}
	for i := range enrollments {
		if err := RecomputeEnrollment(tx, &enrollments[i]); err != nil {
			return err
		}
	}
	return nil
}

func attendanceComplete(tx *gorm.DB, enrollment *enrollmentModel.EnrollmentModel) (bool, error) {
	var scheduled int64
	if err := tx.Model(&attendanceModel.LiveSessionModel{}).
		Where("live_session_turma_id = ?", *enrollment.EnrollmentTurmaID).
		Count(&scheduled).Error; err != nil {
		return false, err
	}
	if scheduled == 0 {
		return false, nil
	}

	var present int64
	if err := tx.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_enrollment_id = ? AND attendance_present = TRUE", enrollment.EnrollmentID).
		Count(&present).Error; err != nil {
		return false, err
	}
	return present >= scheduled, nil
}
