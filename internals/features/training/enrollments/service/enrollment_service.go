// internals/features/training/enrollments/service/enrollment_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "franquiaedu_backend/internals/features/training/attendance/model"
	courseModel "franquiaedu_backend/internals/features/training/courses/model"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	progressModel "franquiaedu_backend/internals/features/training/progress/model"
	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
)

var ErrDuplicateEnrollment = errors.New("aluno já inscrito nesta turma/curso")

const pqUniqueViolation = "23505"

// isUniqueViolation detecta o unique_violation do Postgres, o backstop dos
// índices únicos de inscrição quando duas transações passam pelo pré-check
// ao mesmo tempo.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}

type EnrollmentService struct{}

func NewEnrollmentService() *EnrollmentService {
	return &EnrollmentService{}
}

// Enroll insere uma inscrição numa turma ao vivo dentro de UMA transação:
// trava a linha da turma (FOR UPDATE), conta, valida a guarda e insere.
// Duas requisições disputando a última vaga serializam no lock; o índice
// único (user, turma) é o backstop contra corrida residual.
// `public=true` é o caminho de auto-inscrição do aluno; admins pulam o
// check de janela, mas nunca o de capacidade nem o de duplicidade.
func (s *EnrollmentService) Enroll(db *gorm.DB, userID, turmaID uuid.UUID, public bool) (*enrollmentModel.EnrollmentModel, error) {
	var created *enrollmentModel.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var turma turmaModel.TurmaModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&turma, "turma_id = ?", turmaID).Error; err != nil {
			return err // gorm.ErrRecordNotFound → 404 no controller
		}

		var count int64
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_turma_id = ? AND enrollment_status <> ?",
				turmaID, enrollmentModel.EnrollmentStatusCancelada).
			Count(&count).Error; err != nil {
			return err
		}

		if err := turmaService.CanEnroll(&turma, count, time.Now(), public); err != nil {
			return err
		}

		var dup int64
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_user_id = ? AND enrollment_turma_id = ? AND enrollment_status <> ?",
				userID, turmaID, enrollmentModel.EnrollmentStatusCancelada).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateEnrollment
		}

		m := &enrollmentModel.EnrollmentModel{
			EnrollmentUserID:   userID,
			EnrollmentCourseID: turma.TurmaCourseID,
			EnrollmentTurmaID:  &turma.TurmaID,
			EnrollmentStatus:   enrollmentModel.EnrollmentStatusAtiva,
		}
		if err := tx.Create(m).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateEnrollment
			}
			return err
		}

		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// EnrollSelfPaced inscreve num curso gravado (sem turma).
// Pré-check de unicidade (aluno, curso) na própria transação; o índice único
// parcial resolve a corrida entre duas requisições simultâneas.
func (s *EnrollmentService) EnrollSelfPaced(db *gorm.DB, userID, courseID uuid.UUID) (*enrollmentModel.EnrollmentModel, error) {
	var created *enrollmentModel.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var course courseModel.CourseModel
		if err := tx.First(&course, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
			return err
		}

		var dup int64
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_user_id = ? AND enrollment_course_id = ? AND enrollment_turma_id IS NULL AND enrollment_status <> ?",
				userID, courseID, enrollmentModel.EnrollmentStatusCancelada).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateEnrollment
		}

		m := &enrollmentModel.EnrollmentModel{
			EnrollmentUserID:   userID,
			EnrollmentCourseID: courseID,
			EnrollmentStatus:   enrollmentModel.EnrollmentStatusAtiva,
		}
		if err := tx.Create(m).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateEnrollment
			}
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Remove apaga a inscrição e cascateia o progresso e as presenças dela.
func (s *EnrollmentService) Remove(db *gorm.DB, enrollmentID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var m enrollmentModel.EnrollmentModel
		if err := tx.First(&m, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_progress_enrollment_id = ?", enrollmentID).
			Delete(&progressModel.LessonProgressModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attendance_enrollment_id = ?", enrollmentID).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
}
