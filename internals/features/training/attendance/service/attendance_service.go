// internals/features/training/attendance/service/attendance_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "franquiaedu_backend/internals/features/training/attendance/model"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	enrollmentService "franquiaedu_backend/internals/features/training/enrollments/service"
	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
)

// AttendanceService registra presença em sessões ao vivo. Presença entra na
// regra de conclusão da inscrição, então todo mark recomputa o cache dentro
// da mesma transação.
type AttendanceService struct{}

func NewAttendanceService() *AttendanceService {
	return &AttendanceService{}
}

// CreateSession agenda um encontro para uma turma não terminal.
func (s *AttendanceService) CreateSession(db *gorm.DB, session *attendanceModel.LiveSessionModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var turma turmaModel.TurmaModel
		if err := tx.First(&turma, "turma_id = ?", session.LiveSessionTurmaID).Error; err != nil {
			return err
		}
		if turmaModel.IsTerminal(turma.TurmaStatus) {
			return turmaService.ErrTerminalStateWrite
		}
		return tx.Create(session).Error
	})
}

// Mark grava (ou regrava) a presença de uma inscrição numa sessão e
// recomputa o percentual da inscrição.
func (s *AttendanceService) Mark(db *gorm.DB, sessionID, enrollmentID uuid.UUID, present bool) (*enrollmentModel.EnrollmentModel, error) {
	var enrollment enrollmentModel.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var session attendanceModel.LiveSessionModel
		if err := tx.First(&session, "live_session_id = ?", sessionID).Error; err != nil {
			return err
		}

		var turma turmaModel.TurmaModel
		if err := tx.First(&turma, "turma_id = ?", session.LiveSessionTurmaID).Error; err != nil {
			return err
		}
		if turmaModel.IsTerminal(turma.TurmaStatus) {
			return turmaService.ErrTerminalStateWrite
		}

		// mesmo lock do caminho de progresso: writers da inscrição serializam
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}
		if enrollment.EnrollmentStatus == enrollmentModel.EnrollmentStatusCancelada {
			return turmaService.ErrTerminalStateWrite
		}
		// presença só faz sentido na turma da sessão
		if enrollment.EnrollmentTurmaID == nil || *enrollment.EnrollmentTurmaID != session.LiveSessionTurmaID {
			return gorm.ErrRecordNotFound
		}

		now := time.Now()
		record := attendanceModel.AttendanceModel{
			AttendanceSessionID:    sessionID,
			AttendanceEnrollmentID: enrollmentID,
			AttendancePresent:      present,
			AttendanceMarkedAt:     &now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_session_id"},
				{Name: "attendance_enrollment_id"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"attendance_present":    present,
				"attendance_marked_at":  now,
				"attendance_updated_at": now,
			}),
		}).Create(&record).Error; err != nil {
			return err
		}

		return enrollmentService.RecomputeEnrollment(tx, &enrollment)
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListSessions devolve os encontros de uma turma em ordem cronológica.
func (s *AttendanceService) ListSessions(db *gorm.DB, turmaID uuid.UUID) ([]attendanceModel.LiveSessionModel, error) {
	var sessions []attendanceModel.LiveSessionModel
	err := db.Where("live_session_turma_id = ?", turmaID).
		Order("live_session_scheduled_at ASC").
		Find(&sessions).Error
	return sessions, err
}
