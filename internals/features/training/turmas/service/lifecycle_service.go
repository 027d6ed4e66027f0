// internals/features/training/turmas/service/lifecycle_service.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
)

// Rejeições de negócio do ciclo de vida / guarda de inscrição.
// O controller traduz cada uma para um fiber.Error com mensagem específica.
var (
	ErrIllegalTransition      = errors.New("transição de status não permitida")
	ErrInvalidWindow          = errors.New("janela de inscrição com datas fora de ordem")
	ErrEnrollmentWindowClosed = errors.New("janela de inscrição fechada")
	ErrCapacityExceeded       = errors.New("turma sem vagas")
	ErrTerminalStateWrite     = errors.New("turma encerrada ou cancelada não aceita novos registros")
)

// Grafo de transições permitidas. Estados terminais não têm saída.
var allowedTransitions = map[string][]string{
	turmaModel.TurmaStatusAgendada: {
		turmaModel.TurmaStatusInscricoesAbertas,
		turmaModel.TurmaStatusEmAndamento,
		turmaModel.TurmaStatusCancelada,
	},
	turmaModel.TurmaStatusInscricoesAbertas: {
		turmaModel.TurmaStatusInscricoesEncerradas,
		turmaModel.TurmaStatusEmAndamento, // iniciar fecha a inscrição implicitamente
		turmaModel.TurmaStatusCancelada,
	},
	turmaModel.TurmaStatusInscricoesEncerradas: {
		turmaModel.TurmaStatusEmAndamento,
		turmaModel.TurmaStatusCancelada,
	},
	turmaModel.TurmaStatusEmAndamento: {
		turmaModel.TurmaStatusEncerrada,
	},
	turmaModel.TurmaStatusEncerrada: {},
	turmaModel.TurmaStatusCancelada: {},
}

// CanTransition diz se `from → to` é uma aresta do grafo.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTargets devolve os próximos status legais a partir de `from`.
func AllowedTargets(from string) []string {
	return append([]string(nil), allowedTransitions[from]...)
}

type LifecycleService struct{}

func NewLifecycleService() *LifecycleService {
	return &LifecycleService{}
}

// Transition aplica `turma.status → target` dentro da transação recebida.
// Retorna changed=false para o no-op idempotente (repetir a chegada num
// estado terminal); qualquer outra aresta ausente vira ErrIllegalTransition.
// O chamador é responsável por já ter travado a linha da turma (FOR UPDATE).
func (s *LifecycleService) Transition(tx *gorm.DB, turma *turmaModel.TurmaModel, target string) (bool, error) {
	current := turma.TurmaStatus

	// conclude/cancel repetido em cima do mesmo estado terminal: no-op success
	if current == target && turmaModel.IsTerminal(current) {
		return false, nil
	}
	if !CanTransition(current, target) {
		return false, ErrIllegalTransition
	}

	now := time.Now()
	updates := map[string]any{
		"turma_status":     target,
		"turma_updated_at": now,
	}

	switch target {
	case turmaModel.TurmaStatusEmAndamento:
		updates["turma_started_at"] = now
	case turmaModel.TurmaStatusEncerrada:
		updates["turma_concluded_at"] = now
	}

	if err := tx.Model(&turmaModel.TurmaModel{}).
		Where("turma_id = ? AND turma_status = ?", turma.TurmaID, current).
		Updates(updates).Error; err != nil {
		return false, err
	}

	turma.TurmaStatus = target
	turma.TurmaUpdatedAt = &now
	switch target {
	case turmaModel.TurmaStatusEmAndamento:
		turma.TurmaStartedAt = &now
	case turmaModel.TurmaStatusEncerrada:
		turma.TurmaConcludedAt = &now
	}

	// cancelamento invalida as inscrições da turma (sem direito a certificado)
	if target == turmaModel.TurmaStatusCancelada {
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_turma_id = ? AND enrollment_status <> ?", turma.TurmaID, enrollmentModel.EnrollmentStatusCancelada).
			Updates(map[string]any{
				"enrollment_status":     enrollmentModel.EnrollmentStatusCancelada,
				"enrollment_updated_at": now,
			}).Error; err != nil {
			return false, err
		}
	}

	return true, nil
}

// ValidateWindow confere a ordem dos timestamps na criação da turma:
// open_at <= close_at <= completion_deadline (só os presentes são checados).
func ValidateWindow(openAt, closeAt, deadline *time.Time) error {
	if openAt != nil && closeAt != nil && openAt.After(*closeAt) {
		return ErrInvalidWindow
	}
	if closeAt != nil && deadline != nil && closeAt.After(*deadline) {
		return ErrInvalidWindow
	}
	// sem close_at a cadeia encurta, mas open continua preso ao deadline
	if openAt != nil && deadline != nil && openAt.After(*deadline) {
		return ErrInvalidWindow
	}
	return nil
}
