// internals/features/training/turmas/service/enrollment_guard.go
package service

import (
	"time"

	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
)

// CanEnroll valida uma nova inscrição contra o estado atual da turma.
// Ordem dos checks (curto-circuito):
//  1. status não terminal; no caminho público exige inscricoes_abertas
//     e open_at <= now <= close_at
//  2. capacidade, quando definida
//
// A checagem de duplicidade (mesmo aluno na mesma turma) fica no serviço de
// inscrição, que a executa na mesma transação do insert.
// `public=false` é o caminho administrativo: pula apenas o check de janela.
func CanEnroll(turma *turmaModel.TurmaModel, currentCount int64, now time.Time, public bool) error {
	if turmaModel.IsTerminal(turma.TurmaStatus) {
		return ErrTerminalStateWrite
	}

	if public {
		if turma.TurmaStatus != turmaModel.TurmaStatusInscricoesAbertas {
			return ErrEnrollmentWindowClosed
		}
		if turma.TurmaEnrollmentOpenAt != nil && now.Before(*turma.TurmaEnrollmentOpenAt) {
			return ErrEnrollmentWindowClosed
		}
		if turma.TurmaEnrollmentCloseAt != nil && now.After(*turma.TurmaEnrollmentCloseAt) {
			return ErrEnrollmentWindowClosed
		}
	}

	if turma.TurmaCapacity != nil && currentCount >= int64(*turma.TurmaCapacity) {
		return ErrCapacityExceeded
	}

	return nil
}
