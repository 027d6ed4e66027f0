package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"agendada abre inscrições", turmaModel.TurmaStatusAgendada, turmaModel.TurmaStatusInscricoesAbertas, true},
		{"agendada inicia direto sem janela", turmaModel.TurmaStatusAgendada, turmaModel.TurmaStatusEmAndamento, true},
		{"agendada cancela", turmaModel.TurmaStatusAgendada, turmaModel.TurmaStatusCancelada, true},
		{"inscrições abertas fecham", turmaModel.TurmaStatusInscricoesAbertas, turmaModel.TurmaStatusInscricoesEncerradas, true},
		{"inicia direto de inscrições abertas", turmaModel.TurmaStatusInscricoesAbertas, turmaModel.TurmaStatusEmAndamento, true},
		{"inicia após fechar inscrições", turmaModel.TurmaStatusInscricoesEncerradas, turmaModel.TurmaStatusEmAndamento, true},
		{"em andamento conclui", turmaModel.TurmaStatusEmAndamento, turmaModel.TurmaStatusEncerrada, true},
		{"em andamento não cancela", turmaModel.TurmaStatusEmAndamento, turmaModel.TurmaStatusCancelada, false},
		{"encerrada não reabre", turmaModel.TurmaStatusEncerrada, turmaModel.TurmaStatusEmAndamento, false},
		{"cancelada não conclui", turmaModel.TurmaStatusCancelada, turmaModel.TurmaStatusEncerrada, false},
		{"agendada não conclui direto", turmaModel.TurmaStatusAgendada, turmaModel.TurmaStatusEncerrada, false},
		{"não volta para agendada", turmaModel.TurmaStatusInscricoesAbertas, turmaModel.TurmaStatusAgendada, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// Os caminhos de no-op idempotente e de transição ilegal decidem antes de
// tocar o banco, então dá para exercitá-los sem transação.
func TestTransition_TerminalIdempotency(t *testing.T) {
	svc := NewLifecycleService()

	encerrada := &turmaModel.TurmaModel{TurmaID: uuid.New(), TurmaStatus: turmaModel.TurmaStatusEncerrada}
	changed, err := svc.Transition(nil, encerrada, turmaModel.TurmaStatusEncerrada)
	if err != nil {
		t.Fatalf("conclude repetido deveria ser no-op success, err = %v", err)
	}
	if changed {
		t.Fatalf("conclude repetido não deveria marcar mudança")
	}

	cancelada := &turmaModel.TurmaModel{TurmaID: uuid.New(), TurmaStatus: turmaModel.TurmaStatusCancelada}
	if _, err := svc.Transition(nil, cancelada, turmaModel.TurmaStatusEncerrada); err != ErrIllegalTransition {
		t.Fatalf("conclude numa turma cancelada deveria falhar com ErrIllegalTransition, err = %v", err)
	}

	if _, err := svc.Transition(nil, encerrada, turmaModel.TurmaStatusEmAndamento); err != ErrIllegalTransition {
		t.Fatalf("sair de estado terminal deveria falhar com ErrIllegalTransition, err = %v", err)
	}
}

func TestCanEnroll(t *testing.T) {
	now := time.Now()
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)
	cap2 := 2

	open := func(capacity *int) *turmaModel.TurmaModel {
		return &turmaModel.TurmaModel{
			TurmaStatus:            turmaModel.TurmaStatusInscricoesAbertas,
			TurmaEnrollmentOpenAt:  &before,
			TurmaEnrollmentCloseAt: &after,
			TurmaCapacity:          capacity,
		}
	}

	tests := []struct {
		name    string
		turma   *turmaModel.TurmaModel
		count   int64
		public  bool
		wantErr error
	}{
		{"público dentro da janela com vaga", open(&cap2), 0, true, nil},
		{"público na última vaga", open(&cap2), 1, true, nil},
		{"público sem vaga", open(&cap2), 2, true, ErrCapacityExceeded},
		{"sem limite de vagas", open(nil), 500, true, nil},
		{
			"público com inscrições encerradas",
			&turmaModel.TurmaModel{TurmaStatus: turmaModel.TurmaStatusInscricoesEncerradas},
			0, true, ErrEnrollmentWindowClosed,
		},
		{
			"admin ignora janela fechada",
			&turmaModel.TurmaModel{TurmaStatus: turmaModel.TurmaStatusInscricoesEncerradas, TurmaCapacity: &cap2},
			1, false, nil,
		},
		{
			"admin não ignora capacidade",
			&turmaModel.TurmaModel{TurmaStatus: turmaModel.TurmaStatusInscricoesEncerradas, TurmaCapacity: &cap2},
			2, false, ErrCapacityExceeded,
		},
		{
			"admin em turma encerrada",
			&turmaModel.TurmaModel{TurmaStatus: turmaModel.TurmaStatusEncerrada},
			0, false, ErrTerminalStateWrite,
		},
		{
			"público em turma cancelada",
			&turmaModel.TurmaModel{TurmaStatus: turmaModel.TurmaStatusCancelada},
			0, true, ErrTerminalStateWrite,
		},
		{
			"público antes da janela abrir",
			&turmaModel.TurmaModel{
				TurmaStatus:           turmaModel.TurmaStatusInscricoesAbertas,
				TurmaEnrollmentOpenAt: &after,
			},
			0, true, ErrEnrollmentWindowClosed,
		},
		{
			"público depois da janela fechar",
			&turmaModel.TurmaModel{
				TurmaStatus:            turmaModel.TurmaStatusInscricoesAbertas,
				TurmaEnrollmentCloseAt: &before,
			},
			0, true, ErrEnrollmentWindowClosed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanEnroll(tt.turma, tt.count, now, tt.public); err != tt.wantErr {
				t.Errorf("CanEnroll() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWindow(t *testing.T) {
	t1 := time.Now()
	t2 := t1.Add(24 * time.Hour)
	t3 := t2.Add(24 * time.Hour)

	tests := []struct {
		name     string
		open     *time.Time
		close    *time.Time
		deadline *time.Time
		wantErr  error
	}{
		{"ordem correta", &t1, &t2, &t3, nil},
		{"tudo nulo", nil, nil, nil, nil},
		{"open depois do close", &t2, &t1, &t3, ErrInvalidWindow},
		{"close depois do deadline", &t1, &t3, &t2, ErrInvalidWindow},
		{"só open e close corretos", &t1, &t2, nil, nil},
		{"open depois do deadline sem close", &t2, nil, &t1, ErrInvalidWindow},
		{"open antes do deadline sem close", &t1, nil, &t2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateWindow(tt.open, tt.close, tt.deadline); err != tt.wantErr {
				t.Errorf("ValidateWindow() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
