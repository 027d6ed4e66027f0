// internals/scheduler/turma_window_scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	turmaModel "franquiaedu_backend/internals/features/training/turmas/model"
	turmaService "franquiaedu_backend/internals/features/training/turmas/service"
)

// TurmaWindowScheduler varre as janelas de inscrição das turmas:
//   - agendada            → inscricoes_abertas    quando open_at passou
//   - inscricoes_abertas  → inscricoes_encerradas quando close_at passou
//
// Cada turma é tratada na própria transação, passando pelo mesmo serviço de
// ciclo de vida dos endpoints (nenhum status muda por fora do grafo).
type TurmaWindowScheduler struct {
	DB        *gorm.DB
	Lifecycle *turmaService.LifecycleService
	cron      *cron.Cron
}

func NewTurmaWindowScheduler(db *gorm.DB) *TurmaWindowScheduler {
	return &TurmaWindowScheduler{
		DB:        db,
		Lifecycle: turmaService.NewLifecycleService(),
		cron:      cron.New(),
	}
}

// Start registra o sweep a cada minuto e sobe o cron.
func (s *TurmaWindowScheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("[SCHEDULER] ⏰ sweep de janelas de turma ativo (a cada minuto)")
	return nil
}

// Stop encerra o cron e espera os jobs em andamento.
func (s *TurmaWindowScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep roda uma passada completa. Exportado para o teste e para disparo
// manual em migrações.
func (s *TurmaWindowScheduler) Sweep() {
	now := time.Now()
	s.sweepStatus(now, turmaModel.TurmaStatusAgendada, "turma_enrollment_open_at <= ?", turmaModel.TurmaStatusInscricoesAbertas)
	s.sweepStatus(now, turmaModel.TurmaStatusInscricoesAbertas, "turma_enrollment_close_at <= ?", turmaModel.TurmaStatusInscricoesEncerradas)
}

func (s *TurmaWindowScheduler) sweepStatus(now time.Time, from, cond, target string) {
	var ids []string
	if err := s.DB.Model(&turmaModel.TurmaModel{}).
		Where("turma_status = ? AND "+cond, from, now).
		Pluck("turma_id", &ids).Error; err != nil {
		log.Printf("[SCHEDULER] ❌ falha ao listar turmas %s: %v", from, err)
		return
	}

	for _, id := range ids {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			var turma turmaModel.TurmaModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&turma, "turma_id = ?", id).Error; err != nil {
				return err
			}
			// alguém pode ter transicionado entre o pluck e o lock
			if turma.TurmaStatus != from {
				return nil
			}
			_, err := s.Lifecycle.Transition(tx, &turma, target)
			return err
		})
		if err != nil {
			log.Printf("[SCHEDULER] ❌ turma %s: %s → %s falhou: %v", id, from, target, err)
			continue
		}
		log.Printf("[SCHEDULER] ✅ turma %s: %s → %s", id, from, target)
	}
}
