// internals/features/training/progress/service/unlock_evaluator.go
package service

import (
	"sort"

	"github.com/google/uuid"
)

// OrderedLesson / OrderedModule são a visão mínima do catálogo que o
// avaliador precisa. Quem monta garante que vêm do estado atual do banco;
// o avaliador reordena por order_index antes de decidir, então reordenações
// valem imediatamente.
type OrderedLesson struct {
	ID         uuid.UUID
	OrderIndex int
}

type OrderedModule struct {
	ID         uuid.UUID
	OrderIndex int
	Lessons    []OrderedLesson
}

// IsLessonUnlocked decide se `lessonID` está liberada.
// Regras, em ordem de precedência:
//  1. progressionLock desligado (preview administrativo) → tudo liberado
//  2. primeira aula do primeiro módulo → sempre liberada
//  3. primeira aula de módulo posterior → liberada sse TODAS as aulas do
//     módulo imediatamente anterior estão concluídas (módulo vazio conta
//     como concluído e não bloqueia)
//  4. demais aulas → liberada sse a aula imediatamente anterior no mesmo
//     módulo está concluída
//  5. resto → bloqueada
//
// Função pura, sem efeitos; falha fechada (aula fora do catálogo → bloqueada).
func IsLessonUnlocked(lessonID uuid.UUID, modules []OrderedModule, completed map[uuid.UUID]bool, progressionLock bool) bool {
	if !progressionLock {
		return true
	}
	if len(modules) == 0 {
		return false
	}

	sorted := sortModules(modules)

	for mi, mod := range sorted {
		for li, lesson := range mod.Lessons {
			if lesson.ID != lessonID {
				continue
			}
			if li > 0 {
				// aula não-primeira: depende da anterior no mesmo módulo
				return completed[mod.Lessons[li-1].ID]
			}
			if mi == 0 {
				// primeira aula do primeiro módulo
				return true
			}
			// primeira aula de módulo posterior: módulo anterior completo
			return moduleFullyCompleted(sorted[mi-1], completed)
		}
	}

	// aula não pertence a nenhum módulo informado
	return false
}

// UnlockedLessons devolve o conjunto de aulas liberadas de uma vez,
// para o player montar a navegação sem N chamadas.
func UnlockedLessons(modules []OrderedModule, completed map[uuid.UUID]bool, progressionLock bool) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool)
	sorted := sortModules(modules)

	for mi, mod := range sorted {
		for li, lesson := range mod.Lessons {
			switch {
			case !progressionLock:
				out[lesson.ID] = true
			case li > 0:
				out[lesson.ID] = completed[mod.Lessons[li-1].ID]
			case mi == 0:
				out[lesson.ID] = true
			default:
				out[lesson.ID] = moduleFullyCompleted(sorted[mi-1], completed)
			}
		}
	}
	return out
}

func moduleFullyCompleted(mod OrderedModule, completed map[uuid.UUID]bool) bool {
	for _, l := range mod.Lessons {
		if !completed[l.ID] {
			return false
		}
	}
	return true // módulo sem aulas é vacuamente completo
}

// sortModules devolve uma cópia com módulos e aulas ordenados por order_index.
func sortModules(modules []OrderedModule) []OrderedModule {
	out := make([]OrderedModule, len(modules))
	for i, m := range modules {
		lessons := append([]OrderedLesson(nil), m.Lessons...)
		sort.SliceStable(lessons, func(a, b int) bool {
			return lessons[a].OrderIndex < lessons[b].OrderIndex
		})
		out[i] = OrderedModule{ID: m.ID, OrderIndex: m.OrderIndex, Lessons: lessons}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].OrderIndex < out[b].OrderIndex
	})
	return out
}
