package service

import (
	"testing"

	"github.com/google/uuid"
)

func newOutline() (modules []OrderedModule, l1, l2, l3 uuid.UUID) {
	l1, l2, l3 = uuid.New(), uuid.New(), uuid.New()
	modules = []OrderedModule{
		{
			ID:         uuid.New(),
			OrderIndex: 0,
			Lessons: []OrderedLesson{
				{ID: l1, OrderIndex: 0},
				{ID: l2, OrderIndex: 1},
			},
		},
		{
			ID:         uuid.New(),
			OrderIndex: 1,
			Lessons: []OrderedLesson{
				{ID: l3, OrderIndex: 0},
			},
		},
	}
	return
}

func TestIsLessonUnlocked_Progression(t *testing.T) {
	modules, l1, l2, l3 := newOutline()

	none := map[uuid.UUID]bool{}
	afterL1 := map[uuid.UUID]bool{l1: true}
	afterL1L2 := map[uuid.UUID]bool{l1: true, l2: true}

	tests := []struct {
		name      string
		lesson    uuid.UUID
		completed map[uuid.UUID]bool
		want      bool
	}{
		{name: "primeira aula sempre liberada", lesson: l1, completed: none, want: true},
		{name: "segunda aula bloqueada sem progresso", lesson: l2, completed: none, want: false},
		{name: "modulo 2 bloqueado sem progresso", lesson: l3, completed: none, want: false},
		{name: "segunda aula libera após primeira", lesson: l2, completed: afterL1, want: true},
		{name: "modulo 2 segue bloqueado com modulo 1 parcial", lesson: l3, completed: afterL1, want: false},
		{name: "modulo 2 libera com modulo 1 completo", lesson: l3, completed: afterL1L2, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLessonUnlocked(tt.lesson, modules, tt.completed, true); got != tt.want {
				t.Errorf("IsLessonUnlocked() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLessonUnlocked_PreviewDisablesLock(t *testing.T) {
	modules, _, l2, l3 := newOutline()
	for _, lesson := range []uuid.UUID{l2, l3} {
		if !IsLessonUnlocked(lesson, modules, map[uuid.UUID]bool{}, false) {
			t.Errorf("com progressionLock=false toda aula deveria estar liberada")
		}
	}
}

func TestIsLessonUnlocked_FailClosed(t *testing.T) {
	modules, _, _, _ := newOutline()

	// aula que não pertence a nenhum módulo informado → bloqueada
	if IsLessonUnlocked(uuid.New(), modules, map[uuid.UUID]bool{}, true) {
		t.Errorf("aula fora do catálogo deveria ficar bloqueada")
	}

	// lista de módulos vazia → nada liberado
	if IsLessonUnlocked(uuid.New(), nil, map[uuid.UUID]bool{}, true) {
		t.Errorf("sem módulos nada deveria estar liberado")
	}
}

func TestIsLessonUnlocked_EmptyModuleIsVacuouslyComplete(t *testing.T) {
	first := uuid.New()
	after := uuid.New()
	modules := []OrderedModule{
		{ID: uuid.New(), OrderIndex: 0, Lessons: []OrderedLesson{{ID: first, OrderIndex: 0}}},
		{ID: uuid.New(), OrderIndex: 1, Lessons: nil}, // módulo sem aulas
		{ID: uuid.New(), OrderIndex: 2, Lessons: []OrderedLesson{{ID: after, OrderIndex: 0}}},
	}

	// módulo vazio não bloqueia o seguinte
	if !IsLessonUnlocked(after, modules, map[uuid.UUID]bool{}, true) {
		t.Errorf("módulo vazio deveria contar como concluído")
	}
}

func TestIsLessonUnlocked_ReorderTakesEffectImmediately(t *testing.T) {
	modules, l1, l2, _ := newOutline()

	// troca l1 e l2 de posição dentro do módulo 1
	modules[0].Lessons[0].OrderIndex = 1
	modules[0].Lessons[1].OrderIndex = 0

	if !IsLessonUnlocked(l2, modules, map[uuid.UUID]bool{}, true) {
		t.Errorf("após reordenar, l2 virou a primeira aula e deveria estar liberada")
	}
	if IsLessonUnlocked(l1, modules, map[uuid.UUID]bool{}, true) {
		t.Errorf("após reordenar, l1 depende de l2 e deveria estar bloqueada")
	}
}

func TestUnlockedLessons_MatchesPredicate(t *testing.T) {
	modules, l1, l2, l3 := newOutline()
	completed := map[uuid.UUID]bool{l1: true}

	set := UnlockedLessons(modules, completed, true)
	for _, tc := range []struct {
		lesson uuid.UUID
		want   bool
	}{{l1, true}, {l2, true}, {l3, false}} {
		if set[tc.lesson] != tc.want {
			t.Errorf("UnlockedLessons[%s] = %v, want %v", tc.lesson, set[tc.lesson], tc.want)
		}
		if got := IsLessonUnlocked(tc.lesson, modules, completed, true); got != tc.want {
			t.Errorf("IsLessonUnlocked(%s) = %v, want %v", tc.lesson, got, tc.want)
		}
	}
}
