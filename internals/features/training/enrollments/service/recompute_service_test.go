package service

import "testing"

func TestRecomputeProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"curso sem aulas", 0, 0, 0},
		{"curso sem aulas com lixo no cache", 3, 0, 0},
		{"nada concluído", 0, 10, 0},
		{"metade", 5, 10, 50},
		{"floor em dízima", 1, 3, 33},
		{"floor dois terços", 2, 3, 66},
		{"completo", 3, 3, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecomputeProgress(tt.completed, tt.total); got != tt.want {
				t.Errorf("RecomputeProgress(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestRecomputeProgress_Idempotent(t *testing.T) {
	a := RecomputeProgress(4, 7)
	b := RecomputeProgress(4, 7)
	if a != b {
		t.Fatalf("mesmo conjunto deveria dar o mesmo percentual: %d != %d", a, b)
	}
}

func TestRecomputeProgress_MonotonicOnCompletion(t *testing.T) {
	prev := RecomputeProgress(0, 9)
	for completed := 1; completed <= 9; completed++ {
		cur := RecomputeProgress(completed, 9)
		if cur < prev {
			t.Fatalf("percentual caiu de %d para %d ao concluir a aula %d", prev, cur, completed)
		}
		prev = cur
	}
	if prev != 100 {
		t.Fatalf("todas concluídas deveria dar 100, deu %d", prev)
	}
}
