package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique_violation direto", &pq.Error{Code: "23505"}, true},
		{"unique_violation embrulhado", fmt.Errorf("create: %w", &pq.Error{Code: "23505"}), true},
		{"outro erro do postgres", &pq.Error{Code: "23503"}, false},
		{"erro comum", errors.New("sem conexão"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
