package service

import (
	"strings"
	"testing"
)

func TestNewCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := newCode()
		if err != nil {
			t.Fatalf("newCode() err = %v", err)
		}
		if !strings.HasPrefix(code, "CERT-") {
			t.Fatalf("código sem prefixo CERT-: %q", code)
		}
		if len(code) != len("CERT-")+16 {
			t.Fatalf("código com tamanho inesperado: %q", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("código deveria ser maiúsculo: %q", code)
		}
		if seen[code] {
			t.Fatalf("código repetido em 100 emissões: %q", code)
		}
		seen[code] = true
	}
}
