package service

import (
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// A leitura da inscrição no caminho de escrita precisa carregar FOR UPDATE:
// duas conclusões simultâneas de aulas diferentes da mesma inscrição devem
// serializar, senão o recompute da segunda sobrescreve o da primeira e o
// percentual cacheado regride.
func TestLockForUpdate_RegistersRowLock(t *testing.T) {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db, Clauses: map[string]clause.Clause{}}

	tx := lockForUpdate(db)

	c, ok := tx.Statement.Clauses["FOR"]
	if !ok {
		t.Fatalf("lockForUpdate não registrou a cláusula de lock")
	}
	locking, ok := c.Expression.(clause.Locking)
	if !ok {
		t.Fatalf("cláusula registrada não é clause.Locking: %#v", c.Expression)
	}
	if locking.Strength != "UPDATE" {
		t.Errorf("Strength = %q, want %q", locking.Strength, "UPDATE")
	}
}
