// Package engine holds the allocation and lifecycle rules for contracts:
// which employees may be linked to which contracts, how a contract's status
// advances, and how deletions cascade through project -> contract ->
// allocation without leaving orphans. Handlers call into it with entity ids;
// it reads and writes through gorm but owns the decision logic itself.
package engine

import (
	"errors"

	"gorm.io/gorm"
)

type Engine struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// notFound maps gorm's record-not-found to the engine's error taxonomy.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
