package engine

import (
	"errors"
	"fmt"

	"hr-manager/internal/models"
)

// Sentinel errors, for use with errors.Is.
var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConcurrencyConflict is returned when a record changed between load
	// and save. Callers should reload and retry; the engine never retries.
	ErrConcurrencyConflict = errors.New("concurrent modification detected")

	// ErrBrokenAllocation is returned when an allocation references a
	// contract that cannot be resolved. This is a data-integrity failure and
	// is always surfaced, never suppressed.
	ErrBrokenAllocation = errors.New("allocation references a missing contract")
)

// DuplicateAllocationError is returned when an employee is already allocated
// to the contract.
type DuplicateAllocationError struct {
	EmployeeID uint
	ContractID uint
}

func (e *DuplicateAllocationError) Error() string {
	return fmt.Sprintf("employee %d is already allocated to contract %d", e.EmployeeID, e.ContractID)
}

// InvalidTransitionError is returned when a lifecycle operation does not
// match the allowed state graph.
type InvalidTransitionError struct {
	ContractID uint
	From, To   models.ContractStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("contract %d: invalid transition %s -> %s", e.ContractID, e.From, e.To)
}

// ConstraintViolationError is returned when a deletion is blocked because
// dependent records still reference the target.
type ConstraintViolationError struct {
	Entity     string
	ID         uint
	Dependents int64
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: %d dependent record(s) exist", e.Entity, e.ID, e.Dependents)
}
