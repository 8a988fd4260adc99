package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-manager/internal/engine"
	"hr-manager/internal/models"
)

func TestAddAllocation_ExplicitWindow(t *testing.T) {
	// An explicit start/end window is authoritative for the duration.
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)
	employee := createEmployee(t, db, "Ana Silva")

	start := date(2024, time.January, 1)
	end := date(2024, time.April, 1)
	allocation, err := eng.AddAllocation(employee.ID, contract.ID, start, &end)
	require.NoError(t, err)

	assert.Equal(t, 91, allocation.DurationInDays)
	assert.True(t, allocation.StartDate.Equal(start))
	assert.Equal(t, employee.ID, allocation.EmployeeID)
	assert.Equal(t, contract.ID, allocation.ContractID)
}

func TestAddAllocation_FallsBackToContractDuration(t *testing.T) {
	// Without a window the allocation inherits the contract's own duration.
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)
	employee := createEmployee(t, db, "Ana Silva")

	allocation, err := eng.AddAllocation(employee.ID, contract.ID, contract.StartDate, nil)
	require.NoError(t, err)
	assert.Equal(t, contract.DurationInDays(), allocation.DurationInDays)
}

func TestAddAllocation_ZeroLengthWindow(t *testing.T) {
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)
	employee := createEmployee(t, db, "Ana Silva")

	day := date(2024, time.June, 1)
	allocation, err := eng.AddAllocation(employee.ID, contract.ID, day, &day)
	require.NoError(t, err)
	assert.Equal(t, 0, allocation.DurationInDays)
}

func TestAddAllocation_DuplicatePair(t *testing.T) {
	// Second allocation for the same (employee, contract) pair is rejected.
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)
	employee := createEmployee(t, db, "Ana Silva")

	_, err := eng.AddAllocation(employee.ID, contract.ID, contract.StartDate, nil)
	require.NoError(t, err)

	_, err = eng.AddAllocation(employee.ID, contract.ID, contract.StartDate, nil)
	var dup *engine.DuplicateAllocationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, employee.ID, dup.EmployeeID)
	assert.Equal(t, contract.ID, dup.ContractID)
}

func TestAddAllocation_UnknownContract(t *testing.T) {
	eng, db := newTestEngine(t)
	employee := createEmployee(t, db, "Ana Silva")

	_, err := eng.AddAllocation(employee.ID, 999, date(2024, time.January, 1), nil)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestAddAllocation_UnknownEmployee(t *testing.T) {
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)

	_, err := eng.AddAllocation(999, contract.ID, contract.StartDate, nil)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestRemoveAllocation(t *testing.T) {
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)
	employee := createEmployee(t, db, "Ana Silva")

	allocation, err := eng.AddAllocation(employee.ID, contract.ID, contract.StartDate, nil)
	require.NoError(t, err)

	require.NoError(t, eng.RemoveAllocation(allocation.ID))

	var count int64
	require.NoError(t, db.Model(&models.EmployeeContract{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Removing again reports the id as gone.
	assert.ErrorIs(t, eng.RemoveAllocation(allocation.ID), engine.ErrNotFound)
}

func TestBulkAllocate(t *testing.T) {
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)
	first := createEmployee(t, db, "Ana Silva")
	second := createEmployee(t, db, "Bruno Costa")

	allocations, err := eng.BulkAllocate(contract.ID, []uint{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	for _, a := range allocations {
		assert.Equal(t, contract.DurationInDays(), a.DurationInDays)
		assert.True(t, a.StartDate.Equal(contract.StartDate))
	}
}

func TestBulkAllocate_DuplicateFailsWholeBatch(t *testing.T) {
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)
	taken := createEmployee(t, db, "Ana Silva")
	fresh := createEmployee(t, db, "Bruno Costa")

	_, err := eng.AddAllocation(taken.ID, contract.ID, contract.StartDate, nil)
	require.NoError(t, err)

	_, err = eng.BulkAllocate(contract.ID, []uint{fresh.ID, taken.ID})
	var dup *engine.DuplicateAllocationError
	require.ErrorAs(t, err, &dup)

	// The batch is all-or-nothing: the fresh employee was not linked either.
	var count int64
	require.NoError(t, db.Model(&models.EmployeeContract{}).
		Where("employee_id = ?", fresh.ID).
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
