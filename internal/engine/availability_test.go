package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-manager/internal/engine"
	"hr-manager/internal/models"
)

func TestAvailable_NoAllocations(t *testing.T) {
	employee := &models.Employee{}

	available, err := engine.Available(employee, time.Now())
	require.NoError(t, err)
	assert.True(t, available)

	count, err := engine.ActiveAllocationCount(employee, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAvailable_ExpiredContract(t *testing.T) {
	// The only allocation points at a contract that expired yesterday.
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)

	yesterday := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Model(contract).Update("expiration_date", yesterday).Error)

	employee := createEmployee(t, db, "Ana Silva")
	_, err := eng.AddAllocation(employee.ID, contract.ID, contract.StartDate, nil)
	require.NoError(t, err)

	loaded, err := eng.LoadEmployee(employee.ID)
	require.NoError(t, err)

	available, err := engine.Available(loaded, time.Now())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestAvailable_ActiveContract(t *testing.T) {
	// The allocation's contract expires tomorrow, so the employee is taken.
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)

	tomorrow := time.Now().Add(24 * time.Hour)
	require.NoError(t, db.Model(contract).Update("expiration_date", tomorrow).Error)

	employee := createEmployee(t, db, "Ana Silva")
	_, err := eng.AddAllocation(employee.ID, contract.ID, contract.StartDate, nil)
	require.NoError(t, err)

	loaded, err := eng.LoadEmployee(employee.ID)
	require.NoError(t, err)

	available, err := engine.Available(loaded, time.Now())
	require.NoError(t, err)
	assert.False(t, available)

	count, err := engine.ActiveAllocationCount(loaded, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAvailable_AgreesWithActiveCount(t *testing.T) {
	// Availability is defined as "zero active allocations", never anything
	// looser. One expired and one running contract -> unavailable.
	eng, db := newTestEngine(t)
	project, expired := newProjectFixture(t, db)

	yesterday := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Model(expired).Update("expiration_date", yesterday).Error)

	running := createContract(t, db, project.ID,
		date(2024, time.March, 1), time.Now().Add(48*time.Hour))

	employee := createEmployee(t, db, "Bruno Costa")
	_, err := eng.AddAllocation(employee.ID, expired.ID, expired.StartDate, nil)
	require.NoError(t, err)
	_, err = eng.AddAllocation(employee.ID, running.ID, running.StartDate, nil)
	require.NoError(t, err)

	loaded, err := eng.LoadEmployee(employee.ID)
	require.NoError(t, err)

	count, err := engine.ActiveAllocationCount(loaded, time.Now())
	require.NoError(t, err)
	available, err := engine.Available(loaded, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, count == 0, available)
}

func TestAvailable_BrokenContractReference(t *testing.T) {
	// An allocation whose contract cannot be resolved is a data-integrity
	// failure, not something to skip over.
	employee := &models.Employee{
		EmployeeContracts: []models.EmployeeContract{
			{EmployeeID: 1, ContractID: 99, Contract: nil},
		},
	}

	_, err := engine.Available(employee, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrBrokenAllocation)
}

func TestAvailableEmployees(t *testing.T) {
	eng, db := newTestEngine(t)
	_, contract := newProjectFixture(t, db)

	tomorrow := time.Now().Add(24 * time.Hour)
	require.NoError(t, db.Model(contract).Update("expiration_date", tomorrow).Error)

	busy := createEmployee(t, db, "Busy Bee")
	free := createEmployee(t, db, "Free Bird")

	_, err := eng.AddAllocation(busy.ID, contract.ID, contract.StartDate, nil)
	require.NoError(t, err)

	employees, err := eng.AvailableEmployees(time.Now())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, free.ID, employees[0].ID)
}

func TestLoadEmployee_NotFound(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.LoadEmployee(42)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}
