package engine

import (
	"fmt"
	"time"

	"hr-manager/internal/models"
)

// ActiveAllocationCount counts the employee's allocations whose contract has
// not expired at the given moment. The employee's EmployeeContracts must be
// loaded together with each contract; an allocation whose contract cannot be
// resolved yields ErrBrokenAllocation.
func ActiveAllocationCount(e *models.Employee, now time.Time) (int, error) {
	active := 0
	for i := range e.EmployeeContracts {
		ec := &e.EmployeeContracts[i]
		if ec.Contract == nil {
			return 0, fmt.Errorf("employee %d, allocation %d: %w", e.ID, ec.ID, ErrBrokenAllocation)
		}
		if ec.Contract.Active(now) {
			active++
		}
	}
	return active, nil
}

// Available reports whether the employee is free for a new allocation: true
// iff none of their allocations point at an unexpired contract. An employee
// with no allocations is trivially available.
func Available(e *models.Employee, now time.Time) (bool, error) {
	active, err := ActiveAllocationCount(e, now)
	if err != nil {
		return false, err
	}
	return active == 0, nil
}

// LoadEmployee fetches an employee with allocations and their contracts,
// ready for availability evaluation.
func (eng *Engine) LoadEmployee(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := eng.db.Preload("EmployeeContracts.Contract").First(&employee, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &employee, nil
}

// AvailableEmployees returns every employee that is free for a new
// allocation at the given moment.
func (eng *Engine) AvailableEmployees(now time.Time) ([]models.Employee, error) {
	var employees []models.Employee
	err := eng.db.Preload("EmployeeContracts.Contract").Order("name asc").Find(&employees).Error
	if err != nil {
		return nil, err
	}

	free := make([]models.Employee, 0, len(employees))
	for i := range employees {
		ok, err := Available(&employees[i], now)
		if err != nil {
			return nil, err
		}
		if ok {
			free = append(free, employees[i])
		}
	}
	return free, nil
}
