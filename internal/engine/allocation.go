package engine

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"hr-manager/internal/models"
)

// durationInDays truncates to whole days.
func durationInDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// AddAllocation links an employee to a contract. When an explicit end date is
// given, the allocation's duration derives from the start/end window passed
// here; otherwise it falls back to the contract's own duration. At most one
// allocation may exist per (employee, contract) pair.
func (eng *Engine) AddAllocation(employeeID, contractID uint, startDate time.Time, endDate *time.Time) (*models.EmployeeContract, error) {
	contract, err := eng.loadContract(contractID)
	if err != nil {
		return nil, fmt.Errorf("contract %d: %w", contractID, err)
	}

	var employee models.Employee
	if err := eng.db.First(&employee, employeeID).Error; err != nil {
		return nil, fmt.Errorf("employee %d: %w", employeeID, notFound(err))
	}

	var count int64
	err = eng.db.Model(&models.EmployeeContract{}).
		Where("employee_id = ? AND contract_id = ?", employeeID, contractID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &DuplicateAllocationError{EmployeeID: employeeID, ContractID: contractID}
	}

	duration := contract.DurationInDays()
	if endDate != nil {
		duration = durationInDays(startDate, *endDate)
	}

	allocation := models.EmployeeContract{
		EmployeeID:     employeeID,
		ContractID:     contractID,
		StartDate:      startDate,
		DurationInDays: duration,
	}
	if err := eng.db.Create(&allocation).Error; err != nil {
		return nil, err
	}
	return &allocation, nil
}

// RemoveAllocation deletes the link. A missing id is ErrNotFound; callers
// that want no-op semantics can ignore it.
func (eng *Engine) RemoveAllocation(id uint) error {
	var allocation models.EmployeeContract
	if err := eng.db.First(&allocation, id).Error; err != nil {
		return notFound(err)
	}
	return eng.db.Delete(&allocation).Error
}

// BulkAllocate links a set of employees to a contract at creation time, each
// allocation carrying the contract's own start date and duration. Any id
// already allocated fails the whole batch; nothing is applied partially.
func (eng *Engine) BulkAllocate(contractID uint, employeeIDs []uint) ([]models.EmployeeContract, error) {
	contract, err := eng.loadContract(contractID)
	if err != nil {
		return nil, fmt.Errorf("contract %d: %w", contractID, err)
	}

	allocations := make([]models.EmployeeContract, 0, len(employeeIDs))
	err = eng.db.Transaction(func(tx *gorm.DB) error {
		for _, employeeID := range employeeIDs {
			var employee models.Employee
			if err := tx.First(&employee, employeeID).Error; err != nil {
				return fmt.Errorf("employee %d: %w", employeeID, notFound(err))
			}

			var count int64
			err := tx.Model(&models.EmployeeContract{}).
				Where("employee_id = ? AND contract_id = ?", employeeID, contractID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return &DuplicateAllocationError{EmployeeID: employeeID, ContractID: contractID}
			}

			allocation := models.EmployeeContract{
				EmployeeID:     employeeID,
				ContractID:     contractID,
				StartDate:      contract.StartDate,
				DurationInDays: contract.DurationInDays(),
			}
			if err := tx.Create(&allocation).Error; err != nil {
				return err
			}
			allocations = append(allocations, allocation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return allocations, nil
}
