package models

import "time"

// EmployeeContract links one employee to one contract for a bounded period.
// The (EmployeeID, ContractID) pair is unique: an employee holds at most one
// allocation per contract. No soft delete here — a removed allocation is
// gone, so the pair can be re-linked later.
type EmployeeContract struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	EmployeeID uint `gorm:"not null;uniqueIndex:idx_employee_contract"`
	ContractID uint `gorm:"not null;uniqueIndex:idx_employee_contract"`

	StartDate      time.Time `gorm:"type:date"`
	DurationInDays int

	Employee *Employee
	Contract *Contract
}
