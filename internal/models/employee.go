package models

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	Name               string `gorm:"size:100;not null"`
	Position           string `gorm:"size:50;not null"`
	SpecializationArea string `gorm:"size:100"`

	EmployeeContracts []EmployeeContract
}

// TotalContracts counts every allocation ever made for the employee.
// Requires EmployeeContracts to be loaded.
func (e *Employee) TotalContracts() int {
	return len(e.EmployeeContracts)
}
