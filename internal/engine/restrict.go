package engine

import "hr-manager/internal/models"

// DeleteEmployee removes an employee, but only when no allocation references
// them. Restrict-on-delete: freeing the employee means removing their
// allocations first.
func (eng *Engine) DeleteEmployee(id uint) error {
	var employee models.Employee
	if err := eng.db.First(&employee, id).Error; err != nil {
		return notFound(err)
	}

	var count int64
	err := eng.db.Model(&models.EmployeeContract{}).
		Where("employee_id = ?", id).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return &ConstraintViolationError{Entity: "employee", ID: id, Dependents: count}
	}
	return eng.db.Delete(&employee).Error
}

// DeleteClient removes a client, but only when no project references it.
func (eng *Engine) DeleteClient(id uint) error {
	var client models.Client
	if err := eng.db.First(&client, id).Error; err != nil {
		return notFound(err)
	}

	var count int64
	err := eng.db.Model(&models.Project{}).
		Where("client_id = ?", id).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return &ConstraintViolationError{Entity: "client", ID: id, Dependents: count}
	}
	return eng.db.Delete(&client).Error
}
