package engine

import (
	"gorm.io/gorm"

	"hr-manager/internal/models"
)

// ProjectDeletionPlan lists every record that must go before the project
// can, in execution order: allocations first, then contracts, then the
// project row itself.
type ProjectDeletionPlan struct {
	EmployeeContractIDs []uint
	ContractIDs         []uint
	ProjectID           uint
}

// ContractDeletionPlan is the same pattern one level shallower.
type ContractDeletionPlan struct {
	EmployeeContractIDs []uint
	ContractID          uint
}

// PlanProjectDeletion computes the ordered cascade for a project. It only
// plans; nothing is deleted.
func (eng *Engine) PlanProjectDeletion(projectID uint) (*ProjectDeletionPlan, error) {
	var project models.Project
	err := eng.db.Preload("Contracts.EmployeeContracts").First(&project, projectID).Error
	if err != nil {
		return nil, notFound(err)
	}

	plan := &ProjectDeletionPlan{ProjectID: project.ID}
	for i := range project.Contracts {
		contract := &project.Contracts[i]
		for j := range contract.EmployeeContracts {
			plan.EmployeeContractIDs = append(plan.EmployeeContractIDs, contract.EmployeeContracts[j].ID)
		}
		plan.ContractIDs = append(plan.ContractIDs, contract.ID)
	}
	return plan, nil
}

// PlanContractDeletion computes the ordered cascade for a single contract.
func (eng *Engine) PlanContractDeletion(contractID uint) (*ContractDeletionPlan, error) {
	var contract models.Contract
	err := eng.db.Preload("EmployeeContracts").First(&contract, contractID).Error
	if err != nil {
		return nil, notFound(err)
	}

	plan := &ContractDeletionPlan{ContractID: contract.ID}
	for i := range contract.EmployeeContracts {
		plan.EmployeeContractIDs = append(plan.EmployeeContractIDs, contract.EmployeeContracts[i].ID)
	}
	return plan, nil
}

// DeleteProject executes the project's deletion plan inside one transaction.
// Either the whole cascade commits or none of it does.
func (eng *Engine) DeleteProject(projectID uint) (*ProjectDeletionPlan, error) {
	plan, err := eng.PlanProjectDeletion(projectID)
	if err != nil {
		return nil, err
	}

	err = eng.db.Transaction(func(tx *gorm.DB) error {
		if len(plan.EmployeeContractIDs) > 0 {
			if err := tx.Delete(&models.EmployeeContract{}, plan.EmployeeContractIDs).Error; err != nil {
				return err
			}
		}
		if len(plan.ContractIDs) > 0 {
			if err := tx.Delete(&models.Contract{}, plan.ContractIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Project{}, plan.ProjectID).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// DeleteContract executes the contract's deletion plan inside one
// transaction.
func (eng *Engine) DeleteContract(contractID uint) (*ContractDeletionPlan, error) {
	plan, err := eng.PlanContractDeletion(contractID)
	if err != nil {
		return nil, err
	}

	err = eng.db.Transaction(func(tx *gorm.DB) error {
		if len(plan.EmployeeContractIDs) > 0 {
			if err := tx.Delete(&models.EmployeeContract{}, plan.EmployeeContractIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Contract{}, plan.ContractID).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}
