package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"hr-manager/internal/models"
)

// Allowed lifecycle moves. Completed and Cancelled are terminal.
var transitions = map[models.ContractStatus]map[models.ContractStatus]bool{
	models.ContractNotStarted: {
		models.ContractInProgress: true,
		models.ContractCancelled:  true,
	},
	models.ContractInProgress: {
		models.ContractOnHold:    true,
		models.ContractCompleted: true,
		models.ContractCancelled: true,
	},
	models.ContractOnHold: {
		models.ContractInProgress: true,
		models.ContractCancelled:  true,
	},
}

func canTransition(from, to models.ContractStatus) bool {
	return transitions[from][to]
}

func (eng *Engine) loadContract(id uint) (*models.Contract, error) {
	var contract models.Contract
	if err := eng.db.First(&contract, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &contract, nil
}

// applyTransition writes the given columns guarded by the status observed at
// load time. A lost guard means the row was either deleted (ErrNotFound) or
// moved by a concurrent request (ErrConcurrencyConflict).
func (eng *Engine) applyTransition(contract *models.Contract, updates map[string]interface{}) error {
	res := eng.db.Model(&models.Contract{}).
		Where("id = ? AND status = ?", contract.ID, contract.Status).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := eng.db.Model(&models.Contract{}).Where("id = ?", contract.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConcurrencyConflict
	}
	return eng.db.First(contract, contract.ID).Error
}

// InitServices marks the start of real work: stamps the actual start date
// and moves the contract from NotStarted to InProgress.
func (eng *Engine) InitServices(id uint, realStartDate time.Time) (*models.Contract, error) {
	contract, err := eng.loadContract(id)
	if err != nil {
		return nil, err
	}
	if !canTransition(contract.Status, models.ContractInProgress) {
		return nil, &InvalidTransitionError{ContractID: id, From: contract.Status, To: models.ContractInProgress}
	}
	err = eng.applyTransition(contract, map[string]interface{}{
		"start_date": realStartDate,
		"status":     models.ContractInProgress,
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// PauseServices puts a running contract on hold, or resumes a held one.
// Only the InProgress and OnHold states participate; repeating the current
// state just re-records the standby flag.
func (eng *Engine) PauseServices(id uint, isOnStandby bool) (*models.Contract, error) {
	contract, err := eng.loadContract(id)
	if err != nil {
		return nil, err
	}

	target := models.ContractInProgress
	if isOnStandby {
		target = models.ContractOnHold
	}

	if contract.Status != models.ContractInProgress && contract.Status != models.ContractOnHold {
		return nil, &InvalidTransitionError{ContractID: id, From: contract.Status, To: target}
	}

	err = eng.applyTransition(contract, map[string]interface{}{
		"is_on_standby": isOnStandby,
		"status":        target,
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// FinishContract closes out a running contract: the actual end date replaces
// the planned expiration, the settlement is captured in RealValue, and the
// status becomes Completed. The contracted Value is left untouched so budget
// deviation stays computable.
func (eng *Engine) FinishContract(id uint, realEndDate time.Time, realValue decimal.Decimal) (*models.Contract, error) {
	contract, err := eng.loadContract(id)
	if err != nil {
		return nil, err
	}
	if !canTransition(contract.Status, models.ContractCompleted) {
		return nil, &InvalidTransitionError{ContractID: id, From: contract.Status, To: models.ContractCompleted}
	}
	err = eng.applyTransition(contract, map[string]interface{}{
		"expiration_date": realEndDate,
		"real_value":      realValue,
		"status":          models.ContractCompleted,
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// CancelContract aborts a contract that has not finished.
func (eng *Engine) CancelContract(id uint) (*models.Contract, error) {
	contract, err := eng.loadContract(id)
	if err != nil {
		return nil, err
	}
	if !canTransition(contract.Status, models.ContractCancelled) {
		return nil, &InvalidTransitionError{ContractID: id, From: contract.Status, To: models.ContractCancelled}
	}
	err = eng.applyTransition(contract, map[string]interface{}{
		"status": models.ContractCancelled,
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// UpdateStatus sets the status directly, bypassing the transition graph.
// This is the administrative override; route-level authorization restricts
// it to admins. The target value itself is still validated.
func (eng *Engine) UpdateStatus(id uint, status models.ContractStatus) (*models.Contract, error) {
	if !status.Valid() {
		return nil, &InvalidTransitionError{ContractID: id, To: status}
	}
	contract, err := eng.loadContract(id)
	if err != nil {
		return nil, err
	}
	err = eng.applyTransition(contract, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}
