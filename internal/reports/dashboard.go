package reports

import (
	"time"

	"gorm.io/gorm"

	"hr-manager/internal/models"
)

type DashboardSummary struct {
	ActiveProjects    int64 `json:"active_projects"`
	TotalEmployees    int64 `json:"total_employees"`
	ExpiringContracts int64 `json:"expiring_contracts"`
}

// Dashboard counts running projects, employees on the books, and contracts
// expiring within the next 30 days that are still live.
func Dashboard(db *gorm.DB, now time.Time) (*DashboardSummary, error) {
	var summary DashboardSummary

	err := db.Model(&models.Project{}).
		Where("status = ?", models.ProjectInProgress).
		Count(&summary.ActiveProjects).Error
	if err != nil {
		return nil, err
	}

	if err := db.Model(&models.Employee{}).Count(&summary.TotalEmployees).Error; err != nil {
		return nil, err
	}

	horizon := now.AddDate(0, 0, 30)
	err = db.Model(&models.Contract{}).
		Where("expiration_date BETWEEN ? AND ?", now, horizon).
		Where("status NOT IN ?", []models.ContractStatus{models.ContractCompleted, models.ContractCancelled}).
		Count(&summary.ExpiringContracts).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
