// Package reports aggregates project and contract data into read-only
// report rows. It consumes the same entities as the engine but never calls
// into it.
package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hr-manager/internal/models"
)

type ProjectPerformance struct {
	ProjectID   uint            `json:"project_id"`
	ProjectName string          `json:"project_name"`
	ClientName  string          `json:"client_name"`
	Budget      decimal.Decimal `json:"budget"`
	RealCost    decimal.Decimal `json:"real_cost"`
	Deviation   decimal.Decimal `json:"deviation"` // real cost minus budget
	PlannedDays int             `json:"planned_days"`
	ElapsedDays int             `json:"elapsed_days"`
	CostPercent int             `json:"cost_percent"`
	TimePercent int             `json:"time_percent"`
}

// ProjectPerformanceReport compares each project's budget against the cost
// of its contracts and its planned duration against time already spent.
// A non-nil clientID restricts the report to that client's projects (how
// client-role users are scoped); search filters on project name.
//
// Cost rule: a completed contract contributes its settled RealValue, any
// other contract its contracted Value.
func ProjectPerformanceReport(db *gorm.DB, clientID *uint, search string, now time.Time) ([]ProjectPerformance, error) {
	query := db.Preload("Contracts").Preload("Client").Order("project_name asc")
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}
	if search != "" {
		query = query.Where("LOWER(project_name) LIKE LOWER(?)", "%"+search+"%")
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}

	rows := make([]ProjectPerformance, 0, len(projects))
	for i := range projects {
		p := &projects[i]

		realCost := decimal.Zero
		for j := range p.Contracts {
			c := &p.Contracts[j]
			if c.Status == models.ContractCompleted {
				realCost = realCost.Add(c.RealValue)
			} else {
				realCost = realCost.Add(c.Value)
			}
		}

		elapsed := int(now.Sub(p.StartDate).Hours() / 24)
		if elapsed < 0 {
			elapsed = 0
		}

		row := ProjectPerformance{
			ProjectID:   p.ID,
			ProjectName: p.ProjectName,
			Budget:      p.Budget,
			RealCost:    realCost,
			Deviation:   realCost.Sub(p.Budget),
			PlannedDays: p.PlannedDurationInDays(),
			ElapsedDays: elapsed,
		}
		if p.Client != nil {
			row.ClientName = p.Client.CompanyName
		}
		if p.Budget.IsPositive() {
			row.CostPercent = int(realCost.Div(p.Budget).Mul(decimal.NewFromInt(100)).IntPart())
		}
		if row.PlannedDays > 0 {
			row.TimePercent = elapsed * 100 / row.PlannedDays
		}
		rows = append(rows, row)
	}
	return rows, nil
}
