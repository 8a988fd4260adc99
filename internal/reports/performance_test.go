package reports_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hr-manager/internal/models"
	"hr-manager/internal/reports"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:reports_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Client{},
		&models.Employee{},
		&models.Project{},
		&models.Contract{},
		&models.EmployeeContract{},
	)
	require.NoError(t, err)
	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedClientProject(t *testing.T, db *gorm.DB, company, nif, projectName string) (*models.Client, *models.Project) {
	t.Helper()

	client := models.Client{CompanyName: company, Nif: nif}
	require.NoError(t, db.Create(&client).Error)

	project := models.Project{
		ClientID:    client.ID,
		ProjectName: projectName,
		StartDate:   date(2024, time.January, 1),
		DueDate:     date(2024, time.April, 10), // 100 planned days
		Budget:      decimal.NewFromInt(50000),
		Status:      models.ProjectInProgress,
	}
	require.NoError(t, db.Create(&project).Error)
	return &client, &project
}

func TestProjectPerformanceReport_CostAndDeviation(t *testing.T) {
	db := newTestDB(t)
	_, project := seedClientProject(t, db, "Acme Corp", "500100200", "ERP rollout")

	// Completed contract counts at its settlement, the running one at its
	// contracted value.
	completed := models.Contract{
		ProjectID:          project.ID,
		ServiceDescription: "phase one",
		StartDate:          date(2024, time.January, 1),
		ExpirationDate:     date(2024, time.February, 1),
		Value:              decimal.NewFromInt(20000),
		RealValue:          decimal.NewFromInt(26000),
		Status:             models.ContractCompleted,
	}
	running := models.Contract{
		ProjectID:          project.ID,
		ServiceDescription: "phase two",
		StartDate:          date(2024, time.February, 1),
		ExpirationDate:     date(2024, time.April, 1),
		Value:              decimal.NewFromInt(30000),
		Status:             models.ContractInProgress,
	}
	require.NoError(t, db.Create(&completed).Error)
	require.NoError(t, db.Create(&running).Error)

	now := date(2024, time.February, 20) // 50 of 100 planned days spent
	rows, err := reports.ProjectPerformanceReport(db, nil, "", now)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "ERP rollout", row.ProjectName)
	assert.Equal(t, "Acme Corp", row.ClientName)
	assert.True(t, row.RealCost.Equal(decimal.NewFromInt(56000)))
	assert.True(t, row.Deviation.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, 100, row.PlannedDays)
	assert.Equal(t, 50, row.ElapsedDays)
	assert.Equal(t, 112, row.CostPercent)
	assert.Equal(t, 50, row.TimePercent)
}

func TestProjectPerformanceReport_ClientScoping(t *testing.T) {
	db := newTestDB(t)
	mine, _ := seedClientProject(t, db, "Acme Corp", "500100200", "ERP rollout")
	seedClientProject(t, db, "Globex", "500300400", "CRM migration")

	rows, err := reports.ProjectPerformanceReport(db, &mine.ID, "", date(2024, time.March, 1))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ERP rollout", rows[0].ProjectName)
}

func TestProjectPerformanceReport_Search(t *testing.T) {
	db := newTestDB(t)
	seedClientProject(t, db, "Acme Corp", "500100200", "ERP rollout")
	seedClientProject(t, db, "Globex", "500300400", "CRM migration")

	rows, err := reports.ProjectPerformanceReport(db, nil, "crm", date(2024, time.March, 1))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CRM migration", rows[0].ProjectName)
}

func TestProjectPerformanceReport_ZeroBudget(t *testing.T) {
	db := newTestDB(t)
	_, project := seedClientProject(t, db, "Acme Corp", "500100200", "probono")
	require.NoError(t, db.Model(project).Update("budget", decimal.Zero).Error)

	rows, err := reports.ProjectPerformanceReport(db, nil, "", date(2024, time.March, 1))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].CostPercent)
}

func TestDashboard(t *testing.T) {
	db := newTestDB(t)
	_, project := seedClientProject(t, db, "Acme Corp", "500100200", "ERP rollout")

	employee := models.Employee{Name: "Ana Silva", Position: "Engineer"}
	require.NoError(t, db.Create(&employee).Error)

	now := date(2024, time.March, 1)
	soon := models.Contract{
		ProjectID:          project.ID,
		ServiceDescription: "expiring soon",
		StartDate:          date(2024, time.January, 1),
		ExpirationDate:     now.AddDate(0, 0, 10),
		Status:             models.ContractInProgress,
	}
	far := models.Contract{
		ProjectID:          project.ID,
		ServiceDescription: "long runner",
		StartDate:          date(2024, time.January, 1),
		ExpirationDate:     now.AddDate(0, 6, 0),
		Status:             models.ContractInProgress,
	}
	done := models.Contract{
		ProjectID:          project.ID,
		ServiceDescription: "already settled",
		StartDate:          date(2024, time.January, 1),
		ExpirationDate:     now.AddDate(0, 0, 5),
		Status:             models.ContractCompleted,
	}
	require.NoError(t, db.Create(&soon).Error)
	require.NoError(t, db.Create(&far).Error)
	require.NoError(t, db.Create(&done).Error)

	summary, err := reports.Dashboard(db, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, summary.ActiveProjects)
	assert.EqualValues(t, 1, summary.TotalEmployees)
	assert.EqualValues(t, 1, summary.ExpiringContracts)
}
