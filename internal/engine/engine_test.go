package engine_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hr-manager/internal/engine"
	"hr-manager/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Employee{},
		&models.Project{},
		&models.Contract{},
		&models.EmployeeContract{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

func newTestEngine(t *testing.T) (*engine.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return engine.New(db), db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createClient(t *testing.T, db *gorm.DB, name, nif string) *models.Client {
	t.Helper()
	client := models.Client{CompanyName: name, Nif: nif}
	require.NoError(t, db.Create(&client).Error)
	return &client
}

func createProject(t *testing.T, db *gorm.DB, clientID uint, name string) *models.Project {
	t.Helper()
	project := models.Project{
		ClientID:    clientID,
		ProjectName: name,
		StartDate:   date(2024, time.January, 1),
		DueDate:     date(2024, time.December, 31),
		Budget:      decimal.NewFromInt(100000),
		Status:      models.ProjectNotStarted,
	}
	require.NoError(t, db.Create(&project).Error)
	return &project
}

func createContract(t *testing.T, db *gorm.DB, projectID uint, start, expiration time.Time) *models.Contract {
	t.Helper()
	contract := models.Contract{
		ProjectID:          projectID,
		ServiceDescription: "consulting services",
		StartDate:          start,
		ExpirationDate:     expiration,
		Value:              decimal.NewFromInt(25000),
		Status:             models.ContractNotStarted,
	}
	require.NoError(t, db.Create(&contract).Error)
	return &contract
}

func createEmployee(t *testing.T, db *gorm.DB, name string) *models.Employee {
	t.Helper()
	employee := models.Employee{Name: name, Position: "Engineer"}
	require.NoError(t, db.Create(&employee).Error)
	return &employee
}

// newProjectFixture builds a client, project and one contract in one call.
func newProjectFixture(t *testing.T, db *gorm.DB) (*models.Project, *models.Contract) {
	t.Helper()
	client := createClient(t, db, "Acme Corp", "500100200")
	project := createProject(t, db, client.ID, "ERP rollout")
	contract := createContract(t, db, project.ID,
		date(2024, time.March, 1), date(2024, time.September, 1))
	return project, contract
}
