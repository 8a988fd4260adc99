package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCancelled  ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted, ProjectOnHold, ProjectCancelled:
		return true
	}
	return false
}

type Project struct {
	gorm.Model
	ClientID uint `gorm:"not null;index"`
	Client   *Client

	ProjectName string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	StartDate   time.Time       `gorm:"type:date"`
	DueDate     time.Time       `gorm:"type:date"`
	Budget      decimal.Decimal `gorm:"type:decimal(18,2)"`
	Status      ProjectStatus   `gorm:"type:varchar(20);not null"`

	Contracts []Contract
}

// PlannedDurationInDays is the whole number of days between start and due date.
func (p *Project) PlannedDurationInDays() int {
	return int(p.DueDate.Sub(p.StartDate).Hours() / 24)
}
