package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContractStatus string

const (
	ContractNotStarted ContractStatus = "not_started"
	ContractInProgress ContractStatus = "in_progress"
	ContractCompleted  ContractStatus = "completed"
	ContractOnHold     ContractStatus = "on_hold"
	ContractCancelled  ContractStatus = "cancelled"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractNotStarted, ContractInProgress, ContractCompleted, ContractOnHold, ContractCancelled:
		return true
	}
	return false
}

type Contract struct {
	gorm.Model
	ProjectID uint `gorm:"not null;index"`
	Project   *Project

	ServiceDescription string          `gorm:"size:200;not null"`
	StartDate          time.Time       `gorm:"type:date"`
	ExpirationDate     time.Time       `gorm:"type:date"`
	Value              decimal.Decimal `gorm:"type:decimal(18,2)"` // contracted value
	RealValue          decimal.Decimal `gorm:"type:decimal(18,2)"` // settled value, written on completion
	TermsAndConditions bool
	Status             ContractStatus `gorm:"type:varchar(20);not null"`
	IsOnStandby        bool

	EmployeeContracts []EmployeeContract
}

// DurationInDays is the whole number of days between start and expiration.
// Zero when the two dates coincide.
func (c *Contract) DurationInDays() int {
	return int(c.ExpirationDate.Sub(c.StartDate).Hours() / 24)
}

// Active reports whether the contract has not yet expired at the given moment.
func (c *Contract) Active(now time.Time) bool {
	return !c.ExpirationDate.Before(now)
}
