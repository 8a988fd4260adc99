package models

import "gorm.io/gorm"

type Client struct {
	gorm.Model
	CompanyName string `gorm:"size:100;not null"`
	Nif         string `gorm:"size:9;uniqueIndex;not null"` // tax identifier
	Email       string `gorm:"size:255"`

	Projects []Project
}
