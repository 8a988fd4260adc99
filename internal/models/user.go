package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProjectManager Role = "project_manager"
	RoleEmployee       Role = "employee"
	RoleClient         Role = "client"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"not null"`
	FullName     string `gorm:"size:255"`
	Role         Role   `gorm:"type:varchar(20);not null"`

	// Set only for client-role accounts; scopes reporting to their company.
	ClientID *uint
	Client   *Client
}
