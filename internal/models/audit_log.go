package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "client", "project", "contract", ...
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "status_change", "delete", ...
	Details  string `gorm:"type:text"`
}
