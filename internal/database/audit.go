package database

import "hr-manager/internal/models"

// CreateAuditLog appends one row to the audit trail. Best effort: an audit
// failure never blocks the operation it describes.
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
