package models

import "time"

const (
	AuditEntityViolation = "violation"

	AuditActionCreate       = "create"
	AuditActionStatusChange = "status_change"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	UserID uint
	User   User `gorm:"constraint:false"`

	Entity   string `gorm:"size:50;not null"` // "violation"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "status_change"
	Details  string `gorm:"type:text"`
}
