package models

import "time"

// User is an officer account. Rows are never updated or deleted.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"size:200;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
