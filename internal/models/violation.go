package models

import (
	"fmt"
	"time"
)

type ViolationStatus string

const (
	StatusUnpaid ViolationStatus = "Unpaid"
	StatusPaid   ViolationStatus = "Paid"
)

// Toggled returns the opposite payment status.
func (s ViolationStatus) Toggled() ViolationStatus {
	if s == StatusPaid {
		return StatusUnpaid
	}
	return StatusPaid
}

// DateLayout is the format the add-violation form submits.
const DateLayout = "2006-01-02"

type Violation struct {
	ID            uint            `gorm:"primaryKey"`
	VehicleNumber string          `gorm:"size:20;not null;index"`
	ViolationType string          `gorm:"size:100;not null"`
	Location      string          `gorm:"size:100;not null"`
	Date          time.Time       `gorm:"not null"`
	FineAmount    float64         `gorm:"not null"`
	Status        ViolationStatus `gorm:"type:varchar(10);not null;default:Unpaid"`
	QRCodePath    *string         `gorm:"size:200"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (v Violation) IsPaid() bool { return v.Status == StatusPaid }

// QRPath returns the stored path or "" when the code has not been issued.
func (v Violation) QRPath() string {
	if v.QRCodePath == nil {
		return ""
	}
	return *v.QRCodePath
}

func (v Violation) FormattedFine() string { return fmt.Sprintf("%.2f", v.FineAmount) }

func (v Violation) FormattedDate() string { return v.Date.Format(DateLayout) }
