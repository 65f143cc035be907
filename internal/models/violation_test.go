package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViolationStatus_Toggled(t *testing.T) {
	assert.Equal(t, StatusPaid, StatusUnpaid.Toggled())
	assert.Equal(t, StatusUnpaid, StatusPaid.Toggled())

	for _, s := range []ViolationStatus{StatusUnpaid, StatusPaid} {
		assert.Equal(t, s, s.Toggled().Toggled(), "toggle twice must restore %s", s)
	}
}

func TestViolation_Helpers(t *testing.T) {
	v := Violation{
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		FineAmount: 500,
		Status:     StatusUnpaid,
	}

	assert.Equal(t, "", v.QRPath())
	assert.Equal(t, "500.00", v.FormattedFine())
	assert.Equal(t, "2024-05-01", v.FormattedDate())
	assert.False(t, v.IsPaid())

	p := "qr_codes/7.png"
	v.QRCodePath = &p
	v.Status = StatusPaid
	assert.Equal(t, "qr_codes/7.png", v.QRPath())
	assert.True(t, v.IsPaid())
}
