package models

import (
	"time"

	"odyssey/src/types"
)

// Payment status is stored as an opaque string. Revenue attribution
// matches it against types.PAYMENT_PAID exactly, case-sensitive.
type Payment struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	BookingID     uint       `json:"bookingId,omitempty"`
	Amount        float64    `json:"amount,omitempty"`
	PaymentStatus string     `gorm:"type:varchar(32)" json:"paymentStatus,omitempty"`
	PaymentMethod string     `gorm:"type:varchar(32)" json:"paymentMethod,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`

	types.Timestamps
}
