package models

import (
	"time"

	"odyssey/src/types"
)

// SupportTicket keeps its own timestamp pair instead of the shared
// Timestamps embed: lastUpdatedAt is refreshed on every status
// transition by the workflow, not by the store.
type SupportTicket struct {
	ID            uint               `gorm:"primarykey" json:"ticketId"`
	UserID        uint               `json:"userId,omitempty"`
	BookingID     *uint              `json:"bookingId,omitempty"`
	Subject       string             `json:"subject,omitempty"`
	Description   string             `gorm:"type:text" json:"description,omitempty"`
	Priority      string             `gorm:"type:varchar(16)" json:"priority,omitempty"`
	Status        types.TicketStatus `gorm:"type:varchar(16);default:'OPEN'" json:"status,omitempty"`
	CreatedAt     time.Time          `json:"createdAt,omitempty"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt,omitempty"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
