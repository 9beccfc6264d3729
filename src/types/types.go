package types

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"createdAt,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updatedAt,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Role string

const (
	ROLE_CLIENT Role = "CLIENT"
	ROLE_AGENT  Role = "AGENT"
	ROLE_ADMIN  Role = "ADMIN"
)

type PackageStatus string

const (
	PACKAGE_PENDING  PackageStatus = "PENDING"
	PACKAGE_APPROVED PackageStatus = "APPROVED"
	PACKAGE_REJECTED PackageStatus = "REJECTED"
)

// ParsePackageStatus maps a path variable to a PackageStatus.
func ParsePackageStatus(s string) (PackageStatus, error) {
	switch PackageStatus(s) {
	case PACKAGE_PENDING, PACKAGE_APPROVED, PACKAGE_REJECTED:
		return PackageStatus(s), nil
	}
	return "", fmt.Errorf("unknown package status %q", s)
}

type TicketStatus string

const (
	TICKET_OPEN        TicketStatus = "OPEN"
	TICKET_IN_PROGRESS TicketStatus = "IN_PROGRESS"
	TICKET_RESOLVED    TicketStatus = "RESOLVED"
	TICKET_CLOSED      TicketStatus = "CLOSED"
)

func ParseTicketStatus(s string) (TicketStatus, error) {
	switch TicketStatus(s) {
	case TICKET_OPEN, TICKET_IN_PROGRESS, TICKET_RESOLVED, TICKET_CLOSED:
		return TicketStatus(s), nil
	}
	return "", fmt.Errorf("unknown ticket status %q", s)
}

type BookingStatus string

const (
	BOOKING_CONFIRMED BookingStatus = "CONFIRMED"
	BOOKING_COMPLETED BookingStatus = "COMPLETED"
	BOOKING_CANCELED  BookingStatus = "CANCELED"
)

// PAYMENT_PAID is the only payment status that counts toward revenue.
// Payment status is otherwise an opaque string, compared by exact match.
const PAYMENT_PAID = "PAID"

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreatePackageRequestBody struct {
	AgentID      uint    `json:"agentId" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description,omitempty"`
	Destination  string  `json:"destination" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Duration     uint    `json:"duration,omitempty"`
	MaxTravelers uint    `json:"maxTravelers,omitempty"`
}

type RaiseTicketRequestBody struct {
	UserID      uint   `json:"userId" binding:"required"`
	BookingID   *uint  `json:"bookingId,omitempty"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
}

type PaymentRequestBody struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentStatus string  `json:"paymentStatus" binding:"required"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

type CompanionRequestBody struct {
	FullName string `json:"fullName" binding:"required"`
	Age      uint   `json:"age,omitempty"`
}

type CreateBookingRequestBody struct {
	UserID          uint                   `json:"userId" binding:"required"`
	PackageID       uint                   `json:"packageId" binding:"required"`
	TravelDate      string                 `json:"travelDate" binding:"required,traveldate"`
	Travelers       uint                   `json:"travelers,omitempty"`
	TotalAmount     float64                `json:"totalAmount,omitempty"`
	Payment         *PaymentRequestBody    `json:"payment,omitempty"`
	ContactFullName string                 `json:"contactFullName,omitempty"`
	ContactEmail    string                 `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactNumber   string                 `json:"contactNumber,omitempty"`
	SpecialRequest  string                 `json:"specialRequest,omitempty"`
	Companions      []CompanionRequestBody `json:"companions,omitempty"`
}

type RegisterRequestBody struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      Role   `json:"role,omitempty" binding:"omitempty,oneof=CLIENT AGENT ADMIN"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
