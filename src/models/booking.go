package models

import (
	"time"

	"odyssey/src/types"
)

type Booking struct {
	ID              uint                `gorm:"primarykey" json:"bookingId"`
	UserID          uint                `json:"userId,omitempty"`
	PackageID       uint                `json:"packageId,omitempty"`
	TravelDate      *time.Time          `json:"travelDate,omitempty"`
	Travelers       uint                `json:"travelers,omitempty"`
	TotalAmount     float64             `json:"totalAmount,omitempty"`
	Status          types.BookingStatus `gorm:"type:varchar(16);default:'CONFIRMED'" json:"status,omitempty"`
	ContactFullName string              `json:"contactFullName,omitempty"`
	ContactEmail    string              `json:"contactEmail,omitempty"`
	ContactNumber   string              `json:"contactNumber,omitempty"`
	SpecialRequest  string              `gorm:"type:text" json:"specialRequest,omitempty"`

	User          *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TravelPackage *TravelPackage `gorm:"foreignKey:PackageID" json:"travelPackage,omitempty"`
	Payment       *Payment       `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
	Companions    []Companion    `gorm:"foreignKey:BookingID" json:"companions,omitempty"`

	types.Timestamps
}

type Companion struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	BookingID uint   `json:"bookingId,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Age       uint   `json:"age,omitempty"`

	types.Timestamps
}
