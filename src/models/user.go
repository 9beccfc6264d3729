package models

import "odyssey/src/types"

type User struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Email     string     `gorm:"uniqueIndex" json:"email,omitempty"`
	Password  string     `json:"-"`
	Role      types.Role `gorm:"type:varchar(16);default:'CLIENT'" json:"role,omitempty"`
	Active    bool       `gorm:"default:true" json:"active"`

	Bookings []Booking       `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
	Packages []TravelPackage `gorm:"foreignKey:AgentID" json:"packages,omitempty"`

	types.Timestamps
}
