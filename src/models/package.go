package models

import "odyssey/src/types"

type TravelPackage struct {
	ID           uint                `gorm:"primarykey" json:"packageId"`
	Title        string              `json:"title,omitempty"`
	Description  string              `gorm:"type:text" json:"description,omitempty"`
	Destination  string              `json:"destination,omitempty"`
	Price        float64             `json:"price,omitempty"`
	Duration     uint                `json:"duration,omitempty"`
	MaxTravelers uint                `json:"maxTravelers,omitempty"`
	Status       types.PackageStatus `gorm:"type:varchar(16);default:'PENDING'" json:"status,omitempty"`
	ImageURL     string              `gorm:"column:image_url" json:"imageUrl,omitempty"`
	AgentID      uint                `json:"agentId,omitempty"`

	Agent *User `gorm:"foreignKey:AgentID" json:"agent,omitempty"`

	types.Timestamps
}
