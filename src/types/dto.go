package types

import "time"

// MonthlyTrend is one point of a trailing six-month series. The month
// label is a three-letter abbreviation; buckets are keyed by
// month-of-year only, so entries from different years share a bucket.
type MonthlyTrend struct {
	Month     string  `json:"month"`
	Count     int64   `json:"count"`
	Customers int64   `json:"customers"`
	Amount    float64 `json:"amount"`
}

type DashboardStats struct {
	TotalRevenue     float64        `json:"totalRevenue"`
	TotalBookings    int64          `json:"totalBookings"`
	TotalCustomers   int64          `json:"totalCustomers"`
	TotalAgents      int64          `json:"totalAgents"`
	TotalPackages    int64          `json:"totalPackages"`
	PendingApprovals int64          `json:"pendingApprovals"`
	YoyData          []MonthlyTrend `json:"yoyData"`
	RevenueData      []MonthlyTrend `json:"revenueData"`
}

type AgentStats struct {
	TotalPackages    int64          `json:"totalPackages"`
	ActiveBookings   int64          `json:"activeBookings"`
	PendingApprovals int64          `json:"pendingApprovals"`
	TotalEarnings    float64        `json:"totalEarnings"`
	MonthlyTrend     []MonthlyTrend `json:"monthlyTrend"`
}

type SupportTicketResponse struct {
	TicketID      uint         `json:"ticketId"`
	Subject       string       `json:"subject"`
	Description   string       `json:"description"`
	Status        TicketStatus `json:"status"`
	Priority      string       `json:"priority"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
	UserID        uint         `json:"userId"`
	BookingID     *uint        `json:"bookingId,omitempty"`
	PackageTitle  string       `json:"packageTitle,omitempty"`
}

type BookingResponse struct {
	BookingID       uint          `json:"bookingId"`
	UserID          uint          `json:"userId"`
	PackageID       uint          `json:"packageId"`
	PackageTitle    string        `json:"packageTitle,omitempty"`
	Destination     string        `json:"destination,omitempty"`
	TravelDate      *time.Time    `json:"travelDate,omitempty"`
	Travelers       uint          `json:"travelers,omitempty"`
	TotalAmount     float64       `json:"totalAmount,omitempty"`
	Status          BookingStatus `json:"status"`
	ContactFullName string        `json:"contactFullName,omitempty"`
	PaymentStatus   string        `json:"paymentStatus,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type SessionResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}
