package services

import (
	"errors"
	"time"

	"odyssey/src/common"
	"odyssey/src/models"
	"odyssey/src/types"

	"gorm.io/gorm"
)

type SupportService struct {
	tickets  TicketStore
	users    UserStore
	bookings BookingStore
	now      func() time.Time
}

func NewSupportService(tickets TicketStore, users UserStore, bookings BookingStore) *SupportService {
	return &SupportService{
		tickets:  tickets,
		users:    users,
		bookings: bookings,
		now:      time.Now,
	}
}

// Raise opens a ticket for an existing user. A bookingId that does not
// resolve leaves the ticket unlinked rather than failing the request.
func (s *SupportService) Raise(body types.RaiseTicketRequestBody) (*types.SupportTicketResponse, error) {
	if _, err := s.users.FindByID(body.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("User not found")
		}
		return nil, err
	}

	now := s.now()
	ticket := models.SupportTicket{
		UserID:        body.UserID,
		Subject:       body.Subject,
		Description:   body.Description,
		Priority:      body.Priority,
		Status:        types.TICKET_OPEN,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	// The loaded booking is attached only after Create: persisting the
	// ticket with the association set would upsert the booking row and
	// its children as a side effect.
	var linked *models.Booking
	if body.BookingID != nil {
		booking, err := s.bookings.FindByID(*body.BookingID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			ticket.BookingID = &booking.ID
			linked = booking
		}
	}

	if err := s.tickets.Create(&ticket); err != nil {
		return nil, err
	}
	ticket.Booking = linked
	return mapTicket(&ticket), nil
}

// UpdateStatus overwrites the ticket status unconditionally and
// refreshes lastUpdatedAt. No transition ordering is enforced.
func (s *SupportService) UpdateStatus(ticketID uint, status types.TicketStatus) (*types.SupportTicketResponse, error) {
	ticket, err := s.tickets.FindByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("Ticket not found")
		}
		return nil, err
	}
	ticket.Status = status
	ticket.LastUpdatedAt = s.now()
	if err := s.tickets.Save(ticket); err != nil {
		return nil, err
	}
	return mapTicket(ticket), nil
}

func (s *SupportService) ByUser(userID uint) ([]types.SupportTicketResponse, error) {
	tickets, err := s.tickets.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return mapTickets(tickets), nil
}

func (s *SupportService) ByAgent(agentID uint) ([]types.SupportTicketResponse, error) {
	tickets, err := s.tickets.FindByPackageAgent(agentID)
	if err != nil {
		return nil, err
	}
	return mapTickets(tickets), nil
}

func (s *SupportService) All() ([]types.SupportTicketResponse, error) {
	tickets, err := s.tickets.FindAll()
	if err != nil {
		return nil, err
	}
	return mapTickets(tickets), nil
}

func mapTicket(t *models.SupportTicket) *types.SupportTicketResponse {
	resp := types.SupportTicketResponse{
		TicketID:      t.ID,
		Subject:       t.Subject,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
		UserID:        t.UserID,
	}
	if t.Booking != nil {
		resp.BookingID = &t.Booking.ID
		if t.Booking.TravelPackage != nil {
			resp.PackageTitle = t.Booking.TravelPackage.Title
		}
	}
	return &resp
}

func mapTickets(tickets []models.SupportTicket) []types.SupportTicketResponse {
	out := make([]types.SupportTicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, *mapTicket(&tickets[i]))
	}
	return out
}
