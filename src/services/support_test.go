package services

import (
	"testing"
	"time"

	"odyssey/src/common"
	"odyssey/src/models"
	"odyssey/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupportFixture() (*SupportService, *fakeTicketStore, *fakeUserStore, *fakeBookingStore) {
	tickets := newFakeTicketStore()
	users := newFakeUserStore(&models.User{ID: 1, Role: types.ROLE_CLIENT, Active: true})
	pkg := &models.TravelPackage{ID: 1, Title: "Kerala Backwaters", AgentID: 9}
	bookings := newFakeBookingStore(&models.Booking{ID: 1, UserID: 1, PackageID: 1, TravelPackage: pkg})
	svc := NewSupportService(tickets, users, bookings)
	return svc, tickets, users, bookings
}

func TestRaiseTicket(t *testing.T) {
	svc, _, _, _ := newSupportFixture()
	bookingID := uint(1)

	ticket, err := svc.Raise(types.RaiseTicketRequestBody{
		UserID:      1,
		BookingID:   &bookingID,
		Subject:     "Missed pickup",
		Description: "Driver never arrived",
		Priority:    "HIGH",
	})
	require.NoError(t, err)

	assert.Equal(t, types.TICKET_OPEN, ticket.Status)
	assert.Equal(t, uint(1), ticket.UserID)
	require.NotNil(t, ticket.BookingID)
	assert.Equal(t, uint(1), *ticket.BookingID)
	assert.Equal(t, "Kerala Backwaters", ticket.PackageTitle)
	assert.Equal(t, ticket.CreatedAt, ticket.LastUpdatedAt)
}

type bookingCaptureTicketStore struct {
	*fakeTicketStore
	bookingAtCreate *models.Booking
}

func (s *bookingCaptureTicketStore) Create(ticket *models.SupportTicket) error {
	s.bookingAtCreate = ticket.Booking
	return s.fakeTicketStore.Create(ticket)
}

func TestRaiseTicketPersistsOnlyBookingLink(t *testing.T) {
	tickets := &bookingCaptureTicketStore{fakeTicketStore: newFakeTicketStore()}
	users := newFakeUserStore(&models.User{ID: 1, Role: types.ROLE_CLIENT, Active: true})
	pkg := &models.TravelPackage{ID: 1, Title: "Kerala Backwaters", AgentID: 9}
	bookings := newFakeBookingStore(&models.Booking{ID: 1, UserID: 1, PackageID: 1, TravelPackage: pkg})
	svc := NewSupportService(tickets, users, bookings)
	bookingID := uint(1)

	ticket, err := svc.Raise(types.RaiseTicketRequestBody{
		UserID:      1,
		BookingID:   &bookingID,
		Subject:     "Missed pickup",
		Description: "Driver never arrived",
		Priority:    "HIGH",
	})
	require.NoError(t, err)

	assert.Nil(t, tickets.bookingAtCreate, "only the foreign key goes to the insert, not the loaded booking")
	require.NotNil(t, ticket.BookingID)
	assert.Equal(t, uint(1), *ticket.BookingID)
	assert.Equal(t, "Kerala Backwaters", ticket.PackageTitle)
}

func TestRaiseTicketUnknownUser(t *testing.T) {
	svc, _, _, _ := newSupportFixture()

	_, err := svc.Raise(types.RaiseTicketRequestBody{UserID: 42, Subject: "x", Description: "y", Priority: "LOW"})
	require.Error(t, err)
	assert.Equal(t, common.KindNotFound, common.KindOf(err))
	assert.Equal(t, "User not found", err.Error())
}

func TestRaiseTicketUnknownBookingIsSilentlyUnlinked(t *testing.T) {
	svc, _, _, _ := newSupportFixture()
	missing := uint(99)

	ticket, err := svc.Raise(types.RaiseTicketRequestBody{
		UserID:      1,
		BookingID:   &missing,
		Subject:     "Refund request",
		Description: "Trip canceled",
		Priority:    "MEDIUM",
	})
	require.NoError(t, err)
	assert.Nil(t, ticket.BookingID)
	assert.Empty(t, ticket.PackageTitle)
}

func TestUpdateStatusUnknownTicket(t *testing.T) {
	svc, _, _, _ := newSupportFixture()

	_, err := svc.UpdateStatus(123, types.TICKET_RESOLVED)
	require.Error(t, err)
	assert.Equal(t, common.KindNotFound, common.KindOf(err))
	assert.Equal(t, "Ticket not found", err.Error())
}

func TestUpdateStatusAdvancesTimestamp(t *testing.T) {
	svc, _, _, _ := newSupportFixture()
	base := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	created, err := svc.Raise(types.RaiseTicketRequestBody{UserID: 1, Subject: "s", Description: "d", Priority: "LOW"})
	require.NoError(t, err)

	current = base.Add(time.Hour)
	updated, err := svc.UpdateStatus(created.TicketID, types.TICKET_IN_PROGRESS)
	require.NoError(t, err)
	assert.Equal(t, types.TICKET_IN_PROGRESS, updated.Status)
	assert.True(t, updated.LastUpdatedAt.After(created.LastUpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Repeating the same status keeps it but still refreshes the timestamp.
	current = base.Add(2 * time.Hour)
	repeated, err := svc.UpdateStatus(created.TicketID, types.TICKET_IN_PROGRESS)
	require.NoError(t, err)
	assert.Equal(t, types.TICKET_IN_PROGRESS, repeated.Status)
	assert.True(t, repeated.LastUpdatedAt.After(updated.LastUpdatedAt))
}

func TestUpdateStatusHasNoTransitionGuard(t *testing.T) {
	svc, _, _, _ := newSupportFixture()

	created, err := svc.Raise(types.RaiseTicketRequestBody{UserID: 1, Subject: "s", Description: "d", Priority: "LOW"})
	require.NoError(t, err)

	closed, err := svc.UpdateStatus(created.TicketID, types.TICKET_CLOSED)
	require.NoError(t, err)
	assert.Equal(t, types.TICKET_CLOSED, closed.Status)

	reopened, err := svc.UpdateStatus(created.TicketID, types.TICKET_OPEN)
	require.NoError(t, err)
	assert.Equal(t, types.TICKET_OPEN, reopened.Status)
}

func TestTicketQueries(t *testing.T) {
	svc, _, users, _ := newSupportFixture()
	require.NoError(t, users.Create(&models.User{Role: types.ROLE_CLIENT}))
	otherUser := uint(2)

	bookingID := uint(1)
	_, err := svc.Raise(types.RaiseTicketRequestBody{UserID: 1, BookingID: &bookingID, Subject: "a", Description: "d", Priority: "LOW"})
	require.NoError(t, err)
	_, err = svc.Raise(types.RaiseTicketRequestBody{UserID: otherUser, Subject: "b", Description: "d", Priority: "LOW"})
	require.NoError(t, err)

	byUser, err := svc.ByUser(1)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "a", byUser[0].Subject)

	// agent 9 owns the package behind booking 1
	byAgent, err := svc.ByAgent(9)
	require.NoError(t, err)
	require.Len(t, byAgent, 1)
	assert.Equal(t, "a", byAgent[0].Subject)

	byOtherAgent, err := svc.ByAgent(555)
	require.NoError(t, err)
	assert.Empty(t, byOtherAgent)

	all, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
