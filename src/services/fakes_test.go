package services

import (
	"context"
	"errors"
	"io"

	"odyssey/src/models"
	"odyssey/src/types"

	"gorm.io/gorm"
)

// In-memory stores backing the service tests. Like the gorm stores,
// absent rows come back as gorm.ErrRecordNotFound.

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[uint]*models.User{}, nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = s.nextID
		}
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(id uint) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) CountByRole(role types.Role) (int64, error) {
	var count int64
	for _, u := range s.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (s *fakeUserStore) Create(user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

type fakePackageStore struct {
	pkgs   map[uint]*models.TravelPackage
	nextID uint
}

func newFakePackageStore(pkgs ...*models.TravelPackage) *fakePackageStore {
	s := &fakePackageStore{pkgs: map[uint]*models.TravelPackage{}, nextID: 1}
	for _, p := range pkgs {
		if p.ID == 0 {
			p.ID = s.nextID
		}
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
		s.pkgs[p.ID] = p
	}
	return s
}

func (s *fakePackageStore) FindByID(id uint) (*models.TravelPackage, error) {
	if p, ok := s.pkgs[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakePackageStore) FindByAgent(agentID uint) ([]models.TravelPackage, error) {
	var out []models.TravelPackage
	for _, p := range s.pkgs {
		if p.AgentID == agentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakePackageStore) FindByStatus(status types.PackageStatus) ([]models.TravelPackage, error) {
	var out []models.TravelPackage
	for _, p := range s.pkgs {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakePackageStore) FindApprovedByActiveAgents() ([]models.TravelPackage, error) {
	var out []models.TravelPackage
	for _, p := range s.pkgs {
		if p.Status == types.PACKAGE_APPROVED && p.Agent != nil && p.Agent.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakePackageStore) Count() (int64, error) {
	return int64(len(s.pkgs)), nil
}

func (s *fakePackageStore) CountByStatus(status types.PackageStatus) (int64, error) {
	var count int64
	for _, p := range s.pkgs {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *fakePackageStore) Create(pkg *models.TravelPackage) error {
	pkg.ID = s.nextID
	s.nextID++
	copied := *pkg
	s.pkgs[pkg.ID] = &copied
	return nil
}

func (s *fakePackageStore) Save(pkg *models.TravelPackage) error {
	copied := *pkg
	s.pkgs[pkg.ID] = &copied
	return nil
}

type fakeBookingStore struct {
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeBookingStore(bookings ...*models.Booking) *fakeBookingStore {
	s := &fakeBookingStore{bookings: map[uint]*models.Booking{}, nextID: 1}
	for _, b := range bookings {
		if b.ID == 0 {
			b.ID = s.nextID
		}
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
		s.bookings[b.ID] = b
	}
	return s
}

func (s *fakeBookingStore) FindByID(id uint) (*models.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeBookingStore) FindAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (s *fakeBookingStore) FindByUser(userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) FindByPackageAgent(agentID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.TravelPackage != nil && b.TravelPackage.AgentID == agentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) Create(booking *models.Booking) error {
	booking.ID = s.nextID
	s.nextID++
	s.bookings[booking.ID] = booking
	return nil
}

type fakeTicketStore struct {
	tickets map[uint]*models.SupportTicket
	nextID  uint
}

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{tickets: map[uint]*models.SupportTicket{}, nextID: 1}
}

func (s *fakeTicketStore) FindByID(id uint) (*models.SupportTicket, error) {
	if t, ok := s.tickets[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTicketStore) FindAll() ([]models.SupportTicket, error) {
	var out []models.SupportTicket
	for _, t := range s.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (s *fakeTicketStore) FindByUser(userID uint) ([]models.SupportTicket, error) {
	var out []models.SupportTicket
	for _, t := range s.tickets {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *fakeTicketStore) FindByPackageAgent(agentID uint) ([]models.SupportTicket, error) {
	var out []models.SupportTicket
	for _, t := range s.tickets {
		if t.Booking != nil && t.Booking.TravelPackage != nil && t.Booking.TravelPackage.AgentID == agentID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *fakeTicketStore) Create(ticket *models.SupportTicket) error {
	ticket.ID = s.nextID
	s.nextID++
	copied := *ticket
	s.tickets[ticket.ID] = &copied
	return nil
}

func (s *fakeTicketStore) Save(ticket *models.SupportTicket) error {
	copied := *ticket
	s.tickets[ticket.ID] = &copied
	return nil
}

type fakeUploader struct {
	keys []string
	fail bool
}

func (u *fakeUploader) Upload(_ context.Context, key string, _ string, _ io.Reader) (string, error) {
	if u.fail {
		return "", errors.New("upload failed")
	}
	u.keys = append(u.keys, key)
	return "https://media.example.com/" + key, nil
}
