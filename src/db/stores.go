package db

import (
	"odyssey/src/models"
	"odyssey/src/types"

	"gorm.io/gorm"
)

// Gorm-backed stores. Each service receives only the stores it needs,
// so these are constructed once in main and passed down explicitly.

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.
		Model(&models.User{}).
		Where(&models.User{ID: id}).
		First(&user).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.
		Model(&models.User{}).
		Where("email = ?", email).
		First(&user).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) CountByRole(role types.Role) (int64, error) {
	var count int64
	err := s.db.
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&count).
		Error
	return count, err
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

type PackageStore struct {
	db *gorm.DB
}

func NewPackageStore(db *gorm.DB) *PackageStore {
	return &PackageStore{db: db}
}

func (s *PackageStore) FindByID(id uint) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	err := s.db.
		Model(&models.TravelPackage{}).
		Where(&models.TravelPackage{ID: id}).
		First(&pkg).
		Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageStore) FindByAgent(agentID uint) ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	err := s.db.
		Model(&models.TravelPackage{}).
		Where("agent_id = ?", agentID).
		Find(&pkgs).
		Error
	return pkgs, err
}

func (s *PackageStore) FindByStatus(status types.PackageStatus) ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	err := s.db.
		Model(&models.TravelPackage{}).
		Where("status = ?", status).
		Find(&pkgs).
		Error
	return pkgs, err
}

// FindApprovedByActiveAgents is the public-catalog query: the
// active-agent condition is applied at join time, not stored on the
// package row.
func (s *PackageStore) FindApprovedByActiveAgents() ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	err := s.db.
		Model(&models.TravelPackage{}).
		Joins("Agent").
		Where(`travel_packages.status = ? AND "Agent".active = ?`, types.PACKAGE_APPROVED, true).
		Find(&pkgs).
		Error
	return pkgs, err
}

func (s *PackageStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.TravelPackage{}).Count(&count).Error
	return count, err
}

func (s *PackageStore) CountByStatus(status types.PackageStatus) (int64, error) {
	var count int64
	err := s.db.
		Model(&models.TravelPackage{}).
		Where("status = ?", status).
		Count(&count).
		Error
	return count, err
}

func (s *PackageStore) Create(pkg *models.TravelPackage) error {
	return s.db.Create(pkg).Error
}

func (s *PackageStore) Save(pkg *models.TravelPackage) error {
	return s.db.Save(pkg).Error
}

type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Preload("Payment").
		Preload("TravelPackage").
		Preload("Companions").
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingStore) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Model(&models.Booking{}).
		Preload("Payment").
		Find(&bookings).
		Error
	return bookings, err
}

func (s *BookingStore) FindByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Preload("Payment").
		Preload("TravelPackage").
		Find(&bookings).
		Error
	return bookings, err
}

func (s *BookingStore) FindByPackageAgent(agentID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Model(&models.Booking{}).
		Joins("JOIN travel_packages ON travel_packages.id = bookings.package_id").
		Where("travel_packages.agent_id = ?", agentID).
		Preload("Payment").
		Preload("TravelPackage").
		Find(&bookings).
		Error
	return bookings, err
}

func (s *BookingStore) Create(booking *models.Booking) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(booking).Error
	})
}

type TicketStore struct {
	db *gorm.DB
}

func NewTicketStore(db *gorm.DB) *TicketStore {
	return &TicketStore{db: db}
}

func (s *TicketStore) preloaded() *gorm.DB {
	return s.db.
		Model(&models.SupportTicket{}).
		Preload("Booking").
		Preload("Booking.TravelPackage")
}

func (s *TicketStore) FindByID(id uint) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := s.preloaded().
		Where(&models.SupportTicket{ID: id}).
		First(&ticket).
		Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketStore) FindAll() ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := s.preloaded().Find(&tickets).Error
	return tickets, err
}

func (s *TicketStore) FindByUser(userID uint) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := s.preloaded().
		Where("user_id = ?", userID).
		Find(&tickets).
		Error
	return tickets, err
}

// FindByPackageAgent follows ticket -> booking -> package -> agent.
// Tickets without a booking never match.
func (s *TicketStore) FindByPackageAgent(agentID uint) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := s.preloaded().
		Joins("JOIN bookings ON bookings.id = support_tickets.booking_id").
		Joins("JOIN travel_packages ON travel_packages.id = bookings.package_id").
		Where("travel_packages.agent_id = ?", agentID).
		Find(&tickets).
		Error
	return tickets, err
}

func (s *TicketStore) Create(ticket *models.SupportTicket) error {
	return s.db.Create(ticket).Error
}

func (s *TicketStore) Save(ticket *models.SupportTicket) error {
	return s.db.Save(ticket).Error
}
