package services

import (
	"context"
	"io"

	"odyssey/src/models"
	"odyssey/src/types"
)

// Store contracts the services are constructed with. The gorm-backed
// implementations live in src/db; tests substitute in-memory fakes.
// Absent rows surface as gorm.ErrRecordNotFound from FindBy* methods.

type UserStore interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	CountByRole(role types.Role) (int64, error)
	Create(user *models.User) error
}

type PackageStore interface {
	FindByID(id uint) (*models.TravelPackage, error)
	FindByAgent(agentID uint) ([]models.TravelPackage, error)
	FindByStatus(status types.PackageStatus) ([]models.TravelPackage, error)
	FindApprovedByActiveAgents() ([]models.TravelPackage, error)
	Count() (int64, error)
	CountByStatus(status types.PackageStatus) (int64, error)
	Create(pkg *models.TravelPackage) error
	Save(pkg *models.TravelPackage) error
}

type BookingStore interface {
	FindByID(id uint) (*models.Booking, error)
	FindAll() ([]models.Booking, error)
	FindByUser(userID uint) ([]models.Booking, error)
	FindByPackageAgent(agentID uint) ([]models.Booking, error)
	Create(booking *models.Booking) error
}

type TicketStore interface {
	FindByID(id uint) (*models.SupportTicket, error)
	FindAll() ([]models.SupportTicket, error)
	FindByUser(userID uint) ([]models.SupportTicket, error)
	FindByPackageAgent(agentID uint) ([]models.SupportTicket, error)
	Create(ticket *models.SupportTicket) error
	Save(ticket *models.SupportTicket) error
}

// MediaUploader hands an image to the external media host and returns
// the durable URL recorded on the package.
type MediaUploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// SessionCache keeps issued session tokens; losing one is not an error
// worth failing a login over, so implementations log and move on.
type SessionCache interface {
	Put(ctx context.Context, userID uint, token string)
}
