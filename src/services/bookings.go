package services

import (
	"errors"
	"time"

	"odyssey/src/common"
	"odyssey/src/config"
	"odyssey/src/models"
	"odyssey/src/types"

	"gorm.io/gorm"
)

type BookingService struct {
	bookings BookingStore
	users    UserStore
	packages PackageStore
}

func NewBookingService(bookings BookingStore, users UserStore, packages PackageStore) *BookingService {
	return &BookingService{
		bookings: bookings,
		users:    users,
		packages: packages,
	}
}

func (s *BookingService) Create(body types.CreateBookingRequestBody) (*types.BookingResponse, error) {
	user, err := s.users.FindByID(body.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("User not found")
		}
		return nil, err
	}
	pkg, err := s.packages.FindByID(body.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("Package not found")
		}
		return nil, err
	}
	travelDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.TravelDate)
	if err != nil {
		return nil, common.BadRequestf("invalid travel date %q", body.TravelDate)
	}

	booking := models.Booking{
		UserID:          user.ID,
		PackageID:       pkg.ID,
		TravelDate:      &travelDate,
		Travelers:       body.Travelers,
		TotalAmount:     body.TotalAmount,
		Status:          types.BOOKING_CONFIRMED,
		ContactFullName: body.ContactFullName,
		ContactEmail:    body.ContactEmail,
		ContactNumber:   body.ContactNumber,
		SpecialRequest:  body.SpecialRequest,
	}
	if body.Payment != nil {
		booking.Payment = &models.Payment{
			Amount:        body.Payment.Amount,
			PaymentStatus: body.Payment.PaymentStatus,
			PaymentMethod: body.Payment.PaymentMethod,
		}
	}
	for _, c := range body.Companions {
		booking.Companions = append(booking.Companions, models.Companion{
			FullName: c.FullName,
			Age:      c.Age,
		})
	}

	if err := s.bookings.Create(&booking); err != nil {
		return nil, err
	}
	booking.TravelPackage = pkg
	return mapBooking(&booking), nil
}

func (s *BookingService) FindByID(id uint) (*types.BookingResponse, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("Booking not found")
		}
		return nil, err
	}
	return mapBooking(booking), nil
}

func (s *BookingService) ByUser(userID uint) ([]types.BookingResponse, error) {
	bookings, err := s.bookings.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return mapBookings(bookings), nil
}

func (s *BookingService) ByAgent(agentID uint) ([]types.BookingResponse, error) {
	bookings, err := s.bookings.FindByPackageAgent(agentID)
	if err != nil {
		return nil, err
	}
	return mapBookings(bookings), nil
}

func mapBooking(b *models.Booking) *types.BookingResponse {
	resp := types.BookingResponse{
		BookingID:       b.ID,
		UserID:          b.UserID,
		PackageID:       b.PackageID,
		TravelDate:      b.TravelDate,
		Travelers:       b.Travelers,
		TotalAmount:     b.TotalAmount,
		Status:          b.Status,
		ContactFullName: b.ContactFullName,
		CreatedAt:       b.CreatedAt,
	}
	if b.TravelPackage != nil {
		resp.PackageTitle = b.TravelPackage.Title
		resp.Destination = b.TravelPackage.Destination
	}
	if b.Payment != nil {
		resp.PaymentStatus = b.Payment.PaymentStatus
	}
	return &resp
}

func mapBookings(bookings []models.Booking) []types.BookingResponse {
	out := make([]types.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *mapBooking(&bookings[i]))
	}
	return out
}
