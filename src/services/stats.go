package services

import (
	"time"

	"odyssey/src/models"
	"odyssey/src/types"
)

// StatsService recomputes dashboard and per-agent statistics from the
// store on every call. Nothing is cached or persisted.
type StatsService struct {
	users    UserStore
	packages PackageStore
	bookings BookingStore
	now      func() time.Time
}

func NewStatsService(users UserStore, packages PackageStore, bookings BookingStore) *StatsService {
	return &StatsService{
		users:    users,
		packages: packages,
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *StatsService) AdminStats() (*types.DashboardStats, error) {
	totalCustomers, err := s.users.CountByRole(types.ROLE_CLIENT)
	if err != nil {
		return nil, err
	}
	totalAgents, err := s.users.CountByRole(types.ROLE_AGENT)
	if err != nil {
		return nil, err
	}
	totalPackages, err := s.packages.Count()
	if err != nil {
		return nil, err
	}
	pendingApprovals, err := s.packages.CountByStatus(types.PACKAGE_PENDING)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.FindAll()
	if err != nil {
		return nil, err
	}

	yoyData := make([]types.MonthlyTrend, 0, 6)
	revenueData := make([]types.MonthlyTrend, 0, 6)
	for _, month := range trailingMonths(s.now()) {
		count, customers := monthlyBookings(bookings, month)
		yoyData = append(yoyData, types.MonthlyTrend{
			Month:     month.String()[:3],
			Count:     count,
			Customers: customers,
		})
		revenueData = append(revenueData, types.MonthlyTrend{
			Month:  month.String()[:3],
			Amount: monthlyRevenue(bookings, month),
		})
	}

	return &types.DashboardStats{
		TotalRevenue:     paidRevenue(bookings),
		TotalBookings:    int64(len(bookings)),
		TotalCustomers:   totalCustomers,
		TotalAgents:      totalAgents,
		TotalPackages:    totalPackages,
		PendingApprovals: pendingApprovals,
		YoyData:          yoyData,
		RevenueData:      revenueData,
	}, nil
}

func (s *StatsService) AgentStats(agentID uint) (*types.AgentStats, error) {
	pkgs, err := s.packages.FindByAgent(agentID)
	if err != nil {
		return nil, err
	}
	var pendingApprovals int64
	for _, pkg := range pkgs {
		if pkg.Status == types.PACKAGE_PENDING {
			pendingApprovals++
		}
	}
	bookings, err := s.bookings.FindByPackageAgent(agentID)
	if err != nil {
		return nil, err
	}

	trend := make([]types.MonthlyTrend, 0, 6)
	for _, month := range trailingMonths(s.now()) {
		count, _ := monthlyBookings(bookings, month)
		trend = append(trend, types.MonthlyTrend{
			Month: month.String()[:3],
			Count: count,
		})
	}

	return &types.AgentStats{
		TotalPackages:    int64(len(pkgs)),
		ActiveBookings:   int64(len(bookings)),
		PendingApprovals: pendingApprovals,
		TotalEarnings:    paidRevenue(bookings),
		MonthlyTrend:     trend,
	}, nil
}

// trailingMonths returns the six calendar months ending at now's month,
// in chronological order. Only month-of-year is kept; December wraps to
// January and years are conflated deliberately.
func trailingMonths(now time.Time) [6]time.Month {
	current := int(now.Month())
	var window [6]time.Month
	for i := 0; i < 6; i++ {
		window[i] = time.Month((current-6+i+12)%12 + 1)
	}
	return window
}

func isPaid(b models.Booking) bool {
	return b.Payment != nil && b.Payment.PaymentStatus == types.PAYMENT_PAID
}

func paidRevenue(bookings []models.Booking) float64 {
	var total float64
	for _, b := range bookings {
		if isPaid(b) {
			total += b.Payment.Amount
		}
	}
	return total
}

func inMonth(b models.Booking, month time.Month) bool {
	return b.TravelDate != nil && b.TravelDate.Month() == month
}

func monthlyBookings(bookings []models.Booking, month time.Month) (count int64, customers int64) {
	seen := map[uint]struct{}{}
	for _, b := range bookings {
		if !inMonth(b, month) {
			continue
		}
		count++
		if _, ok := seen[b.UserID]; !ok {
			seen[b.UserID] = struct{}{}
			customers++
		}
	}
	return count, customers
}

func monthlyRevenue(bookings []models.Booking, month time.Month) float64 {
	var total float64
	for _, b := range bookings {
		if inMonth(b, month) && isPaid(b) {
			total += b.Payment.Amount
		}
	}
	return total
}
