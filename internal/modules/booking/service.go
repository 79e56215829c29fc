package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"bookingapi/internal/config"
	"bookingapi/internal/domain"
)

const recentLimit = 5

type Service struct {
	bookings  BookingRepository
	customers CustomerInformationRepository
	users     UserCounter
	statuses  config.StatusConfig
	reportLoc *time.Location
}

func NewService(
	bookings BookingRepository,
	customers CustomerInformationRepository,
	users UserCounter,
	statuses config.StatusConfig,
	reportLoc *time.Location,
) *Service {
	return &Service{
		bookings:  bookings,
		customers: customers,
		users:     users,
		statuses:  statuses,
		reportLoc: reportLoc,
	}
}

func (s *Service) List(ctx context.Context) ([]BookingDTO, error) {
	rows, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, rows)
}

func (s *Service) Recent(ctx context.Context) ([]BookingDTO, error) {
	rows, err := s.bookings.GetRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, rows)
}

func (s *Service) Get(ctx context.Context, id int16) (*BookingDTO, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dtos, err := s.assemble(ctx, []domain.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// assemble runs the two-pass read model: aggregate graph in, customer
// names batch-filled by id map.
func (s *Service) assemble(ctx context.Context, rows []domain.Booking) ([]BookingDTO, error) {
	names, err := s.customers.GetInformationByCustomerIDs(ctx, collectCustomerIDs(rows))
	if err != nil {
		return nil, err
	}

	out := make([]BookingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, assembleDTO(&rows[i], names))
	}
	return out, nil
}

// Create persists the booking with server-assigned audit fields and one
// party row per supplied party id. Status defaults to the configured
// BOOKED id when the request carries none.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest, actor string) (int16, error) {
	now := time.Now().UTC()

	statusID := req.StatusID
	if statusID == nil {
		booked := s.statuses.BookedID
		statusID = &booked
	}

	b := &domain.Booking{
		BookingNo:             req.BookingNo,
		StatusID:              statusID,
		TransportServiceID:    req.TransportServiceID,
		OriginLocationID:      req.OriginLocationID,
		DestinationLocationID: req.DestinationLocationID,
		VesselScheduleID:      req.VesselScheduleID,
		EquipmentID:           req.EquipmentID,
		PaymentModeID:         req.PaymentModeID,
		CommodityID:           req.CommodityID,
		VesselID:              req.VesselID,
		DeclaredValue:         req.DeclaredValue,
		CargoDescription:      req.CargoDescription,
		Weight:                req.Weight,
		ContainerID:           req.ContainerID,
		SealNumber:            req.SealNumber,
		Trucker:               req.Trucker,
		PlateNumber:           req.PlateNumber,
		Driver:                req.Driver,
		CreateUserID:          &actor,
		CreateDttm:            &now,
		UpdateUserID:          &actor,
		UpdateDttm:            &now,
	}

	parties := partiesFromRequest(&req, actor, now)
	if err := s.bookings.Create(ctx, b, parties); err != nil {
		return 0, err
	}
	return b.BookingID, nil
}

// Update applies scalar fields by presence and refreshes the update audit
// fields unconditionally. If any party id is present the whole party set
// is replaced by exactly the supplied ids.
func (s *Service) Update(ctx context.Context, id int16, req UpdateBookingRequest, actor string) (*BookingDTO, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	applyScalars(b, &req)

	now := time.Now().UTC()
	b.UpdateUserID = &actor
	b.UpdateDttm = &now

	replace := req.AgreementPartyID != nil || req.ShipperPartyID != nil || req.ConsigneePartyID != nil
	var parties []domain.BookingParty
	if replace {
		parties = partiesFromRequest(&req, actor, now)
	}

	if err := s.bookings.Update(ctx, b, parties, replace); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Cancel marks the booking canceled. The canceled status comes from the
// configured mapping; with no mapping the status is left untouched, the
// cancellation fields are still written. Remarks always reflect this call,
// including reverting to null when omitted.
func (s *Service) Cancel(ctx context.Context, id int16, req CancelBookingRequest, actor string) (*BookingDTO, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.statuses.CanceledID != 0 {
		canceled := s.statuses.CanceledID
		b.StatusID = &canceled
	}

	if req.UserID != nil && *req.UserID != "" {
		actor = *req.UserID
	}

	now := time.Now().UTC()
	b.CancelDttm = &now
	b.CancelRemarks = req.Remarks
	b.UpdateUserID = &actor
	b.UpdateDttm = &now

	if err := s.bookings.Update(ctx, b, nil, false); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Stats reports the dashboard counters, day boundaries evaluated in the
// configured report time zone.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	total, err := s.bookings.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.bookings.CountByStatus(ctx, s.statuses.BookedID)
	if err != nil {
		return nil, err
	}
	canceled, err := s.bookings.CountByStatus(ctx, s.statuses.CanceledID)
	if err != nil {
		return nil, err
	}

	dayStart := startOfDay(time.Now().In(s.reportLoc))
	bookedToday, err := s.bookings.CountCreatedBetween(ctx, dayStart.UTC(), dayStart.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, err
	}

	var activeUsers int64
	if s.statuses.ActiveID != 0 {
		activeUsers, err = s.users.CountByInformationStatus(ctx, s.statuses.ActiveID)
	} else {
		activeUsers, err = s.users.CountAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalBookings: total,
		Booked:        booked,
		BookedToday:   bookedToday,
		ActiveUsers:   activeUsers,
		Canceled:      canceled,
	}, nil
}

// RouteStats ranks origin/destination pairs of BOOKED bookings within the
// period: top 10 by count with each pair's share of the period total.
func (s *Service) RouteStats(ctx context.Context, period, startDate, endDate string) (*RouteStatsResponse, error) {
	from, to, err := s.resolvePeriod(period, startDate, endDate)
	if err != nil {
		return nil, err
	}

	counts, err := s.bookings.RouteCounts(ctx, s.statuses.BookedID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	if len(counts) > 10 {
		counts = counts[:10]
	}

	routes := make([]RouteDTO, 0, len(counts))
	for _, c := range counts {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(c.Count)/float64(total)*1000) / 10
		}
		routes = append(routes, RouteDTO{
			Origin:      c.Origin,
			Destination: c.Destination,
			Count:       c.Count,
			Percentage:  pct,
		})
	}

	return &RouteStatsResponse{
		PeriodStart:   from,
		PeriodEnd:     to,
		TotalBookings: total,
		Routes:        routes,
	}, nil
}

// resolvePeriod turns the period selector into a half-open local interval.
// Explicit dates win over the named period; day/week/month are the local
// calendar day, the trailing 7 days, and the trailing 30 days.
func (s *Service) resolvePeriod(period, startDate, endDate string) (time.Time, time.Time, error) {
	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return time.Time{}, time.Time{}, ErrInvalidPeriod
		}
		from, err := time.ParseInLocation("2006-01-02", startDate, s.reportLoc)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidPeriod
		}
		end, err := time.ParseInLocation("2006-01-02", endDate, s.reportLoc)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidPeriod
		}
		return from, end.AddDate(0, 0, 1), nil
	}

	dayStart := startOfDay(time.Now().In(s.reportLoc))
	dayEnd := dayStart.AddDate(0, 0, 1)
	switch period {
	case "week":
		return dayStart.AddDate(0, 0, -6), dayEnd, nil
	case "month":
		return dayStart.AddDate(0, 0, -29), dayEnd, nil
	case "", "day":
		return dayStart, dayEnd, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func applyScalars(b *domain.Booking, req *UpdateBookingRequest) {
	if req.BookingNo != nil {
		b.BookingNo = req.BookingNo
	}
	if req.StatusID != nil {
		b.StatusID = req.StatusID
	}
	if req.TransportServiceID != nil {
		b.TransportServiceID = req.TransportServiceID
	}
	if req.OriginLocationID != nil {
		b.OriginLocationID = req.OriginLocationID
	}
	if req.DestinationLocationID != nil {
		b.DestinationLocationID = req.DestinationLocationID
	}
	if req.VesselScheduleID != nil {
		b.VesselScheduleID = req.VesselScheduleID
	}
	if req.EquipmentID != nil {
		b.EquipmentID = req.EquipmentID
	}
	if req.PaymentModeID != nil {
		b.PaymentModeID = req.PaymentModeID
	}
	if req.CommodityID != nil {
		b.CommodityID = req.CommodityID
	}
	if req.VesselID != nil {
		b.VesselID = req.VesselID
	}
	if req.DeclaredValue != nil {
		b.DeclaredValue = req.DeclaredValue
	}
	if req.CargoDescription != nil {
		b.CargoDescription = req.CargoDescription
	}
	if req.Weight != nil {
		b.Weight = req.Weight
	}
	if req.ContainerID != nil {
		b.ContainerID = req.ContainerID
	}
	if req.SealNumber != nil {
		b.SealNumber = req.SealNumber
	}
	if req.Trucker != nil {
		b.Trucker = req.Trucker
	}
	if req.PlateNumber != nil {
		b.PlateNumber = req.PlateNumber
	}
	if req.Driver != nil {
		b.Driver = req.Driver
	}
}

// partiesFromRequest builds one party row per supplied party id, keyed by
// the fixed type constants.
func partiesFromRequest(req *CreateBookingRequest, actor string, now time.Time) []domain.BookingParty {
	parties := make([]domain.BookingParty, 0, 3)
	add := func(typeID int16, customerID *int32) {
		if customerID == nil {
			return
		}
		t := typeID
		parties = append(parties, domain.BookingParty{
			PartyTypeID:  &t,
			CustomerID:   customerID,
			CreateUserID: &actor,
			CreateDttm:   &now,
			UpdateUserID: &actor,
			UpdateDttm:   &now,
		})
	}
	add(domain.PartyTypeAgreement, req.AgreementPartyID)
	add(domain.PartyTypeShipper, req.ShipperPartyID)
	add(domain.PartyTypeConsignee, req.ConsigneePartyID)
	return parties
}
