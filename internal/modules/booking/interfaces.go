package booking

import (
	"context"
	"time"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

// BookingRepository is the aggregate store the service writes through.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetRecent(ctx context.Context, limit int) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int16) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking, parties []domain.BookingParty) error
	Update(ctx context.Context, b *domain.Booking, parties []domain.BookingParty, replaceParties bool) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, statusID int16) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	RouteCounts(ctx context.Context, statusID int16, from, to time.Time) ([]repository.RouteCount, error)
}

// CustomerInformationRepository feeds the read model's name fill.
type CustomerInformationRepository interface {
	GetInformationByCustomerIDs(ctx context.Context, ids []int32) (map[int32]domain.CustomerInformation, error)
}

// UserCounter supplies the user counters on the stats endpoint.
type UserCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountByInformationStatus(ctx context.Context, statusID int16) (int64, error)
}
