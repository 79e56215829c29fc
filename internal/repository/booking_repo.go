package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookingapi/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// withGraph eagerly loads every reference row the read model flattens.
// Customer names are deliberately NOT part of this graph: they are
// batch-fetched separately by the assembler (see CustomerRepository).
func (r *BookingRepository) withGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Status").
		Preload("OriginLocation").
		Preload("DestinationLocation").
		Preload("VesselSchedule").
		Preload("VesselSchedule.Vessel").
		Preload("VesselSchedule.OriginPort").
		Preload("VesselSchedule.DestinationPort").
		Preload("Equipment").
		Preload("PaymentMode").
		Preload("Commodity").
		Preload("Vessel").
		Preload("Container").
		Preload("Parties").
		Preload("Parties.Customer")
}

// GetAll returns the full aggregate graph, newest first, ties broken by id
// so listings stay stable for equal timestamps.
func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []domain.Booking
	tx := r.withGraph(r.db.WithContext(ctx)).
		Order("create_dttm DESC").
		Order("booking_id DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetRecent(ctx context.Context, limit int) ([]domain.Booking, error) {
	var rows []domain.Booking
	tx := r.withGraph(r.db.WithContext(ctx)).
		Order("create_dttm DESC").
		Order("booking_id DESC").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int16) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.withGraph(r.db.WithContext(ctx)).
		Where("booking_id = ?", id).
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// Create persists the booking row and its party rows as one unit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, parties []domain.BookingParty) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		for i := range parties {
			parties[i].BookingID = &b.BookingID
		}
		if len(parties) > 0 {
			if err := tx.Omit(clause.Associations).Create(&parties).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves the booking row and, when replaceParties is set, discards
// every existing party row and recreates exactly the supplied set. The
// replacement and the save commit or roll back together.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking, parties []domain.BookingParty, replaceParties bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			return err
		}
		if !replaceParties {
			return nil
		}
		if err := tx.Where("booking_id = ?", b.BookingID).Delete(&domain.BookingParty{}).Error; err != nil {
			return err
		}
		for i := range parties {
			parties[i].BookingPartyID = 0
			parties[i].BookingID = &b.BookingID
		}
		if len(parties) > 0 {
			if err := tx.Omit(clause.Associations).Create(&parties).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BookingRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) CountByStatus(ctx context.Context, statusID int16) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("status_id = ?", statusID).
		Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("create_dttm >= ? AND create_dttm < ?", from, to).
		Count(&cnt).Error
	return cnt, err
}

type RouteCount struct {
	Origin      string `gorm:"column:origin"`
	Destination string `gorm:"column:destination"`
	Count       int64  `gorm:"column:cnt"`
}

// RouteCounts groups bookings of the given status created within [from, to)
// by resolved origin/destination descriptions. Unresolved references fall
// back to the literal "Unknown" label inside the query so grouping stays in
// the store.
func (r *BookingRepository) RouteCounts(ctx context.Context, statusID int16, from, to time.Time) ([]RouteCount, error) {
	var rows []RouteCount
	q := `
SELECT
  COALESCE(ol.location_desc, 'Unknown') AS origin,
  COALESCE(dl.location_desc, 'Unknown') AS destination,
  COUNT(*) AS cnt
FROM booking b
LEFT JOIN location ol ON ol.location_id = b.origin_location_id
LEFT JOIN location dl ON dl.location_id = b.destination_location_id
WHERE b.status_id = ?
  AND b.create_dttm >= ?
  AND b.create_dttm < ?
GROUP BY COALESCE(ol.location_desc, 'Unknown'), COALESCE(dl.location_desc, 'Unknown')
ORDER BY cnt DESC
`
	tx := r.db.WithContext(ctx).Raw(q, statusID, from, to).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
