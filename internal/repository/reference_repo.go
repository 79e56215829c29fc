package repository

import (
	"context"

	"gorm.io/gorm"

	"bookingapi/internal/domain"
)

// ReferenceRepository serves the plain lookup-table reads. All of these are
// read-only on this API; rows are maintained out of band.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

type LocationRow struct {
	LocationID       int16   `json:"locationId" gorm:"column:location_id"`
	LocationCd       *string `json:"locationCd" gorm:"column:location_cd"`
	LocationDesc     *string `json:"locationDesc" gorm:"column:location_desc"`
	PortID           *int16  `json:"portId" gorm:"column:port_id"`
	LocationTypeID   *int16  `json:"locationTypeId" gorm:"column:location_type_id"`
	LocationTypeDesc *string `json:"locationTypeDesc" gorm:"column:location_type_desc"`
}

func (r *ReferenceRepository) locationQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("location l").
		Select(`
			l.location_id,
			l.location_cd,
			l.location_desc,
			l.port_id,
			l.location_type_id,
			lt.location_type_desc
		`).
		Joins("LEFT JOIN location_type lt ON lt.location_type_id = l.location_type_id")
}

func (r *ReferenceRepository) GetLocations(ctx context.Context) ([]LocationRow, error) {
	var rows []LocationRow
	tx := r.locationQuery(ctx).Order("l.location_desc").Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ReferenceRepository) GetLocationByID(ctx context.Context, id int16) (*LocationRow, error) {
	var row LocationRow
	tx := r.locationQuery(ctx).Where("l.location_id = ?", id).Take(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &row, nil
}

func (r *ReferenceRepository) GetVessels(ctx context.Context) ([]domain.Vessel, error) {
	var rows []domain.Vessel
	err := r.db.WithContext(ctx).Order("vessel_desc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) GetVesselByID(ctx context.Context, id int16) (*domain.Vessel, error) {
	var row domain.Vessel
	if err := r.db.WithContext(ctx).Where("vessel_id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ReferenceRepository) GetEquipment(ctx context.Context) ([]domain.Equipment, error) {
	var rows []domain.Equipment
	err := r.db.WithContext(ctx).Order("equipment_desc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) GetEquipmentByID(ctx context.Context, id int16) (*domain.Equipment, error) {
	var row domain.Equipment
	if err := r.db.WithContext(ctx).Where("equipment_id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ReferenceRepository) GetCommodities(ctx context.Context) ([]domain.Commodity, error) {
	var rows []domain.Commodity
	err := r.db.WithContext(ctx).Order("commodity_desc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) GetCommodityByID(ctx context.Context, id int16) (*domain.Commodity, error) {
	var row domain.Commodity
	if err := r.db.WithContext(ctx).Where("commodity_id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ReferenceRepository) GetPaymentModes(ctx context.Context) ([]domain.PaymentMode, error) {
	var rows []domain.PaymentMode
	err := r.db.WithContext(ctx).Order("payment_mode_desc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) GetPaymentModeByID(ctx context.Context, id int16) (*domain.PaymentMode, error) {
	var row domain.PaymentMode
	if err := r.db.WithContext(ctx).Where("payment_mode_id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ReferenceRepository) GetTransportServices(ctx context.Context) ([]domain.TransportService, error) {
	var rows []domain.TransportService
	err := r.db.WithContext(ctx).Order("transport_service_desc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) GetTransportServiceByID(ctx context.Context, id int16) (*domain.TransportService, error) {
	var row domain.TransportService
	if err := r.db.WithContext(ctx).Where("transport_service_id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ReferenceRepository) GetContainers(ctx context.Context) ([]domain.Container, error) {
	var rows []domain.Container
	err := r.db.WithContext(ctx).Order("container_no").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) GetContainerByID(ctx context.Context, id int16) (*domain.Container, error) {
	var row domain.Container
	if err := r.db.WithContext(ctx).Where("container_id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ReferenceRepository) GetUserTypes(ctx context.Context) ([]domain.UserType, error) {
	var rows []domain.UserType
	err := r.db.WithContext(ctx).Order("user_type_desc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) GetUserTypeByID(ctx context.Context, id int16) (*domain.UserType, error) {
	var row domain.UserType
	if err := r.db.WithContext(ctx).Where("user_type_id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
