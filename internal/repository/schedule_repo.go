package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

type ScheduleRow struct {
	VesselScheduleID    int16      `json:"vesselScheduleId" gorm:"column:vessel_schedule_id"`
	OriginPortID        int16      `json:"originPortId" gorm:"column:origin_port_id"`
	DestinationPortID   int16      `json:"destinationPortId" gorm:"column:destination_port_id"`
	ETD                 *time.Time `json:"etd" gorm:"column:etd"`
	ETA                 *time.Time `json:"eta" gorm:"column:eta"`
	VesselID            int16      `json:"vesselId" gorm:"column:vessel_id"`
	OriginPortCd        string     `json:"originPortCd" gorm:"column:origin_port_cd"`
	OriginPortDesc      string     `json:"originPortDesc" gorm:"column:origin_port_desc"`
	DestinationPortCd   string     `json:"destinationPortCd" gorm:"column:destination_port_cd"`
	DestinationPortDesc string     `json:"destinationPortDesc" gorm:"column:destination_port_desc"`
	VesselCd            string     `json:"vesselCd" gorm:"column:vessel_cd"`
	VesselName          string     `json:"vesselName" gorm:"column:vessel_name"`
}

// ResolvePortID maps a location to its port. A missing location or a
// location without a port yields nil, which simply drops that filter.
func (r *ScheduleRepository) ResolvePortID(ctx context.Context, locationID int16) (*int16, error) {
	var row struct {
		PortID *int16 `gorm:"column:port_id"`
	}
	tx := r.db.WithContext(ctx).
		Table("location").
		Select("port_id").
		Where("location_id = ?", locationID).
		Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return row.PortID, nil
}

// GetFiltered composes the schedule join with whichever filters were
// resolved. Each clause carries its own parameter, so there is no
// positional-index bookkeeping to get wrong.
func (r *ScheduleRepository) GetFiltered(ctx context.Context, originPortID, destinationPortID, vesselID *int16) ([]ScheduleRow, error) {
	q := r.db.WithContext(ctx).
		Table("vessel_schedule vs").
		Select(`
			vs.vessel_schedule_id,
			vs.origin_port_id,
			vs.destination_port_id,
			vs.etd,
			vs.eta,
			vs.vessel_id,
			op.port_cd AS origin_port_cd,
			op.port_desc AS origin_port_desc,
			dp.port_cd AS destination_port_cd,
			dp.port_desc AS destination_port_desc,
			v.vessel_cd,
			v.vessel_desc AS vessel_name
		`).
		Joins("INNER JOIN port op ON op.port_id = vs.origin_port_id").
		Joins("INNER JOIN port dp ON dp.port_id = vs.destination_port_id").
		Joins("INNER JOIN vessel v ON v.vessel_id = vs.vessel_id")

	if originPortID != nil {
		q = q.Where("vs.origin_port_id = ?", *originPortID)
	}
	if destinationPortID != nil {
		q = q.Where("vs.destination_port_id = ?", *destinationPortID)
	}
	if vesselID != nil {
		q = q.Where("vs.vessel_id = ?", *vesselID)
	}

	var rows []ScheduleRow
	tx := q.Order("vs.etd").Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
