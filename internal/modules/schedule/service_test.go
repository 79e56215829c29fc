package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"bookingapi/internal/database"
	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	ports := []domain.Port{
		{PortID: 1, PortCd: strPtr("MNL"), PortDesc: strPtr("Port of Manila")},
		{PortID: 2, PortCd: strPtr("CEB"), PortDesc: strPtr("Port of Cebu")},
		{PortID: 3, PortCd: strPtr("DVO"), PortDesc: strPtr("Port of Davao")},
	}
	require.NoError(t, db.Create(&ports).Error)

	locations := []domain.Location{
		{LocationID: 1, LocationDesc: strPtr("Manila"), PortID: i16Ptr(1)},
		{LocationID: 2, LocationDesc: strPtr("Cebu"), PortID: i16Ptr(2)},
		{LocationID: 3, LocationDesc: strPtr("Inland Town")},
	}
	require.NoError(t, db.Create(&locations).Error)

	vessels := []domain.Vessel{
		{VesselID: 1, VesselCd: strPtr("SPN"), VesselDesc: strPtr("MV San Pedro Norte")},
		{VesselID: 2, VesselCd: strPtr("STM"), VesselDesc: strPtr("MV Santa Monica")},
	}
	require.NoError(t, db.Create(&vessels).Error)

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	mk := func(id, origin, dest, vessel int16, offset time.Duration) domain.VesselSchedule {
		etd := base.Add(offset)
		eta := etd.Add(26 * time.Hour)
		return domain.VesselSchedule{
			VesselScheduleID:  id,
			OriginPortID:      &origin,
			DestinationPortID: &dest,
			ETD:               &etd,
			ETA:               &eta,
			VesselID:          &vessel,
		}
	}
	schedules := []domain.VesselSchedule{
		mk(1, 1, 2, 1, 48*time.Hour),
		mk(2, 1, 2, 2, 0),
		mk(3, 2, 3, 1, 24*time.Hour),
	}
	require.NoError(t, db.Create(&schedules).Error)

	return NewService(repository.NewScheduleRepository(db))
}

func strPtr(s string) *string { return &s }
func i16Ptr(v int16) *int16   { return &v }

func TestListUnfilteredOrdersByETD(t *testing.T) {
	svc := newTestService(t)

	rows, err := svc.List(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int16(2), rows[0].VesselScheduleID)
	assert.Equal(t, int16(3), rows[1].VesselScheduleID)
	assert.Equal(t, int16(1), rows[2].VesselScheduleID)
}

func TestListFiltersByOriginLocation(t *testing.T) {
	svc := newTestService(t)

	origin := int16(1)
	rows, err := svc.List(context.Background(), &origin, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, int16(1), row.OriginPortID)
		assert.Equal(t, "Port of Manila", row.OriginPortDesc)
	}
}

func TestListFiltersByOriginAndVessel(t *testing.T) {
	svc := newTestService(t)

	origin, vessel := int16(1), int16(2)
	rows, err := svc.List(context.Background(), &origin, nil, &vessel)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int16(2), rows[0].VesselScheduleID)
	assert.Equal(t, "MV Santa Monica", rows[0].VesselName)
}

func TestListDropsFilterForPortlessLocation(t *testing.T) {
	svc := newTestService(t)

	// Location 3 has no port, so its filter falls away instead of failing.
	origin := int16(3)
	rows, err := svc.List(context.Background(), &origin, nil, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestListDropsFilterForMissingLocation(t *testing.T) {
	svc := newTestService(t)

	origin := int16(99)
	rows, err := svc.List(context.Background(), &origin, nil, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
