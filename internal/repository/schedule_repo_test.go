package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func scheduleColumns() []string {
	return []string{
		"vessel_schedule_id", "origin_port_id", "destination_port_id",
		"etd", "eta", "vessel_id",
		"origin_port_cd", "origin_port_desc",
		"destination_port_cd", "destination_port_desc",
		"vessel_cd", "vessel_name",
	}
}

func TestGetFilteredComposesAllFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	etd := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	eta := etd.Add(26 * time.Hour)

	mock.ExpectQuery(`(?s)SELECT .+ FROM vessel_schedule vs INNER JOIN port op ON op\.port_id = vs\.origin_port_id INNER JOIN port dp ON dp\.port_id = vs\.destination_port_id INNER JOIN vessel v ON v\.vessel_id = vs\.vessel_id WHERE vs\.origin_port_id = \$1 AND vs\.destination_port_id = \$2 AND vs\.vessel_id = \$3 ORDER BY vs\.etd`).
		WithArgs(int16(1), int16(2), int16(3)).
		WillReturnRows(sqlmock.NewRows(scheduleColumns()).
			AddRow(int16(7), int16(1), int16(2), etd, eta, int16(3),
				"MNL", "Port of Manila", "CEB", "Port of Cebu", "STM", "MV Santa Monica"))

	origin, destination, vessel := int16(1), int16(2), int16(3)
	rows, err := repo.GetFiltered(context.Background(), &origin, &destination, &vessel)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int16(7), rows[0].VesselScheduleID)
	assert.Equal(t, "Port of Manila", rows[0].OriginPortDesc)
	assert.Equal(t, "MV Santa Monica", rows[0].VesselName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFilteredWithoutFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(`(?s)SELECT .+ FROM vessel_schedule vs .+ ORDER BY vs\.etd`).
		WillReturnRows(sqlmock.NewRows(scheduleColumns()))

	rows, err := repo.GetFiltered(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFilteredSingleFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(`(?s)SELECT .+ FROM vessel_schedule vs .+ WHERE vs\.vessel_id = \$1 ORDER BY vs\.etd`).
		WithArgs(int16(2)).
		WillReturnRows(sqlmock.NewRows(scheduleColumns()))

	vessel := int16(2)
	rows, err := repo.GetFiltered(context.Background(), nil, nil, &vessel)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolvePortID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(`SELECT port_id FROM "location" WHERE location_id = \$1`).
		WithArgs(int16(1)).
		WillReturnRows(sqlmock.NewRows([]string{"port_id"}).AddRow(int16(9)))

	portID, err := repo.ResolvePortID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, portID)
	assert.Equal(t, int16(9), *portID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolvePortIDMissingLocation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(`SELECT port_id FROM "location" WHERE location_id = \$1`).
		WithArgs(int16(42)).
		WillReturnRows(sqlmock.NewRows([]string{"port_id"}))

	portID, err := repo.ResolvePortID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, portID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
