package customer

import (
	"context"
	"testing"

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

	customers := []domain.Customer{
		{CustomerID: 1, CustomerCd: strPtr("CUST-0001")},
		{CustomerID: 2, CustomerCd: strPtr("CUST-0002")},
		{CustomerID: 3, CustomerCd: strPtr("CUST-0003")},
	}
	require.NoError(t, db.Create(&customers).Error)

	infos := []domain.CustomerInformation{
		{CustomerID: i32Ptr(1), FirstName: strPtr("Ramon"), LastName: strPtr("Dela Cruz")},
		{CustomerID: i32Ptr(2), FirstName: strPtr("Teresita"), LastName: strPtr("Santos")},
		{CustomerID: i32Ptr(3), FirstName: strPtr("Jose"), LastName: strPtr("Reyes")},
	}
	require.NoError(t, db.Create(&infos).Error)

	types := []domain.CustomerType{
		{CustomerID: i32Ptr(1), PartyTypeID: i16Ptr(domain.PartyTypeAgreement)},
		{CustomerID: i32Ptr(1), PartyTypeID: i16Ptr(domain.PartyTypeShipper)},
		{CustomerID: i32Ptr(2), PartyTypeID: i16Ptr(domain.PartyTypeShipper)},
		{CustomerID: i32Ptr(3), PartyTypeID: i16Ptr(domain.PartyTypeConsignee)},
	}
	require.NoError(t, db.Create(&types).Error)

	return NewService(repository.NewCustomerRepository(db))
}

func strPtr(s string) *string { return &s }
func i16Ptr(v int16) *int16   { return &v }
func i32Ptr(v int32) *int32   { return &v }

func TestAgreementParties(t *testing.T) {
	svc := newTestService(t)

	rows, err := svc.AgreementParties(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(1), rows[0].CustomerID)
	assert.Equal(t, "CUST-0001", rows[0].CustomerCd)
	assert.Equal(t, "Ramon", rows[0].FirstName)
	assert.Equal(t, "Agreement Party", rows[0].PartyTypeDesc)
}

func TestShipperParties(t *testing.T) {
	svc := newTestService(t)

	rows, err := svc.ShipperParties(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Shipper Party", row.PartyTypeDesc)
		assert.Equal(t, domain.PartyTypeShipper, row.PartyTypeID)
	}
}

func TestConsigneeParties(t *testing.T) {
	svc := newTestService(t)

	rows, err := svc.ConsigneeParties(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(3), rows[0].CustomerID)
	assert.Equal(t, "Consignee Party", rows[0].PartyTypeDesc)
}
