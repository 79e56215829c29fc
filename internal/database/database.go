package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"bookingapi/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.HasPrefix(dsn, "host=") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates every table of the booking schema. Reference
// tables first so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Status{},
		&domain.Port{},
		&domain.LocationType{},
		&domain.Location{},
		&domain.Vessel{},
		&domain.VesselSchedule{},
		&domain.Equipment{},
		&domain.Commodity{},
		&domain.PaymentMode{},
		&domain.TransportService{},
		&domain.Container{},
		&domain.UserType{},
		&domain.Customer{},
		&domain.CustomerInformation{},
		&domain.CustomerType{},
		&domain.UserInformation{},
		&domain.User{},
		&domain.UserCredential{},
		&domain.Booking{},
		&domain.BookingParty{},
	)
}
