package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookingapi/internal/database"
	"bookingapi/internal/domain"
)

// Seeds a development database with the reference rows the booking forms
// need plus a handful of demo customers and schedules. Safe to rerun: rows
// are upserted by primary key.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "booking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	log.Println("seed complete")
}

func seed(db *gorm.DB) error {
	now := time.Now().UTC()
	actor := domain.SystemActor

	cu, cd := &actor, &now

	upsert := func(rows interface{}) error {
		return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rows).Error
	}

	statuses := []domain.Status{
		{StatusID: 1, StatusCd: str("ACT"), StatusDesc: str("ACTIVE"), CreateUserID: cu, CreateDttm: cd},
		{StatusID: 2, StatusCd: str("INA"), StatusDesc: str("INACTIVE"), CreateUserID: cu, CreateDttm: cd},
		{StatusID: 3, StatusCd: str("PND"), StatusDesc: str("PENDING"), CreateUserID: cu, CreateDttm: cd},
		{StatusID: 4, StatusCd: str("BKD"), StatusDesc: str("BOOKED"), CreateUserID: cu, CreateDttm: cd},
		{StatusID: 5, StatusCd: str("CAN"), StatusDesc: str("CANCELED"), CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&statuses); err != nil {
		return err
	}

	active := int16(1)

	ports := []domain.Port{
		{PortID: 1, PortCd: str("MNL"), PortDesc: str("Port of Manila"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{PortID: 2, PortCd: str("CEB"), PortDesc: str("Port of Cebu"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{PortID: 3, PortCd: str("DVO"), PortDesc: str("Port of Davao"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{PortID: 4, PortCd: str("ILO"), PortDesc: str("Port of Iloilo"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&ports); err != nil {
		return err
	}

	locationTypes := []domain.LocationType{
		{LocationTypeID: 1, LocationTypeCd: str("CITY"), LocationTypeDesc: str("City"), CreateUserID: cu, CreateDttm: cd},
		{LocationTypeID: 2, LocationTypeCd: str("PROV"), LocationTypeDesc: str("Province"), CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&locationTypes); err != nil {
		return err
	}

	city := int16(1)
	locations := []domain.Location{
		{LocationID: 1, LocationCd: str("MNL"), LocationDesc: str("Manila"), PortID: i16(1), LocationTypeID: &city, StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{LocationID: 2, LocationCd: str("CEB"), LocationDesc: str("Cebu"), PortID: i16(2), LocationTypeID: &city, StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{LocationID: 3, LocationCd: str("DVO"), LocationDesc: str("Davao"), PortID: i16(3), LocationTypeID: &city, StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{LocationID: 4, LocationCd: str("ILO"), LocationDesc: str("Iloilo"), PortID: i16(4), LocationTypeID: &city, StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&locations); err != nil {
		return err
	}

	vessels := []domain.Vessel{
		{VesselID: 1, VesselCd: str("SPN"), VesselDesc: str("MV San Pedro Norte"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{VesselID: 2, VesselCd: str("STM"), VesselDesc: str("MV Santa Monica"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{VesselID: 3, VesselCd: str("DLR"), VesselDesc: str("MV Dona Lourdes"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&vessels); err != nil {
		return err
	}

	schedules := make([]domain.VesselSchedule, 0, 6)
	id := int16(1)
	for day := 1; day <= 2; day++ {
		etdBase := now.AddDate(0, 0, day)
		pairs := [][2]int16{{1, 2}, {2, 3}, {1, 4}}
		for i, pair := range pairs {
			etd := etdBase.Add(time.Duration(i*4) * time.Hour)
			eta := etd.Add(26 * time.Hour)
			vessel := int16(i%3 + 1)
			origin, dest := pair[0], pair[1]
			schedules = append(schedules, domain.VesselSchedule{
				VesselScheduleID:  id,
				OriginPortID:      &origin,
				DestinationPortID: &dest,
				ETD:               &etd,
				ETA:               &eta,
				VesselID:          &vessel,
				CreateUserID:      cu,
				CreateDttm:        cd,
			})
			id++
		}
	}
	if err := upsert(&schedules); err != nil {
		return err
	}

	equipment := []domain.Equipment{
		{EquipmentID: 1, EquipmentCd: str("20DV"), EquipmentDesc: str("20ft Dry Van"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{EquipmentID: 2, EquipmentCd: str("40DV"), EquipmentDesc: str("40ft Dry Van"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{EquipmentID: 3, EquipmentCd: str("40RF"), EquipmentDesc: str("40ft Reefer"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&equipment); err != nil {
		return err
	}

	commodities := []domain.Commodity{
		{CommodityID: 1, CommodityCd: str("GEN"), CommodityDesc: str("General Cargo"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{CommodityID: 2, CommodityCd: str("PER"), CommodityDesc: str("Perishables"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{CommodityID: 3, CommodityCd: str("APP"), CommodityDesc: str("Appliances"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&commodities); err != nil {
		return err
	}

	paymentModes := []domain.PaymentMode{
		{PaymentModeID: 1, PaymentModeCd: str("PRE"), PaymentModeDesc: str("Prepaid"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{PaymentModeID: 2, PaymentModeCd: str("COL"), PaymentModeDesc: str("Collect"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&paymentModes); err != nil {
		return err
	}

	transportServices := []domain.TransportService{
		{TransportServiceID: 1, TransportServiceCd: str("PP"), TransportServiceDesc: str("Port to Port"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{TransportServiceID: 2, TransportServiceCd: str("DD"), TransportServiceDesc: str("Door to Door"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{TransportServiceID: 3, TransportServiceCd: str("PD"), TransportServiceDesc: str("Port to Door"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&transportServices); err != nil {
		return err
	}

	containers := []domain.Container{
		{ContainerID: 1, ContainerNo: str("CMAU1234567"), ContainerDesc: str("20ft standard"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{ContainerID: 2, ContainerNo: str("CMAU7654321"), ContainerDesc: str("40ft standard"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{ContainerID: 3, ContainerNo: str("TGHU9988776"), ContainerDesc: str("40ft reefer"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&containers); err != nil {
		return err
	}

	userTypes := []domain.UserType{
		{UserTypeID: 1, UserTypeCd: str("ADM"), UserTypeDesc: str("Administrator"), CreateUserID: cu, CreateDttm: cd},
		{UserTypeID: 2, UserTypeCd: str("ENC"), UserTypeDesc: str("Encoder"), CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&userTypes); err != nil {
		return err
	}

	customers := []domain.Customer{
		{CustomerID: 1, CustomerCd: str("CUST-0001"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{CustomerID: 2, CustomerCd: str("CUST-0002"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
		{CustomerID: 3, CustomerCd: str("CUST-0003"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&customers); err != nil {
		return err
	}

	customerInfos := []domain.CustomerInformation{
		{CustomerInformationID: 1, CustomerID: i32(1), FirstName: str("Ramon"), LastName: str("Dela Cruz"), CreateUserID: cu, CreateDttm: cd},
		{CustomerInformationID: 2, CustomerID: i32(2), FirstName: str("Teresita"), LastName: str("Santos"), CreateUserID: cu, CreateDttm: cd},
		{CustomerInformationID: 3, CustomerID: i32(3), FirstName: str("Jose"), MiddleName: str("P"), LastName: str("Reyes"), CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&customerInfos); err != nil {
		return err
	}

	// Every demo customer can play every party role.
	customerTypes := make([]domain.CustomerType, 0, 9)
	ctID := int32(1)
	for customerID := int32(1); customerID <= 3; customerID++ {
		for _, partyType := range []int16{domain.PartyTypeAgreement, domain.PartyTypeShipper, domain.PartyTypeConsignee} {
			cID := customerID
			pt := partyType
			customerTypes = append(customerTypes, domain.CustomerType{
				CustomerTypeID: ctID,
				CustomerID:     &cID,
				PartyTypeID:    &pt,
				CreateUserID:   cu,
				CreateDttm:     cd,
			})
			ctID++
		}
	}
	if err := upsert(&customerTypes); err != nil {
		return err
	}

	adminType := int16(1)
	infoID := int32(1)
	userInfos := []domain.UserInformation{
		{UserInformationID: 1, FirstName: str("Demo"), LastName: str("Admin"), Email: str("admin@example.com"), UserCode: str("ADMIN"), StatusID: &active, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&userInfos); err != nil {
		return err
	}

	users := []domain.User{
		{UserID: 1, UserTypeID: &adminType, UserInformationID: &infoID, CreateUserID: cu, CreateDttm: cd},
	}
	if err := upsert(&users); err != nil {
		return err
	}

	userID := int32(1)
	creds := []domain.UserCredential{
		{UserCredentialID: 1, UserID: &userID, Password: str("changeme"), CreateUserID: cu, CreateDttm: cd},
	}
	return upsert(&creds)
}

func str(s string) *string { return &s }
func i16(v int16) *int16   { return &v }
func i32(v int32) *int32   { return &v }
