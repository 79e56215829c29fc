package domain

import "time"

// Party type ids are fixed values in the upstream schema, not rows in a
// lookup table. At most one active party row per type exists per booking;
// the writer enforces this, the schema does not.
const (
	PartyTypeAgreement int16 = 10
	PartyTypeShipper   int16 = 11
	PartyTypeConsignee int16 = 12
)

// SystemActor is the audit identity used when no caller identity is present.
const SystemActor = "SYSTEM"

type Booking struct {
	BookingID             int16      `json:"bookingId" gorm:"column:booking_id;primaryKey;autoIncrement"`
	BookingNo             *string    `json:"bookingNo" gorm:"column:booking_no"`
	StatusID              *int16     `json:"statusId" gorm:"column:status_id"`
	TransportServiceID    *int16     `json:"transportServiceId" gorm:"column:transport_service_id"`
	OriginLocationID      *int16     `json:"originLocationId" gorm:"column:origin_location_id"`
	DestinationLocationID *int16     `json:"destinationLocationId" gorm:"column:destination_location_id"`
	VesselScheduleID      *int16     `json:"vesselScheduleId" gorm:"column:vessel_schedule_id"`
	EquipmentID           *int16     `json:"equipmentId" gorm:"column:equipment_id"`
	PaymentModeID         *int16     `json:"paymentModeId" gorm:"column:payment_mode_id"`
	CommodityID           *int16     `json:"commodityId" gorm:"column:commodity_id"`
	VesselID              *int16     `json:"vesselId" gorm:"column:vessel_id"`
	DeclaredValue         *int32     `json:"declaredValue" gorm:"column:declared_value"`
	CargoDescription      *string    `json:"cargoDescription" gorm:"column:cargo_description"`
	Weight                *int32     `json:"weight" gorm:"column:weight"`
	ContainerID           *int16     `json:"containerId" gorm:"column:container_id"`
	SealNumber            *string    `json:"sealNumber" gorm:"column:seal_number"`
	Trucker               *string    `json:"trucker" gorm:"column:trucker"`
	PlateNumber           *string    `json:"plateNumber" gorm:"column:plate_number"`
	Driver                *string    `json:"driver" gorm:"column:driver"`
	CreateUserID          *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm            *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID          *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm            *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
	CancelDttm            *time.Time `json:"cancelDttm" gorm:"column:cancel_dttm"`
	CancelRemarks         *string    `json:"cancelRemarks" gorm:"column:cancel_remarks"`

	Status              *Status         `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	OriginLocation      *Location       `json:"originLocation,omitempty" gorm:"foreignKey:OriginLocationID"`
	DestinationLocation *Location       `json:"destinationLocation,omitempty" gorm:"foreignKey:DestinationLocationID"`
	VesselSchedule      *VesselSchedule `json:"vesselSchedule,omitempty" gorm:"foreignKey:VesselScheduleID"`
	Equipment           *Equipment      `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
	PaymentMode         *PaymentMode    `json:"paymentMode,omitempty" gorm:"foreignKey:PaymentModeID"`
	Commodity           *Commodity      `json:"commodity,omitempty" gorm:"foreignKey:CommodityID"`
	Vessel              *Vessel         `json:"vessel,omitempty" gorm:"foreignKey:VesselID"`
	Container           *Container      `json:"container,omitempty" gorm:"foreignKey:ContainerID"`
	Parties             []BookingParty  `json:"parties,omitempty" gorm:"foreignKey:BookingID"`
}

func (Booking) TableName() string { return "booking" }

type BookingParty struct {
	BookingPartyID int16      `json:"bookingPartyId" gorm:"column:booking_party_id;primaryKey;autoIncrement"`
	BookingID      *int16     `json:"bookingId" gorm:"column:booking_id"`
	PartyTypeID    *int16     `json:"partyTypeId" gorm:"column:party_type_id"`
	CustomerID     *int32     `json:"customerId" gorm:"column:customer_id"`
	CreateUserID   *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm     *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID   *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm     *time.Time `json:"updateDttm" gorm:"column:update_dttm"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (BookingParty) TableName() string { return "booking_party" }
