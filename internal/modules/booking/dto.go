package booking

import "time"

// CreateBookingRequest is the flat write shape: every Booking scalar plus
// the three optional party customer ids. Audit fields are always assigned
// server-side, never taken from the request.
type CreateBookingRequest struct {
	BookingNo             *string `json:"bookingNo"`
	StatusID              *int16  `json:"statusId"`
	TransportServiceID    *int16  `json:"transportServiceId"`
	OriginLocationID      *int16  `json:"originLocationId"`
	DestinationLocationID *int16  `json:"destinationLocationId"`
	VesselScheduleID      *int16  `json:"vesselScheduleId"`
	EquipmentID           *int16  `json:"equipmentId"`
	PaymentModeID         *int16  `json:"paymentModeId"`
	CommodityID           *int16  `json:"commodityId"`
	VesselID              *int16  `json:"vesselId"`
	DeclaredValue         *int32  `json:"declaredValue"`
	CargoDescription      *string `json:"cargoDescription"`
	Weight                *int32  `json:"weight"`
	ContainerID           *int16  `json:"containerId"`
	SealNumber            *string `json:"sealNumber"`
	Trucker               *string `json:"trucker"`
	PlateNumber           *string `json:"plateNumber"`
	Driver                *string `json:"driver"`

	AgreementPartyID *int32 `json:"agreementPartyId"`
	ShipperPartyID   *int32 `json:"shipperPartyId"`
	ConsigneePartyID *int32 `json:"consigneePartyId"`
}

// UpdateBookingRequest carries the same flat shape; scalars update by
// presence. Supplying any party id replaces the whole party set with
// exactly the ids supplied here - an omitted party id on such an update
// removes that party.
type UpdateBookingRequest = CreateBookingRequest

type CancelBookingRequest struct {
	UserID  *string `json:"userId"`
	Remarks *string `json:"remarks"`
}

// BookingDTO is the flattened read model: ids plus human-readable
// descriptions for every referenced reference row.
type BookingDTO struct {
	BookingID  int16   `json:"bookingId"`
	BookingNo  *string `json:"bookingNo"`
	StatusID   *int16  `json:"statusId"`
	StatusDesc *string `json:"statusDesc"`

	OriginLocationID        *int16  `json:"originLocationId"`
	OriginLocationDesc      *string `json:"originLocationDesc"`
	DestinationLocationID   *int16  `json:"destinationLocationId"`
	DestinationLocationDesc *string `json:"destinationLocationDesc"`

	VesselID       *int16             `json:"vesselId"`
	VesselDesc     *string            `json:"vesselDesc"`
	VesselSchedule *VesselScheduleDTO `json:"vesselSchedule"`

	EquipmentID      *int16  `json:"equipmentId"`
	EquipmentDesc    *string `json:"equipmentDesc"`
	CommodityID      *int16  `json:"commodityId"`
	CommodityDesc    *string `json:"commodityDesc"`
	Weight           *int32  `json:"weight"`
	DeclaredValue    *int32  `json:"declaredValue"`
	CargoDescription *string `json:"cargoDescription"`
	ContainerID      *int16  `json:"containerId"`
	ContainerNo      *string `json:"containerNo"`
	SealNumber       *string `json:"sealNumber"`

	BookingParties []BookingPartyDTO `json:"bookingParties"`

	PaymentModeID   *int16  `json:"paymentModeId"`
	PaymentModeDesc *string `json:"paymentModeDesc"`
	Trucker         *string `json:"trucker"`
	PlateNumber     *string `json:"plateNumber"`
	Driver          *string `json:"driver"`

	CreateDttm    *time.Time `json:"createDttm"`
	UpdateDttm    *time.Time `json:"updateDttm"`
	CancelDttm    *time.Time `json:"cancelDttm"`
	CancelRemarks *string    `json:"cancelRemarks"`
}

type VesselScheduleDTO struct {
	VesselScheduleID    int16      `json:"vesselScheduleId"`
	VesselDesc          *string    `json:"vesselDesc"`
	OriginPortDesc      *string    `json:"originPortDesc"`
	DestinationPortDesc *string    `json:"destinationPortDesc"`
	ETD                 *time.Time `json:"etd"`
	ETA                 *time.Time `json:"eta"`
}

type BookingPartyDTO struct {
	BookingPartyID int16        `json:"bookingPartyId"`
	PartyTypeID    *int16       `json:"partyTypeId"`
	Customer       *CustomerDTO `json:"customer"`
}

type CustomerDTO struct {
	CustomerID int32   `json:"customerId"`
	CustomerCd *string `json:"customerCd"`
	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
	LastName   *string `json:"lastName"`
}

type StatsResponse struct {
	TotalBookings int64 `json:"totalBookings"`
	Booked        int64 `json:"booked"`
	BookedToday   int64 `json:"bookedToday"`
	ActiveUsers   int64 `json:"activeUsers"`
	Canceled      int64 `json:"canceled"`
}

type RouteStatsResponse struct {
	PeriodStart   time.Time  `json:"periodStart"`
	PeriodEnd     time.Time  `json:"periodEnd"`
	TotalBookings int64      `json:"totalBookings"`
	Routes        []RouteDTO `json:"routes"`
}

type RouteDTO struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Count       int64   `json:"count"`
	Percentage  float64 `json:"percentage"`
}
