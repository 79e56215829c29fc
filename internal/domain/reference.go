package domain

import "time"

// Reference tables: read-mostly lookup rows referenced by id from Booking
// and the other entities. Ids are smallint surrogates in the source schema.

type Status struct {
	StatusID     int16      `json:"statusId" gorm:"column:status_id;primaryKey;autoIncrement"`
	StatusCd     *string    `json:"statusCd" gorm:"column:status_cd"`
	StatusDesc   *string    `json:"statusDesc" gorm:"column:status_desc"`
	CreateUserID *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm   *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm   *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (Status) TableName() string { return "status" }

type Port struct {
	PortID       int16      `json:"portId" gorm:"column:port_id;primaryKey;autoIncrement"`
	PortCd       *string    `json:"portCd" gorm:"column:port_cd"`
	PortDesc     *string    `json:"portDesc" gorm:"column:port_desc"`
	StatusID     *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm   *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm   *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (Port) TableName() string { return "port" }

type LocationType struct {
	LocationTypeID   int16      `json:"locationTypeId" gorm:"column:location_type_id;primaryKey;autoIncrement"`
	LocationTypeCd   *string    `json:"locationTypeCd" gorm:"column:location_type_cd"`
	LocationTypeDesc *string    `json:"locationTypeDesc" gorm:"column:location_type_desc"`
	CreateUserID     *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm       *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID     *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm       *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (LocationType) TableName() string { return "location_type" }

// Location maps to at most one Port; the schedule lookup resolves location
// filters to port filters through this link.
type Location struct {
	LocationID     int16      `json:"locationId" gorm:"column:location_id;primaryKey;autoIncrement"`
	LocationCd     *string    `json:"locationCd" gorm:"column:location_cd"`
	LocationDesc   *string    `json:"locationDesc" gorm:"column:location_desc"`
	PortID         *int16     `json:"portId" gorm:"column:port_id"`
	LocationTypeID *int16     `json:"locationTypeId" gorm:"column:location_type_id"`
	StatusID       *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID   *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm     *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID   *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm     *time.Time `json:"updateDttm" gorm:"column:update_dttm"`

	Port         *Port         `json:"port,omitempty" gorm:"foreignKey:PortID"`
	LocationType *LocationType `json:"locationType,omitempty" gorm:"foreignKey:LocationTypeID"`
}

func (Location) TableName() string { return "location" }

type Vessel struct {
	VesselID     int16      `json:"vesselId" gorm:"column:vessel_id;primaryKey;autoIncrement"`
	VesselCd     *string    `json:"vesselCd" gorm:"column:vessel_cd"`
	VesselDesc   *string    `json:"vesselDesc" gorm:"column:vessel_desc"`
	StatusID     *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm   *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm   *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (Vessel) TableName() string { return "vessel" }

type Equipment struct {
	EquipmentID   int16      `json:"equipmentId" gorm:"column:equipment_id;primaryKey;autoIncrement"`
	EquipmentCd   *string    `json:"equipmentCd" gorm:"column:equipment_cd"`
	EquipmentDesc *string    `json:"equipmentDesc" gorm:"column:equipment_desc"`
	StatusID      *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID  *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm    *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID  *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm    *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (Equipment) TableName() string { return "equipment" }

type Commodity struct {
	CommodityID     int16      `json:"commodityId" gorm:"column:commodity_id;primaryKey;autoIncrement"`
	CommodityCd     *string    `json:"commodityCd" gorm:"column:commodity_cd"`
	CommodityDesc   *string    `json:"commodityDesc" gorm:"column:commodity_desc"`
	CommodityTypeID *int16     `json:"commodityTypeId" gorm:"column:commodity_type_id"`
	StatusID        *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID    *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm      *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID    *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm      *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (Commodity) TableName() string { return "commodity" }

type PaymentMode struct {
	PaymentModeID   int16      `json:"paymentModeId" gorm:"column:payment_mode_id;primaryKey;autoIncrement"`
	PaymentModeCd   *string    `json:"paymentModeCd" gorm:"column:payment_mode_cd"`
	PaymentModeDesc *string    `json:"paymentModeDesc" gorm:"column:payment_mode_desc"`
	StatusID        *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID    *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm      *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID    *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm      *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (PaymentMode) TableName() string { return "payment_mode" }

type TransportService struct {
	TransportServiceID   int16      `json:"transportServiceId" gorm:"column:transport_service_id;primaryKey;autoIncrement"`
	TransportServiceCd   *string    `json:"transportServiceCd" gorm:"column:transport_service_cd"`
	TransportServiceDesc *string    `json:"transportServiceDesc" gorm:"column:transport_service_desc"`
	StatusID             *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID         *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm           *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID         *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm           *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (TransportService) TableName() string { return "transport_service" }

type Container struct {
	ContainerID   int16      `json:"containerId" gorm:"column:container_id;primaryKey;autoIncrement"`
	ContainerNo   *string    `json:"containerNo" gorm:"column:container_no"`
	ContainerDesc *string    `json:"containerDesc" gorm:"column:container_desc"`
	StatusID      *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID  *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm    *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID  *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm    *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (Container) TableName() string { return "container" }

type UserType struct {
	UserTypeID   int16      `json:"userTypeId" gorm:"column:user_type_id;primaryKey;autoIncrement"`
	UserTypeCd   *string    `json:"userTypeCd" gorm:"column:user_type_cd"`
	UserTypeDesc *string    `json:"userTypeDesc" gorm:"column:user_type_desc"`
	CreateUserID *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm   *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm   *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (UserType) TableName() string { return "user_type" }

type VesselSchedule struct {
	VesselScheduleID  int16      `json:"vesselScheduleId" gorm:"column:vessel_schedule_id;primaryKey;autoIncrement"`
	OriginPortID      *int16     `json:"originPortId" gorm:"column:origin_port_id"`
	DestinationPortID *int16     `json:"destinationPortId" gorm:"column:destination_port_id"`
	ETD               *time.Time `json:"etd" gorm:"column:etd"`
	ETA               *time.Time `json:"eta" gorm:"column:eta"`
	VesselID          *int16     `json:"vesselId" gorm:"column:vessel_id"`
	CreateUserID      *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm        *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID      *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm        *time.Time `json:"updateDttm" gorm:"column:update_dttm"`

	OriginPort      *Port   `json:"originPort,omitempty" gorm:"foreignKey:OriginPortID"`
	DestinationPort *Port   `json:"destinationPort,omitempty" gorm:"foreignKey:DestinationPortID"`
	Vessel          *Vessel `json:"vessel,omitempty" gorm:"foreignKey:VesselID"`
}

func (VesselSchedule) TableName() string { return "vessel_schedule" }
