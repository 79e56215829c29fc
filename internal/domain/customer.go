package domain

import "time"

type Customer struct {
	CustomerID   int32      `json:"customerId" gorm:"column:customer_id;primaryKey;autoIncrement"`
	CustomerCd   *string    `json:"customerCd" gorm:"column:customer_cd"`
	StatusID     *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm   *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm   *time.Time `json:"updateDttm" gorm:"column:update_dttm"`

	CustomerInformation *CustomerInformation `json:"customerInformation,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string { return "customer" }

type CustomerInformation struct {
	CustomerInformationID int32      `json:"customerInformationId" gorm:"column:customer_information_id;primaryKey;autoIncrement"`
	CustomerID            *int32     `json:"customerId" gorm:"column:customer_id"`
	FirstName             *string    `json:"firstName" gorm:"column:first_name"`
	MiddleName            *string    `json:"middleName" gorm:"column:middle_name"`
	LastName              *string    `json:"lastName" gorm:"column:last_name"`
	CreateUserID          *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm            *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID          *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm            *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (CustomerInformation) TableName() string { return "customer_information" }

// CustomerType links a customer to the party roles it can play on a booking.
// Only the raw party listings read it.
type CustomerType struct {
	CustomerTypeID int32      `json:"customerTypeId" gorm:"column:customer_type_id;primaryKey;autoIncrement"`
	CustomerID     *int32     `json:"customerId" gorm:"column:customer_id"`
	PartyTypeID    *int16     `json:"partyTypeId" gorm:"column:party_type_id"`
	CreateUserID   *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm     *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID   *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm     *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (CustomerType) TableName() string { return "customer_type" }
