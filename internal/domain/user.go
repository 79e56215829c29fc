package domain

import "time"

// A user account is the tuple (UserInformation, User, UserCredential),
// created and deleted together.

type User struct {
	UserID            int32      `json:"userId" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserTypeID        *int16     `json:"userTypeId" gorm:"column:user_type_id"`
	UserInformationID *int32     `json:"userInformationId" gorm:"column:user_information_id"`
	Remarks           *string    `json:"remarks" gorm:"column:remarks"`
	CreateUserID      *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm        *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID      *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm        *time.Time `json:"updateDttm" gorm:"column:update_dttm"`

	UserInformation *UserInformation `json:"userInformation,omitempty" gorm:"foreignKey:UserInformationID"`
	UserType        *UserType        `json:"userType,omitempty" gorm:"foreignKey:UserTypeID"`
}

func (User) TableName() string { return "user" }

type UserInformation struct {
	UserInformationID int32      `json:"userInformationId" gorm:"column:user_information_id;primaryKey;autoIncrement"`
	FirstName         *string    `json:"firstName" gorm:"column:first_name"`
	MiddleName        *string    `json:"middleName" gorm:"column:middle_name"`
	LastName          *string    `json:"lastName" gorm:"column:last_name"`
	Email             *string    `json:"email" gorm:"column:email"`
	Number            *string    `json:"number" gorm:"column:number"`
	UserCode          *string    `json:"userCode" gorm:"column:user_code"`
	StatusID          *int16     `json:"statusId" gorm:"column:status_id"`
	CreateUserID      *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm        *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID      *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm        *time.Time `json:"updateDttm" gorm:"column:update_dttm"`

	Status *Status `json:"status,omitempty" gorm:"foreignKey:StatusID"`
}

func (UserInformation) TableName() string { return "user_information" }

type UserCredential struct {
	UserCredentialID int32      `json:"userCredentialId" gorm:"column:user_credential_id;primaryKey;autoIncrement"`
	UserID           *int32     `json:"userId" gorm:"column:user_id"`
	Password         *string    `json:"-" gorm:"column:password"` // TODO: hash passwords before storing
	CreateUserID     *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm       *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID     *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm       *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (UserCredential) TableName() string { return "user_credential" }
