package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookingapi/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UserAccountRow is the joined projection the user endpoints return.
type UserAccountRow struct {
	UserID            int32      `json:"userId" gorm:"column:user_id"`
	UserTypeID        *int16     `json:"userTypeId" gorm:"column:user_type_id"`
	UserInformationID *int32     `json:"userInformationId" gorm:"column:user_information_id"`
	UserTypeCd        *string    `json:"userTypeCd" gorm:"column:user_type_cd"`
	UserTypeDesc      *string    `json:"userTypeDesc" gorm:"column:user_type_desc"`
	FirstName         *string    `json:"firstName" gorm:"column:first_name"`
	MiddleName        *string    `json:"middleName" gorm:"column:middle_name"`
	LastName          *string    `json:"lastName" gorm:"column:last_name"`
	Email             *string    `json:"email" gorm:"column:email"`
	Number            *string    `json:"number" gorm:"column:number"`
	UserCode          *string    `json:"userCode" gorm:"column:user_code"`
	StatusID          *int16     `json:"statusId" gorm:"column:status_id"`
	StatusDesc        *string    `json:"statusDesc" gorm:"column:status_desc"`
	Remarks           *string    `json:"remarks" gorm:"column:remarks"`
	CreateUserID      *string    `json:"createUserId" gorm:"column:create_user_id"`
	CreateDttm        *time.Time `json:"createDttm" gorm:"column:create_dttm"`
	UpdateUserID      *string    `json:"updateUserId" gorm:"column:update_user_id"`
	UpdateDttm        *time.Time `json:"updateDttm" gorm:"column:update_dttm"`
}

func (r *UserRepository) accountQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(`"user" u`).
		Select(`
			u.user_id,
			u.user_type_id,
			u.user_information_id,
			ut.user_type_cd,
			ut.user_type_desc,
			ui.first_name,
			ui.middle_name,
			ui.last_name,
			ui.email,
			ui.number,
			ui.user_code,
			ui.status_id,
			st.status_desc,
			u.remarks,
			u.create_user_id,
			u.create_dttm,
			u.update_user_id,
			u.update_dttm
		`).
		Joins(`LEFT JOIN user_type ut ON ut.user_type_id = u.user_type_id`).
		Joins(`LEFT JOIN user_information ui ON ui.user_information_id = u.user_information_id`).
		Joins(`LEFT JOIN status st ON st.status_id = ui.status_id`)
}

func (r *UserRepository) GetAll(ctx context.Context) ([]UserAccountRow, error) {
	var rows []UserAccountRow
	tx := r.accountQuery(ctx).
		Order("u.create_dttm DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int32) (*UserAccountRow, error) {
	var row UserAccountRow
	tx := r.accountQuery(ctx).
		Where("u.user_id = ?", id).
		Take(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &row, nil
}

// GetAccount loads the mutable account rows for an update.
func (r *UserRepository) GetAccount(ctx context.Context, id int32) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Preload("UserInformation").
		Where("user_id = ?", id).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetCredentialByUserID(ctx context.Context, userID int32) (*domain.UserCredential, error) {
	var cred domain.UserCredential
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cred)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &cred, nil
}

// CreateAccount writes the information, user, and credential rows as a
// single unit. Any failure rolls all three back.
func (r *UserRepository) CreateAccount(ctx context.Context, info *domain.UserInformation, user *domain.User, cred *domain.UserCredential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(info).Error; err != nil {
			return err
		}
		user.UserInformationID = &info.UserInformationID
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		cred.UserID = &user.UserID
		return tx.Omit(clause.Associations).Create(cred).Error
	})
}

// SaveAccount persists updated account rows together; nil rows are skipped.
func (r *UserRepository) SaveAccount(ctx context.Context, user *domain.User, info *domain.UserInformation, cred *domain.UserCredential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if info != nil {
			if err := tx.Omit(clause.Associations).Save(info).Error; err != nil {
				return err
			}
		}
		if user != nil {
			if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
				return err
			}
		}
		if cred != nil {
			if err := tx.Omit(clause.Associations).Save(cred).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAccount removes the credential, user, and information rows in one
// transaction.
func (r *UserRepository) DeleteAccount(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.UserID).Delete(&domain.UserCredential{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.UserID).Delete(&domain.User{}).Error; err != nil {
			return err
		}
		if user.UserInformationID != nil {
			if err := tx.Where("user_information_id = ?", *user.UserInformationID).Delete(&domain.UserInformation{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&cnt).Error
	return cnt, err
}

// CountByInformationStatus counts users whose information row carries the
// given status.
func (r *UserRepository) CountByInformationStatus(ctx context.Context, statusID int16) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Table(`"user" u`).
		Joins("INNER JOIN user_information ui ON ui.user_information_id = u.user_information_id").
		Where("ui.status_id = ?", statusID).
		Count(&cnt).Error
	return cnt, err
}
