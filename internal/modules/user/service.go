package user

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

type Service struct {
	users AccountRepository
}

func NewService(users AccountRepository) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context) ([]repository.UserAccountRow, error) {
	return s.users.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int32) (*repository.UserAccountRow, error) {
	row, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

// Create writes the information, account, and credential rows as one unit.
func (s *Service) Create(ctx context.Context, req CreateUserRequest, actor string) (*repository.UserAccountRow, error) {
	now := time.Now().UTC()

	info := &domain.UserInformation{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Email:        req.Email,
		Number:       req.Number,
		UserCode:     req.UserCode,
		StatusID:     req.StatusID,
		CreateUserID: &actor,
		CreateDttm:   &now,
		UpdateUserID: &actor,
		UpdateDttm:   &now,
	}
	account := &domain.User{
		UserTypeID:   req.UserTypeID,
		Remarks:      req.Remarks,
		CreateUserID: &actor,
		CreateDttm:   &now,
		UpdateUserID: &actor,
		UpdateDttm:   &now,
	}
	cred := &domain.UserCredential{
		Password:     req.Password,
		CreateUserID: &actor,
		CreateDttm:   &now,
		UpdateUserID: &actor,
		UpdateDttm:   &now,
	}

	if err := s.users.CreateAccount(ctx, info, account, cred); err != nil {
		return nil, err
	}
	return s.Get(ctx, account.UserID)
}

// Update applies request fields by presence across the account trio and
// saves the touched rows together.
func (s *Service) Update(ctx context.Context, id int32, req UpdateUserRequest, actor string) (*repository.UserAccountRow, error) {
	account, err := s.users.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()

	if req.UserTypeID != nil {
		account.UserTypeID = req.UserTypeID
	}
	if req.Remarks != nil {
		account.Remarks = req.Remarks
	}
	account.UpdateUserID = &actor
	account.UpdateDttm = &now

	info := account.UserInformation
	account.UserInformation = nil
	if info != nil {
		if req.FirstName != nil {
			info.FirstName = req.FirstName
		}
		if req.MiddleName != nil {
			info.MiddleName = req.MiddleName
		}
		if req.LastName != nil {
			info.LastName = req.LastName
		}
		if req.Email != nil {
			info.Email = req.Email
		}
		if req.Number != nil {
			info.Number = req.Number
		}
		if req.UserCode != nil {
			info.UserCode = req.UserCode
		}
		if req.StatusID != nil {
			info.StatusID = req.StatusID
		}
		info.UpdateUserID = &actor
		info.UpdateDttm = &now
		info.Status = nil
	}

	var cred *domain.UserCredential
	if req.Password != nil {
		cred, err = s.users.GetCredentialByUserID(ctx, id)
		if err != nil {
			return nil, err
		}
		if cred == nil {
			cred = &domain.UserCredential{
				UserID:       &id,
				CreateUserID: &actor,
				CreateDttm:   &now,
			}
		}
		cred.Password = req.Password
		cred.UpdateUserID = &actor
		cred.UpdateDttm = &now
	}

	if err := s.users.SaveAccount(ctx, account, info, cred); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the credential, account, and information rows together.
// The lookup happens first so a missing id has no side effects.
func (s *Service) Delete(ctx context.Context, id int32) error {
	account, err := s.users.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.users.DeleteAccount(ctx, account)
}
