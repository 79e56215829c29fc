package user

import (
	"context"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

// AccountRepository persists the three-row account unit.
type AccountRepository interface {
	GetAll(ctx context.Context) ([]repository.UserAccountRow, error)
	GetByID(ctx context.Context, id int32) (*repository.UserAccountRow, error)
	GetAccount(ctx context.Context, id int32) (*domain.User, error)
	GetCredentialByUserID(ctx context.Context, userID int32) (*domain.UserCredential, error)
	CreateAccount(ctx context.Context, info *domain.UserInformation, user *domain.User, cred *domain.UserCredential) error
	SaveAccount(ctx context.Context, user *domain.User, info *domain.UserInformation, cred *domain.UserCredential) error
	DeleteAccount(ctx context.Context, user *domain.User) error
}
