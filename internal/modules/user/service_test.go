package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"bookingapi/internal/database"
	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	statuses := []domain.Status{
		{StatusID: 1, StatusCd: strPtr("ACT"), StatusDesc: strPtr("ACTIVE")},
	}
	require.NoError(t, db.Create(&statuses).Error)

	userTypes := []domain.UserType{
		{UserTypeID: 1, UserTypeCd: strPtr("ADM"), UserTypeDesc: strPtr("Administrator")},
	}
	require.NoError(t, db.Create(&userTypes).Error)

	return NewService(repository.NewUserRepository(db)), db
}

func strPtr(s string) *string { return &s }
func i16Ptr(v int16) *int16   { return &v }

func validCreateRequest() CreateUserRequest {
	return CreateUserRequest{
		UserTypeID: i16Ptr(1),
		FirstName:  strPtr("Ana"),
		LastName:   strPtr("Lim"),
		Email:      strPtr("ana@example.com"),
		UserCode:   strPtr("ALIM"),
		StatusID:   i16Ptr(1),
		Password:   strPtr("secret"),
	}
}

func TestCreateWritesAllThreeRows(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, validCreateRequest(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "Ana", *row.FirstName)
	assert.Equal(t, "Lim", *row.LastName)
	assert.Equal(t, "Administrator", *row.UserTypeDesc)
	assert.Equal(t, "ACTIVE", *row.StatusDesc)
	assert.Equal(t, "alice", *row.CreateUserID)

	var account domain.User
	require.NoError(t, db.Where("user_id = ?", row.UserID).First(&account).Error)
	require.NotNil(t, account.UserInformationID)

	var info domain.UserInformation
	require.NoError(t, db.Where("user_information_id = ?", *account.UserInformationID).First(&info).Error)
	assert.Equal(t, "Ana", *info.FirstName)

	var cred domain.UserCredential
	require.NoError(t, db.Where("user_id = ?", row.UserID).First(&cred).Error)
	assert.Equal(t, "secret", *cred.Password)
}

func TestUpdateAppliesByPresence(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(), "alice")
	require.NoError(t, err)

	row, err := svc.Update(ctx, created.UserID, UpdateUserRequest{
		LastName: strPtr("Lim-Garcia"),
	}, "bob")
	require.NoError(t, err)

	assert.Equal(t, "Ana", *row.FirstName)
	assert.Equal(t, "Lim-Garcia", *row.LastName)
	assert.Equal(t, "bob", *row.UpdateUserID)

	// An update that never mentions the password leaves the credential row
	// alone.
	var cred domain.UserCredential
	require.NoError(t, db.Where("user_id = ?", created.UserID).First(&cred).Error)
	assert.Equal(t, "secret", *cred.Password)
	assert.Equal(t, "alice", *cred.UpdateUserID)
}

func TestUpdatePassword(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(), "alice")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.UserID, UpdateUserRequest{
		Password: strPtr("rotated"),
	}, "bob")
	require.NoError(t, err)

	var cred domain.UserCredential
	require.NoError(t, db.Where("user_id = ?", created.UserID).First(&cred).Error)
	assert.Equal(t, "rotated", *cred.Password)
	assert.Equal(t, "bob", *cred.UpdateUserID)
}

func TestUpdateMissingUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 999, UpdateUserRequest{}, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesAllThreeRows(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(), "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.UserID))

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&domain.UserInformation{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&domain.UserCredential{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	_, err = svc.Get(ctx, created.UserID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingUserHasNoSideEffects(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest(), "alice")
	require.NoError(t, err)

	err = svc.Delete(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateRequest(), "alice")
	require.NoError(t, err)

	second := validCreateRequest()
	second.FirstName = strPtr("Ben")
	second.UserCode = strPtr("BEN")
	created, err := svc.Create(ctx, second, "alice")
	require.NoError(t, err)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Equal timestamps are possible here; just check both rows came back.
	ids := []int32{rows[0].UserID, rows[1].UserID}
	assert.Contains(t, ids, first.UserID)
	assert.Contains(t, ids, created.UserID)
}
