package service

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authmodel "github.com/itsryu/ZeDoBambu/internal/auth/model"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
	"github.com/itsryu/ZeDoBambu/internal/user/model"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// MockProfileStore implements ProfileStoreInterface for testing
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetProfile(ctx context.Context, uid string) (*model.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockProfileStore) CreateProfile(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockProfileStore) UpdateProfile(ctx context.Context, uid string, updates map[string]interface{}) error {
	args := m.Called(ctx, uid, updates)
	return args.Error(0)
}

func (m *MockProfileStore) MergeProfile(ctx context.Context, uid string, updates map[string]interface{}) error {
	args := m.Called(ctx, uid, updates)
	return args.Error(0)
}

func (m *MockProfileStore) DeleteProfile(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockProfileStore) ListProfiles(ctx context.Context) (map[string]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.User), args.Error(1)
}

// MockIdentityAdmin implements IdentityAdmin for testing
type MockIdentityAdmin struct {
	mock.Mock
}

func (m *MockIdentityAdmin) GetUser(ctx context.Context, uid string) (*authmodel.IdentityRecord, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authmodel.IdentityRecord), args.Error(1)
}

func (m *MockIdentityAdmin) ListUsers(ctx context.Context) ([]authmodel.IdentityRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]authmodel.IdentityRecord), args.Error(1)
}

func (m *MockIdentityAdmin) UpdateUser(ctx context.Context, uid string, update authmodel.IdentityUpdate) error {
	args := m.Called(ctx, uid, update)
	return args.Error(0)
}

func (m *MockIdentityAdmin) SetRoleClaim(ctx context.Context, uid, role string) error {
	args := m.Called(ctx, uid, role)
	return args.Error(0)
}

func (m *MockIdentityAdmin) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// GetProfile / UpdateProfile
// ---------------------------------------------------------------------------

func TestGetProfile_NotFound(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	store.On("GetProfile", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetProfile(context.Background(), "missing")

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestUpdateProfile_RejectsEmptyUpdate(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	_, err := svc.UpdateProfile(context.Background(), "u1", &model.UpdateProfileRequest{})

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	store.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_RejectsShortName(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	_, err := svc.UpdateProfile(context.Background(), "u1",
		&model.UpdateProfileRequest{Name: strPtr("ab")})

	assert.Error(t, err)
}

func TestUpdateProfile_AppliesAndRereads(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	existing := &model.User{ID: "u1", Name: "Old Name", Role: constants.RoleCustomer}
	updated := &model.User{ID: "u1", Name: "New Name", Role: constants.RoleCustomer}

	store.On("GetProfile", mock.Anything, "u1").Return(existing, nil).Once()
	store.
		On("UpdateProfile", mock.Anything, "u1", mock.MatchedBy(func(u map[string]interface{}) bool {
			return u["name"] == "New Name"
		})).
		Return(nil).Once()
	store.On("GetProfile", mock.Anything, "u1").Return(updated, nil).Once()

	profile, err := svc.UpdateProfile(context.Background(), "u1",
		&model.UpdateProfileRequest{Name: strPtr("New Name")})

	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.Name)
	store.AssertExpectations(t)
}

// ---------------------------------------------------------------------------
// ListUsers
// ---------------------------------------------------------------------------

func TestListUsers_MergesProfileOverRecord(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	identity.On("ListUsers", mock.Anything).Return([]authmodel.IdentityRecord{
		{UID: "u1", Email: "u1@example.com", DisplayName: "Provider Name"},
	}, nil)
	store.On("ListProfiles", mock.Anything).Return(map[string]model.User{
		"u1": {ID: "u1", Name: "Profile Name", Role: constants.RoleAdmin, UpdatedAt: time.Now()},
	}, nil)

	entries, err := svc.ListUsers(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Profile Name", entries[0].Name)
	assert.Equal(t, constants.RoleAdmin, entries[0].Role)
}

func TestListUsers_ClaimRoleWhenNoProfile(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	identity.On("ListUsers", mock.Anything).Return([]authmodel.IdentityRecord{
		{
			UID:          "u1",
			Email:        "u1@example.com",
			CustomClaims: map[string]interface{}{constants.RoleClaim: constants.RoleAdmin},
		},
	}, nil)
	store.On("ListProfiles", mock.Anything).Return(map[string]model.User{}, nil)

	entries, err := svc.ListUsers(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, constants.RoleAdmin, entries[0].Role)
	assert.Equal(t, constants.AnonymousUserName, entries[0].Name)
}

func TestListUsers_SearchFiltersOnNameAndEmail(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	identity.On("ListUsers", mock.Anything).Return([]authmodel.IdentityRecord{
		{UID: "u1", Email: "alice@example.com", DisplayName: "Alice"},
		{UID: "u2", Email: "bob@example.com", DisplayName: "Bob"},
	}, nil)
	store.On("ListProfiles", mock.Anything).Return(map[string]model.User{}, nil)

	entries, err := svc.ListUsers(context.Background(), "ALICE")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].ID)
}

// ---------------------------------------------------------------------------
// AdminUpdateUser / DeleteUser
// ---------------------------------------------------------------------------

func TestAdminUpdateUser_SetsClaimAndMergesProfile(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	identity.On("UpdateUser", mock.Anything, "u1", mock.Anything).Return(nil)
	identity.On("SetRoleClaim", mock.Anything, "u1", constants.RoleAdmin).Return(nil).Once()
	store.
		On("MergeProfile", mock.Anything, "u1", mock.MatchedBy(func(u map[string]interface{}) bool {
			return u["role"] == constants.RoleAdmin
		})).
		Return(nil).Once()
	store.On("GetProfile", mock.Anything, "u1").
		Return(&model.User{ID: "u1", Role: constants.RoleAdmin}, nil)

	profile, err := svc.AdminUpdateUser(context.Background(), "u1",
		&model.AdminUpdateUserRequest{Role: strPtr(constants.RoleAdmin)})

	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, profile.Role)
	identity.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestAdminUpdateUser_RejectsUnknownRole(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	_, err := svc.AdminUpdateUser(context.Background(), "u1",
		&model.AdminUpdateUserRequest{Role: strPtr("superuser")})

	assert.Error(t, err)
	identity.AssertNotCalled(t, "SetRoleClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUpdateUser_NoRoleSkipsClaim(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	identity.On("UpdateUser", mock.Anything, "u1", mock.Anything).Return(nil)
	store.On("MergeProfile", mock.Anything, "u1", mock.Anything).Return(nil)
	store.On("GetProfile", mock.Anything, "u1").
		Return(&model.User{ID: "u1", Name: "New Name"}, nil)

	_, err := svc.AdminUpdateUser(context.Background(), "u1",
		&model.AdminUpdateUserRequest{Name: strPtr("New Name")})

	require.NoError(t, err)
	identity.AssertNotCalled(t, "SetRoleClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUser_IdentityFirstThenProfile(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	identity.On("DeleteUser", mock.Anything, "u1").Return(nil).Once()
	store.On("DeleteProfile", mock.Anything, "u1").Return(nil).Once()

	err := svc.DeleteUser(context.Background(), "u1")

	require.NoError(t, err)
	identity.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestDeleteUser_IdentityFailureSkipsProfile(t *testing.T) {
	store := new(MockProfileStore)
	identity := new(MockIdentityAdmin)
	svc := NewUserService(store, identity)

	identity.On("DeleteUser", mock.Anything, "u1").
		Return(assert.AnError)

	err := svc.DeleteUser(context.Background(), "u1")

	assert.Error(t, err)
	store.AssertNotCalled(t, "DeleteProfile", mock.Anything, mock.Anything)
}
