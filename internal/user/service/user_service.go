package service

import (
	"context"
	"net/http"
	"strings"

	authmodel "github.com/itsryu/ZeDoBambu/internal/auth/model"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
	"github.com/itsryu/ZeDoBambu/internal/user/model"
)

// ProfileStoreInterface is the profile persistence surface the service
// depends on. GetProfile returns nil without error when absent.
type ProfileStoreInterface interface {
	GetProfile(ctx context.Context, uid string) (*model.User, error)
	CreateProfile(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, uid string, updates map[string]interface{}) error
	MergeProfile(ctx context.Context, uid string, updates map[string]interface{}) error
	DeleteProfile(ctx context.Context, uid string) error
	ListProfiles(ctx context.Context) (map[string]model.User, error)
}

// IdentityAdmin is the administrative surface of the identity provider.
type IdentityAdmin interface {
	GetUser(ctx context.Context, uid string) (*authmodel.IdentityRecord, error)
	ListUsers(ctx context.Context) ([]authmodel.IdentityRecord, error)
	UpdateUser(ctx context.Context, uid string, update authmodel.IdentityUpdate) error
	SetRoleClaim(ctx context.Context, uid, role string) error
	DeleteUser(ctx context.Context, uid string) error
}

// UserService implements profile self-service and admin user management.
type UserService struct {
	store    ProfileStoreInterface
	identity IdentityAdmin
}

// NewUserService constructs the service with its collaborators injected.
func NewUserService(store ProfileStoreInterface, identity IdentityAdmin) *UserService {

	return &UserService{
		store:    store,
		identity: identity,
	}
}

// GetProfile returns the profile document for the uid.
func (s *UserService) GetProfile(ctx context.Context, uid string) (*model.User, error) {

	profile, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PROFILE, err)
	}
	if profile == nil {
		return nil, apierrors.NewClientError(apierrors.PROFILE_NOT_FOUND, http.StatusNotFound)
	}
	return profile, nil
}

// UpdateProfile applies a validated self-service update to an existing
// profile and returns the updated document.
func (s *UserService) UpdateProfile(ctx context.Context, uid string, req *model.UpdateProfileRequest) (*model.User, error) {

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PROFILE, err)
	}
	if existing == nil {
		return nil, apierrors.NewClientError(apierrors.PROFILE_NOT_FOUND, http.StatusNotFound)
	}

	if err := s.store.UpdateProfile(ctx, uid, req.Updates()); err != nil {
		return nil, apierrors.NewServerError(apierrors.UPDATE_PROFILE, err)
	}

	return s.GetProfile(ctx, uid)
}

// ListUsers merges every identity record with its profile document. Search
// filters case-insensitively on display name and email.
func (s *UserService) ListUsers(ctx context.Context, search string) ([]model.AdminListEntry, error) {

	records, err := s.identity.ListUsers(ctx)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.LIST_USERS, err)
	}

	if search != "" {
		term := strings.ToLower(search)
		filtered := records[:0]
		for _, record := range records {
			if strings.Contains(strings.ToLower(record.DisplayName), term) ||
				strings.Contains(strings.ToLower(record.Email), term) {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PROFILE, err)
	}

	entries := make([]model.AdminListEntry, 0, len(records))
	for _, record := range records {
		profile, hasProfile := profiles[record.UID]
		entry := model.AdminListEntry{
			ID:             record.UID,
			Email:          record.Email,
			Name:           record.DisplayName,
			Role:           constants.RoleCustomer,
			Disabled:       record.Disabled,
			AvatarURL:      record.PhotoURL,
			Phone:          record.PhoneNumber,
			CreatedAt:      record.CreatedAt,
			UpdatedAt:      record.LastLoginAt,
			LastSignInTime: record.LastLoginAt,
		}
		if claimRole, ok := record.CustomClaims[constants.RoleClaim].(string); ok && claimRole != "" {
			entry.Role = claimRole
		}
		if hasProfile {
			if profile.Name != "" {
				entry.Name = profile.Name
			}
			if profile.Role != "" {
				entry.Role = profile.Role
			}
			if profile.AvatarURL != "" {
				entry.AvatarURL = profile.AvatarURL
			}
			if profile.Phone != "" {
				entry.Phone = profile.Phone
			}
			entry.Address = profile.Address
			if !profile.UpdatedAt.IsZero() {
				entry.UpdatedAt = profile.UpdatedAt
			}
		}
		if entry.Name == "" {
			entry.Name = constants.AnonymousUserName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// AdminUpdateUser applies a validated admin update: identity attributes on
// the provider record, the role as a custom claim, and a merge-set of the
// profile document. Returns the profile after the merge.
func (s *UserService) AdminUpdateUser(ctx context.Context, uid string, req *model.AdminUpdateUserRequest) (*model.User, error) {

	if err := req.Validate(); err != nil {
		return nil, err
	}

	identityUpdate := authmodel.IdentityUpdate{
		DisplayName: req.Name,
		Disabled:    req.Disabled,
		PhotoURL:    req.AvatarURL,
		PhoneNumber: req.Phone,
	}
	if err := s.identity.UpdateUser(ctx, uid, identityUpdate); err != nil {
		return nil, apierrors.NewServerError(apierrors.UPDATE_IDENTITY, err)
	}

	if req.Role != nil {
		if err := s.identity.SetRoleClaim(ctx, uid, *req.Role); err != nil {
			return nil, apierrors.NewServerError(apierrors.SET_ROLE_CLAIM, err)
		}
		log.GetLogger().Info("Role custom claim updated.",
			log.String("uid", uid), log.String("role", *req.Role))
	}

	if err := s.store.MergeProfile(ctx, uid, req.Updates()); err != nil {
		return nil, apierrors.NewServerError(apierrors.UPDATE_PROFILE, err)
	}

	return s.GetProfile(ctx, uid)
}

// DeleteUser removes the identity first and then the profile document.
// The transition is terminal; nothing recreates the pair afterwards.
func (s *UserService) DeleteUser(ctx context.Context, uid string) error {

	if err := s.identity.DeleteUser(ctx, uid); err != nil {
		return apierrors.NewServerError(apierrors.DELETE_IDENTITY, err)
	}
	if err := s.store.DeleteProfile(ctx, uid); err != nil {
		return apierrors.NewServerError(apierrors.DELETE_PROFILE, err)
	}

	log.GetLogger().Info("User deleted.", log.String("uid", uid))
	return nil
}
