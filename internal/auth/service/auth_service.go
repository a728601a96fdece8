package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/itsryu/ZeDoBambu/internal/auth/model"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
	usermodel "github.com/itsryu/ZeDoBambu/internal/user/model"
)

// IdentityProvider is the slice of the identity provider the reconciler
// depends on.
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*model.Identity, error)
	GetUser(ctx context.Context, uid string) (*model.IdentityRecord, error)
}

// ProfileStore is the slice of the profile store the reconciler depends on.
// GetProfile returns nil without error when the document is absent.
type ProfileStore interface {
	GetProfile(ctx context.Context, uid string) (*usermodel.User, error)
	CreateProfile(ctx context.Context, user *usermodel.User) error
}

// AuthService reconciles a verified identity with its profile document into
// a single consistent user view.
type AuthService struct {
	provider IdentityProvider
	profiles ProfileStore
}

// NewAuthService constructs the reconciler with its collaborators injected.
func NewAuthService(provider IdentityProvider, profiles ProfileStore) *AuthService {

	return &AuthService{
		provider: provider,
		profiles: profiles,
	}
}

// VerifyAndSync verifies the ID token, provisions the profile document on
// first sight, and returns the reconciled view. Role precedence for the
// returned view: custom claim, then stored profile, then "customer". The
// custom claim never rewrites the profile document.
func (s *AuthService) VerifyAndSync(ctx context.Context, idToken string) (*model.View, error) {

	logger := log.GetLogger()

	if strings.TrimSpace(idToken) == "" {
		return nil, apierrors.NewClientError(apierrors.ID_TOKEN_REQUIRED, http.StatusBadRequest)
	}

	identity, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Debug("ID token verification failed.", log.Error(err))
		return nil, apierrors.NewClientError(apierrors.INVALID_TOKEN, http.StatusUnauthorized)
	}

	role := constants.RoleCustomer
	name := resolveName(identity)

	profile, err := s.profiles.GetProfile(ctx, identity.UID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PROFILE, err)
	}

	if profile == nil {
		now := time.Now().UTC()
		newProfile := &usermodel.User{
			ID:        identity.UID,
			Name:      name,
			Email:     identity.Email,
			Role:      constants.RoleCustomer,
			Disabled:  false,
			CreatedAt: now,
			UpdatedAt: now,
		}
		// Concurrent first-time verifications may both observe "absent" and
		// both write. Last writer wins; the document shape is deterministic
		// modulo timestamps, so the race resolves silently.
		if err := s.profiles.CreateProfile(ctx, newProfile); err != nil {
			return nil, apierrors.NewServerError(apierrors.ADD_PROFILE, err)
		}
		logger.Info("New user profile created.", log.String("uid", identity.UID))
	} else {
		if profile.Role != "" {
			role = profile.Role
		}
		if profile.Name != "" {
			name = profile.Name
		}
		logger.Info("User profile synced.", log.String("uid", identity.UID))
	}

	// Second provider round trip: the role custom claim overrides the stored
	// role for the returned view only.
	record, err := s.provider.GetUser(ctx, identity.UID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_IDENTITY, err)
	}
	if claimRole, ok := record.CustomClaims[constants.RoleClaim].(string); ok && claimRole != "" {
		role = claimRole
	}

	logger.Info("Token verified.",
		log.String("uid", identity.UID), log.String("role", role))

	return &model.View{
		ID:    identity.UID,
		UID:   identity.UID,
		Email: identity.Email,
		Name:  name,
		Role:  role,
	}, nil
}

// Resolve is the middleware form of the reconciliation: it verifies the
// token and performs a read-only profile lookup. Unlike VerifyAndSync it
// does NOT provision a missing profile; it logs a warning and falls back to
// the "customer" role. The asymmetry is deliberate and mirrors the sync
// endpoint / middleware split of the HTTP surface.
func (s *AuthService) Resolve(ctx context.Context, idToken string) (*model.View, error) {

	logger := log.GetLogger()

	identity, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Debug("ID token verification failed.", log.Error(err))
		return nil, apierrors.NewClientError(apierrors.INVALID_TOKEN, http.StatusUnauthorized)
	}

	role := constants.RoleCustomer
	name := resolveName(identity)

	profile, err := s.profiles.GetProfile(ctx, identity.UID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PROFILE, err)
	}

	if profile == nil {
		logger.Warn("User profile not found, defaulting to customer role.",
			log.String("uid", identity.UID))
	} else {
		if profile.Role != "" {
			role = profile.Role
		}
		if profile.Name != "" {
			name = profile.Name
		}
	}

	return &model.View{
		ID:    identity.UID,
		UID:   identity.UID,
		Email: identity.Email,
		Name:  name,
		Role:  role,
	}, nil
}

// resolveName picks the display name with the precedence: identity display
// name, email local part, fixed fallback.
func resolveName(identity *model.Identity) string {

	if identity.Name != "" {
		return identity.Name
	}
	if identity.Email != "" {
		if local, _, found := strings.Cut(identity.Email, "@"); found && local != "" {
			return local
		}
	}
	return constants.AnonymousUserName
}
