package middleware

import (
	"context"
	"net/http"

	authmodel "github.com/itsryu/ZeDoBambu/internal/auth/model"
	authservice "github.com/itsryu/ZeDoBambu/internal/auth/service"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/utils"
)

// Middleware gates protected routes on the reconciled user view.
type Middleware struct {
	auth *authservice.AuthService
}

// NewMiddleware constructs the middleware with the reconciler injected.
func NewMiddleware(auth *authservice.AuthService) *Middleware {

	return &Middleware{auth: auth}
}

// RequireAuth verifies the bearer token, resolves the user view read-only
// and attaches it to the request context. A missing profile is not an
// error here; the view falls back to the "customer" role.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ExtractBearerToken(r)
		if err != nil {
			utils.HandleError(w, err)
			return
		}

		view, err := m.auth.Resolve(r.Context(), token)
		if err != nil {
			utils.HandleError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constants.CurrentUserContextKey, view)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin rejects any request whose attached view is not an admin.
// Must run after RequireAuth.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := CurrentUser(r)
		if !ok || view.Role != constants.RoleAdmin {
			utils.HandleError(w, apierrors.NewClientError(apierrors.FORBIDDEN, http.StatusForbidden))
			return
		}
		next(w, r)
	}
}

// CurrentUser returns the reconciled view attached by RequireAuth.
func CurrentUser(r *http.Request) (*authmodel.View, bool) {

	view, ok := r.Context().Value(constants.CurrentUserContextKey).(*authmodel.View)
	return view, ok
}
