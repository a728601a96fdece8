package handler

import (
	"net/http"

	"github.com/itsryu/ZeDoBambu/internal/auth/model"
	"github.com/itsryu/ZeDoBambu/internal/auth/service"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/middleware"
	"github.com/itsryu/ZeDoBambu/internal/system/utils"
)

// AuthHandler exposes the token-verification-and-profile-sync flow.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {

	return &AuthHandler{service: svc}
}

// VerifyToken handles POST /auth/verify-token.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {

	var req model.VerifyTokenRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	view, err := h.service.VerifyAndSync(r.Context(), req.IDToken)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Token verified and user profile synced.", view)
}

// Me handles GET /auth/me. RequireAuth attaches the view beforehand.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {

	view, ok := middleware.CurrentUser(r)
	if !ok {
		utils.HandleError(w, apierrors.NewClientError(apierrors.UN_AUTHORIZED, http.StatusUnauthorized))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Current user data.", view)
}
