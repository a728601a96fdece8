package handler

import (
	"net/http"

	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/middleware"
	"github.com/itsryu/ZeDoBambu/internal/system/utils"
	"github.com/itsryu/ZeDoBambu/internal/user/model"
	"github.com/itsryu/ZeDoBambu/internal/user/service"
)

// UserHandler exposes profile self-service and admin user management.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {

	return &UserHandler{service: svc}
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {

	view, ok := middleware.CurrentUser(r)
	if !ok {
		utils.HandleError(w, apierrors.NewClientError(apierrors.UN_AUTHORIZED, http.StatusUnauthorized))
		return
	}

	profile, err := h.service.GetProfile(r.Context(), view.UID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "User profile found.", profile)
}

// UpdateMe handles PUT /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {

	view, ok := middleware.CurrentUser(r)
	if !ok {
		utils.HandleError(w, apierrors.NewClientError(apierrors.UN_AUTHORIZED, http.StatusUnauthorized))
		return
	}

	var req model.UpdateProfileRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), view.UID, &req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Profile updated successfully.", profile)
}

// List handles GET /users. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {

	users, err := h.service.ListUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Users listed successfully.", users)
}

// Get handles GET /users/{id}. Admin only.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {

	profile, err := h.service.GetProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "User profile found.", profile)
}

// AdminUpdate handles PUT /users/{id}. Admin only.
func (h *UserHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {

	var req model.AdminUpdateUserRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	profile, err := h.service.AdminUpdateUser(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "User updated successfully.", profile)
}

// Delete handles DELETE /users/{id}. Admin only.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {

	if err := h.service.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "User deleted successfully.", nil)
}
