package handler

import (
	"net/http"

	"github.com/itsryu/ZeDoBambu/internal/restaurant/model"
	"github.com/itsryu/ZeDoBambu/internal/restaurant/service"
	"github.com/itsryu/ZeDoBambu/internal/system/utils"
)

// RestaurantHandler exposes the establishment settings.
type RestaurantHandler struct {
	service *service.RestaurantService
}

// NewRestaurantHandler creates a new instance of RestaurantHandler.
func NewRestaurantHandler(svc *service.RestaurantService) *RestaurantHandler {

	return &RestaurantHandler{service: svc}
}

// GetInfo handles GET /restaurant/info. Public.
func (h *RestaurantHandler) GetInfo(w http.ResponseWriter, r *http.Request) {

	info, err := h.service.GetInfo(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Restaurant info found.", info)
}

// UpdateInfo handles PUT /restaurant/info. Admin only.
func (h *RestaurantHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {

	var req model.UpdateRestaurantInfoRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	info, err := h.service.UpdateInfo(r.Context(), &req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Restaurant info updated successfully.", info)
}
