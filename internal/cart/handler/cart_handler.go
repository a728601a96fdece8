package handler

import (
	"net/http"

	"github.com/itsryu/ZeDoBambu/internal/cart/model"
	"github.com/itsryu/ZeDoBambu/internal/cart/service"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/middleware"
	"github.com/itsryu/ZeDoBambu/internal/system/utils"
)

// CartHandler exposes the authenticated user's shopping cart.
type CartHandler struct {
	service *service.CartService
}

// NewCartHandler creates a new instance of CartHandler.
func NewCartHandler(svc *service.CartService) *CartHandler {

	return &CartHandler{service: svc}
}

func currentUID(w http.ResponseWriter, r *http.Request) (string, bool) {

	view, ok := middleware.CurrentUser(r)
	if !ok {
		utils.HandleError(w, apierrors.NewClientError(apierrors.UN_AUTHORIZED, http.StatusUnauthorized))
		return "", false
	}
	return view.UID, true
}

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {

	uid, ok := currentUID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.GetCart(r.Context(), uid)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Cart found.", cart)
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {

	uid, ok := currentUID(w, r)
	if !ok {
		return
	}

	var req model.AddItemRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), uid, &req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Item added to cart.", cart)
}

// SetQuantity handles PUT /cart/items/{productId}.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {

	uid, ok := currentUID(w, r)
	if !ok {
		return
	}

	var req model.SetQuantityRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	cart, err := h.service.SetQuantity(r.Context(), uid, r.PathValue("productId"), req.Quantity)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Cart item updated.", cart)
}

// RemoveItem handles DELETE /cart/items/{productId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {

	uid, ok := currentUID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), uid, r.PathValue("productId"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Item removed from cart.", cart)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {

	uid, ok := currentUID(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearCart(r.Context(), uid); err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Cart cleared.", nil)
}
