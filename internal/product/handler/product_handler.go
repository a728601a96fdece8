package handler

import (
	"net/http"

	"github.com/itsryu/ZeDoBambu/internal/product/model"
	"github.com/itsryu/ZeDoBambu/internal/product/service"
	"github.com/itsryu/ZeDoBambu/internal/system/utils"
)

// ProductHandler exposes catalog CRUD.
type ProductHandler struct {
	service *service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(svc *service.ProductService) *ProductHandler {

	return &ProductHandler{service: svc}
}

// Create handles POST /products. Admin only.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {

	var req model.CreateProductRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "Product created successfully.", product)
}

// List handles GET /products. Public.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {

	products, err := h.service.GetProducts(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Products listed successfully.", products)
}

// Get handles GET /products/{id}. Public.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {

	product, err := h.service.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Product found.", product)
}

// Update handles PUT /products/{id}. Admin only.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {

	var req model.UpdateProductRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Product updated successfully.", product)
}

// Delete handles DELETE /products/{id}. Admin only.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {

	if err := h.service.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
