package model

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
)

// Product is a catalog entry stored in the products collection.
type Product struct {
	ID           string    `json:"id" firestore:"id"`
	Name         string    `json:"name" firestore:"name"`
	Description  string    `json:"description" firestore:"description"`
	Price        float64   `json:"price" firestore:"price"`
	CategoryID   string    `json:"categoryId" firestore:"categoryId"`
	ImageURL     string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	Availability bool      `json:"availability" firestore:"availability"`
	Ingredients  []string  `json:"ingredients,omitempty" firestore:"ingredients,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// CreateProductRequest is the body of POST /products. Availability defaults
// to true when omitted.
type CreateProductRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	CategoryID   string   `json:"categoryId"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Availability *bool    `json:"availability,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
}

// UpdateProductRequest is the body of PUT /products/{id}. All fields optional.
type UpdateProductRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	CategoryID   *string  `json:"categoryId,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Availability *bool    `json:"availability,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
}

func validationError(description string) error {
	return apierrors.NewClientErrorWithDescription(
		apierrors.VALIDATION_FAILED, description, http.StatusBadRequest)
}

func validateImageURL(imageURL string) error {
	if imageURL == "" {
		return nil
	}
	if _, err := url.ParseRequestURI(imageURL); err != nil {
		return validationError("imageUrl must be a valid URL.")
	}
	return nil
}

// Validate checks the create request.
func (r *CreateProductRequest) Validate() error {

	switch {
	case len(strings.TrimSpace(r.Name)) < 3:
		return validationError("name must have at least 3 characters.")
	case len(strings.TrimSpace(r.Description)) < 10:
		return validationError("description must have at least 10 characters.")
	case r.Price <= 0:
		return validationError("price must be a positive number.")
	case strings.TrimSpace(r.CategoryID) == "":
		return validationError("categoryId is required.")
	}
	return validateImageURL(r.ImageURL)
}

// Validate checks the partial update request.
func (r *UpdateProductRequest) Validate() error {

	if r.Name != nil && len(strings.TrimSpace(*r.Name)) < 3 {
		return validationError("name must have at least 3 characters.")
	}
	if r.Description != nil && len(strings.TrimSpace(*r.Description)) < 10 {
		return validationError("description must have at least 10 characters.")
	}
	if r.Price != nil && *r.Price <= 0 {
		return validationError("price must be a positive number.")
	}
	if r.CategoryID != nil && strings.TrimSpace(*r.CategoryID) == "" {
		return validationError("categoryId is required.")
	}
	if r.ImageURL != nil {
		return validateImageURL(*r.ImageURL)
	}
	return nil
}

// Updates flattens the request into the field map applied to the product
// document.
func (r *UpdateProductRequest) Updates() map[string]interface{} {

	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.CategoryID != nil {
		updates["categoryId"] = *r.CategoryID
	}
	if r.ImageURL != nil {
		updates["imageUrl"] = *r.ImageURL
	}
	if r.Availability != nil {
		updates["availability"] = *r.Availability
	}
	if r.Ingredients != nil {
		updates["ingredients"] = r.Ingredients
	}
	return updates
}
