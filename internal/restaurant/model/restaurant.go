package model

import (
	"net/http"
	"strings"
	"time"
	"unicode"

	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	usermodel "github.com/itsryu/ZeDoBambu/internal/user/model"
)

// OpeningHours maps each weekday to its opening window, e.g.
// "11:00 - 22:00" or "Fechado".
type OpeningHours struct {
	Monday    string `json:"monday,omitempty" firestore:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty" firestore:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty" firestore:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty" firestore:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty" firestore:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty" firestore:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty" firestore:"sunday,omitempty"`
}

// RestaurantInfo is the single settings document describing the
// establishment. It lives at settings/main.
type RestaurantInfo struct {
	Name         string             `json:"name" firestore:"name"`
	CNPJ         string             `json:"cnpj,omitempty" firestore:"cnpj,omitempty"`
	Phone        string             `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address      *usermodel.Address `json:"address,omitempty" firestore:"address,omitempty"`
	OpeningHours *OpeningHours      `json:"openingHours,omitempty" firestore:"openingHours,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt" firestore:"updatedAt"`
}

// UpdateRestaurantInfoRequest is the body of PUT /restaurant/info.
// All fields optional; provided fields are merged into the document.
type UpdateRestaurantInfoRequest struct {
	Name         *string            `json:"name,omitempty"`
	CNPJ         *string            `json:"cnpj,omitempty"`
	Phone        *string            `json:"phone,omitempty"`
	Address      *usermodel.Address `json:"address,omitempty"`
	OpeningHours *OpeningHours      `json:"openingHours,omitempty"`
}

func validationError(description string) error {
	return apierrors.NewClientErrorWithDescription(
		apierrors.VALIDATION_FAILED, description, http.StatusBadRequest)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// Validate checks the settings update.
func (r *UpdateRestaurantInfoRequest) Validate() error {

	if r.Name == nil && r.CNPJ == nil && r.Phone == nil && r.Address == nil && r.OpeningHours == nil {
		return validationError("At least one field must be provided.")
	}
	if r.Name != nil && len(strings.TrimSpace(*r.Name)) < 3 {
		return validationError("name must have at least 3 characters.")
	}
	if r.CNPJ != nil && *r.CNPJ != "" && countDigits(*r.CNPJ) < 14 {
		return validationError("cnpj must have at least 14 digits.")
	}
	if r.Phone != nil && *r.Phone != "" && countDigits(*r.Phone) < 10 {
		return validationError("phone must have at least 10 digits.")
	}
	return nil
}

// Updates flattens the request into the field map merged into the
// settings document.
func (r *UpdateRestaurantInfoRequest) Updates() map[string]interface{} {

	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.CNPJ != nil {
		updates["cnpj"] = *r.CNPJ
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Address != nil {
		updates["address"] = r.Address
	}
	if r.OpeningHours != nil {
		updates["openingHours"] = r.OpeningHours
	}
	return updates
}
