package model

import (
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
)

// Address is a postal address attached to a profile.
type Address struct {
	Street       string `json:"street" firestore:"street"`
	Number       string `json:"number" firestore:"number"`
	Complement   string `json:"complement,omitempty" firestore:"complement,omitempty"`
	Neighborhood string `json:"neighborhood" firestore:"neighborhood"`
	City         string `json:"city" firestore:"city"`
	State        string `json:"state" firestore:"state"`
	Zip          string `json:"zip" firestore:"zip"`
}

// User is the application-owned profile document, keyed 1:1 by the
// identity uid. Invariant: ID always equals the owning identity's uid.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"role"`
	Disabled  bool      `json:"disabled" firestore:"disabled"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty" firestore:"avatarUrl,omitempty"`
	Address   *Address  `json:"address,omitempty" firestore:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// AdminListEntry is one row of the admin user listing: an identity record
// merged with its profile document, when one exists.
type AdminListEntry struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Disabled       bool      `json:"disabled"`
	Phone          string    `json:"phone,omitempty"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	Address        *Address  `json:"address,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	LastSignInTime time.Time `json:"lastSignInTime,omitempty"`
}

// UpdateProfileRequest is the body of PUT /users/me. All fields optional.
type UpdateProfileRequest struct {
	Name      *string  `json:"name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	AvatarURL *string  `json:"avatarUrl,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// AdminUpdateUserRequest is the body of PUT /users/{id}.
type AdminUpdateUserRequest struct {
	Name      *string `json:"name,omitempty"`
	Role      *string `json:"role,omitempty"`
	Disabled  *bool   `json:"disabled,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
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

func validateAddress(a *Address) error {
	switch {
	case len(strings.TrimSpace(a.Street)) < 3:
		return validationError("address.street must have at least 3 characters.")
	case strings.TrimSpace(a.Number) == "":
		return validationError("address.number is required.")
	case len(strings.TrimSpace(a.Neighborhood)) < 3:
		return validationError("address.neighborhood must have at least 3 characters.")
	case len(strings.TrimSpace(a.City)) < 3:
		return validationError("address.city must have at least 3 characters.")
	case len(a.State) != 2:
		return validationError("address.state must have exactly 2 characters.")
	case len(a.Zip) < 8:
		return validationError("address.zip must have at least 8 characters.")
	}
	return nil
}

// Validate checks the profile update against the same rules the storefront
// client enforces.
func (r *UpdateProfileRequest) Validate() error {

	if r.Name == nil && r.Phone == nil && r.AvatarURL == nil && r.Address == nil {
		return validationError("At least one field must be provided.")
	}
	if r.Name != nil && len(strings.TrimSpace(*r.Name)) < 3 {
		return validationError("name must have at least 3 characters.")
	}
	if r.Phone != nil && *r.Phone != "" && countDigits(*r.Phone) < 10 {
		return validationError("phone must have at least 10 digits.")
	}
	if r.AvatarURL != nil && *r.AvatarURL != "" {
		if _, err := url.ParseRequestURI(*r.AvatarURL); err != nil {
			return validationError("avatarUrl must be a valid URL.")
		}
	}
	if r.Address != nil {
		if err := validateAddress(r.Address); err != nil {
			return err
		}
	}
	return nil
}

// Updates flattens the request into the field map applied to the profile
// document. updatedAt is stamped by the store.
func (r *UpdateProfileRequest) Updates() map[string]interface{} {

	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.AvatarURL != nil {
		updates["avatarUrl"] = *r.AvatarURL
	}
	if r.Address != nil {
		updates["address"] = r.Address
	}
	return updates
}

// Validate checks the admin update.
func (r *AdminUpdateUserRequest) Validate() error {

	if r.Role != nil && *r.Role != constants.RoleAdmin && *r.Role != constants.RoleCustomer {
		return validationError("role must be either 'admin' or 'customer'.")
	}
	if r.Name != nil && len(strings.TrimSpace(*r.Name)) < 3 {
		return validationError("name must have at least 3 characters.")
	}
	if r.Phone != nil && *r.Phone != "" && countDigits(*r.Phone) < 10 {
		return validationError("phone must have at least 10 digits.")
	}
	if r.AvatarURL != nil && *r.AvatarURL != "" {
		if _, err := url.ParseRequestURI(*r.AvatarURL); err != nil {
			return validationError("avatarUrl must be a valid URL.")
		}
	}
	return nil
}

// Updates flattens the request into the field map merged into the profile
// document.
func (r *AdminUpdateUserRequest) Updates() map[string]interface{} {

	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Role != nil {
		updates["role"] = *r.Role
	}
	if r.Disabled != nil {
		updates["disabled"] = *r.Disabled
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.AvatarURL != nil {
		updates["avatarUrl"] = *r.AvatarURL
	}
	return updates
}
