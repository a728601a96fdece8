package model

import "time"

// Identity is the decoded result of a verified ID token.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// IdentityRecord is the provider-side user record, fetched by uid.
type IdentityRecord struct {
	UID          string
	Email        string
	DisplayName  string
	PhotoURL     string
	PhoneNumber  string
	Disabled     bool
	CustomClaims map[string]interface{}
	CreatedAt    time.Time
	LastLoginAt  time.Time
}

// IdentityUpdate carries the identity attributes an admin may rewrite on
// the provider record. Nil fields are left untouched.
type IdentityUpdate struct {
	DisplayName *string
	Disabled    *bool
	PhotoURL    *string
	PhoneNumber *string
}

// View is the reconciled, request-scoped representation of a user. The uid
// is exposed both as `id` and `uid` for backward compatibility with the
// storefront client.
type View struct {
	ID    string `json:"id"`
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// VerifyTokenRequest is the body of POST /auth/verify-token.
type VerifyTokenRequest struct {
	IDToken string `json:"idToken"`
}
