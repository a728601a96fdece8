package client

import (
	"context"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	authmodel "github.com/itsryu/ZeDoBambu/internal/auth/model"
	"google.golang.org/api/iterator"
)

// IdentityClient adapts the Firebase Auth client to the provider interfaces
// consumed by the auth and user services.
type IdentityClient struct {
	auth *fbauth.Client
}

// NewIdentityClient wraps an initialized Firebase Auth client.
func NewIdentityClient(auth *fbauth.Client) *IdentityClient {

	return &IdentityClient{auth: auth}
}

// VerifyIDToken verifies the signed ID token and decodes its standard claims.
func (c *IdentityClient) VerifyIDToken(ctx context.Context, idToken string) (*authmodel.Identity, error) {

	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	identity := &authmodel.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}

// GetUser fetches the full identity record, including custom claims.
func (c *IdentityClient) GetUser(ctx context.Context, uid string) (*authmodel.IdentityRecord, error) {

	record, err := c.auth.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toIdentityRecord(record), nil
}

// ListUsers iterates over every identity known to the provider.
func (c *IdentityClient) ListUsers(ctx context.Context) ([]authmodel.IdentityRecord, error) {

	var records []authmodel.IdentityRecord
	iter := c.auth.Users(ctx, "")
	for {
		exported, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *toIdentityRecord(exported.UserRecord))
	}
	return records, nil
}

// UpdateUser applies the non-empty identity attributes to the provider record.
func (c *IdentityClient) UpdateUser(ctx context.Context, uid string, update authmodel.IdentityUpdate) error {

	params := &fbauth.UserToUpdate{}
	touched := false
	if update.DisplayName != nil {
		params = params.DisplayName(*update.DisplayName)
		touched = true
	}
	if update.Disabled != nil {
		params = params.Disabled(*update.Disabled)
		touched = true
	}
	if update.PhotoURL != nil {
		params = params.PhotoURL(*update.PhotoURL)
		touched = true
	}
	if update.PhoneNumber != nil {
		params = params.PhoneNumber(*update.PhoneNumber)
		touched = true
	}
	if !touched {
		return nil
	}

	_, err := c.auth.UpdateUser(ctx, uid, params)
	return err
}

// SetRoleClaim attaches the role custom claim to the identity.
func (c *IdentityClient) SetRoleClaim(ctx context.Context, uid, role string) error {

	return c.auth.SetCustomUserClaims(ctx, uid, map[string]interface{}{"role": role})
}

// DeleteUser removes the identity from the provider.
func (c *IdentityClient) DeleteUser(ctx context.Context, uid string) error {

	return c.auth.DeleteUser(ctx, uid)
}

func toIdentityRecord(record *fbauth.UserRecord) *authmodel.IdentityRecord {

	out := &authmodel.IdentityRecord{
		UID:          record.UID,
		Email:        record.Email,
		DisplayName:  record.DisplayName,
		PhotoURL:     record.PhotoURL,
		PhoneNumber:  record.PhoneNumber,
		Disabled:     record.Disabled,
		CustomClaims: record.CustomClaims,
	}
	if record.UserMetadata != nil {
		out.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp)
		if record.UserMetadata.LastLogInTimestamp > 0 {
			out.LastLoginAt = time.UnixMilli(record.UserMetadata.LastLogInTimestamp)
		}
	}
	return out
}
