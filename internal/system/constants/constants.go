package constants

import "time"

// ContextKey is the type used for request context keys.
type ContextKey string

const (
	// ApiBasePath is the prefix every route is mounted under.
	ApiBasePath = "/api/v1"

	// CurrentUserContextKey carries the reconciled user view on the request context.
	CurrentUserContextKey ContextKey = "currentUser"
)

// Firestore collections.
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	SettingsCollection = "settings"

	// RestaurantInfoDocID is the id of the singleton settings document.
	RestaurantInfoDocID = "main"
)

// Roles and the custom claim that can override them.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleClaim    = "role"
)

// AnonymousUserName is the last-resort display name for a profile whose
// identity carries neither a display name nor an email.
const AnonymousUserName = "Anonymous User"

const (
	// StoreTimeout bounds every single Firestore call.
	StoreTimeout = 5 * time.Second

	// CartKeyPrefix namespaces cart entries in Redis.
	CartKeyPrefix = "cart:"

	// CartTTL is how long an untouched cart survives.
	CartTTL = 7 * 24 * time.Hour
)
