package managers

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	authhandler "github.com/itsryu/ZeDoBambu/internal/auth/handler"
	authservice "github.com/itsryu/ZeDoBambu/internal/auth/service"
	carthandler "github.com/itsryu/ZeDoBambu/internal/cart/handler"
	cartservice "github.com/itsryu/ZeDoBambu/internal/cart/service"
	cartstore "github.com/itsryu/ZeDoBambu/internal/cart/store"
	healthhandler "github.com/itsryu/ZeDoBambu/internal/health/handler"
	healthservice "github.com/itsryu/ZeDoBambu/internal/health/service"
	producthandler "github.com/itsryu/ZeDoBambu/internal/product/handler"
	productservice "github.com/itsryu/ZeDoBambu/internal/product/service"
	productstore "github.com/itsryu/ZeDoBambu/internal/product/store"
	restauranthandler "github.com/itsryu/ZeDoBambu/internal/restaurant/handler"
	restaurantservice "github.com/itsryu/ZeDoBambu/internal/restaurant/service"
	restaurantstore "github.com/itsryu/ZeDoBambu/internal/restaurant/store"
	"github.com/itsryu/ZeDoBambu/internal/system/client"
	"github.com/itsryu/ZeDoBambu/internal/system/config"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	"github.com/itsryu/ZeDoBambu/internal/system/middleware"
	userhandler "github.com/itsryu/ZeDoBambu/internal/user/handler"
	userservice "github.com/itsryu/ZeDoBambu/internal/user/service"
	userstore "github.com/itsryu/ZeDoBambu/internal/user/store"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceManagerInterface registers every feature service on the mux.
type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

// Dependencies are the process-wide handles the service manager wires the
// feature verticals with. Constructed once in main; no singletons.
type Dependencies struct {
	Config    *config.Config
	Firestore *firestore.Client
	Identity  *client.IdentityClient
	Redis     *redis.Client
}

// ServiceManager builds the feature verticals and mounts their routes.
type ServiceManager struct {
	mux  *http.ServeMux
	deps Dependencies
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, deps Dependencies) ServiceManagerInterface {

	return &ServiceManager{
		mux:  mux,
		deps: deps,
	}
}

// RegisterServices constructs the stores, services and handlers and
// registers every route under the API base path.
func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	profiles := userstore.NewUserStore(sm.deps.Firestore)
	products := productstore.NewProductStore(sm.deps.Firestore)
	restaurant := restaurantstore.NewRestaurantStore(sm.deps.Firestore)
	carts := cartstore.NewCartStore(sm.deps.Redis)

	provider := sm.identityProvider()
	authSvc := authservice.NewAuthService(provider, profiles)
	userSvc := userservice.NewUserService(profiles, sm.deps.Identity)
	productSvc := productservice.NewProductService(products)
	restaurantSvc := restaurantservice.NewRestaurantService(restaurant)
	cartSvc := cartservice.NewCartService(carts, products)
	healthSvc := healthservice.NewHealthService(map[string]healthservice.Pinger{
		"redis":     redisPinger{client: sm.deps.Redis},
		"firestore": firestorePinger{client: sm.deps.Firestore},
	})

	authH := authhandler.NewAuthHandler(authSvc)
	userH := userhandler.NewUserHandler(userSvc)
	productH := producthandler.NewProductHandler(productSvc)
	restaurantH := restauranthandler.NewRestaurantHandler(restaurantSvc)
	cartH := carthandler.NewCartHandler(cartSvc)
	healthH := healthhandler.NewHealthHandler(healthSvc)

	mw := middleware.NewMiddleware(authSvc)

	// Public routes.
	sm.mux.HandleFunc("GET "+apiBasePath+"/health", healthH.HandleHealth)
	sm.mux.HandleFunc("GET "+apiBasePath+"/ready", healthH.HandleReadiness)
	sm.mux.HandleFunc("POST "+apiBasePath+"/auth/verify-token", authH.VerifyToken)
	sm.mux.HandleFunc("GET "+apiBasePath+"/products", productH.List)
	sm.mux.HandleFunc("GET "+apiBasePath+"/products/{id}", productH.Get)
	sm.mux.HandleFunc("GET "+apiBasePath+"/restaurant/info", restaurantH.GetInfo)

	// Authenticated routes.
	sm.mux.HandleFunc("GET "+apiBasePath+"/auth/me", mw.RequireAuth(authH.Me))
	sm.mux.HandleFunc("GET "+apiBasePath+"/users/me", mw.RequireAuth(userH.GetMe))
	sm.mux.HandleFunc("PUT "+apiBasePath+"/users/me", mw.RequireAuth(userH.UpdateMe))
	sm.mux.HandleFunc("GET "+apiBasePath+"/cart", mw.RequireAuth(cartH.Get))
	sm.mux.HandleFunc("DELETE "+apiBasePath+"/cart", mw.RequireAuth(cartH.Clear))
	sm.mux.HandleFunc("POST "+apiBasePath+"/cart/items", mw.RequireAuth(cartH.AddItem))
	sm.mux.HandleFunc("PUT "+apiBasePath+"/cart/items/{productId}", mw.RequireAuth(cartH.SetQuantity))
	sm.mux.HandleFunc("DELETE "+apiBasePath+"/cart/items/{productId}", mw.RequireAuth(cartH.RemoveItem))

	// Admin routes.
	sm.mux.HandleFunc("GET "+apiBasePath+"/users", mw.RequireAuth(mw.RequireAdmin(userH.List)))
	sm.mux.HandleFunc("GET "+apiBasePath+"/users/{id}", mw.RequireAuth(mw.RequireAdmin(userH.Get)))
	sm.mux.HandleFunc("PUT "+apiBasePath+"/users/{id}", mw.RequireAuth(mw.RequireAdmin(userH.AdminUpdate)))
	sm.mux.HandleFunc("DELETE "+apiBasePath+"/users/{id}", mw.RequireAuth(mw.RequireAdmin(userH.Delete)))
	sm.mux.HandleFunc("POST "+apiBasePath+"/products", mw.RequireAuth(mw.RequireAdmin(productH.Create)))
	sm.mux.HandleFunc("PUT "+apiBasePath+"/products/{id}", mw.RequireAuth(mw.RequireAdmin(productH.Update)))
	sm.mux.HandleFunc("DELETE "+apiBasePath+"/products/{id}", mw.RequireAuth(mw.RequireAdmin(productH.Delete)))
	sm.mux.HandleFunc("PUT "+apiBasePath+"/restaurant/info", mw.RequireAuth(mw.RequireAdmin(restaurantH.UpdateInfo)))

	return nil
}

// identityProvider selects the token verifier per the auth mode. "local"
// is emulator-only; anything else verifies through the provider SDK.
func (sm *ServiceManager) identityProvider() authservice.IdentityProvider {

	if sm.deps.Config.Auth.Mode == "local" {
		return authservice.NewLocalIdentityProvider()
	}
	return sm.deps.Identity
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

type firestorePinger struct {
	client *firestore.Client
}

// Ping reads the settings document. Absence still proves connectivity.
func (p firestorePinger) Ping(ctx context.Context) error {

	_, err := p.client.Collection(constants.SettingsCollection).
		Doc(constants.RestaurantInfoDocID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil
	}
	return err
}
