package service

import (
	"context"
	"net/http"

	"github.com/itsryu/ZeDoBambu/internal/restaurant/model"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

// RestaurantStoreInterface is the settings persistence surface the service
// depends on. GetInfo returns nil without error when absent.
type RestaurantStoreInterface interface {
	GetInfo(ctx context.Context) (*model.RestaurantInfo, error)
	MergeInfo(ctx context.Context, updates map[string]interface{}) error
}

// RestaurantService reads and updates the establishment settings.
type RestaurantService struct {
	store RestaurantStoreInterface
}

// NewRestaurantService constructs the service with the store injected.
func NewRestaurantService(store RestaurantStoreInterface) *RestaurantService {

	return &RestaurantService{store: store}
}

// GetInfo returns the settings document.
func (s *RestaurantService) GetInfo(ctx context.Context) (*model.RestaurantInfo, error) {

	info, err := s.store.GetInfo(ctx)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_RESTAURANT_INFO, err)
	}
	if info == nil {
		return nil, apierrors.NewClientError(apierrors.RESTAURANT_INFO_NOT_FOUND, http.StatusNotFound)
	}
	return info, nil
}

// UpdateInfo merges a validated partial update into the settings document
// and returns the updated settings. The document is created on first
// update.
func (s *RestaurantService) UpdateInfo(ctx context.Context, req *model.UpdateRestaurantInfoRequest) (*model.RestaurantInfo, error) {

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.MergeInfo(ctx, req.Updates()); err != nil {
		return nil, apierrors.NewServerError(apierrors.UPDATE_RESTAURANT_INFO, err)
	}

	log.GetLogger().Info("Restaurant info updated.")
	return s.GetInfo(ctx)
}
