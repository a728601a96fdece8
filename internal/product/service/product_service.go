package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/itsryu/ZeDoBambu/internal/product/model"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

// ProductStoreInterface is the catalog persistence surface the service
// depends on. GetProduct returns nil without error when absent.
type ProductStoreInterface interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteProduct(ctx context.Context, id string) error
}

// ProductService implements catalog CRUD.
type ProductService struct {
	store ProductStoreInterface
}

// NewProductService constructs the service with the store injected.
func NewProductService(store ProductStoreInterface) *ProductService {

	return &ProductService{store: store}
}

// CreateProduct validates and persists a new catalog entry.
func (s *ProductService) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {

	if err := req.Validate(); err != nil {
		return nil, err
	}

	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	now := time.Now().UTC()
	product := &model.Product{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		ImageURL:     req.ImageURL,
		Availability: availability,
		Ingredients:  req.Ingredients,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, apierrors.NewServerError(apierrors.ADD_PRODUCT, err)
	}

	log.GetLogger().Info("Product created.", log.String("id", product.ID))
	return product, nil
}

// GetProducts returns the catalog ordered by name.
func (s *ProductService) GetProducts(ctx context.Context) ([]model.Product, error) {

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PRODUCT, err)
	}
	return products, nil
}

// GetProduct returns a single catalog entry.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {

	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PRODUCT, err)
	}
	if product == nil {
		return nil, apierrors.NewClientError(apierrors.PRODUCT_NOT_FOUND, http.StatusNotFound)
	}
	return product, nil
}

// UpdateProduct applies a validated partial update and returns the updated
// entry.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PRODUCT, err)
	}
	if existing == nil {
		return nil, apierrors.NewClientError(apierrors.PRODUCT_NOT_FOUND, http.StatusNotFound)
	}

	if err := s.store.UpdateProduct(ctx, id, req.Updates()); err != nil {
		return nil, apierrors.NewServerError(apierrors.UPDATE_PRODUCT, err)
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a catalog entry.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {

	existing, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return apierrors.NewServerError(apierrors.GET_PRODUCT, err)
	}
	if existing == nil {
		return apierrors.NewClientError(apierrors.PRODUCT_NOT_FOUND, http.StatusNotFound)
	}

	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return apierrors.NewServerError(apierrors.DELETE_PRODUCT, err)
	}

	log.GetLogger().Info("Product deleted.", log.String("id", id))
	return nil
}
