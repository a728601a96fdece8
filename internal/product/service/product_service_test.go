package service

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/itsryu/ZeDoBambu/internal/product/model"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// MockProductStore implements ProductStoreInterface for testing
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) CreateProduct(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductStore) UpdateProduct(ctx context.Context, id string, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockProductStore) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateRequest() *model.CreateProductRequest {
	return &model.CreateProductRequest{
		Name:        "Feijoada Completa",
		Description: "Feijoada tradicional com acompanhamentos.",
		Price:       49.90,
		CategoryID:  "pratos",
	}
}

func TestCreateProduct_DefaultsAvailabilityTrue(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	store.
		On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
			return p.Availability && p.ID != "" && p.Name == "Feijoada Completa"
		})).
		Return(nil).Once()

	product, err := svc.CreateProduct(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.True(t, product.Availability)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	store.AssertExpectations(t)
}

func TestCreateProduct_ExplicitAvailabilityFalse(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	unavailable := false
	req := validCreateRequest()
	req.Availability = &unavailable

	store.On("CreateProduct", mock.Anything, mock.Anything).Return(nil)

	product, err := svc.CreateProduct(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, product.Availability)
}

func TestCreateProduct_RejectsInvalidPrice(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	req := validCreateRequest()
	req.Price = 0

	_, err := svc.CreateProduct(context.Background(), req)

	assert.Error(t, err)
	store.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestGetProduct_NotFound(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	store.On("GetProduct", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetProduct(context.Background(), "missing")

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	store.On("GetProduct", mock.Anything, "missing").Return(nil, nil)

	price := 10.0
	_, err := svc.UpdateProduct(context.Background(), "missing",
		&model.UpdateProductRequest{Price: &price})

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	store.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProduct_AppliesAndRereads(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	existing := &model.Product{ID: "p1", Name: "Feijoada", Price: 40}
	updated := &model.Product{ID: "p1", Name: "Feijoada", Price: 45}

	store.On("GetProduct", mock.Anything, "p1").Return(existing, nil).Once()
	store.
		On("UpdateProduct", mock.Anything, "p1", mock.MatchedBy(func(u map[string]interface{}) bool {
			return u["price"] == 45.0
		})).
		Return(nil).Once()
	store.On("GetProduct", mock.Anything, "p1").Return(updated, nil).Once()

	price := 45.0
	product, err := svc.UpdateProduct(context.Background(), "p1",
		&model.UpdateProductRequest{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 45.0, product.Price)
	store.AssertExpectations(t)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	store.On("GetProduct", mock.Anything, "missing").Return(nil, nil)

	err := svc.DeleteProduct(context.Background(), "missing")

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestDeleteProduct_Existing(t *testing.T) {
	store := new(MockProductStore)
	svc := NewProductService(store)

	store.On("GetProduct", mock.Anything, "p1").
		Return(&model.Product{ID: "p1"}, nil)
	store.On("DeleteProduct", mock.Anything, "p1").Return(nil).Once()

	err := svc.DeleteProduct(context.Background(), "p1")

	require.NoError(t, err)
	store.AssertExpectations(t)
}
