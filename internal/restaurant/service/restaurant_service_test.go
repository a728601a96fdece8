package service

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/itsryu/ZeDoBambu/internal/restaurant/model"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// MockRestaurantStore implements RestaurantStoreInterface for testing
type MockRestaurantStore struct {
	mock.Mock
}

func (m *MockRestaurantStore) GetInfo(ctx context.Context) (*model.RestaurantInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RestaurantInfo), args.Error(1)
}

func (m *MockRestaurantStore) MergeInfo(ctx context.Context, updates map[string]interface{}) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestGetInfo_NotFound(t *testing.T) {
	store := new(MockRestaurantStore)
	svc := NewRestaurantService(store)

	store.On("GetInfo", mock.Anything).Return(nil, nil)

	_, err := svc.GetInfo(context.Background())

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestGetInfo_Existing(t *testing.T) {
	store := new(MockRestaurantStore)
	svc := NewRestaurantService(store)

	store.On("GetInfo", mock.Anything).
		Return(&model.RestaurantInfo{Name: "Zé do Bambu"}, nil)

	info, err := svc.GetInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Zé do Bambu", info.Name)
}

func TestUpdateInfo_RejectsEmptyUpdate(t *testing.T) {
	store := new(MockRestaurantStore)
	svc := NewRestaurantService(store)

	_, err := svc.UpdateInfo(context.Background(), &model.UpdateRestaurantInfoRequest{})

	assert.Error(t, err)
	store.AssertNotCalled(t, "MergeInfo", mock.Anything, mock.Anything)
}

func TestUpdateInfo_RejectsShortCNPJ(t *testing.T) {
	store := new(MockRestaurantStore)
	svc := NewRestaurantService(store)

	_, err := svc.UpdateInfo(context.Background(),
		&model.UpdateRestaurantInfoRequest{CNPJ: strPtr("123")})

	assert.Error(t, err)
}

func TestUpdateInfo_MergesAndRereads(t *testing.T) {
	store := new(MockRestaurantStore)
	svc := NewRestaurantService(store)

	store.
		On("MergeInfo", mock.Anything, mock.MatchedBy(func(u map[string]interface{}) bool {
			return u["name"] == "Zé do Bambu"
		})).
		Return(nil).Once()
	store.On("GetInfo", mock.Anything).
		Return(&model.RestaurantInfo{Name: "Zé do Bambu"}, nil)

	info, err := svc.UpdateInfo(context.Background(),
		&model.UpdateRestaurantInfoRequest{Name: strPtr("Zé do Bambu")})

	require.NoError(t, err)
	assert.Equal(t, "Zé do Bambu", info.Name)
	store.AssertExpectations(t)
}

func TestUpdateInfo_FirstUpdateCreatesDocument(t *testing.T) {
	store := new(MockRestaurantStore)
	svc := NewRestaurantService(store)

	// Merge succeeds against an absent document and the re-read sees it.
	store.On("MergeInfo", mock.Anything, mock.Anything).Return(nil)
	store.On("GetInfo", mock.Anything).
		Return(&model.RestaurantInfo{Name: "Novo Nome"}, nil)

	info, err := svc.UpdateInfo(context.Background(),
		&model.UpdateRestaurantInfoRequest{Name: strPtr("Novo Nome")})

	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", info.Name)
}
