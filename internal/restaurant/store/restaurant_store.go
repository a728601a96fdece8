package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/itsryu/ZeDoBambu/internal/restaurant/model"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RestaurantStore persists the settings/main document.
type RestaurantStore struct {
	client *firestore.Client
}

// NewRestaurantStore creates a new store over the given Firestore client.
func NewRestaurantStore(client *firestore.Client) *RestaurantStore {

	return &RestaurantStore{client: client}
}

func (s *RestaurantStore) doc() *firestore.DocumentRef {
	return s.client.Collection(constants.SettingsCollection).Doc(constants.RestaurantInfoDocID)
}

// GetInfo fetches the settings document. Absence is nil, not an error.
func (s *RestaurantStore) GetInfo(ctx context.Context) (*model.RestaurantInfo, error) {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	doc, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching restaurant info document")
	}

	var info model.RestaurantInfo
	if err := doc.DataTo(&info); err != nil {
		return nil, errors.Wrap(err, "decoding restaurant info document")
	}
	return &info, nil
}

// MergeInfo merges the field updates into the settings document, creating
// it if absent, and stamps updatedAt.
func (s *RestaurantStore) MergeInfo(ctx context.Context, updates map[string]interface{}) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	merged := make(map[string]interface{}, len(updates)+1)
	for field, value := range updates {
		merged[field] = value
	}
	merged["updatedAt"] = time.Now().UTC()

	_, err := s.doc().Set(ctx, merged, firestore.MergeAll)
	return errors.Wrap(err, "merging restaurant info document")
}
