package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	"github.com/itsryu/ZeDoBambu/internal/user/model"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserStore persists profile documents in the users collection, keyed by
// the identity uid.
type UserStore struct {
	client *firestore.Client
}

// NewUserStore creates a new store over the given Firestore client.
func NewUserStore(client *firestore.Client) *UserStore {

	return &UserStore{client: client}
}

func (s *UserStore) collection() *firestore.CollectionRef {
	return s.client.Collection(constants.UsersCollection)
}

// GetProfile fetches a profile by uid. Absence is nil, not an error.
func (s *UserStore) GetProfile(ctx context.Context, uid string) (*model.User, error) {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	doc, err := s.collection().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching profile document")
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "decoding profile document")
	}
	return &user, nil
}

// CreateProfile writes the profile document with plain set semantics.
// Concurrent creations for the same uid are resolved last-writer-wins with
// no error; callers rely on the created shape being deterministic.
func (s *UserStore) CreateProfile(ctx context.Context, user *model.User) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	_, err := s.collection().Doc(user.ID).Set(ctx, user)
	return errors.Wrap(err, "creating profile document")
}

// UpdateProfile applies the field updates to an existing document and
// stamps updatedAt. Fails when the document is absent.
func (s *UserStore) UpdateProfile(ctx context.Context, uid string, updates map[string]interface{}) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	fieldUpdates := make([]firestore.Update, 0, len(updates)+1)
	for field, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: field, Value: value})
	}
	fieldUpdates = append(fieldUpdates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	_, err := s.collection().Doc(uid).Update(ctx, fieldUpdates)
	return errors.Wrap(err, "updating profile document")
}

// MergeProfile merge-sets the field map into the document, creating it
// when absent, and stamps updatedAt.
func (s *UserStore) MergeProfile(ctx context.Context, uid string, updates map[string]interface{}) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	data := make(map[string]interface{}, len(updates)+2)
	for field, value := range updates {
		data[field] = value
	}
	data["id"] = uid
	data["updatedAt"] = time.Now().UTC()

	_, err := s.collection().Doc(uid).Set(ctx, data, firestore.MergeAll)
	return errors.Wrap(err, "merging profile document")
}

// DeleteProfile removes the profile document. Deleting an absent document
// is not an error.
func (s *UserStore) DeleteProfile(ctx context.Context, uid string) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	_, err := s.collection().Doc(uid).Delete(ctx)
	return errors.Wrap(err, "deleting profile document")
}

// ListProfiles returns every profile document keyed by uid.
func (s *UserStore) ListProfiles(ctx context.Context) (map[string]model.User, error) {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	profiles := make(map[string]model.User)
	iter := s.collection().Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterating profile documents")
		}
		var user model.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Wrap(err, "decoding profile document")
		}
		profiles[doc.Ref.ID] = user
	}
	return profiles, nil
}
