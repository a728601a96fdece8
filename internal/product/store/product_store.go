package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/itsryu/ZeDoBambu/internal/product/model"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ProductStore persists catalog entries in the products collection.
type ProductStore struct {
	client *firestore.Client
}

// NewProductStore creates a new store over the given Firestore client.
func NewProductStore(client *firestore.Client) *ProductStore {

	return &ProductStore{client: client}
}

func (s *ProductStore) collection() *firestore.CollectionRef {
	return s.client.Collection(constants.ProductsCollection)
}

// GetProduct fetches a product by id. Absence is nil, not an error.
func (s *ProductStore) GetProduct(ctx context.Context, id string) (*model.Product, error) {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	doc, err := s.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching product document")
	}

	var product model.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Wrap(err, "decoding product document")
	}
	return &product, nil
}

// ListProducts returns the full catalog ordered by name.
func (s *ProductStore) ListProducts(ctx context.Context) ([]model.Product, error) {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	products := make([]model.Product, 0)
	iter := s.collection().OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterating product documents")
		}
		var product model.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Wrap(err, "decoding product document")
		}
		products = append(products, product)
	}
	return products, nil
}

// CreateProduct writes the product document.
func (s *ProductStore) CreateProduct(ctx context.Context, product *model.Product) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	_, err := s.collection().Doc(product.ID).Set(ctx, product)
	return errors.Wrap(err, "creating product document")
}

// UpdateProduct applies the field updates to an existing document and
// stamps updatedAt.
func (s *ProductStore) UpdateProduct(ctx context.Context, id string, updates map[string]interface{}) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	fieldUpdates := make([]firestore.Update, 0, len(updates)+1)
	for field, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: field, Value: value})
	}
	fieldUpdates = append(fieldUpdates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	_, err := s.collection().Doc(id).Update(ctx, fieldUpdates)
	return errors.Wrap(err, "updating product document")
}

// DeleteProduct removes the product document.
func (s *ProductStore) DeleteProduct(ctx context.Context, id string) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	_, err := s.collection().Doc(id).Delete(ctx)
	return errors.Wrap(err, "deleting product document")
}
