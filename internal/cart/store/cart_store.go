package store

import (
	"context"
	"encoding/json"

	"github.com/itsryu/ZeDoBambu/internal/cart/model"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// CartStore keeps per-user carts as JSON blobs in Redis. Each write
// refreshes the TTL, so abandoned carts expire on their own.
type CartStore struct {
	client *redis.Client
}

// NewCartStore creates a new store over the given Redis client.
func NewCartStore(client *redis.Client) *CartStore {

	return &CartStore{client: client}
}

func cartKey(uid string) string {
	return constants.CartKeyPrefix + uid
}

// GetCart fetches the user's cart. An absent key is an empty cart.
func (s *CartStore) GetCart(ctx context.Context, uid string) (*model.Cart, error) {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	payload, err := s.client.Get(ctx, cartKey(uid)).Bytes()
	if err == redis.Nil {
		return &model.Cart{Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching cart")
	}

	var cart model.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, errors.Wrap(err, "decoding cart")
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	return &cart, nil
}

// SaveCart writes the cart back and refreshes the expiry.
func (s *CartStore) SaveCart(ctx context.Context, uid string, cart *model.Cart) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	payload, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "encoding cart")
	}
	if err := s.client.Set(ctx, cartKey(uid), payload, constants.CartTTL).Err(); err != nil {
		return errors.Wrap(err, "saving cart")
	}
	return nil
}

// DeleteCart drops the cart key.
func (s *CartStore) DeleteCart(ctx context.Context, uid string) error {

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	return errors.Wrap(s.client.Del(ctx, cartKey(uid)).Err(), "deleting cart")
}
