package service

import (
	"context"
	"net/http"

	"github.com/itsryu/ZeDoBambu/internal/cart/model"
	productmodel "github.com/itsryu/ZeDoBambu/internal/product/model"
	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

// CartStoreInterface is the cart persistence surface the service depends
// on. GetCart returns an empty cart when none is stored.
type CartStoreInterface interface {
	GetCart(ctx context.Context, uid string) (*model.Cart, error)
	SaveCart(ctx context.Context, uid string, cart *model.Cart) error
	DeleteCart(ctx context.Context, uid string) error
}

// CatalogReader resolves products when items are added, so the cart
// snapshot carries the price and name at add time.
type CatalogReader interface {
	GetProduct(ctx context.Context, id string) (*productmodel.Product, error)
}

// CartService implements the per-user shopping cart.
type CartService struct {
	store   CartStoreInterface
	catalog CatalogReader
}

// NewCartService constructs the service with its dependencies injected.
func NewCartService(store CartStoreInterface, catalog CatalogReader) *CartService {

	return &CartService{store: store, catalog: catalog}
}

// GetCart returns the user's cart with derived totals.
func (s *CartService) GetCart(ctx context.Context, uid string) (*model.Cart, error) {

	cart, err := s.store.GetCart(ctx, uid)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_CART, err)
	}
	cart.Derive()
	return cart, nil
}

// AddItem adds a catalog product to the cart, incrementing the quantity
// when the product is already present. The product must exist and be
// available.
func (s *CartService) AddItem(ctx context.Context, uid string, req *model.AddItemRequest) (*model.Cart, error) {

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, apierrors.NewClientError(apierrors.INVALID_QUANTITY, http.StatusBadRequest)
	}

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_PRODUCT, err)
	}
	if product == nil {
		return nil, apierrors.NewClientError(apierrors.PRODUCT_NOT_FOUND, http.StatusNotFound)
	}
	if !product.Availability {
		return nil, apierrors.NewClientError(apierrors.PRODUCT_UNAVAILABLE, http.StatusConflict)
	}

	cart, err := s.store.GetCart(ctx, uid)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_CART, err)
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, model.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  quantity,
		})
	}

	if err := s.store.SaveCart(ctx, uid, cart); err != nil {
		return nil, apierrors.NewServerError(apierrors.SAVE_CART, err)
	}

	log.GetLogger().Debug("Cart item added.",
		log.String("uid", uid), log.String("productId", product.ID))
	cart.Derive()
	return cart, nil
}

// SetQuantity replaces an item's quantity. A quantity of zero or less
// removes the item.
func (s *CartService) SetQuantity(ctx context.Context, uid, productID string, quantity int) (*model.Cart, error) {

	cart, err := s.store.GetCart(ctx, uid)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_CART, err)
	}

	if quantity <= 0 {
		cart.Items = removeItem(cart.Items, productID)
	} else {
		found := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Quantity = quantity
				found = true
				break
			}
		}
		if !found {
			return nil, apierrors.NewClientError(apierrors.PRODUCT_NOT_FOUND, http.StatusNotFound)
		}
	}

	if err := s.store.SaveCart(ctx, uid, cart); err != nil {
		return nil, apierrors.NewServerError(apierrors.SAVE_CART, err)
	}
	cart.Derive()
	return cart, nil
}

// RemoveItem drops an item from the cart. Removing an absent item is a
// no-op.
func (s *CartService) RemoveItem(ctx context.Context, uid, productID string) (*model.Cart, error) {

	cart, err := s.store.GetCart(ctx, uid)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.GET_CART, err)
	}

	cart.Items = removeItem(cart.Items, productID)
	if err := s.store.SaveCart(ctx, uid, cart); err != nil {
		return nil, apierrors.NewServerError(apierrors.SAVE_CART, err)
	}
	cart.Derive()
	return cart, nil
}

// ClearCart drops the whole cart.
func (s *CartService) ClearCart(ctx context.Context, uid string) error {

	if err := s.store.DeleteCart(ctx, uid); err != nil {
		return apierrors.NewServerError(apierrors.SAVE_CART, err)
	}
	log.GetLogger().Debug("Cart cleared.", log.String("uid", uid))
	return nil
}

func removeItem(items []model.CartItem, productID string) []model.CartItem {

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}
