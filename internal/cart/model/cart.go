package model

// CartItem is one product line in a cart, denormalized at add time so the
// cart renders without a catalog round trip.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is the per-user cart view. ItemCount and CartTotal are derived from
// the items on every read and never stored.
type Cart struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	CartTotal float64    `json:"cartTotal"`
}

// AddItemRequest is the body of POST /cart/items. Quantity defaults to 1
// when omitted.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

// SetQuantityRequest is the body of PUT /cart/items/{productId}.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Derive recomputes ItemCount and CartTotal from the items.
func (c *Cart) Derive() {

	c.ItemCount = 0
	c.CartTotal = 0
	for _, item := range c.Items {
		c.ItemCount += item.Quantity
		c.CartTotal += item.Price * float64(item.Quantity)
	}
}
