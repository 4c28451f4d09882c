package domain

import "time"

// Cart is the mutable pre-order collection of line items for one customer.
// A customer has at most one cart with InOrder=false at any time; once an
// order is created from it the cart is closed and never mutated again.
type Cart struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	TotalCents int64      `json:"totalCents"`
	InOrder    bool       `json:"inOrder"`
	CreatedAt  time.Time  `json:"createdAt"`
	Items      []CartItem `json:"items,omitempty"`
}

// CartItem is one product line within a cart. PriceCents is the unit price
// captured when the line was added; TotalCents = PriceCents * Quantity and is
// recomputed whenever the quantity changes.
type CartItem struct {
	ID         string    `json:"id"`
	CartID     string    `json:"cartId"`
	ProductID  string    `json:"productId"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"priceCents"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ItemByProduct returns the cart line holding the given product, if any.
func (c *Cart) ItemByProduct(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemByID returns the cart line with the given identifier, if any.
func (c *Cart) ItemByID(itemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
