package domain

import "time"

// AddOn is a priced extra attached to a cart line ("Queso extra", "Tocineta").
// Prices are integer minor units (COP has no cents, so 1 unit == 1 peso).
type AddOn struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// LineItem is one configuration of a product inside a cart. Two entries of
// the same product with different add-on selections are distinct lines, so
// the ID is assigned at insertion time rather than taken from the catalog.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice int64   `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
	AddOns    []AddOn `json:"add_ons"`
}

// Snapshot is the derived view published after every mutation. Total and
// Count are always recomputed from the items, never stored.
type Snapshot struct {
	Items  []LineItem `json:"items"`
	Total  int64      `json:"total"`
	Count  int        `json:"count"`
	IsOpen bool       `json:"is_open"`
}

// ProductInput is the canonical product descriptor accepted by the cart.
// Tolerance for the legacy field spellings (nombre/precio/imagen) lives in
// the HTTP boundary adapter, not here.
type ProductInput struct {
	Name     string
	Price    int64
	Image    string
	Category string
}

// CheckoutConfirmation is what the checkout stub returns. The cart itself is
// left untouched; no order is created anywhere.
type CheckoutConfirmation struct {
	Reference string `json:"reference"`
	Total     int64  `json:"total"`
	Count     int    `json:"count"`
	QRCode    string `json:"qr_code"`
}

type CartEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	ItemID    string    `json:"item_id,omitempty"`
	ItemName  string    `json:"item_name,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Total     int64     `json:"total"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventItemAdded        = "item_added"
	EventItemRemoved      = "item_removed"
	EventQuantityIncrease = "quantity_increased"
	EventQuantityDecrease = "quantity_decreased"
	EventCartCleared      = "cart_cleared"
	EventCheckout         = "checkout"
)
