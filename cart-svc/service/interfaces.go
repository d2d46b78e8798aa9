package service

import (
	"context"

	"restaurant-ordering/cart-svc/domain"
)

// CartStorage is the durable slot for a cart's line items. Durability is
// strictly best-effort: Save absorbs every failure (implementations log and
// move on) and Load returns an empty list for missing or corrupt data. A
// broken storage backend must never make a cart unusable.
type CartStorage interface {
	Save(ctx context.Context, items []domain.LineItem)
	Load(ctx context.Context) []domain.LineItem
}

// StorageFactory builds the storage slot for one session's cart.
type StorageFactory func(sessionID string) CartStorage

// CartEventPublisher is the side-channel for cart mutations. Publish
// failures are swallowed by the caller; events carry no authority.
type CartEventPublisher interface {
	PublishCartEvent(ctx context.Context, event domain.CartEvent) error
}

type CartServiceInterface interface {
	Snapshot(sessionID string) domain.Snapshot
	AddItem(sessionID string, input domain.ProductInput, addOns []domain.AddOn) domain.Snapshot
	RemoveItem(sessionID, itemID string) domain.Snapshot
	IncreaseQuantity(sessionID, itemID string) domain.Snapshot
	DecreaseQuantity(sessionID, itemID string) domain.Snapshot
	ClearCart(sessionID string) domain.Snapshot
	OpenCart(sessionID string) domain.Snapshot
	CloseCart(sessionID string) domain.Snapshot
	Checkout(sessionID string) (domain.CheckoutConfirmation, error)
	CheckoutQRCode(reference string) ([]byte, error)
}
