package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant-ordering/cart-svc/domain"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrUnknownReference = errors.New("unknown checkout reference")
)

// CartService maps sessions to their CartStore instances and fans cart
// events out to the optional publisher. Stores are built lazily, each seeded
// from its own durable slot, and live for the rest of the process (the
// source keeps one cart per browser session for the whole visit).
type CartService struct {
	mu         sync.Mutex
	stores     map[string]*CartStore
	checkouts  map[string][]byte
	newStorage StorageFactory
	publisher  CartEventPublisher
	mergeKey   MergeKeyFunc
	qrEncoder  QRGenerator
}

func NewCartService(newStorage StorageFactory, publisher CartEventPublisher, mergeKey MergeKeyFunc, qr QRGenerator) *CartService {
	return &CartService{
		stores:     make(map[string]*CartStore),
		checkouts:  make(map[string][]byte),
		newStorage: newStorage,
		publisher:  publisher,
		mergeKey:   mergeKey,
		qrEncoder:  qr,
	}
}

// Cart returns the session's store, building it on first use.
func (s *CartService) Cart(sessionID string) *CartStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.stores[sessionID]
	if !ok {
		store = NewCartStore(s.newStorage(sessionID), s.mergeKey)
		s.stores[sessionID] = store
	}
	return store
}

func (s *CartService) Snapshot(sessionID string) domain.Snapshot {
	return s.Cart(sessionID).Snapshot()
}

func (s *CartService) AddItem(sessionID string, input domain.ProductInput, addOns []domain.AddOn) domain.Snapshot {
	snap := s.Cart(sessionID).AddItem(input, addOns)
	s.publish(sessionID, domain.CartEvent{Type: domain.EventItemAdded, ItemName: input.Name}, snap)
	return snap
}

func (s *CartService) RemoveItem(sessionID, itemID string) domain.Snapshot {
	snap := s.Cart(sessionID).RemoveItem(itemID)
	s.publish(sessionID, domain.CartEvent{Type: domain.EventItemRemoved, ItemID: itemID}, snap)
	return snap
}

func (s *CartService) IncreaseQuantity(sessionID, itemID string) domain.Snapshot {
	snap := s.Cart(sessionID).IncreaseQuantity(itemID)
	s.publish(sessionID, domain.CartEvent{Type: domain.EventQuantityIncrease, ItemID: itemID}, snap)
	return snap
}

func (s *CartService) DecreaseQuantity(sessionID, itemID string) domain.Snapshot {
	snap := s.Cart(sessionID).DecreaseQuantity(itemID)
	s.publish(sessionID, domain.CartEvent{Type: domain.EventQuantityDecrease, ItemID: itemID}, snap)
	return snap
}

func (s *CartService) ClearCart(sessionID string) domain.Snapshot {
	snap := s.Cart(sessionID).Clear()
	s.publish(sessionID, domain.CartEvent{Type: domain.EventCartCleared}, snap)
	return snap
}

func (s *CartService) OpenCart(sessionID string) domain.Snapshot {
	return s.Cart(sessionID).Open()
}

func (s *CartService) CloseCart(sessionID string) domain.Snapshot {
	return s.Cart(sessionID).Close()
}

// Checkout is a stub: it hands back a reference and the billed totals but
// creates no order and leaves the cart as-is. The QR code is generated
// best-effort, the same way order QR codes are.
func (s *CartService) Checkout(sessionID string) (domain.CheckoutConfirmation, error) {
	snap := s.Cart(sessionID).Snapshot()
	if len(snap.Items) == 0 {
		return domain.CheckoutConfirmation{}, ErrEmptyCart
	}

	reference := uuid.NewString()
	var qr []byte
	if s.qrEncoder != nil {
		var err error
		if qr, err = s.qrEncoder.Generate(reference); err != nil {
			logrus.Warnf("Warning: failed to generate checkout QR code: %v", err)
			qr = nil
		}
	}
	s.mu.Lock()
	s.checkouts[reference] = qr
	s.mu.Unlock()

	s.publish(sessionID, domain.CartEvent{Type: domain.EventCheckout}, snap)

	return domain.CheckoutConfirmation{
		Reference: reference,
		Total:     snap.Total,
		Count:     snap.Count,
		QRCode:    "/api/cart/checkout/" + reference + "/qrcode",
	}, nil
}

// CheckoutQRCode returns the PNG for a confirmation, regenerating it if the
// first attempt at checkout time failed.
func (s *CartService) CheckoutQRCode(reference string) ([]byte, error) {
	s.mu.Lock()
	qr, ok := s.checkouts[reference]
	s.mu.Unlock()

	if !ok {
		return nil, ErrUnknownReference
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(reference)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.checkouts[reference] = regenerated
		s.mu.Unlock()
		return regenerated, nil
	}
	return qr, nil
}

func (s *CartService) publish(sessionID string, event domain.CartEvent, snap domain.Snapshot) {
	if s.publisher == nil {
		return
	}
	event.SessionID = sessionID
	event.Total = snap.Total
	event.Count = snap.Count
	event.Timestamp = time.Now()
	if err := s.publisher.PublishCartEvent(context.Background(), event); err != nil {
		logrus.Warnf("Warning: failed to publish cart event: %v", err)
	}
}

var _ CartServiceInterface = (*CartService)(nil)
