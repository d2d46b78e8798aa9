package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"restaurant-ordering/cart-svc/domain"
)

// MergeKeyFunc decides when two lines are "the same line" and should merge
// into one entry with a higher quantity. The default keys on product name
// plus the add-on name multiset; callers with catalog ids can key on those
// instead.
type MergeKeyFunc func(name string, addOns []domain.AddOn) string

func DefaultMergeKey(name string, addOns []domain.AddOn) string {
	// Each component is quoted so names containing the separators cannot
	// collide ("Queso,extra" vs "Queso" + "extra").
	names := make([]string, len(addOns))
	for i, addOn := range addOns {
		names[i] = strconv.Quote(addOn.Name)
	}
	sort.Strings(names)
	return strconv.Quote(name) + "|" + strings.Join(names, ",")
}

// CartStore is the single source of truth for one cart. All mutations run
// under a mutex: mutate, recompute, notify subscribers, then persist, so
// observers always see snapshots in mutation order. Subscriber callbacks run
// with the store lock held and must not call back into the store.
//
// Every operation is total: unknown ids are silent no-ops and persistence
// failures never surface here (CartStorage absorbs them).
type CartStore struct {
	mu       sync.Mutex
	items    []domain.LineItem
	isOpen   bool
	mergeKey MergeKeyFunc
	storage  CartStorage

	nextSubID int
	itemsSubs map[int]func([]domain.LineItem)
	totalSubs map[int]func(int64)
	countSubs map[int]func(int)
	openSubs  map[int]func(bool)
}

// NewCartStore builds a store seeded from the durable slot. A nil mergeKey
// selects DefaultMergeKey.
func NewCartStore(storage CartStorage, mergeKey MergeKeyFunc) *CartStore {
	if mergeKey == nil {
		mergeKey = DefaultMergeKey
	}
	return &CartStore{
		items:     storage.Load(context.Background()),
		mergeKey:  mergeKey,
		storage:   storage,
		itemsSubs: make(map[int]func([]domain.LineItem)),
		totalSubs: make(map[int]func(int64)),
		countSubs: make(map[int]func(int)),
		openSubs:  make(map[int]func(bool)),
	}
}

// AddItem merges into an existing line when the merge key matches, otherwise
// appends a fresh line with quantity 1 and a new id. It never fails: the
// input is assumed normalized (see the HTTP boundary adapter).
func (s *CartStore) AddItem(input domain.ProductInput, addOns []domain.AddOn) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.mergeKey(input.Name, addOns)
	merged := false
	for i := range s.items {
		if s.mergeKey(s.items[i].Name, s.items[i].AddOns) == key {
			s.items[i].Quantity++
			merged = true
			break
		}
	}

	if !merged {
		s.items = append(s.items, domain.LineItem{
			ID:        uuid.NewString(),
			Name:      input.Name,
			UnitPrice: input.Price,
			Quantity:  1,
			Image:     input.Image,
			Category:  input.Category,
			AddOns:    append([]domain.AddOn{}, addOns...),
		})
	}

	return s.afterItemsMutation()
}

// RemoveItem drops the line with the given id. Absent ids are a no-op:
// nothing changed, so subscribers are not notified and nothing is persisted.
func (s *CartStore) RemoveItem(itemID string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.afterItemsMutation()
		}
	}

	return s.snapshotLocked()
}

func (s *CartStore) IncreaseQuantity(itemID string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity++
			return s.afterItemsMutation()
		}
	}

	return s.snapshotLocked()
}

// DecreaseQuantity lowers a line's quantity by one; a line at quantity 1 is
// removed outright so a quantity of 0 never exists, let alone persists.
func (s *CartStore) DecreaseQuantity(itemID string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}
		if s.items[i].Quantity <= 1 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity--
		}
		return s.afterItemsMutation()
	}

	return s.snapshotLocked()
}

func (s *CartStore) Clear() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return s.snapshotLocked()
	}
	s.items = nil
	return s.afterItemsMutation()
}

func (s *CartStore) Open() domain.Snapshot {
	return s.setOpen(true)
}

func (s *CartStore) Close() domain.Snapshot {
	return s.setOpen(false)
}

func (s *CartStore) setOpen(open bool) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isOpen = open
	for _, notify := range s.openSubs {
		notify(open)
	}
	return s.snapshotLocked()
}

func (s *CartStore) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

func (s *CartStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartTotal(s.items)
}

func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartCount(s.items)
}

func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

func (s *CartStore) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SubscribeItems registers a callback that fires immediately with the
// current items and again after every item mutation. The returned func
// cancels the subscription. The other Subscribe methods behave the same for
// their streams.
func (s *CartStore) SubscribeItems(fn func([]domain.LineItem)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.itemsSubs[id] = fn
	fn(copyItems(s.items))

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.itemsSubs, id)
	}
}

func (s *CartStore) SubscribeTotal(fn func(int64)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.totalSubs[id] = fn
	fn(CartTotal(s.items))

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.totalSubs, id)
	}
}

func (s *CartStore) SubscribeCount(fn func(int)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.countSubs[id] = fn
	fn(CartCount(s.items))

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.countSubs, id)
	}
}

func (s *CartStore) SubscribeOpen(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.openSubs[id] = fn
	fn(s.isOpen)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.openSubs, id)
	}
}

// afterItemsMutation recomputes, notifies the item-derived streams and
// persists. Called with the lock held.
func (s *CartStore) afterItemsMutation() domain.Snapshot {
	snap := s.snapshotLocked()

	for _, notify := range s.itemsSubs {
		notify(copyItems(snap.Items))
	}
	for _, notify := range s.totalSubs {
		notify(snap.Total)
	}
	for _, notify := range s.countSubs {
		notify(snap.Count)
	}

	s.storage.Save(context.Background(), snap.Items)
	return snap
}

func (s *CartStore) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Items:  copyItems(s.items),
		Total:  CartTotal(s.items),
		Count:  CartCount(s.items),
		IsOpen: s.isOpen,
	}
}

// copyItems returns a deep copy so no consumer can mutate a line in place
// after reading it.
func copyItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		item.AddOns = append([]domain.AddOn{}, item.AddOns...)
		out[i] = item
	}
	return out
}
