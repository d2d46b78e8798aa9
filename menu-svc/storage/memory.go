package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"restaurant-ordering/menu-svc/domain"
	"restaurant-ordering/menu-svc/service"
)

// MemoryCatalog holds the product catalog in process memory. There is no
// database behind the menu.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[int]domain.Product
	nextID   int
}

func NewMemoryCatalog(seed ...domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		products: make(map[int]domain.Product),
		nextID:   1,
	}
	for _, product := range seed {
		p := product
		c.CreateProduct(&p)
	}
	return c
}

func (c *MemoryCatalog) CreateProduct(product *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	product.ID = c.nextID
	c.nextID++
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if product.AddOns == nil {
		product.AddOns = []domain.AddOn{}
	}
	c.products[product.ID] = *product
	return nil
}

func (c *MemoryCatalog) ListProducts(category string) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := []domain.Product{}
	for _, product := range c.products {
		if category != "" && !strings.EqualFold(product.Category, category) {
			continue
		}
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (c *MemoryCatalog) GetProduct(id int) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[id]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	return &product, nil
}

func (c *MemoryCatalog) UpdateProduct(product *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.products[product.ID]
	if !ok {
		return service.ErrProductNotFound
	}
	product.CreatedAt = existing.CreatedAt
	c.products[product.ID] = *product
	return nil
}

func (c *MemoryCatalog) DeleteProduct(id int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[id]; !ok {
		return 0, nil
	}
	delete(c.products, id)
	return 1, nil
}

func (c *MemoryCatalog) SearchProducts(query string) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	products := []domain.Product{}
	for _, product := range c.products {
		if query == "" || strings.Contains(strings.ToLower(product.Name), query) {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (c *MemoryCatalog) ListCategories() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, product := range c.products {
		key := strings.ToLower(product.Category)
		if product.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, product.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

var _ service.ProductRepository = (*MemoryCatalog)(nil)
