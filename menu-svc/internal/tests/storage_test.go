package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-ordering/menu-svc/domain"
	"restaurant-ordering/menu-svc/service"
	"restaurant-ordering/menu-svc/storage"
)

func TestMemoryCatalog_CRUD(t *testing.T) {
	catalog := storage.NewMemoryCatalog()

	product := &domain.Product{Name: "Hamburguesa Clásica", Price: 15000, Category: "hamburguesas"}
	assert.NoError(t, catalog.CreateProduct(product))
	assert.Equal(t, 1, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	loaded, err := catalog.GetProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, "Hamburguesa Clásica", loaded.Name)

	loaded.Price = 16000
	assert.NoError(t, catalog.UpdateProduct(loaded))
	updated, _ := catalog.GetProduct(1)
	assert.Equal(t, int64(16000), updated.Price)

	rows, err := catalog.DeleteProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = catalog.GetProduct(1)
	assert.ErrorIs(t, err, service.ErrProductNotFound)

	rows, err = catalog.DeleteProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestMemoryCatalog_UpdateUnknownProduct(t *testing.T) {
	catalog := storage.NewMemoryCatalog()

	err := catalog.UpdateProduct(&domain.Product{ID: 42, Name: "Fantasma"})
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestMemoryCatalog_ListFiltersByCategory(t *testing.T) {
	catalog := storage.NewMemoryCatalog(storage.DefaultMenu()...)

	all, err := catalog.ListProducts("")
	assert.NoError(t, err)
	assert.Len(t, all, 6)

	burgers, err := catalog.ListProducts("hamburguesas")
	assert.NoError(t, err)
	assert.Len(t, burgers, 2)
	for _, product := range burgers {
		assert.Equal(t, "hamburguesas", product.Category)
	}
}

func TestMemoryCatalog_Search(t *testing.T) {
	catalog := storage.NewMemoryCatalog(storage.DefaultMenu()...)

	matches, err := catalog.SearchProducts("hamburguesa")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = catalog.SearchProducts("LIMONADA")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, "Limonada de Coco", matches[0].Name)

	matches, err = catalog.SearchProducts("sushi")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemoryCatalog_Categories(t *testing.T) {
	catalog := storage.NewMemoryCatalog(storage.DefaultMenu()...)

	categories, err := catalog.ListCategories()
	assert.NoError(t, err)
	assert.Equal(t, []string{"bebidas", "hamburguesas", "perros", "pizzas"}, categories)
}

func TestDefaultMenu_SeedsWithStableIDs(t *testing.T) {
	catalog := storage.NewMemoryCatalog(storage.DefaultMenu()...)

	first, err := catalog.GetProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, "Hamburguesa Clásica", first.Name)
	assert.NotEmpty(t, first.AddOns)
}
