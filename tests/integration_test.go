package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	carthttp "restaurant-ordering/cart-svc/api/http"
	cartdomain "restaurant-ordering/cart-svc/domain"
	cartservice "restaurant-ordering/cart-svc/service"
	cartstorage "restaurant-ordering/cart-svc/storage"
	menuhttp "restaurant-ordering/menu-svc/api/http"
	menudomain "restaurant-ordering/menu-svc/domain"
	menuservice "restaurant-ordering/menu-svc/service"
	menustorage "restaurant-ordering/menu-svc/storage"
)

func startServers(t *testing.T) (cartURL, menuURL string) {
	t.Helper()

	carts := cartservice.NewCartService(func(string) cartservice.CartStorage {
		return cartstorage.NewMemoryCartStorage()
	}, nil, nil, cartservice.DefaultQRGenerator{BaseURL: "http://localhost"})
	cartServer := httptest.NewServer(carthttp.NewRouter(carthttp.NewHandler(carts)))
	t.Cleanup(cartServer.Close)

	catalog := menuservice.NewCatalogService(menustorage.NewMemoryCatalog(menustorage.DefaultMenu()...))
	menuServer := httptest.NewServer(menuhttp.NewRouter(menuhttp.NewHandler(catalog)))
	t.Cleanup(menuServer.Close)

	return cartServer.URL, menuServer.URL
}

func doJSON(t *testing.T, method, url string, payload interface{}, out interface{}) int {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "integration")

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// The full browse-then-bill flow: pick a burger off the menu, add it with
// extra cheese twice, walk the quantity back down, and check out.
func TestBrowseAndBillFlow(t *testing.T) {
	cartURL, menuURL := startServers(t)

	var burgers []menudomain.Product
	code := doJSON(t, http.MethodGet, menuURL+"/api/products?category=hamburguesas", nil, &burgers)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, burgers)

	burger := burgers[0]
	assert.Equal(t, int64(15000), burger.Price)

	addToCart := map[string]interface{}{
		"name":     burger.Name,
		"price":    burger.Price,
		"image":    burger.ImageURL,
		"category": burger.Category,
		"add_ons":  []map[string]interface{}{{"name": "Queso extra", "price": 2000}},
	}

	var snap cartdomain.Snapshot
	code = doJSON(t, http.MethodPost, cartURL+"/api/cart/items", addToCart, &snap)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, int64(17000), snap.Total)

	code = doJSON(t, http.MethodPost, cartURL+"/api/cart/items", addToCart, &snap)
	assert.Equal(t, http.StatusCreated, code)
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, int64(34000), snap.Total)

	itemID := snap.Items[0].ID

	var confirmation cartdomain.CheckoutConfirmation
	code = doJSON(t, http.MethodPost, cartURL+"/api/cart/checkout", nil, &confirmation)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(34000), confirmation.Total)

	resp, err := http.Get(cartURL + confirmation.QRCode)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	code = doJSON(t, http.MethodPost, cartURL+"/api/cart/items/"+itemID+"/decrease", nil, &snap)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(17000), snap.Total)

	code = doJSON(t, http.MethodPost, cartURL+"/api/cart/items/"+itemID+"/decrease", nil, &snap)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, snap.Items)
	assert.Equal(t, int64(0), snap.Total)
	assert.Equal(t, 0, snap.Count)
}

// Adding through the legacy Spanish payload shape must land in the same cart
// line as the canonical shape.
func TestLegacyDescriptorShape(t *testing.T) {
	cartURL, _ := startServers(t)

	canonical := map[string]interface{}{
		"name":    "Perro Caliente",
		"price":   12000,
		"add_ons": []map[string]interface{}{{"name": "Queso extra", "price": 2000}},
	}
	legacy := map[string]interface{}{
		"nombre":      "Perro Caliente",
		"precio":      12000,
		"adicionales": []map[string]interface{}{{"nombre": "Queso extra", "precio": 2000}},
	}

	var snap cartdomain.Snapshot
	doJSON(t, http.MethodPost, cartURL+"/api/cart/items", canonical, &snap)
	doJSON(t, http.MethodPost, cartURL+"/api/cart/items", legacy, &snap)

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, int64(28000), snap.Total)
}
