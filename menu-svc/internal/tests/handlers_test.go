package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "restaurant-ordering/menu-svc/api/http"
	"restaurant-ordering/menu-svc/domain"
	"restaurant-ordering/menu-svc/internal/mocks"
	"restaurant-ordering/menu-svc/service"
)

func setupTestRouter(mockSvc *mocks.CatalogServiceInterface) http.Handler {
	handler := httpapi.NewHandler(mockSvc)
	return httpapi.NewRouter(handler)
}

func TestHandler_createProduct(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(mockSvc *mocks.CatalogServiceInterface)
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"name":"Hamburguesa Clásica","price":15000,"category":"hamburguesas"}`,
			prepareMocks: func(mockSvc *mocks.CatalogServiceInterface) {
				mockSvc.On("Create", mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid json",
			payload:      `bad json`,
			prepareMocks: func(*mocks.CatalogServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "repository failure",
			payload: `{"name":"Hamburguesa Clásica"}`,
			prepareMocks: func(mockSvc *mocks.CatalogServiceInterface) {
				mockSvc.On("Create", mock.Anything).Return(assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewCatalogServiceInterface(t)
			router := setupTestRouter(mockSvc)
			testCase.prepareMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(testCase.payload))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.expectedCode, rr.Code)
		})
	}
}

func TestHandler_getProducts(t *testing.T) {
	mockSvc := mocks.NewCatalogServiceInterface(t)
	router := setupTestRouter(mockSvc)

	products := []domain.Product{{ID: 1, Name: "Pizza Margarita", Price: 22000}}
	mockSvc.On("List", "pizzas").Return(products, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=pizzas", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var decoded []domain.Product
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&decoded))
	assert.Equal(t, products, decoded)
}

func TestHandler_getProducts_Search(t *testing.T) {
	mockSvc := mocks.NewCatalogServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Search", "hamburguesa").Return([]domain.Product{{ID: 1}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products?q=hamburguesa", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_getProduct_NotFound(t *testing.T) {
	mockSvc := mocks.NewCatalogServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Get", 999).Return(nil, service.ErrProductNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_deleteProduct(t *testing.T) {
	tests := []struct {
		name         string
		rows         int64
		expectedCode int
	}{
		{name: "deleted", rows: 1, expectedCode: http.StatusNoContent},
		{name: "not found", rows: 0, expectedCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewCatalogServiceInterface(t)
			router := setupTestRouter(mockSvc)

			mockSvc.On("Delete", 1).Return(testCase.rows, nil).Once()

			req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.expectedCode, rr.Code)
		})
	}
}

func TestHandler_replaceAddOns(t *testing.T) {
	mockSvc := mocks.NewCatalogServiceInterface(t)
	router := setupTestRouter(mockSvc)

	addOns := []domain.AddOn{{Name: "Tocineta", Price: 3000}}
	updated := &domain.Product{ID: 1, Name: "Hamburguesa Clásica", AddOns: addOns}
	mockSvc.On("ReplaceAddOns", 1, addOns).Return(updated, nil).Once()

	body, _ := json.Marshal(addOns)
	req := httptest.NewRequest(http.MethodPut, "/api/products/1/addons", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Tocineta")
}

func TestHandler_getCategories(t *testing.T) {
	mockSvc := mocks.NewCatalogServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Categories").Return([]string{"bebidas", "hamburguesas"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "hamburguesas")
}
