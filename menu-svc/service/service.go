package service

import (
	"errors"

	"restaurant-ordering/menu-svc/domain"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	CreateProduct(product *domain.Product) error
	ListProducts(category string) ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	DeleteProduct(id int) (int64, error)
	SearchProducts(query string) ([]domain.Product, error)
	ListCategories() ([]string, error)
}

type CatalogServiceInterface interface {
	Create(product *domain.Product) error
	List(category string) ([]domain.Product, error)
	Get(id int) (*domain.Product, error)
	Update(product *domain.Product) error
	Delete(id int) (int64, error)
	Search(query string) ([]domain.Product, error)
	Categories() ([]string, error)
	ReplaceAddOns(id int, addOns []domain.AddOn) (*domain.Product, error)
}

type CatalogService struct {
	repo ProductRepository
}

func NewCatalogService(repo ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(product *domain.Product) error {
	return s.repo.CreateProduct(product)
}

func (s *CatalogService) List(category string) ([]domain.Product, error) {
	return s.repo.ListProducts(category)
}

func (s *CatalogService) Get(id int) (*domain.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *CatalogService) Update(product *domain.Product) error {
	return s.repo.UpdateProduct(product)
}

func (s *CatalogService) Delete(id int) (int64, error) {
	return s.repo.DeleteProduct(id)
}

func (s *CatalogService) Search(query string) ([]domain.Product, error) {
	return s.repo.SearchProducts(query)
}

func (s *CatalogService) Categories() ([]string, error) {
	return s.repo.ListCategories()
}

// ReplaceAddOns swaps a product's add-on list wholesale; the back-office
// edits add-ons as one form, not one by one.
func (s *CatalogService) ReplaceAddOns(id int, addOns []domain.AddOn) (*domain.Product, error) {
	product, err := s.repo.GetProduct(id)
	if err != nil {
		return nil, err
	}

	product.AddOns = append([]domain.AddOn{}, addOns...)
	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
