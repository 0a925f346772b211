package services_test

import (
	"fmt"
	"testing"

	"urbanfabric/internal/models"
	"urbanfabric/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	productService := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Linen Shirt", Price: 1200},
		{ID: "2", Name: "Denim Jacket", Price: 3500},
	}
	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := productService.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)

	// Test error case
	mockRepo.On("GetAll").Return(nil, fmt.Errorf("database error")).Once()
	products, err = productService.GetAllProducts()
	assert.Error(t, err)
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	productService := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Linen Shirt", Category: models.CategoryMen},
	}
	mockRepo.On("GetByCategory", models.CategoryMen).Return(expectedProducts, nil).Once()

	products, err := productService.GetProductsByCategory(models.CategoryMen)
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	productService := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Linen Shirt", Price: 1200}
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()

	product, err := productService.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test not found case
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found: %w", models.ErrProductNotFound)).Once()
	product, err = productService.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	productService := services.NewProductService(mockRepo)

	product := &models.Product{
		Name:     "New Hoodie",
		Price:    2200,
		Category: models.CategoryWomen,
		Sizes:    []string{"S", "M", "L"},
		Stock:    10,
	}
	mockRepo.On("Create", product).Return(nil).Once()

	err := productService.CreateProduct(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	productService := services.NewProductService(mockRepo)

	product := &models.Product{ID: "1", Name: "Updated Shirt", Price: 1300}
	mockRepo.On("Update", product).Return(nil).Once()

	err := productService.UpdateProduct(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	productService := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()

	err := productService.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
