package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/foodfight/backend/internal/catalog"
	"github.com/pageza/foodfight/backend/internal/model"
	"github.com/pageza/foodfight/backend/internal/service"
)

// MockCatalogService is a mock implementation of the catalog service
type MockCatalogService struct {
	mock.Mock
}

var _ service.ICatalogService = (*MockCatalogService)(nil)

// Search mocks the Search method
func (m *MockCatalogService) Search(c catalog.Criteria) catalog.Result {
	args := m.Called(c)
	return args.Get(0).(catalog.Result)
}

// Recipe mocks the Recipe method
func (m *MockCatalogService) Recipe(key string) (model.Recipe, error) {
	args := m.Called(key)
	return args.Get(0).(model.Recipe), args.Error(1)
}

// Link mocks the Link method
func (m *MockCatalogService) Link(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

// LinkFor mocks the LinkFor method
func (m *MockCatalogService) LinkFor(r model.Recipe) (string, bool) {
	args := m.Called(r)
	return args.String(0), args.Bool(1)
}

// Featured mocks the Featured method
func (m *MockCatalogService) Featured() (model.Recipe, bool) {
	args := m.Called()
	return args.Get(0).(model.Recipe), args.Bool(1)
}

// Shortcuts mocks the Shortcuts method
func (m *MockCatalogService) Shortcuts() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// Facets mocks the Facets method
func (m *MockCatalogService) Facets() catalog.Facets {
	args := m.Called()
	return args.Get(0).(catalog.Facets)
}

// Banner mocks the Banner method
func (m *MockCatalogService) Banner() service.Banner {
	args := m.Called()
	return args.Get(0).(service.Banner)
}

// Total mocks the Total method
func (m *MockCatalogService) Total() int {
	args := m.Called()
	return args.Int(0)
}

// Source mocks the Source method
func (m *MockCatalogService) Source() string {
	args := m.Called()
	return args.String(0)
}

// Start mocks the Start method
func (m *MockCatalogService) Start(ctx context.Context) {
	m.Called(ctx)
}

// Stop mocks the Stop method
func (m *MockCatalogService) Stop() {
	m.Called()
}
