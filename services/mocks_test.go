package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cars-api/models"
)

// MockCarStore mocks the repositories.CarStore interface
type MockCarStore struct {
	mock.Mock
}

func (m *MockCarStore) FindAll(ctx context.Context) ([]models.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarStore) FindByID(ctx context.Context, id int) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarStore) Create(ctx context.Context, fields models.CarFields) (*models.Car, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarStore) UpdateByID(ctx context.Context, id int, patch models.CarPatch) (*models.Car, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarStore) DeleteByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
