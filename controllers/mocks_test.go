package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cars-api/models"
)

// MockCarService mocks the CarService interface
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) GetAllCars(ctx context.Context) ([]models.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarService) GetCarByID(ctx context.Context, id int) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarService) AddCar(ctx context.Context, req models.CarRequest) (*models.Car, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarService) UpdateCar(ctx context.Context, id int, req models.CarRequest) (*models.Car, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarService) DeleteCar(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
