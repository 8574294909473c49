package services

import (
	"context"

	"github.com/rs/zerolog"

	"cars-api/errs"
	"cars-api/models"
	"cars-api/repositories"
)

// Messages returned to clients when the store fails. The cause is logged, never sent.
const (
	MsgFetchCarsFailed = "Failed to fetch cars"
	MsgFetchCarFailed  = "Failed to fetch car"
	MsgCreateFailed    = "Failed to create car"
	MsgUpdateFailed    = "Failed to update car"
	MsgDeleteFailed    = "Failed to delete car"
)

type CarService struct {
	store  repositories.CarStore
	logger zerolog.Logger
}

func NewCarService(store repositories.CarStore, logger zerolog.Logger) *CarService {
	return &CarService{
		store:  store,
		logger: logger.With().Str("component", "car_service").Logger(),
	}
}

// GetAllCars returns every car in storage order
func (s *CarService) GetAllCars(ctx context.Context) ([]models.Car, error) {
	cars, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, s.storageFailure(MsgFetchCarsFailed, err)
	}
	return cars, nil
}

// GetCarByID returns nil, nil when no car has the id
func (s *CarService) GetCarByID(ctx context.Context, id int) (*models.Car, error) {
	car, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.storageFailure(MsgFetchCarFailed, err)
	}
	return car, nil
}

// AddCar coerces the year and stores the car. The request must already be validated.
func (s *CarService) AddCar(ctx context.Context, req models.CarRequest) (*models.Car, error) {
	year, _ := req.Year.Int()

	car, err := s.store.Create(ctx, models.CarFields{
		Brand: req.Brand,
		Model: req.Model,
		Year:  year,
	})
	if err != nil {
		return nil, s.storageFailure(MsgCreateFailed, err)
	}
	return car, nil
}

// UpdateCar forwards only the provided fields. Returns nil, nil when no car has the id.
func (s *CarService) UpdateCar(ctx context.Context, id int, req models.CarRequest) (*models.Car, error) {
	patch := models.CarPatch{
		Brand: req.Brand,
		Model: req.Model,
	}
	if req.Year.Provided() {
		patch.Year, _ = req.Year.Int()
	}

	car, err := s.store.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, s.storageFailure(MsgUpdateFailed, err)
	}
	return car, nil
}

// DeleteCar reports whether a car was removed
func (s *CarService) DeleteCar(ctx context.Context, id int) (bool, error) {
	removed, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, s.storageFailure(MsgDeleteFailed, err)
	}
	return removed, nil
}

// CountCars is used by the inventory job
func (s *CarService) CountCars(ctx context.Context) (int, error) {
	cars, err := s.GetAllCars(ctx)
	if err != nil {
		return 0, err
	}
	return len(cars), nil
}

func (s *CarService) storageFailure(message string, cause error) error {
	s.logger.Error().Err(cause).Msg(message)
	return errs.Storage(message, cause)
}
