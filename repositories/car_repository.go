package repositories

import (
	"context"

	"cars-api/models"
)

// CarStore is the persistence gateway for cars. A missing record is reported
// as a nil car or false, never as an error.
type CarStore interface {
	FindAll(ctx context.Context) ([]models.Car, error)
	FindByID(ctx context.Context, id int) (*models.Car, error)
	Create(ctx context.Context, fields models.CarFields) (*models.Car, error)
	UpdateByID(ctx context.Context, id int, patch models.CarPatch) (*models.Car, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}
