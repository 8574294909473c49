package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cars-api/models"
)

// GormCarRepository stores cars in the "car" table. Every method issues
// single statements and opens no transaction of its own.
type GormCarRepository struct {
	db *gorm.DB
}

func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

func (r *GormCarRepository) FindAll(ctx context.Context) ([]models.Car, error) {
	cars := make([]models.Car, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("find all cars: %w", err)
	}
	return cars, nil
}

func (r *GormCarRepository) FindByID(ctx context.Context, id int) (*models.Car, error) {
	var car models.Car
	err := r.db.WithContext(ctx).First(&car, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find car %d: %w", id, err)
	}
	return &car, nil
}

func (r *GormCarRepository) Create(ctx context.Context, fields models.CarFields) (*models.Car, error) {
	car := models.Car{
		Brand: fields.Brand,
		Model: fields.Model,
		Year:  fields.Year,
	}
	if err := r.db.WithContext(ctx).Create(&car).Error; err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return &car, nil
}

// UpdateByID loads the car first so that a missing id is reported as nil
// rather than as a zero-row update, which MySQL also returns for no-op writes.
func (r *GormCarRepository) UpdateByID(ctx context.Context, id int, patch models.CarPatch) (*models.Car, error) {
	car, err := r.FindByID(ctx, id)
	if err != nil || car == nil {
		return nil, err
	}
	if patch.Empty() {
		return car, nil
	}

	if err := r.db.WithContext(ctx).Model(car).Updates(patch.Columns()).Error; err != nil {
		return nil, fmt.Errorf("update car %d: %w", id, err)
	}
	patch.Apply(car)
	return car, nil
}

func (r *GormCarRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Car{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete car %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
