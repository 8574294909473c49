package repositories

import (
	"context"
	"sync"

	"cars-api/models"
)

// MemoryCarRepository keeps cars in insertion order in process memory.
type MemoryCarRepository struct {
	mu     sync.RWMutex
	cars   []models.Car
	lastID int
}

func NewMemoryCarRepository() *MemoryCarRepository {
	return &MemoryCarRepository{cars: make([]models.Car, 0)}
}

// FindAll returns a copy of every stored car
func (r *MemoryCarRepository) FindAll(_ context.Context) ([]models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cars := make([]models.Car, len(r.cars))
	copy(cars, r.cars)
	return cars, nil
}

func (r *MemoryCarRepository) FindByID(_ context.Context, id int) (*models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	car := r.cars[i]
	return &car, nil
}

// Create assigns the next id. Ids of deleted cars are never handed out again.
func (r *MemoryCarRepository) Create(_ context.Context, fields models.CarFields) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	car := models.Car{
		ID:    r.lastID,
		Brand: fields.Brand,
		Model: fields.Model,
		Year:  fields.Year,
	}
	r.cars = append(r.cars, car)
	return &car, nil
}

func (r *MemoryCarRepository) UpdateByID(_ context.Context, id int, patch models.CarPatch) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	patch.Apply(&r.cars[i])
	car := r.cars[i]
	return &car, nil
}

func (r *MemoryCarRepository) DeleteByID(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.cars = append(r.cars[:i], r.cars[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held
func (r *MemoryCarRepository) indexOf(id int) int {
	for i := range r.cars {
		if r.cars[i].ID == id {
			return i
		}
	}
	return -1
}
