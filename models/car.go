// File: /models/car.go
package models

// Car is the only persisted resource. ID is assigned by the store.
type Car struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Brand string `json:"brand" gorm:"not null;size:191"`
	Model string `json:"model" gorm:"not null;size:191"`
	Year  int    `json:"year" gorm:"not null"`
}

// TableName pins the table to "car" instead of gorm's pluralized default.
func (Car) TableName() string {
	return "car"
}

// CarFields is everything needed to create a car.
type CarFields struct {
	Brand string
	Model string
	Year  int
}

// CarPatch holds a partial update. Zero values are treated as "not provided".
type CarPatch struct {
	Brand string
	Model string
	Year  int
}

// Empty reports whether the patch would change nothing.
func (p CarPatch) Empty() bool {
	return p.Brand == "" && p.Model == "" && p.Year == 0
}

// Columns returns the column updates for the provided fields only.
func (p CarPatch) Columns() map[string]interface{} {
	updates := make(map[string]interface{}, 3)
	if p.Brand != "" {
		updates["brand"] = p.Brand
	}
	if p.Model != "" {
		updates["model"] = p.Model
	}
	if p.Year != 0 {
		updates["year"] = p.Year
	}
	return updates
}

// Apply merges the provided fields into car.
func (p CarPatch) Apply(car *Car) {
	if p.Brand != "" {
		car.Brand = p.Brand
	}
	if p.Model != "" {
		car.Model = p.Model
	}
	if p.Year != 0 {
		car.Year = p.Year
	}
}

// CarRequest is the decoded body of a create or update call.
type CarRequest struct {
	Brand string        `json:"brand"`
	Model string        `json:"model"`
	Year  NumericString `json:"year"`
}
