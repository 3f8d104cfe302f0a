package models

import (
	"slices"
	"time"
)

// Vehicle types.
const (
	VehicleScooty = "Scooty"
	VehicleCT100  = "CT100"
	VehicleCar    = "Car"
	VehicleVan    = "Van"
)

// Fleet attribute enums.
var (
	VehicleTypes      = []string{VehicleScooty, VehicleCT100, VehicleCar, VehicleVan}
	FuelTypes         = []string{"Petrol", "Diesel", "Electric", "Hybrid"}
	TransmissionTypes = []string{"Manual", "Automatic"}
)

// Fleet limits.
const (
	MinManufactureYear = 1900
	MaxDailyRate       = 350
)

// Vehicle is a fleet vehicle available for rent.
type Vehicle struct {
	ID                       string          `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	VehicleNumber            string          `json:"vehicle_number" gorm:"uniqueIndex;not null" bson:"vehicle_number"`
	VehicleType              string          `json:"vehicle_type" gorm:"index;not null" bson:"vehicle_type"`
	Brand                    string          `json:"brand" gorm:"index;not null" bson:"brand"`
	YearOfManufacture        int             `json:"year_of_manufacture" gorm:"not null" bson:"year_of_manufacture"`
	SeatingCapacity          int             `json:"seating_capacity" gorm:"not null" bson:"seating_capacity"`
	FuelType                 string          `json:"fuel_type" gorm:"not null" bson:"fuel_type"`
	TransmissionType         string          `json:"transmission_type" gorm:"not null" bson:"transmission_type"`
	DailyRate                float64         `json:"daily_rate" gorm:"index;not null" bson:"daily_rate"`
	ImageUpload              string          `json:"image_upload" bson:"image_upload"`
	AdditionalFeatures       map[string]bool `json:"additional_features" gorm:"serializer:json" bson:"additional_features"`
	SafetyFeatures           map[string]bool `json:"safety_features" gorm:"serializer:json" bson:"safety_features"`
	CustomAdditionalFeatures []string        `json:"custom_additional_features" gorm:"serializer:json" bson:"custom_additional_features"`
	CustomSafetyFeatures     []string        `json:"custom_safety_features" gorm:"serializer:json" bson:"custom_safety_features"`
	CreatedAt                time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// TableName returns the database table name for the Vehicle model.
func (Vehicle) TableName() string {
	return "vehicles"
}

// DefaultVehicleAdditionalFeatures returns the comfort feature flags, all disabled.
func DefaultVehicleAdditionalFeatures() map[string]bool {
	return map[string]bool{
		"air_conditioning":  false,
		"navigation_system": false,
		"bluetooth":         false,
		"sunroof":           false,
	}
}

// DefaultVehicleSafetyFeatures returns the safety feature flags, all disabled.
func DefaultVehicleSafetyFeatures() map[string]bool {
	return map[string]bool{
		"abs":               false,
		"airbags":           false,
		"parking_sensors":   false,
		"stability_control": false,
	}
}

// IsValidVehicleType reports whether t is an accepted vehicle type.
func IsValidVehicleType(t string) bool {
	return slices.Contains(VehicleTypes, t)
}

// IsValidFuelType reports whether t is an accepted fuel type.
func IsValidFuelType(t string) bool {
	return slices.Contains(FuelTypes, t)
}

// IsValidTransmissionType reports whether t is an accepted transmission.
func IsValidTransmissionType(t string) bool {
	return slices.Contains(TransmissionTypes, t)
}
