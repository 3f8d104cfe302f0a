package models

import "time"

// Package types.
const (
	PackageStandard = "Standard"
	PackagePremium  = "Premium"
	PackageLuxury   = "Luxury"
	PackageVIP      = "VIP"
)

// PackageTypes lists the accepted package types.
var PackageTypes = []string{PackageStandard, PackagePremium, PackageLuxury, PackageVIP}

// DefaultDuration is used when a package is created without one.
const DefaultDuration = "24h"

// Package represents a rental package offered to customers.
type Package struct {
	ID                           string          `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	PackageID                    int64           `json:"package_id" gorm:"uniqueIndex;not null" bson:"package_id"`
	PackageName                  string          `json:"package_name" gorm:"not null" bson:"package_name"`
	PackageType                  string          `json:"package_type" gorm:"not null" bson:"package_type"`
	Duration                     []string        `json:"duration" gorm:"serializer:json" bson:"duration"`
	PricePerDay                  float64         `json:"price_per_day" gorm:"not null" bson:"price_per_day"`
	Description                  string          `json:"description" gorm:"not null" bson:"description"`
	VehicleModel                 string          `json:"vehicle_model" gorm:"not null" bson:"vehicle_model"`
	VehicleNumber                string          `json:"vehicle_number" gorm:"not null" bson:"vehicle_number"`
	SeatingCapacity              int             `json:"seating_capacity" gorm:"not null" bson:"seating_capacity"`
	LuggageCapacity              int             `json:"luggage_capacity" gorm:"not null" bson:"luggage_capacity"`
	AdditionalFeatures           map[string]bool `json:"additional_features" gorm:"serializer:json" bson:"additional_features"`
	SafetySecurityFeatures       map[string]bool `json:"safety_security_features" gorm:"serializer:json" bson:"safety_security_features"`
	CustomAdditionalFeatures     []string        `json:"custom_additional_features" gorm:"serializer:json" bson:"custom_additional_features"`
	CustomSafetySecurityFeatures []string        `json:"custom_safety_security_features" gorm:"serializer:json" bson:"custom_safety_security_features"`
	ImageUpload                  string          `json:"image_upload" bson:"image_upload"`
	CreatedAt                    time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt                    time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// TableName returns the database table name for the Package model.
func (Package) TableName() string {
	return "packages"
}

// DefaultAdditionalFeatures returns the standard feature flags, all disabled.
func DefaultAdditionalFeatures() map[string]bool {
	return map[string]bool{
		"professional_driver": false,
		"unlimited_mileage":   false,
		"wifi_connectivity":   false,
		"child_safety_seat":   false,
		"floral_decorations":  false,
		"luxury_vehicle":      false,
		"gps_navigation":      false,
		"tinted_windows":      false,
	}
}

// DefaultSafetySecurityFeatures returns the safety feature flags, all disabled.
func DefaultSafetySecurityFeatures() map[string]bool {
	return map[string]bool{
		"traction_control":                false,
		"gps_tracking":                    false,
		"emergency_kit":                   false,
		"first_aid_kit":                   false,
		"roadside_assistance":             false,
		"anti_lock_braking_system":        false,
		"rearview_camera_parking_sensors": false,
		"tyre_pressure_monitoring_system": false,
	}
}

// IsValidPackageType reports whether t is an accepted package type.
func IsValidPackageType(t string) bool {
	for _, known := range PackageTypes {
		if known == t {
			return true
		}
	}
	return false
}
