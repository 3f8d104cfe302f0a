package models

import (
	"slices"
	"time"
)

// License classes.
const (
	LicenseLight      = "light"
	LicenseHeavy      = "heavy"
	LicenseMotorcycle = "motorcycle"
)

// Availability statuses.
const (
	DriverAvailable   = "available"
	DriverUnavailable = "unavailable"
)

// Driver enums.
var (
	LicenseClasses       = []string{LicenseLight, LicenseHeavy, LicenseMotorcycle}
	AvailabilityStatuses = []string{DriverAvailable, DriverUnavailable}
)

// Driver limits.
const (
	MinDriverAge         = 18
	MaxYearsOfExperience = 79
)

// Driver is a chauffeur who can be booked with a vehicle.
type Driver struct {
	ID                   string          `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	DriverID             int64           `json:"driver_id" gorm:"uniqueIndex;not null" bson:"driver_id"`
	FullName             string          `json:"full_name" gorm:"not null" bson:"full_name"`
	ContactNumber        string          `json:"contact_number" gorm:"not null" bson:"contact_number"`
	Email                string          `json:"email" gorm:"uniqueIndex;not null" bson:"email"`
	LicenseNumber        string          `json:"license_number" gorm:"not null" bson:"license_number"`
	LicenseClass         string          `json:"license_class" gorm:"not null" bson:"license_class"`
	DateOfBirth          time.Time       `json:"date_of_birth" gorm:"not null" bson:"date_of_birth"`
	YearOfExperience     int             `json:"year_of_experience" gorm:"not null" bson:"year_of_experience"`
	AvailabilityStatus   string          `json:"availability_status" gorm:"not null" bson:"availability_status"`
	Address              string          `json:"address" gorm:"not null" bson:"address"`
	EmergencyContact     string          `json:"emergency_contact" gorm:"not null" bson:"emergency_contact"`
	DriverQualifications map[string]bool `json:"driver_qualifications" gorm:"serializer:json" bson:"driver_qualifications"`
	CustomQualifications []string        `json:"custom_qualifications" gorm:"serializer:json" bson:"custom_qualifications"`
	ImageUpload          string          `json:"image_upload" bson:"image_upload"`
	CreatedAt            time.Time       `json:"createdAt" gorm:"index" bson:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// TableName returns the database table name for the Driver model.
func (Driver) TableName() string {
	return "drivers"
}

// DefaultDriverQualifications returns the qualification flags, all unset.
func DefaultDriverQualifications() map[string]bool {
	return map[string]bool{
		"defensive_driving":     false,
		"first_aid":             false,
		"heavy_vehicle":         false,
		"passenger_endorsement": false,
	}
}

// IsValidLicenseClass reports whether c is an accepted license class.
func IsValidLicenseClass(c string) bool {
	return slices.Contains(LicenseClasses, c)
}

// IsValidAvailability reports whether s is an accepted availability status.
func IsValidAvailability(s string) bool {
	return slices.Contains(AvailabilityStatuses, s)
}

// AgeOn returns the whole years between birth and now.
func AgeOn(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// DriverQuery filters and pages a driver listing.
type DriverQuery struct {
	// Search matches full name or email case-insensitively, or driver_id exactly when numeric.
	Search string
	Offset int
	Limit  int
}
