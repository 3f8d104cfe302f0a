package models

import "time"

// MaintenanceReadings are the condition readings a service prediction is made from.
type MaintenanceReadings struct {
	LastServiceDate string `json:"lastServiceDate" gorm:"not null" bson:"lastServiceDate" example:"2026-01-15"`
	Mileage         int    `json:"mileage" gorm:"not null" bson:"mileage"`
	TireWear        int    `json:"tireWear" gorm:"not null" bson:"tireWear"`
	EngineHealth    int    `json:"engineHealth" gorm:"not null" bson:"engineHealth"`
	BrakeWear       int    `json:"brakeWear" gorm:"not null" bson:"brakeWear"`
	OilViscosity    int    `json:"oilViscosity" gorm:"not null" bson:"oilViscosity"`
	CoolantLevel    int    `json:"coolantLevel" gorm:"not null" bson:"coolantLevel"`
}

// MaintenanceRecord tracks a vehicle's condition and its latest service prediction.
type MaintenanceRecord struct {
	ID   string `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Name string `json:"name" gorm:"not null" bson:"name"`

	MaintenanceReadings `bson:",inline"`

	Prediction *MaintenancePrediction `json:"prediction,omitempty" gorm:"serializer:json" bson:"prediction,omitempty"`
	CreatedAt  time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// MaintenancePrediction is the prediction service's verdict for a set of readings.
type MaintenancePrediction struct {
	NextServiceDate string `json:"nextServiceDate" bson:"nextServiceDate"`
	PredictedIssue  string `json:"predictedIssue" bson:"predictedIssue"`
	Status          string `json:"status" bson:"status"`
	Recommendation  string `json:"recommendation" bson:"recommendation"`
}

// TableName returns the database table name for the MaintenanceRecord model.
func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}
