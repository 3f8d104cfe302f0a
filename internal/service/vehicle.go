package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// Client-facing vehicle messages.
const (
	MsgVehicleCreated        = "Vehicle created successfully"
	MsgVehicleUpdated        = "Vehicle updated successfully"
	MsgVehicleDeleted        = "Vehicle deleted successfully"
	MsgVehicleNotFound       = "Vehicle not found"
	MsgVehicleNumberExists   = "Vehicle number already exists"
	MsgVehicleFieldsRequired = "All required vehicle fields must be provided"
	MsgInvalidVehicleType    = "Invalid vehicle type"
	MsgInvalidFuelType       = "Invalid fuel type"
	MsgInvalidTransmission   = "Invalid transmission type"
	MsgYearTooOld            = "Year must be after 1900"
	MsgYearInFuture          = "Year can't be in the future"
	MsgNegativeDailyRate     = "Daily rate can't be negative"
	MsgDailyRateTooHigh      = "Maximum daily rate is 350"
	MsgInvalidSafety         = "Invalid safety_features format"
	MsgInvalidCustomFeatures = "Invalid custom features format"
)

const fieldSafetyFeatures = "safety_features"

// VehicleInput is a create or partial update request. Nil fields are absent.
// Feature maps and custom lists accept either JSON values or JSON-encoded strings.
type VehicleInput struct {
	VehicleNumber            *string         `json:"vehicle_number"`
	VehicleType              *string         `json:"vehicle_type"`
	Brand                    *string         `json:"brand"`
	YearOfManufacture        *int            `json:"year_of_manufacture"`
	SeatingCapacity          *int            `json:"seating_capacity"`
	FuelType                 *string         `json:"fuel_type"`
	TransmissionType         *string         `json:"transmission_type"`
	DailyRate                *float64        `json:"daily_rate"`
	ImageUpload              *string         `json:"image_upload"`
	AdditionalFeatures       json.RawMessage `json:"additional_features" swaggertype:"object"`
	SafetyFeatures           json.RawMessage `json:"safety_features" swaggertype:"object"`
	CustomAdditionalFeatures json.RawMessage `json:"custom_additional_features" swaggertype:"array,string"`
	CustomSafetyFeatures     json.RawMessage `json:"custom_safety_features" swaggertype:"array,string"`
}

// VehicleService manages the rental fleet.
type VehicleService interface {
	Create(ctx context.Context, in VehicleInput) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, id string) (*models.Vehicle, error)
	Update(ctx context.Context, id string, in VehicleInput) (*models.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type vehicleService struct {
	repo repository.VehicleRepository
	now  func() time.Time
}

// NewVehicleService creates a new VehicleService instance.
func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo, now: time.Now}
}

func (s *vehicleService) Create(ctx context.Context, in VehicleInput) (*models.Vehicle, error) {
	if in.VehicleNumber == nil || in.VehicleType == nil || in.Brand == nil || in.YearOfManufacture == nil ||
		in.SeatingCapacity == nil || in.FuelType == nil || in.TransmissionType == nil || in.DailyRate == nil ||
		strings.TrimSpace(*in.VehicleNumber) == "" || strings.TrimSpace(*in.Brand) == "" {
		return nil, apperr.Validation(MsgVehicleFieldsRequired)
	}

	vehicle := &models.Vehicle{
		ID:                       uuid.NewString(),
		AdditionalFeatures:       models.DefaultVehicleAdditionalFeatures(),
		SafetyFeatures:           models.DefaultVehicleSafetyFeatures(),
		CustomAdditionalFeatures: []string{},
		CustomSafetyFeatures:     []string{},
	}
	if err := s.applyVehicleInput(vehicle, in); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByNumber(ctx, vehicle.VehicleNumber)
	if err != nil {
		return nil, internal(err, "vehicle_lookup_failed", "vehicle_number", vehicle.VehicleNumber)
	}
	if exists {
		return nil, apperr.Conflict(MsgVehicleNumberExists)
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict(MsgVehicleNumberExists)
		}
		return nil, internal(err, "vehicle_create_failed", "vehicle_number", vehicle.VehicleNumber)
	}

	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal(err, "vehicle_list_failed")
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

func (s *vehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(MsgVehicleNotFound)
		}
		return nil, internal(err, "vehicle_lookup_failed", "id", id)
	}
	return vehicle, nil
}

func (s *vehicleService) Update(ctx context.Context, id string, in VehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousNumber := vehicle.VehicleNumber
	if err := s.applyVehicleInput(vehicle, in); err != nil {
		return nil, err
	}
	if vehicle.VehicleNumber == "" || vehicle.Brand == "" {
		return nil, apperr.Validation(MsgVehicleFieldsRequired)
	}

	if vehicle.VehicleNumber != previousNumber {
		exists, err := s.repo.ExistsByNumber(ctx, vehicle.VehicleNumber)
		if err != nil {
			return nil, internal(err, "vehicle_lookup_failed", "vehicle_number", vehicle.VehicleNumber)
		}
		if exists {
			return nil, apperr.Conflict(MsgVehicleNumberExists)
		}
	}

	if err := s.repo.Update(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NotFound(MsgVehicleNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperr.Conflict(MsgVehicleNumberExists)
		}
		return nil, internal(err, "vehicle_update_failed", "id", id)
	}

	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgVehicleNotFound)
		}
		return internal(err, "vehicle_delete_failed", "id", id)
	}
	return nil
}

// applyVehicleInput copies the present fields of in onto vehicle and validates them.
func (s *vehicleService) applyVehicleInput(vehicle *models.Vehicle, in VehicleInput) error {
	if in.VehicleNumber != nil {
		vehicle.VehicleNumber = strings.TrimSpace(*in.VehicleNumber)
	}
	if in.VehicleType != nil {
		if !models.IsValidVehicleType(*in.VehicleType) {
			return apperr.Validation(MsgInvalidVehicleType)
		}
		vehicle.VehicleType = *in.VehicleType
	}
	if in.Brand != nil {
		vehicle.Brand = strings.TrimSpace(*in.Brand)
	}
	if in.YearOfManufacture != nil {
		switch year := *in.YearOfManufacture; {
		case year < models.MinManufactureYear:
			return apperr.Validation(MsgYearTooOld)
		case year > s.now().Year():
			return apperr.Validation(MsgYearInFuture)
		}
		vehicle.YearOfManufacture = *in.YearOfManufacture
	}
	if in.SeatingCapacity != nil {
		if *in.SeatingCapacity < 1 {
			return apperr.Validation(MsgInvalidSeating)
		}
		vehicle.SeatingCapacity = *in.SeatingCapacity
	}
	if in.FuelType != nil {
		if !models.IsValidFuelType(*in.FuelType) {
			return apperr.Validation(MsgInvalidFuelType)
		}
		vehicle.FuelType = *in.FuelType
	}
	if in.TransmissionType != nil {
		if !models.IsValidTransmissionType(*in.TransmissionType) {
			return apperr.Validation(MsgInvalidTransmission)
		}
		vehicle.TransmissionType = *in.TransmissionType
	}
	if in.DailyRate != nil {
		switch rate := *in.DailyRate; {
		case rate < 0:
			return apperr.Validation(MsgNegativeDailyRate)
		case rate > models.MaxDailyRate:
			return apperr.Validation(MsgDailyRateTooHigh)
		}
		vehicle.DailyRate = *in.DailyRate
	}
	if in.ImageUpload != nil {
		vehicle.ImageUpload = *in.ImageUpload
	}

	if features, err := parseFeatureFlags(in.AdditionalFeatures, fieldAdditionalFeatures); err != nil {
		return apperr.Validation(MsgInvalidAdditional)
	} else if features != nil {
		vehicle.AdditionalFeatures = features
	}
	if features, err := parseFeatureFlags(in.SafetyFeatures, fieldSafetyFeatures); err != nil {
		return apperr.Validation(MsgInvalidSafety)
	} else if features != nil {
		vehicle.SafetyFeatures = features
	}

	if list, err := parseStringList(in.CustomAdditionalFeatures); err != nil {
		return apperr.Validation(MsgInvalidCustomFeatures)
	} else if list != nil {
		vehicle.CustomAdditionalFeatures = list
	}
	if list, err := parseStringList(in.CustomSafetyFeatures); err != nil {
		return apperr.Validation(MsgInvalidCustomFeatures)
	} else if list != nil {
		vehicle.CustomSafetyFeatures = list
	}

	return nil
}

// parseStringList decodes a list given as an array or a JSON-encoded array, trimming
// and dropping blank entries. Absent returns nil.
func parseStringList(raw json.RawMessage) ([]string, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	inner, quoted, err := unquote(raw)
	if err != nil {
		return nil, err
	}
	if quoted && strings.TrimSpace(string(inner)) == "" {
		return []string{}, nil
	}

	var values []string
	if err := json.Unmarshal(inner, &values); err != nil {
		return nil, err
	}

	list := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list, nil
}
