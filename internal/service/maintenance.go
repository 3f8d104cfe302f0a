package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// Client-facing maintenance messages.
const (
	MsgMaintenanceCreated        = "Vehicle added successfully"
	MsgMaintenanceUpdated        = "Vehicle updated successfully"
	MsgMaintenanceDeleted        = "Vehicle deleted successfully"
	MsgMaintenanceNotFound       = "Vehicle not found"
	MsgMaintenanceFieldsRequired = "All maintenance fields must be provided"
	MsgInvalidServiceDate        = "lastServiceDate must be a YYYY-MM-DD date"
	MsgNegativeReading           = "Readings cannot be negative"
	MsgPredictionSaved           = "Prediction saved successfully"
	MsgPredictionFailed          = "Failed to generate prediction"
)

// Predictor produces a service prediction from a set of readings.
type Predictor interface {
	Predict(ctx context.Context, readings models.MaintenanceReadings) (*models.MaintenancePrediction, error)
}

// MaintenanceInput is a create or partial update request. Nil fields are absent.
type MaintenanceInput struct {
	Name            *string `json:"name" example:"Toyota Prius"`
	LastServiceDate *string `json:"lastServiceDate" example:"2026-01-15"`
	Mileage         *int    `json:"mileage"`
	TireWear        *int    `json:"tireWear"`
	EngineHealth    *int    `json:"engineHealth"`
	BrakeWear       *int    `json:"brakeWear"`
	OilViscosity    *int    `json:"oilViscosity"`
	CoolantLevel    *int    `json:"coolantLevel"`
}

// MaintenanceService tracks vehicle condition and requests service predictions.
type MaintenanceService interface {
	Create(ctx context.Context, in MaintenanceInput) (*models.MaintenanceRecord, error)
	List(ctx context.Context) ([]models.MaintenanceRecord, error)
	Get(ctx context.Context, id string) (*models.MaintenanceRecord, error)
	Update(ctx context.Context, id string, in MaintenanceInput) (*models.MaintenanceRecord, error)
	Delete(ctx context.Context, id string) error
	Predict(ctx context.Context, id string) (*models.MaintenanceRecord, error)
}

type maintenanceService struct {
	repo      repository.MaintenanceRepository
	predictor Predictor
}

// NewMaintenanceService creates a new MaintenanceService instance.
func NewMaintenanceService(repo repository.MaintenanceRepository, predictor Predictor) MaintenanceService {
	return &maintenanceService{repo: repo, predictor: predictor}
}

func (s *maintenanceService) Create(ctx context.Context, in MaintenanceInput) (*models.MaintenanceRecord, error) {
	if in.Name == nil || in.LastServiceDate == nil || in.Mileage == nil || in.TireWear == nil ||
		in.EngineHealth == nil || in.BrakeWear == nil || in.OilViscosity == nil || in.CoolantLevel == nil ||
		strings.TrimSpace(*in.Name) == "" {
		return nil, apperr.Validation(MsgMaintenanceFieldsRequired)
	}

	record := &models.MaintenanceRecord{ID: uuid.NewString()}
	if err := applyMaintenanceInput(record, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, internal(err, "maintenance_create_failed", "name", record.Name)
	}
	return record, nil
}

func (s *maintenanceService) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal(err, "maintenance_list_failed")
	}
	if records == nil {
		records = []models.MaintenanceRecord{}
	}
	return records, nil
}

func (s *maintenanceService) Get(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(MsgMaintenanceNotFound)
		}
		return nil, internal(err, "maintenance_lookup_failed", "id", id)
	}
	return record, nil
}

func (s *maintenanceService) Update(ctx context.Context, id string, in MaintenanceInput) (*models.MaintenanceRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyMaintenanceInput(record, in); err != nil {
		return nil, err
	}
	if record.Name == "" {
		return nil, apperr.Validation(MsgMaintenanceFieldsRequired)
	}

	if err := s.save(ctx, record, "maintenance_update_failed"); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *maintenanceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgMaintenanceNotFound)
		}
		return internal(err, "maintenance_delete_failed", "id", id)
	}
	return nil
}

// Predict asks the prediction service about the record's current readings and
// stores the verdict on the record.
func (s *maintenanceService) Predict(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	prediction, err := s.predictor.Predict(ctx, record.MaintenanceReadings)
	if err != nil {
		return nil, apperr.Upstream(MsgPredictionFailed, err)
	}
	record.Prediction = prediction

	if err := s.save(ctx, record, "prediction_save_failed"); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *maintenanceService) save(ctx context.Context, record *models.MaintenanceRecord, code string) error {
	if err := s.repo.Update(ctx, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgMaintenanceNotFound)
		}
		return internal(err, code, "id", record.ID)
	}
	return nil
}

// applyMaintenanceInput copies the present fields of in onto record and validates them.
func applyMaintenanceInput(record *models.MaintenanceRecord, in MaintenanceInput) error {
	if in.Name != nil {
		record.Name = strings.TrimSpace(*in.Name)
	}
	if in.LastServiceDate != nil {
		date := strings.TrimSpace(*in.LastServiceDate)
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return apperr.Validation(MsgInvalidServiceDate)
		}
		record.LastServiceDate = date
	}

	readings := []struct {
		in  *int
		out *int
	}{
		{in.Mileage, &record.Mileage},
		{in.TireWear, &record.TireWear},
		{in.EngineHealth, &record.EngineHealth},
		{in.BrakeWear, &record.BrakeWear},
		{in.OilViscosity, &record.OilViscosity},
		{in.CoolantLevel, &record.CoolantLevel},
	}
	for _, r := range readings {
		if r.in == nil {
			continue
		}
		if *r.in < 0 {
			return apperr.Validation(MsgNegativeReading)
		}
		*r.out = *r.in
	}

	return nil
}
