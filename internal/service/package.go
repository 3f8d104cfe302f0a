package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// Client-facing package messages.
const (
	MsgPackageCreated        = "Package created successfully"
	MsgPackageUpdated        = "Package updated successfully"
	MsgPackageDeleted        = "Package deleted successfully"
	MsgPackageNotFound       = "Package not found"
	MsgPackageIDExists       = "Package ID already exists"
	MsgPackageFieldsRequired = "All required package fields must be provided"
	MsgInvalidPackageType    = "Invalid package type"
	MsgInvalidPackageID      = "Package ID must be a positive integer"
	MsgInvalidPrice          = "Price per day cannot be negative"
	MsgInvalidSeating        = "Seating capacity must be at least 1"
	MsgInvalidLuggage        = "Luggage capacity cannot be negative"
	MsgInvalidDuration       = "Invalid duration format"
	MsgInvalidAdditional     = "Invalid additional_features format"
	MsgInvalidSafetySecurity = "Invalid safety_security_features format"
)

const (
	fieldAdditionalFeatures   = "additional_features"
	fieldSafetySecurityFields = "safety_security_features"
)

// PackageInput is a create or partial update request. Nil fields are absent.
// Feature maps and duration accept either JSON values or JSON-encoded strings.
type PackageInput struct {
	PackageID                    *int64          `json:"package_id"`
	PackageName                  *string         `json:"package_name"`
	PackageType                  *string         `json:"package_type"`
	Duration                     json.RawMessage `json:"duration" swaggertype:"array,string"`
	PricePerDay                  *float64        `json:"price_per_day"`
	Description                  *string         `json:"description"`
	VehicleModel                 *string         `json:"vehicle_model"`
	VehicleNumber                *string         `json:"vehicle_number"`
	SeatingCapacity              *int            `json:"seating_capacity"`
	LuggageCapacity              *int            `json:"luggage_capacity"`
	AdditionalFeatures           json.RawMessage `json:"additional_features" swaggertype:"object"`
	SafetySecurityFeatures       json.RawMessage `json:"safety_security_features" swaggertype:"object"`
	CustomAdditionalFeatures     *[]string       `json:"custom_additional_features"`
	CustomSafetySecurityFeatures *[]string       `json:"custom_safety_security_features"`
	ImageUpload                  *string         `json:"image_upload"`
}

// PackageService manages rental packages.
type PackageService interface {
	Create(ctx context.Context, in PackageInput) (*models.Package, error)
	List(ctx context.Context) ([]models.Package, error)
	Get(ctx context.Context, id string) (*models.Package, error)
	Update(ctx context.Context, id string, in PackageInput) (*models.Package, error)
	Delete(ctx context.Context, id string) error
	Report(ctx context.Context) (*Report, error)
}

type packageService struct {
	repo repository.PackageRepository
	now  func() time.Time
}

// NewPackageService creates a new PackageService instance.
func NewPackageService(repo repository.PackageRepository) PackageService {
	return &packageService{repo: repo, now: time.Now}
}

func (s *packageService) Create(ctx context.Context, in PackageInput) (*models.Package, error) {
	if in.PackageID == nil || in.PackageName == nil || in.PackageType == nil || in.PricePerDay == nil ||
		in.Description == nil || in.VehicleModel == nil || in.VehicleNumber == nil ||
		in.SeatingCapacity == nil || in.LuggageCapacity == nil ||
		strings.TrimSpace(*in.PackageName) == "" || strings.TrimSpace(*in.Description) == "" ||
		strings.TrimSpace(*in.VehicleModel) == "" || strings.TrimSpace(*in.VehicleNumber) == "" {
		return nil, apperr.Validation(MsgPackageFieldsRequired)
	}

	pkg := &models.Package{
		ID:                           uuid.NewString(),
		Duration:                     []string{models.DefaultDuration},
		AdditionalFeatures:           models.DefaultAdditionalFeatures(),
		SafetySecurityFeatures:       models.DefaultSafetySecurityFeatures(),
		CustomAdditionalFeatures:     []string{},
		CustomSafetySecurityFeatures: []string{},
	}
	if err := applyPackageInput(pkg, in); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByPackageID(ctx, pkg.PackageID)
	if err != nil {
		return nil, internal(err, "package_lookup_failed", "package_id", pkg.PackageID)
	}
	if exists {
		return nil, apperr.Conflict(MsgPackageIDExists)
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict(MsgPackageIDExists)
		}
		return nil, internal(err, "package_create_failed", "package_id", pkg.PackageID)
	}

	return pkg, nil
}

func (s *packageService) List(ctx context.Context) ([]models.Package, error) {
	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal(err, "package_list_failed")
	}
	if pkgs == nil {
		pkgs = []models.Package{}
	}
	return pkgs, nil
}

func (s *packageService) Get(ctx context.Context, id string) (*models.Package, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(MsgPackageNotFound)
		}
		return nil, internal(err, "package_lookup_failed", "id", id)
	}
	return pkg, nil
}

func (s *packageService) Update(ctx context.Context, id string, in PackageInput) (*models.Package, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousPackageID := pkg.PackageID
	if err := applyPackageInput(pkg, in); err != nil {
		return nil, err
	}

	if pkg.PackageID != previousPackageID {
		exists, err := s.repo.ExistsByPackageID(ctx, pkg.PackageID)
		if err != nil {
			return nil, internal(err, "package_lookup_failed", "package_id", pkg.PackageID)
		}
		if exists {
			return nil, apperr.Conflict(MsgPackageIDExists)
		}
	}

	if err := s.repo.Update(ctx, pkg); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NotFound(MsgPackageNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperr.Conflict(MsgPackageIDExists)
		}
		return nil, internal(err, "package_update_failed", "id", id)
	}

	return pkg, nil
}

func (s *packageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgPackageNotFound)
		}
		return internal(err, "package_delete_failed", "id", id)
	}
	return nil
}

func (s *packageService) Report(ctx context.Context) (*Report, error) {
	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal(err, "package_list_failed")
	}
	report := BuildReport(pkgs, s.now())
	return &report, nil
}

// applyPackageInput copies the present fields of in onto pkg and validates them.
func applyPackageInput(pkg *models.Package, in PackageInput) error {
	if in.PackageID != nil {
		if *in.PackageID <= 0 {
			return apperr.Validation(MsgInvalidPackageID)
		}
		pkg.PackageID = *in.PackageID
	}
	if in.PackageName != nil {
		pkg.PackageName = strings.TrimSpace(*in.PackageName)
	}
	if in.PackageType != nil {
		if !models.IsValidPackageType(*in.PackageType) {
			return apperr.Validation(MsgInvalidPackageType)
		}
		pkg.PackageType = *in.PackageType
	}
	if in.PricePerDay != nil {
		if *in.PricePerDay < 0 {
			return apperr.Validation(MsgInvalidPrice)
		}
		pkg.PricePerDay = *in.PricePerDay
	}
	if in.Description != nil {
		pkg.Description = *in.Description
	}
	if in.VehicleModel != nil {
		pkg.VehicleModel = *in.VehicleModel
	}
	if in.VehicleNumber != nil {
		pkg.VehicleNumber = *in.VehicleNumber
	}
	if in.SeatingCapacity != nil {
		if *in.SeatingCapacity < 1 {
			return apperr.Validation(MsgInvalidSeating)
		}
		pkg.SeatingCapacity = *in.SeatingCapacity
	}
	if in.LuggageCapacity != nil {
		if *in.LuggageCapacity < 0 {
			return apperr.Validation(MsgInvalidLuggage)
		}
		pkg.LuggageCapacity = *in.LuggageCapacity
	}
	if in.CustomAdditionalFeatures != nil {
		pkg.CustomAdditionalFeatures = *in.CustomAdditionalFeatures
	}
	if in.CustomSafetySecurityFeatures != nil {
		pkg.CustomSafetySecurityFeatures = *in.CustomSafetySecurityFeatures
	}
	if in.ImageUpload != nil {
		pkg.ImageUpload = *in.ImageUpload
	}

	if duration, err := parseDuration(in.Duration); err != nil {
		return err
	} else if duration != nil {
		pkg.Duration = duration
	}

	if features, err := parseFeatureFlags(in.AdditionalFeatures, fieldAdditionalFeatures); err != nil {
		return apperr.Validation(MsgInvalidAdditional)
	} else if features != nil {
		pkg.AdditionalFeatures = features
	}

	if features, err := parseFeatureFlags(in.SafetySecurityFeatures, fieldSafetySecurityFields); err != nil {
		return apperr.Validation(MsgInvalidSafetySecurity)
	} else if features != nil {
		pkg.SafetySecurityFeatures = features
	}

	return nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// unquote decodes raw when it holds a JSON string and returns the inner text.
func unquote(raw json.RawMessage) (json.RawMessage, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed, false, nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, true, err
	}
	return json.RawMessage(s), true, nil
}

// parseDuration accepts a single value, a list, or a JSON-encoded list. Absent returns nil.
func parseDuration(raw json.RawMessage) ([]string, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	inner, quoted, err := unquote(raw)
	if err != nil {
		return nil, apperr.Validation(MsgInvalidDuration)
	}
	if quoted {
		text := strings.TrimSpace(string(inner))
		if !strings.HasPrefix(text, "[") {
			if text == "" {
				return nil, nil
			}
			return []string{text}, nil
		}
	}

	var list []string
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, apperr.Validation(MsgInvalidDuration)
	}
	if len(list) == 0 {
		return []string{models.DefaultDuration}, nil
	}
	return list, nil
}

// parseFeatureFlags decodes a feature map given as an object or a JSON-encoded object.
// Values may be booleans or the strings "true" and "false". Absent returns nil.
func parseFeatureFlags(raw json.RawMessage, field string) (map[string]bool, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	inner, quoted, err := unquote(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	if quoted && strings.TrimSpace(string(inner)) == "" {
		return map[string]bool{}, nil
	}

	var values map[string]any
	if err := json.Unmarshal(inner, &values); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	flags := make(map[string]bool, len(values))
	for name, v := range values {
		switch val := v.(type) {
		case bool:
			flags[name] = val
		case string:
			switch val {
			case "true":
				flags[name] = true
			case "false":
				flags[name] = false
			default:
				return nil, fmt.Errorf("%s: invalid value %q for %s", field, val, name)
			}
		default:
			return nil, fmt.Errorf("%s: invalid value for %s", field, name)
		}
	}
	return flags, nil
}
