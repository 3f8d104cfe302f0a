package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// Client-facing driver messages.
const (
	MsgDriverCreated           = "Driver created successfully"
	MsgDriverUpdated           = "Driver updated successfully"
	MsgDriverDeleted           = "Driver deleted successfully"
	MsgDriverNotFound          = "Driver not found"
	MsgDriverExists            = "Driver ID or email already exists"
	MsgDriverFieldsRequired    = "All required driver fields must be provided"
	MsgInvalidDriverID         = "Driver ID cannot be negative"
	MsgInvalidDriverName       = "Full name can only contain letters"
	MsgInvalidContactNumber    = "Contact number must be 10 digits starting with 0"
	MsgInvalidEmergencyContact = "Emergency contact must be 10 digits starting with 0"
	MsgInvalidDriverEmail      = "Please provide a valid email"
	MsgInvalidLicenseNumber    = "License number must be 7 or 12 alphanumeric characters"
	MsgInvalidLicenseClass     = "Invalid license class"
	MsgDriverTooYoung          = "Driver must be at least 18 years old"
	MsgNegativeExperience      = "Years of experience cannot be negative"
	MsgExperienceTooHigh       = "Years of experience cannot be more than 79"
	MsgInvalidAvailability     = "Invalid availability status"
	MsgInvalidQualifications   = "Invalid driver_qualifications format"
	MsgInvalidCustomQuals      = "Invalid custom_qualifications format"
)

// Driver listing pagination.
const (
	DefaultDriverPageSize = 10
	MaxDriverPageSize     = 100
)

const fieldDriverQualifications = "driver_qualifications"

var (
	driverNamePattern     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneNumberPattern    = regexp.MustCompile(`^0[1-9][0-9]{8}$`)
	licenseNumberPattern  = regexp.MustCompile(`^(?:[a-zA-Z0-9]{7}|[a-zA-Z0-9]{12})$`)
	driverFieldsValidator = validator.New()
)

// DriverInput is a create or partial update request. Nil fields are absent.
type DriverInput struct {
	DriverID             *int64          `json:"driver_id"`
	FullName             *string         `json:"full_name"`
	ContactNumber        *string         `json:"contact_number"`
	Email                *string         `json:"email"`
	LicenseNumber        *string         `json:"license_number"`
	LicenseClass         *string         `json:"license_class"`
	DateOfBirth          *models.Date    `json:"date_of_birth" swaggertype:"string" example:"1990-05-01"`
	YearOfExperience     *int            `json:"year_of_experience"`
	AvailabilityStatus   *string         `json:"availability_status"`
	Address              *string         `json:"address"`
	EmergencyContact     *string         `json:"emergency_contact"`
	DriverQualifications json.RawMessage `json:"driver_qualifications" swaggertype:"object"`
	CustomQualifications json.RawMessage `json:"custom_qualifications" swaggertype:"array,string"`
	ImageUpload          *string         `json:"image_upload"`
}

// DriverListParams are the listing query parameters. Zero values take the defaults.
type DriverListParams struct {
	Page   int
	Limit  int
	Search string
}

// DriverPage is one page of a driver listing.
type DriverPage struct {
	Drivers    []models.Driver `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// Pagination describes the position of a page in a listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// DriverService manages chauffeurs.
type DriverService interface {
	Create(ctx context.Context, in DriverInput) (*models.Driver, error)
	List(ctx context.Context, params DriverListParams) (*DriverPage, error)
	Get(ctx context.Context, id string) (*models.Driver, error)
	Update(ctx context.Context, id string, in DriverInput) (*models.Driver, error)
	Delete(ctx context.Context, id string) error
}

type driverService struct {
	repo repository.DriverRepository
	now  func() time.Time
}

// NewDriverService creates a new DriverService instance.
func NewDriverService(repo repository.DriverRepository) DriverService {
	return &driverService{repo: repo, now: time.Now}
}

func (s *driverService) Create(ctx context.Context, in DriverInput) (*models.Driver, error) {
	if in.DriverID == nil || in.FullName == nil || in.ContactNumber == nil || in.Email == nil ||
		in.LicenseNumber == nil || in.DateOfBirth == nil || in.DateOfBirth.IsZero() ||
		in.YearOfExperience == nil || in.Address == nil || in.EmergencyContact == nil ||
		strings.TrimSpace(*in.Address) == "" {
		return nil, apperr.Validation(MsgDriverFieldsRequired)
	}

	driver := &models.Driver{
		ID:                   uuid.NewString(),
		LicenseClass:         models.LicenseLight,
		AvailabilityStatus:   models.DriverAvailable,
		DriverQualifications: models.DefaultDriverQualifications(),
		CustomQualifications: []string{},
	}
	if err := s.applyDriverInput(driver, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, driver); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict(MsgDriverExists)
		}
		return nil, internal(err, "driver_create_failed", "driver_id", driver.DriverID)
	}

	return driver, nil
}

func (s *driverService) List(ctx context.Context, params DriverListParams) (*DriverPage, error) {
	page, limit := params.Page, params.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultDriverPageSize
	}
	limit = min(limit, MaxDriverPageSize)

	drivers, total, err := s.repo.List(ctx, models.DriverQuery{
		Search: params.Search,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, internal(err, "driver_list_failed")
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}

	return &DriverPage{
		Drivers: drivers,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *driverService) Get(ctx context.Context, id string) (*models.Driver, error) {
	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(MsgDriverNotFound)
		}
		return nil, internal(err, "driver_lookup_failed", "id", id)
	}
	return driver, nil
}

func (s *driverService) Update(ctx context.Context, id string, in DriverInput) (*models.Driver, error) {
	driver, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.DateOfBirth != nil && in.DateOfBirth.IsZero() {
		return nil, apperr.Validation(MsgDriverFieldsRequired)
	}
	if err := s.applyDriverInput(driver, in); err != nil {
		return nil, err
	}
	if driver.Address == "" {
		return nil, apperr.Validation(MsgDriverFieldsRequired)
	}

	if err := s.repo.Update(ctx, driver); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NotFound(MsgDriverNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperr.Conflict(MsgDriverExists)
		}
		return nil, internal(err, "driver_update_failed", "id", id)
	}

	return driver, nil
}

func (s *driverService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgDriverNotFound)
		}
		return internal(err, "driver_delete_failed", "id", id)
	}
	return nil
}

// applyDriverInput copies the present fields of in onto driver and validates them.
func (s *driverService) applyDriverInput(driver *models.Driver, in DriverInput) error {
	if in.DriverID != nil {
		if *in.DriverID < 0 {
			return apperr.Validation(MsgInvalidDriverID)
		}
		driver.DriverID = *in.DriverID
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if !driverNamePattern.MatchString(name) {
			return apperr.Validation(MsgInvalidDriverName)
		}
		driver.FullName = name
	}
	if in.ContactNumber != nil {
		if !phoneNumberPattern.MatchString(*in.ContactNumber) {
			return apperr.Validation(MsgInvalidContactNumber)
		}
		driver.ContactNumber = *in.ContactNumber
	}
	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		if err := driverFieldsValidator.Var(email, "required,email"); err != nil {
			return apperr.Validation(MsgInvalidDriverEmail)
		}
		driver.Email = email
	}
	if in.LicenseNumber != nil {
		if !licenseNumberPattern.MatchString(*in.LicenseNumber) {
			return apperr.Validation(MsgInvalidLicenseNumber)
		}
		driver.LicenseNumber = *in.LicenseNumber
	}
	if in.LicenseClass != nil {
		if !models.IsValidLicenseClass(*in.LicenseClass) {
			return apperr.Validation(MsgInvalidLicenseClass)
		}
		driver.LicenseClass = *in.LicenseClass
	}
	if in.DateOfBirth != nil && !in.DateOfBirth.IsZero() {
		if models.AgeOn(in.DateOfBirth.Time, s.now()) < models.MinDriverAge {
			return apperr.Validation(MsgDriverTooYoung)
		}
		driver.DateOfBirth = in.DateOfBirth.UTC()
	}
	if in.YearOfExperience != nil {
		switch years := *in.YearOfExperience; {
		case years < 0:
			return apperr.Validation(MsgNegativeExperience)
		case years > models.MaxYearsOfExperience:
			return apperr.Validation(MsgExperienceTooHigh)
		}
		driver.YearOfExperience = *in.YearOfExperience
	}
	if in.AvailabilityStatus != nil {
		if !models.IsValidAvailability(*in.AvailabilityStatus) {
			return apperr.Validation(MsgInvalidAvailability)
		}
		driver.AvailabilityStatus = *in.AvailabilityStatus
	}
	if in.Address != nil {
		driver.Address = strings.TrimSpace(*in.Address)
	}
	if in.EmergencyContact != nil {
		if !phoneNumberPattern.MatchString(*in.EmergencyContact) {
			return apperr.Validation(MsgInvalidEmergencyContact)
		}
		driver.EmergencyContact = *in.EmergencyContact
	}
	if in.ImageUpload != nil {
		driver.ImageUpload = *in.ImageUpload
	}

	if quals, err := parseFeatureFlags(in.DriverQualifications, fieldDriverQualifications); err != nil {
		return apperr.Validation(MsgInvalidQualifications)
	} else if quals != nil {
		driver.DriverQualifications = quals
	}
	if list, err := parseStringList(in.CustomQualifications); err != nil {
		return apperr.Validation(MsgInvalidCustomQuals)
	} else if list != nil {
		driver.CustomQualifications = list
	}

	return nil
}
