package service

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// =============================================================================
// In-memory DriverRepository
// =============================================================================

type memDriverRepository struct {
	mu      sync.Mutex
	drivers map[string]models.Driver
	seq     int
}

func newMemDriverRepository() *memDriverRepository {
	return &memDriverRepository{drivers: make(map[string]models.Driver)}
}

func (r *memDriverRepository) conflicts(driver *models.Driver) bool {
	for _, d := range r.drivers {
		if d.ID != driver.ID && (d.DriverID == driver.DriverID || d.Email == driver.Email) {
			return true
		}
	}
	return false
}

func (r *memDriverRepository) Create(_ context.Context, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflicts(driver) {
		return repository.ErrDuplicate
	}
	r.seq++
	driver.CreatedAt = time.Unix(int64(r.seq), 0)
	r.drivers[driver.ID] = *driver
	return nil
}

func (r *memDriverRepository) FindByID(_ context.Context, id string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *memDriverRepository) List(_ context.Context, query models.DriverQuery) ([]models.Driver, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	search := strings.ToLower(query.Search)
	var matched []models.Driver
	for _, d := range r.drivers {
		if search == "" || strings.Contains(strings.ToLower(d.FullName), search) ||
			strings.Contains(d.Email, search) || strconv.FormatInt(d.DriverID, 10) == search {
			matched = append(matched, d)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := min(query.Offset, len(matched))
	end := min(start+query.Limit, len(matched))
	return matched[start:end], total, nil
}

func (r *memDriverRepository) Update(_ context.Context, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[driver.ID]; !ok {
		return repository.ErrNotFound
	}
	if r.conflicts(driver) {
		return repository.ErrDuplicate
	}
	r.drivers[driver.ID] = *driver
	return nil
}

func (r *memDriverRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.drivers, id)
	return nil
}

var driverTestNow = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

func newTestDriverService(repo repository.DriverRepository) *driverService {
	svc := NewDriverService(repo).(*driverService)
	svc.now = func() time.Time { return driverTestNow }
	return svc
}

func datePtr(s string) *models.Date {
	d := models.Date{}
	if s != "" {
		t, err := time.Parse(models.DateLayout, s)
		if err != nil {
			panic(err)
		}
		d.Time = t
	}
	return &d
}

func validDriverInput(id int64, email string) DriverInput {
	return DriverInput{
		DriverID:         int64Ptr(id),
		FullName:         strPtr("Nimal Perera"),
		ContactNumber:    strPtr("0771234567"),
		Email:            strPtr(email),
		LicenseNumber:    strPtr("B123456"),
		DateOfBirth:      datePtr("1990-05-01"),
		YearOfExperience: intPtr(8),
		Address:          strPtr("12 Lake Road, Kandy"),
		EmergencyContact: strPtr("0712345678"),
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestDriverService_Create_Defaults(t *testing.T) {
	svc := newTestDriverService(newMemDriverRepository())

	in := validDriverInput(1, "  Nimal@Example.COM ")
	driver, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, driver.ID)
	assert.Equal(t, "nimal@example.com", driver.Email)
	assert.Equal(t, models.LicenseLight, driver.LicenseClass)
	assert.Equal(t, models.DriverAvailable, driver.AvailabilityStatus)
	assert.Equal(t, models.DefaultDriverQualifications(), driver.DriverQualifications)
	assert.Equal(t, []string{}, driver.CustomQualifications)
	assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), driver.DateOfBirth)
}

func TestDriverService_Create_Qualifications(t *testing.T) {
	svc := newTestDriverService(newMemDriverRepository())

	in := validDriverInput(1, "a@x.com")
	in.LicenseClass = strPtr(models.LicenseHeavy)
	in.DriverQualifications = json.RawMessage(`"{\"first_aid\":true}"`)
	in.CustomQualifications = json.RawMessage(`["tour guide"]`)

	driver, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, models.LicenseHeavy, driver.LicenseClass)
	assert.Equal(t, map[string]bool{"first_aid": true}, driver.DriverQualifications)
	assert.Equal(t, []string{"tour guide"}, driver.CustomQualifications)
}

func TestDriverService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *DriverInput)
		message string
	}{
		{"missing email", func(in *DriverInput) { in.Email = nil }, MsgDriverFieldsRequired},
		{"blank address", func(in *DriverInput) { in.Address = strPtr("  ") }, MsgDriverFieldsRequired},
		{"empty birth date", func(in *DriverInput) { in.DateOfBirth = datePtr("") }, MsgDriverFieldsRequired},
		{"negative driver id", func(in *DriverInput) { in.DriverID = int64Ptr(-1) }, MsgInvalidDriverID},
		{"digits in name", func(in *DriverInput) { in.FullName = strPtr("R2 D2") }, MsgInvalidDriverName},
		{"short phone", func(in *DriverInput) { in.ContactNumber = strPtr("077123456") }, MsgInvalidContactNumber},
		{"phone without leading zero", func(in *DriverInput) { in.ContactNumber = strPtr("7712345678") }, MsgInvalidContactNumber},
		{"bad emergency contact", func(in *DriverInput) { in.EmergencyContact = strPtr("0012345678") }, MsgInvalidEmergencyContact},
		{"bad email", func(in *DriverInput) { in.Email = strPtr("not-an-email") }, MsgInvalidDriverEmail},
		{"license of 8", func(in *DriverInput) { in.LicenseNumber = strPtr("B1234567") }, MsgInvalidLicenseNumber},
		{"license with symbol", func(in *DriverInput) { in.LicenseNumber = strPtr("B12-456") }, MsgInvalidLicenseNumber},
		{"unknown license class", func(in *DriverInput) { in.LicenseClass = strPtr("bus") }, MsgInvalidLicenseClass},
		{"under 18", func(in *DriverInput) { in.DateOfBirth = datePtr("2008-05-02") }, MsgDriverTooYoung},
		{"negative experience", func(in *DriverInput) { in.YearOfExperience = intPtr(-1) }, MsgNegativeExperience},
		{"too much experience", func(in *DriverInput) { in.YearOfExperience = intPtr(80) }, MsgExperienceTooHigh},
		{"unknown availability", func(in *DriverInput) { in.AvailabilityStatus = strPtr("busy") }, MsgInvalidAvailability},
		{"bad qualifications", func(in *DriverInput) { in.DriverQualifications = json.RawMessage(`[1]`) }, MsgInvalidQualifications},
		{"bad custom qualifications", func(in *DriverInput) { in.CustomQualifications = json.RawMessage(`"{x"`) }, MsgInvalidCustomQuals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestDriverService(newMemDriverRepository())
			in := validDriverInput(1, "a@x.com")
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			assertAppErr(t, err, apperr.KindValidation, tt.message)
		})
	}
}

func TestDriverService_Create_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *DriverInput)
	}{
		{"turns 18 today", func(in *DriverInput) { in.DateOfBirth = datePtr("2008-05-01") }},
		{"twelve character license", func(in *DriverInput) { in.LicenseNumber = strPtr("B12345678901") }},
		{"driver id zero", func(in *DriverInput) { in.DriverID = int64Ptr(0) }},
		{"max experience", func(in *DriverInput) { in.YearOfExperience = intPtr(models.MaxYearsOfExperience) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestDriverService(newMemDriverRepository())
			in := validDriverInput(1, "a@x.com")
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			require.NoError(t, err)
		})
	}
}

func TestDriverService_Create_Duplicate(t *testing.T) {
	svc := newTestDriverService(newMemDriverRepository())

	_, err := svc.Create(context.Background(), validDriverInput(1, "a@x.com"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validDriverInput(1, "b@x.com"))
	assertAppErr(t, err, apperr.KindConflict, MsgDriverExists)

	_, err = svc.Create(context.Background(), validDriverInput(2, "A@X.com"))
	assertAppErr(t, err, apperr.KindConflict, MsgDriverExists)
}

// =============================================================================
// List Tests
// =============================================================================

func TestDriverService_List_Pagination(t *testing.T) {
	svc := newTestDriverService(newMemDriverRepository())
	for i := int64(1); i <= 12; i++ {
		_, err := svc.Create(context.Background(), validDriverInput(i, "d"+strconv.FormatInt(i, 10)+"@x.com"))
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), DriverListParams{})
	require.NoError(t, err)
	assert.Len(t, page.Drivers, DefaultDriverPageSize)
	assert.Equal(t, Pagination{Total: 12, Page: 1, Limit: 10, TotalPages: 2}, page.Pagination)
	assert.Equal(t, int64(12), page.Drivers[0].DriverID, "newest first")

	page, err = svc.List(context.Background(), DriverListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Drivers, 2)

	page, err = svc.List(context.Background(), DriverListParams{Page: 1, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, MaxDriverPageSize, page.Pagination.Limit)
	assert.Len(t, page.Drivers, 12)
}

func TestDriverService_List_Search(t *testing.T) {
	svc := newTestDriverService(newMemDriverRepository())
	_, err := svc.Create(context.Background(), validDriverInput(1, "nimal@x.com"))
	require.NoError(t, err)
	other := validDriverInput(42, "kamal@x.com")
	other.FullName = strPtr("Kamal Silva")
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	page, err := svc.List(context.Background(), DriverListParams{Search: "kamal"})
	require.NoError(t, err)
	require.Len(t, page.Drivers, 1)
	assert.Equal(t, int64(42), page.Drivers[0].DriverID)

	page, err = svc.List(context.Background(), DriverListParams{Search: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, page.Drivers)
	assert.Equal(t, Pagination{Total: 0, Page: 1, Limit: 10, TotalPages: 0}, page.Pagination)
}

// =============================================================================
// Read / Update / Delete Tests
// =============================================================================

func TestDriverService_Update(t *testing.T) {
	svc := newTestDriverService(newMemDriverRepository())
	first, err := svc.Create(context.Background(), validDriverInput(1, "a@x.com"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validDriverInput(2, "b@x.com"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), first.ID, DriverInput{
		AvailabilityStatus: strPtr(models.DriverUnavailable),
		YearOfExperience:   intPtr(9),
	})
	require.NoError(t, err)
	assert.Equal(t, models.DriverUnavailable, updated.AvailabilityStatus)
	assert.Equal(t, 9, updated.YearOfExperience)
	assert.Equal(t, "Nimal Perera", updated.FullName)

	_, err = svc.Update(context.Background(), first.ID, DriverInput{Email: strPtr("b@x.com")})
	assertAppErr(t, err, apperr.KindConflict, MsgDriverExists)

	_, err = svc.Update(context.Background(), first.ID, DriverInput{DateOfBirth: datePtr("")})
	assertAppErr(t, err, apperr.KindValidation, MsgDriverFieldsRequired)

	_, err = svc.Update(context.Background(), first.ID, DriverInput{Address: strPtr("")})
	assertAppErr(t, err, apperr.KindValidation, MsgDriverFieldsRequired)

	_, err = svc.Update(context.Background(), "missing", DriverInput{})
	assertAppErr(t, err, apperr.KindNotFound, MsgDriverNotFound)
}

func TestDriverService_GetAndDelete(t *testing.T) {
	svc := newTestDriverService(newMemDriverRepository())
	created, err := svc.Create(context.Background(), validDriverInput(1, "a@x.com"))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assertAppErr(t, err, apperr.KindNotFound, MsgDriverNotFound)

	err = svc.Delete(context.Background(), created.ID)
	assertAppErr(t, err, apperr.KindNotFound, MsgDriverNotFound)
}
