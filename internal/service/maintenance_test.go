package service

import (
	"context"
	"errors"
	"sort"
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
// In-memory MaintenanceRepository and Predictor
// =============================================================================

type memMaintenanceRepository struct {
	mu      sync.Mutex
	records map[string]models.MaintenanceRecord
	seq     int
}

func newMemMaintenanceRepository() *memMaintenanceRepository {
	return &memMaintenanceRepository{records: make(map[string]models.MaintenanceRecord)}
}

func (r *memMaintenanceRepository) Create(_ context.Context, record *models.MaintenanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	record.CreatedAt = time.Unix(int64(r.seq), 0)
	r.records[record.ID] = *record
	return nil
}

func (r *memMaintenanceRepository) FindByID(_ context.Context, id string) (*models.MaintenanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (r *memMaintenanceRepository) List(_ context.Context) ([]models.MaintenanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := make([]models.MaintenanceRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.Before(records[j].CreatedAt) })
	return records, nil
}

func (r *memMaintenanceRepository) Update(_ context.Context, record *models.MaintenanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return repository.ErrNotFound
	}
	r.records[record.ID] = *record
	return nil
}

func (r *memMaintenanceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type stubPredictor struct {
	got        models.MaintenanceReadings
	prediction *models.MaintenancePrediction
	err        error
}

func (p *stubPredictor) Predict(_ context.Context, readings models.MaintenanceReadings) (*models.MaintenancePrediction, error) {
	p.got = readings
	return p.prediction, p.err
}

func validMaintenanceInput() MaintenanceInput {
	return MaintenanceInput{
		Name:            strPtr("Toyota Prius"),
		LastServiceDate: strPtr("2026-01-15"),
		Mileage:         intPtr(42000),
		TireWear:        intPtr(30),
		EngineHealth:    intPtr(85),
		BrakeWear:       intPtr(20),
		OilViscosity:    intPtr(40),
		CoolantLevel:    intPtr(90),
	}
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestMaintenanceService_Create(t *testing.T) {
	svc := NewMaintenanceService(newMemMaintenanceRepository(), &stubPredictor{})

	record, err := svc.Create(context.Background(), validMaintenanceInput())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "Toyota Prius", record.Name)
	assert.Equal(t, "2026-01-15", record.LastServiceDate)
	assert.Equal(t, 42000, record.Mileage)
	assert.Equal(t, 90, record.CoolantLevel)
	assert.Nil(t, record.Prediction)
}

func TestMaintenanceService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *MaintenanceInput)
		message string
	}{
		{"missing name", func(in *MaintenanceInput) { in.Name = nil }, MsgMaintenanceFieldsRequired},
		{"blank name", func(in *MaintenanceInput) { in.Name = strPtr(" ") }, MsgMaintenanceFieldsRequired},
		{"missing coolant", func(in *MaintenanceInput) { in.CoolantLevel = nil }, MsgMaintenanceFieldsRequired},
		{"slashed date", func(in *MaintenanceInput) { in.LastServiceDate = strPtr("15/01/2026") }, MsgInvalidServiceDate},
		{"negative mileage", func(in *MaintenanceInput) { in.Mileage = intPtr(-1) }, MsgNegativeReading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMaintenanceService(newMemMaintenanceRepository(), &stubPredictor{})
			in := validMaintenanceInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			assertAppErr(t, err, apperr.KindValidation, tt.message)
		})
	}
}

func TestMaintenanceService_ReadUpdateDelete(t *testing.T) {
	svc := NewMaintenanceService(newMemMaintenanceRepository(), &stubPredictor{})
	first, err := svc.Create(context.Background(), validMaintenanceInput())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validMaintenanceInput())
	require.NoError(t, err)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID, "oldest first")

	updated, err := svc.Update(context.Background(), first.ID, MaintenanceInput{Mileage: intPtr(43000)})
	require.NoError(t, err)
	assert.Equal(t, 43000, updated.Mileage)
	assert.Equal(t, 30, updated.TireWear)

	_, err = svc.Update(context.Background(), first.ID, MaintenanceInput{Name: strPtr("")})
	assertAppErr(t, err, apperr.KindValidation, MsgMaintenanceFieldsRequired)

	_, err = svc.Update(context.Background(), "missing", MaintenanceInput{})
	assertAppErr(t, err, apperr.KindNotFound, MsgMaintenanceNotFound)

	require.NoError(t, svc.Delete(context.Background(), first.ID))
	_, err = svc.Get(context.Background(), first.ID)
	assertAppErr(t, err, apperr.KindNotFound, MsgMaintenanceNotFound)
	assertAppErr(t, svc.Delete(context.Background(), first.ID), apperr.KindNotFound, MsgMaintenanceNotFound)
}

// =============================================================================
// Predict Tests
// =============================================================================

func TestMaintenanceService_Predict_SavesVerdict(t *testing.T) {
	repo := newMemMaintenanceRepository()
	predictor := &stubPredictor{prediction: &models.MaintenancePrediction{
		NextServiceDate: "2026-07-01",
		PredictedIssue:  "Brake pads worn",
		Status:          "Needs attention",
		Recommendation:  "Replace brake pads",
	}}
	svc := NewMaintenanceService(repo, predictor)
	created, err := svc.Create(context.Background(), validMaintenanceInput())
	require.NoError(t, err)

	record, err := svc.Predict(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.MaintenanceReadings, predictor.got)
	require.NotNil(t, record.Prediction)
	assert.Equal(t, "Brake pads worn", record.Prediction.PredictedIssue)

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Prediction, stored.Prediction)
}

func TestMaintenanceService_Predict_Errors(t *testing.T) {
	repo := newMemMaintenanceRepository()
	predictor := &stubPredictor{err: errors.New("connection refused")}
	svc := NewMaintenanceService(repo, predictor)
	created, err := svc.Create(context.Background(), validMaintenanceInput())
	require.NoError(t, err)

	_, err = svc.Predict(context.Background(), created.ID)
	assertAppErr(t, err, apperr.KindUpstream, MsgPredictionFailed)
	assert.ErrorIs(t, err, predictor.err)

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Prediction, "failed prediction must not be stored")

	_, err = svc.Predict(context.Background(), "missing")
	assertAppErr(t, err, apperr.KindNotFound, MsgMaintenanceNotFound)
}
