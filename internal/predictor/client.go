// Package predictor calls the vehicle maintenance prediction service.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wanderlust-rentals/rental-service/internal/models"
)

const predictPath = "/predict"

// DefaultTimeout bounds a prediction request when the config sets none.
const DefaultTimeout = 10 * time.Second

// ErrNotConfigured is returned when no prediction service URL is set.
var ErrNotConfigured = errors.New("prediction service not configured")

// Client is an HTTP client for the prediction service.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Predict sends readings to the service and returns its verdict.
func (c *Client) Predict(ctx context.Context, readings models.MaintenanceReadings) (*models.MaintenancePrediction, error) {
	if c.http.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	var prediction models.MaintenancePrediction
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(readings).
		SetResult(&prediction).
		Post(predictPath)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("prediction service returned %s: %s", resp.Status(), truncate(resp.String(), 200))
	}
	if prediction.PredictedIssue == "" && prediction.NextServiceDate == "" {
		return nil, fmt.Errorf("prediction service returned an empty verdict: %s", truncate(resp.String(), 200))
	}

	return &prediction, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
