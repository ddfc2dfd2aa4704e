package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/airqualityai/backend/internal/domain"
)

// Remote scores readings through an external HTTP scoring service.
type Remote struct {
	serviceURL string
	httpClient *http.Client
}

// NewRemote creates a scoring-service client.
func NewRemote(serviceURL string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Remote{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type scoreRequest struct {
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	NO2  float64 `json:"no2"`
	CO   float64 `json:"co"`
	O3   float64 `json:"o3"`
}

type scoreResponse struct {
	AQI          float64 `json:"aqi"`
	ModelVersion string  `json:"model_version"`
}

// Predict posts the reading to the scoring service. Any transport,
// status or decode failure is reported as a PredictionError for this
// request only; there is no fallback value.
func (p *Remote) Predict(ctx context.Context, reading domain.PollutantReading) (float64, error) {
	body, err := json.Marshal(scoreRequest{
		PM25: reading.PM25,
		PM10: reading.PM10,
		NO2:  reading.NO2,
		CO:   reading.CO,
		O3:   reading.O3,
	})
	if err != nil {
		return 0, &domain.PredictionError{Cause: fmt.Errorf("predictor: marshal scoring request: %w", err)}
	}

	url := fmt.Sprintf("%s/predict", p.serviceURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, &domain.PredictionError{Cause: fmt.Errorf("predictor: create scoring request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return 0, &domain.PredictionError{Cause: fmt.Errorf("predictor: scoring request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &domain.PredictionError{Cause: fmt.Errorf("predictor: scoring service returned status %d", resp.StatusCode)}
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, &domain.PredictionError{Cause: fmt.Errorf("predictor: decode scoring response: %w", err)}
	}

	return out.AQI, nil
}

// Health checks scoring service connectivity.
func (p *Remote) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", p.serviceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("predictor: create health request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("predictor: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("predictor: health check returned status %d", resp.StatusCode)
	}

	return nil
}

// Version identifies the backing model. The actual model version lives on
// the scoring service side and is returned per response.
func (p *Remote) Version() string {
	return "remote"
}
