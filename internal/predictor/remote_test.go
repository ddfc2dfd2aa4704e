package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airqualityai/backend/internal/domain"
)

func TestRemote_Predict(t *testing.T) {
	reading := domain.PollutantReading{PM25: 25, PM10: 50, NO2: 20, CO: 1, O3: 60}

	t.Run("successful prediction", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/predict", r.URL.Path)

			var req scoreRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 25.0, req.PM25)

			json.NewEncoder(w).Encode(scoreResponse{AQI: 87.5, ModelVersion: "v3"})
		}))
		defer srv.Close()

		p := NewRemote(srv.URL, 5*time.Second)

		got, err := p.Predict(context.Background(), reading)
		require.NoError(t, err)
		assert.Equal(t, 87.5, got)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := NewRemote(srv.URL, 5*time.Second)

		_, err := p.Predict(context.Background(), reading)

		var predErr *domain.PredictionError
		assert.ErrorAs(t, err, &predErr)
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer srv.Close()

		p := NewRemote(srv.URL, 5*time.Second)

		_, err := p.Predict(context.Background(), reading)

		var predErr *domain.PredictionError
		assert.ErrorAs(t, err, &predErr)
	})

	t.Run("unreachable service", func(t *testing.T) {
		p := NewRemote("http://127.0.0.1:1", time.Second)

		_, err := p.Predict(context.Background(), reading)

		var predErr *domain.PredictionError
		assert.ErrorAs(t, err, &predErr)
	})
}

func TestRemote_Health(t *testing.T) {
	t.Run("healthy service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		p := NewRemote(srv.URL, 5*time.Second)
		assert.NoError(t, p.Health(context.Background()))
	})

	t.Run("unhealthy service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		p := NewRemote(srv.URL, 5*time.Second)
		assert.Error(t, p.Health(context.Background()))
	})
}
