package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/airqualityai/backend/internal/advisory"
	"github.com/airqualityai/backend/internal/domain"
	"github.com/airqualityai/backend/internal/logger"
	"github.com/airqualityai/backend/internal/service"
	"github.com/airqualityai/backend/web"
)

// Placeholder concentrations used when a form field is left unset.
const (
	defaultPM25 = 25.0
	defaultPM10 = 50.0
	defaultNO2  = 20.0
	defaultCO   = 1.0
	defaultO3   = 60.0
)

// Handler contains all HTTP handlers
type Handler struct {
	predictionSvc *service.PredictionService
	log           logger.Logger
}

// NewHandler creates a new handler
func NewHandler(predictionSvc *service.PredictionService, log logger.Logger) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		log:           log,
	}
}

// Index serves the single-page prediction form.
func (h *Handler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(web.IndexHTML)
}

// HealthCheck returns service, model and store health.
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	ctx := c.Context()

	modelErr, storeErr := h.predictionSvc.Health(ctx)

	status := "ok"
	model := "ok"
	store := "ok"
	if modelErr != nil {
		status = "degraded"
		model = "unavailable"
	}
	if storeErr != nil {
		status = "degraded"
		store = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":  status,
		"service": "airquality-backend",
		"version": "1.0.0",
		"model":   model,
		"store":   store,
	})
}

type predictRequest struct {
	PM25 *float64 `json:"pm25"`
	PM10 *float64 `json:"pm10"`
	NO2  *float64 `json:"no2"`
	CO   *float64 `json:"co"`
	O3   *float64 `json:"o3"`
}

func (r predictRequest) reading() domain.PollutantReading {
	pick := func(v *float64, def float64) float64 {
		if v == nil {
			return def
		}
		return *v
	}
	return domain.PollutantReading{
		PM25: pick(r.PM25, defaultPM25),
		PM10: pick(r.PM10, defaultPM10),
		NO2:  pick(r.NO2, defaultNO2),
		CO:   pick(r.CO, defaultCO),
		O3:   pick(r.O3, defaultO3),
	}
}

// Predict runs one prediction request through the workflow.
func (h *Handler) Predict(c *fiber.Ctx) error {
	ctx := c.Context()

	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.predictionSvc.Predict(ctx, req.reading())
	if err != nil {
		return h.mapPredictionError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// mapPredictionError translates workflow errors into HTTP statuses.
func (h *Handler) mapPredictionError(err error) error {
	var predErr *domain.PredictionError

	switch {
	case errors.Is(err, domain.ErrInvalidReading):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrModelUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable,
			"Model unavailable. Predictions are disabled until the model artifact is restored.")
	case errors.As(err, &predErr):
		h.log.Errorf("prediction failed: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "Prediction failed")
	default:
		h.log.Errorf("unexpected prediction error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get prediction")
	}
}

// GetCategories returns the six AQI bands with their bounds and advisories.
func (h *Handler) GetCategories(c *fiber.Ctx) error {
	type categoryInfo struct {
		Label           string   `json:"label"`
		Severity        string   `json:"severity"`
		Lower           float64  `json:"lower"`
		Upper           *float64 `json:"upper,omitempty"`
		Description     string   `json:"description"`
		Recommendations []string `json:"recommendations"`
	}

	categories := make([]categoryInfo, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		adv := advisory.Advise(cat)
		lower, upper := cat.Bounds()

		info := categoryInfo{
			Label:           adv.Label,
			Severity:        adv.Severity,
			Lower:           lower,
			Description:     adv.Description,
			Recommendations: adv.Recommendations,
		}
		if cat != domain.CategoryHazardous {
			u := upper
			info.Upper = &u
		}
		categories = append(categories, info)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

// GetHistory returns recent prediction log entries.
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	ctx := c.Context()

	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 { // max 30 days
		hours = 24
	}

	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)

	data, err := h.predictionSvc.History(ctx, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch prediction history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}
