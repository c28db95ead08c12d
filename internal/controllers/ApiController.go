package controllers

import (
	"net/http"
	"telemetryd/internal/models"
	"telemetryd/internal/providers"
	"telemetryd/internal/services"
	"time"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	cacheKeyReadings   = "readings"
	cacheKeyThresholds = "thresholds"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ApiController struct {
	logger    providers.Logger
	telemetry services.TelemetryServiceInterface
	auth      services.AuthServiceInterface
	cache     providers.CacheProviderInterface
	metrics   providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, telemetry services.TelemetryServiceInterface, auth services.AuthServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		telemetry: telemetry,
		auth:      auth,
		cache:     cache,
		metrics:   metrics,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, statusResponse{Status: "error", Message: message})
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey, errMessage string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "%s: %s", errMessage, err)
		writeError(w, http.StatusInternalServerError, errMessage)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// ReceiveReading ingests one sensor sample. All three fields must be
// present; the row's timestamp is assigned by the database.
func (ac *ApiController) ReceiveReading(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.ReadingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	start := time.Now()
	err := ac.telemetry.InsertReading(r.Context(), *payload.Temperature, *payload.Humidity, *payload.RelayStatus)
	ac.metrics.ObserveQueryDuration("insert_reading", time.Since(start))
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "insert reading: %s", err)
		writeError(w, http.StatusInternalServerError, "Execution failed")
		return
	}

	ac.metrics.IncReadingsInserted()
	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

// ListReadings returns the most recent samples in ascending time order.
func (ac *ApiController) ListReadings(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyReadings, "Database query failed", func() (any, error) {
		start := time.Now()
		readings, err := ac.telemetry.ListReadings(r.Context())
		ac.metrics.ObserveQueryDuration("list_readings", time.Since(start))
		return readings, err
	})
}

// GetThresholds returns the most recently written threshold pair, or
// null when none exists yet.
func (ac *ApiController) GetThresholds(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyThresholds, "Database query failed", func() (any, error) {
		start := time.Now()
		threshold, err := ac.telemetry.LatestThreshold(r.Context())
		ac.metrics.ObserveQueryDuration("latest_threshold", time.Since(start))
		return threshold, err
	})
}

// SetThresholds appends a new threshold pair.
func (ac *ApiController) SetThresholds(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.ThresholdPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	start := time.Now()
	err := ac.telemetry.InsertThreshold(r.Context(), *payload.TempThreshold, *payload.HumidityThreshold)
	ac.metrics.ObserveQueryDuration("insert_threshold", time.Since(start))
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "insert threshold: %s", err)
		writeError(w, http.StatusInternalServerError, "Execution failed")
		return
	}

	ac.metrics.IncThresholdUpdates()
	w.WriteHeader(http.StatusNoContent)
}

// Login checks credentials against the users table. Every outcome is
// an HTTP 200 with a success flag; only a storage failure is a 500.
func (ac *ApiController) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		ac.metrics.IncLoginAttempts("missing_fields")
		writeJSON(w, http.StatusOK, models.LoginResult{Success: false, Message: models.MsgMissingLogin})
		return
	}

	start := time.Now()
	result, err := ac.auth.Login(r.Context(), email, password)
	ac.metrics.ObserveQueryDuration("login", time.Since(start))
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "login lookup: %s", err)
		writeError(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	switch result.Message {
	case models.MsgLoginSuccessful:
		ac.metrics.IncLoginAttempts("success")
	case models.MsgIncorrectPass:
		ac.metrics.IncLoginAttempts("wrong_password")
	default:
		ac.metrics.IncLoginAttempts("unknown_user")
	}

	writeJSON(w, http.StatusOK, result)
}
