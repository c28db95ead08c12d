package services

import (
	"context"
	"errors"
	"telemetryd/internal/models"
	"time"

	"github.com/jackc/pgx/v5"
)

// ReadingsLimit caps how many samples the query endpoint returns.
const ReadingsLimit = 30

const (
	insertReadingSQL   = `INSERT INTO sensor_data (temperature, humidity, relay_status, timestamp) VALUES ($1, $2, $3, NOW())`
	listReadingsSQL    = `SELECT temperature, humidity, relay_status, timestamp FROM sensor_data ORDER BY timestamp DESC LIMIT $1`
	latestThresholdSQL = `SELECT temp_threshold, humidity_threshold FROM thresholds ORDER BY id DESC LIMIT 1`
	insertThresholdSQL = `INSERT INTO thresholds (temp_threshold, humidity_threshold) VALUES ($1, $2)`
)

type TelemetryServiceInterface interface {
	InsertReading(ctx context.Context, temperature, humidity float64, relayStatus int) error
	ListReadings(ctx context.Context) ([]models.Reading, error)
	LatestThreshold(ctx context.Context) (*models.Threshold, error)
	InsertThreshold(ctx context.Context, tempThreshold, humidityThreshold float64) error
	Ping(ctx context.Context) error
}

type TelemetryService struct {
	pool DBPool
}

func NewTelemetryService(pool DBPool) TelemetryServiceInterface {
	return &TelemetryService{pool: pool}
}

// InsertReading appends one sample. The timestamp is always assigned
// by the database server, never taken from the device.
func (ts *TelemetryService) InsertReading(ctx context.Context, temperature, humidity float64, relayStatus int) error {
	_, err := ts.pool.Exec(ctx, insertReadingSQL, temperature, humidity, relayStatus)
	return err
}

// ListReadings returns the ReadingsLimit most recent samples in
// chronological order: newest-first from the database, reversed in
// memory so the dashboard can plot oldest to newest.
func (ts *TelemetryService) ListReadings(ctx context.Context) ([]models.Reading, error) {
	rows, err := ts.pool.Query(ctx, listReadingsSQL, ReadingsLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := make([]models.Reading, 0, ReadingsLimit)
	for rows.Next() {
		var (
			r  models.Reading
			at time.Time
		)
		if err := rows.Scan(&r.Temperature, &r.Humidity, &r.RelayStatus, &at); err != nil {
			return nil, err
		}
		r.Timestamp = at.Format(models.TimestampLayout)
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reverseReadings(readings)
	return readings, nil
}

// LatestThreshold returns the threshold pair with the highest id, or
// nil when no pair has ever been written.
func (ts *TelemetryService) LatestThreshold(ctx context.Context) (*models.Threshold, error) {
	var t models.Threshold
	err := ts.pool.QueryRow(ctx, latestThresholdSQL).Scan(&t.TempThreshold, &t.HumidityThreshold)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// InsertThreshold appends a new pair; earlier rows stay as history.
// Values are bound parameters on every write path.
func (ts *TelemetryService) InsertThreshold(ctx context.Context, tempThreshold, humidityThreshold float64) error {
	_, err := ts.pool.Exec(ctx, insertThresholdSQL, tempThreshold, humidityThreshold)
	return err
}

func (ts *TelemetryService) Ping(ctx context.Context) error {
	return ts.pool.Ping(ctx)
}

func reverseReadings(readings []models.Reading) {
	for i, j := 0, len(readings)-1; i < j; i, j = i+1, j-1 {
		readings[i], readings[j] = readings[j], readings[i]
	}
}
