package testutil

import (
	"context"
	"fmt"
	"sync"
	"telemetryd/internal/models"
	"telemetryd/internal/providers"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and
// counts the domain events.
type MockMetrics struct {
	mu            sync.Mutex
	Readings      int
	Thresholds    int
	LoginOutcomes []string
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveQueryDuration(_ string, _ time.Duration)   {}

func (m *MockMetrics) IncReadingsInserted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Readings++
}

func (m *MockMetrics) IncThresholdUpdates() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Thresholds++
}

func (m *MockMetrics) IncLoginAttempts(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginOutcomes = append(m.LoginOutcomes, outcome)
}

// --- fake pgx plumbing for service tests ---

type PoolCall struct {
	SQL  string
	Args []any
}

// FakePool implements services.DBPool against canned results.
type FakePool struct {
	mu         sync.Mutex
	ExecErr    error
	QueryErr   error
	Rows       *FakeRows
	Row        *FakeRow
	PingErr    error
	ExecCalls  []PoolCall
	QueryCalls []PoolCall
	RowCalls   []PoolCall
}

func (p *FakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ExecCalls = append(p.ExecCalls, PoolCall{SQL: sql, Args: args})
	if p.ExecErr != nil {
		return pgconn.CommandTag{}, p.ExecErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (p *FakePool) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.QueryCalls = append(p.QueryCalls, PoolCall{SQL: sql, Args: args})
	if p.QueryErr != nil {
		return nil, p.QueryErr
	}
	if p.Rows == nil {
		return &FakeRows{}, nil
	}
	return p.Rows, nil
}

func (p *FakePool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.RowCalls = append(p.RowCalls, PoolCall{SQL: sql, Args: args})
	if p.Row == nil {
		return &FakeRow{Err: pgx.ErrNoRows}
	}
	return p.Row
}

func (p *FakePool) Ping(_ context.Context) error { return p.PingErr }
func (p *FakePool) Close()                       {}

// FakeRows walks a fixed result set.
type FakeRows struct {
	Records [][]any
	ScanErr error
	RowsErr error
	pos     int
}

func (r *FakeRows) Close()                                       {}
func (r *FakeRows) Err() error                                   { return r.RowsErr }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.pos >= len(r.Records) {
		return false
	}
	r.pos++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	return assignAll(dest, r.Records[r.pos-1])
}

// FakeRow is a single canned row (or error).
type FakeRow struct {
	Values []any
	Err    error
}

func (r *FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assignAll(dest, r.Values)
}

func assignAll(dest []any, src []any) error {
	if len(dest) != len(src) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(src))
	}
	for i, d := range dest {
		if err := assign(d, src[i]); err != nil {
			return err
		}
	}
	return nil
}

func assign(dest, src any) error {
	switch d := dest.(type) {
	case *float64:
		v, ok := src.(float64)
		if !ok {
			return fmt.Errorf("scan: %T into *float64", src)
		}
		*d = v
	case *int:
		v, ok := src.(int)
		if !ok {
			return fmt.Errorf("scan: %T into *int", src)
		}
		*d = v
	case *int64:
		switch v := src.(type) {
		case int64:
			*d = v
		case int:
			*d = int64(v)
		default:
			return fmt.Errorf("scan: %T into *int64", src)
		}
	case *string:
		v, ok := src.(string)
		if !ok {
			return fmt.Errorf("scan: %T into *string", src)
		}
		*d = v
	case *time.Time:
		v, ok := src.(time.Time)
		if !ok {
			return fmt.Errorf("scan: %T into *time.Time", src)
		}
		*d = v
	default:
		return fmt.Errorf("scan: unsupported destination %T", dest)
	}
	return nil
}

// MockTelemetryService implements services.TelemetryServiceInterface.
type MockTelemetryService struct {
	mu              sync.Mutex
	InsertCalls     []models.Reading
	InsertErr       error
	Readings        []models.Reading
	ListErr         error
	Threshold       *models.Threshold
	ThresholdErr    error
	ThresholdCalls  []models.Threshold
	ThresholdSetErr error
	PingErr         error
}

func (m *MockTelemetryService) InsertReading(_ context.Context, temperature, humidity float64, relayStatus int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.InsertCalls = append(m.InsertCalls, models.Reading{
		Temperature: temperature,
		Humidity:    humidity,
		RelayStatus: relayStatus,
	})
	return nil
}

func (m *MockTelemetryService) ListReadings(_ context.Context) ([]models.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Readings, m.ListErr
}

func (m *MockTelemetryService) LatestThreshold(_ context.Context) (*models.Threshold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Threshold, m.ThresholdErr
}

func (m *MockTelemetryService) InsertThreshold(_ context.Context, tempThreshold, humidityThreshold float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ThresholdSetErr != nil {
		return m.ThresholdSetErr
	}
	m.ThresholdCalls = append(m.ThresholdCalls, models.Threshold{
		TempThreshold:     tempThreshold,
		HumidityThreshold: humidityThreshold,
	})
	return nil
}

func (m *MockTelemetryService) Ping(_ context.Context) error { return m.PingErr }

// MockAuthService implements services.AuthServiceInterface.
type MockAuthService struct {
	mu     sync.Mutex
	Result *models.LoginResult
	Err    error
	Calls  []string
}

func (m *MockAuthService) Login(_ context.Context, email, _ string) (*models.LoginResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, email)
	return m.Result, m.Err
}
