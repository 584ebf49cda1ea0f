package testutil

import (
	"context"
	"errors"
	"fmt"
	"hotprospects/internal/models"
	"hotprospects/internal/providers"
	"sync"
	"time"
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

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
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

// Entries returns the recorded entries of the given level.
func (m *MockLogger) Entries(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockBackend implements persistence/interfaces.BackendInterface in memory.
type MockBackend struct {
	mu        sync.Mutex
	Stored    []models.Prospect
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockBackend) Load() ([]models.Prospect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]models.Prospect(nil), m.Stored...), nil
}

func (m *MockBackend) Save(people []models.Prospect) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = append([]models.Prospect(nil), people...)
	return nil
}

func (m *MockBackend) Target() string { return "mock" }

// MockPreferences implements persistence/interfaces.PreferenceStore.
type MockPreferences struct {
	mu     sync.Mutex
	Values map[string][]byte
	GetErr error
}

func NewMockPreferences() *MockPreferences {
	return &MockPreferences{Values: make(map[string][]byte)}
}

func (m *MockPreferences) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

func (m *MockPreferences) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Values[key] = value
	return nil
}

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

// MockCompressor implements persistence/interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                sync.Mutex
	PersistenceCalls  int
	PersistenceErrors int
	Total             int
	Contacted         int
	Reminders         map[string]int
	CacheHits         int
	CacheMisses       int
}

func (m *MockMetrics) ReminderCount(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Reminders[result]
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceCalls++
}
func (m *MockMetrics) IncPersistenceErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceErrors++
}
func (m *MockMetrics) SetProspectsTotal(total, contacted int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Total, m.Contacted = total, contacted
}
func (m *MockMetrics) IncReminders(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Reminders == nil {
		m.Reminders = make(map[string]int)
	}
	m.Reminders[result]++
}

// MockNotificationCenter implements reminders/interfaces.NotificationCenterInterface.
type MockNotificationCenter struct {
	mu          sync.Mutex
	Status      models.AuthorizationStatus
	StatusErr   error
	Grant       bool
	RequestErr  error
	ScheduleErr error

	RequestCalls []models.AuthorizationOption
	Scheduled    []models.Notification
}

var ErrMockCenter = errors.New("mock notification center failure")

func (m *MockNotificationCenter) AuthorizationStatus(_ context.Context) (models.AuthorizationStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Status, m.StatusErr
}

func (m *MockNotificationCenter) RequestAuthorization(_ context.Context, opts models.AuthorizationOption) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCalls = append(m.RequestCalls, opts)
	if m.RequestErr != nil {
		return false, m.RequestErr
	}
	if m.Grant {
		m.Status = models.AuthorizationAuthorized
	} else {
		m.Status = models.AuthorizationDenied
	}
	return m.Grant, nil
}

func (m *MockNotificationCenter) Schedule(_ context.Context, n models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ScheduleErr != nil {
		return m.ScheduleErr
	}
	m.Scheduled = append(m.Scheduled, n)
	return nil
}

func (m *MockNotificationCenter) Pending() []models.PendingNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.PendingNotification, 0, len(m.Scheduled))
	for _, n := range m.Scheduled {
		out = append(out, models.PendingNotification{Notification: n})
	}
	return out
}
