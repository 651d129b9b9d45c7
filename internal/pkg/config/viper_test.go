package config

import (
	"testing"
	"time"
)

const testConfig = `
app:
  tz: UTC
  server:
    http:
      address: ":8080"
      read_timeout_seconds: 15
  maintenance:
    endpoints: "/api/v1/users,/health"

instrument:
  enabled: false
  trace_sample_ratio: 0.5
`

func newTestConfig(t *testing.T) Config {
	t.Helper()

	cfg, err := NewViperFromBytes("yaml", []byte(testConfig))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	return cfg
}

func TestNewViperFromBytesRequiresType(t *testing.T) {
	// Act
	_, err := NewViperFromBytes("", []byte("a: 1"))

	// Assert
	if err == nil {
		t.Fatal("expected error for empty config type, got nil")
	}
}

func TestGetters(t *testing.T) {
	// Arrange
	cfg := newTestConfig(t)

	// Assert
	if got := cfg.GetString("app.tz"); got != "UTC" {
		t.Fatalf("GetString: expected UTC, got %q", got)
	}
	if got := cfg.GetInt("app.server.http.read_timeout_seconds"); got != 15 {
		t.Fatalf("GetInt: expected 15, got %d", got)
	}
	if got := cfg.GetBool("instrument.enabled"); got {
		t.Fatal("GetBool: expected false")
	}
	if got := cfg.GetFloat64("instrument.trace_sample_ratio"); got != 0.5 {
		t.Fatalf("GetFloat64: expected 0.5, got %v", got)
	}
	if got := cfg.GetSecond("app.server.http.read_timeout_seconds"); got != 15*time.Second {
		t.Fatalf("GetSecond: expected 15s, got %v", got)
	}
}

func TestGetArraySplitsOnComma(t *testing.T) {
	// Arrange
	cfg := newTestConfig(t)

	// Act
	got := cfg.GetArray("app.maintenance.endpoints")

	// Assert
	if len(got) != 2 || got[0] != "/api/v1/users" || got[1] != "/health" {
		t.Fatalf("unexpected array: %v", got)
	}
}
