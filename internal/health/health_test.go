package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealthHandler_CredentialConfigured(t *testing.T) {
	checker := NewHealthChecker(true)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	checker.HealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, rec.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", response.Status)
	}
	if response.Checks["weather_api_key"] != "configured" {
		t.Errorf("Expected weather_api_key 'configured', got %q", response.Checks["weather_api_key"])
	}

	if time.Since(response.Timestamp) > 5*time.Second {
		t.Error("Timestamp is too old")
	}
}

func TestHealthHandler_NoCredential(t *testing.T) {
	checker := NewHealthChecker(false)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	checker.HealthHandler(rec, req)

	// Still healthy: a missing key is surfaced per-call, not as liveness failure.
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, rec.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Checks["weather_api_key"] != "not configured" {
		t.Errorf("Expected weather_api_key 'not configured', got %q", response.Checks["weather_api_key"])
	}
}

func TestReadyHandler_NoCredential(t *testing.T) {
	checker := NewHealthChecker(false)

	req := httptest.NewRequest("GET", "/ready", nil)
	rec := httptest.NewRecorder()

	checker.ReadyHandler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status code %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != "not ready" {
		t.Errorf("Expected status 'not ready', got %q", response.Status)
	}
}

func TestReadyHandler_CredentialConfigured(t *testing.T) {
	checker := NewHealthChecker(true)

	req := httptest.NewRequest("GET", "/ready", nil)
	rec := httptest.NewRecorder()

	checker.ReadyHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, rec.Code)
	}
}
