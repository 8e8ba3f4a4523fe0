// internal/config/validate_test.go
package config

import "testing"

func TestValidate_ZeroDurationsAreValidUnsetMarkers(t *testing.T) {
	cfg := &Config{Client: ClientConfig{SourceAddress: 0x26, PartnerAddress: 0x27}}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsMatchingAddresses(t *testing.T) {
	cfg := &Config{Client: ClientConfig{SourceAddress: 0x26, PartnerAddress: 0x26}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for matching addresses")
	}
}

func TestValidate_RejectsNegativeTimeout(t *testing.T) {
	cfg := &Config{Client: ClientConfig{SourceAddress: 0x26, PartnerAddress: 0x27, ResponseTimeoutMs: -1}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative response_timeout_ms")
	}
}

func TestValidate_RejectsTickIntervalAboveLivenessCeiling(t *testing.T) {
	cfg := &Config{Client: ClientConfig{SourceAddress: 0x26, PartnerAddress: 0x27, WorkerTickIntervalMs: 51}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for worker_tick_interval_ms above ceiling")
	}
}

func TestNormalize_FillsOnlyUnsetFields(t *testing.T) {
	cfg := &Config{Client: ClientConfig{
		SourceAddress:     0x26,
		PartnerAddress:    0x27,
		ResponseTimeoutMs: 9999,
	}}
	Normalize(cfg)

	if cfg.Client.ResponseTimeoutMs != 9999 {
		t.Fatalf("expected explicit value preserved, got %d", cfg.Client.ResponseTimeoutMs)
	}
	if cfg.Client.StatusTimeoutMs != defaultStatusTimeoutMs {
		t.Fatalf("expected default status_timeout_ms, got %d", cfg.Client.StatusTimeoutMs)
	}
	if cfg.Client.MaintenanceIntervalMs != defaultMaintenanceIntervalMs {
		t.Fatalf("expected default maintenance_interval_ms, got %d", cfg.Client.MaintenanceIntervalMs)
	}
	if cfg.Client.WorkerTickIntervalMs != defaultWorkerTickIntervalMs {
		t.Fatalf("expected default worker_tick_interval_ms, got %d", cfg.Client.WorkerTickIntervalMs)
	}
}
