// internal/config/validate.go
package config

import "fmt"

// liveness ceiling for WorkerTickIntervalMs, per the scheduler's 50ms
// maximum responsiveness budget.
const maxWorkerTickIntervalMs = 50

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	c := cfg.Client

	if c.SourceAddress == c.PartnerAddress {
		return fmt.Errorf("client: source_address and partner_address must differ, both are %d", c.SourceAddress)
	}
	// Zero means "unset, Normalize will fill in the default" — only
	// negative values are a validation error here.
	if c.ResponseTimeoutMs < 0 {
		return fmt.Errorf("client: response_timeout_ms must not be negative, got %d", c.ResponseTimeoutMs)
	}
	if c.StatusTimeoutMs < 0 {
		return fmt.Errorf("client: status_timeout_ms must not be negative, got %d", c.StatusTimeoutMs)
	}
	if c.MaintenanceIntervalMs < 0 {
		return fmt.Errorf("client: maintenance_interval_ms must not be negative, got %d", c.MaintenanceIntervalMs)
	}
	if c.WorkerTickIntervalMs < 0 {
		return fmt.Errorf("client: worker_tick_interval_ms must not be negative, got %d", c.WorkerTickIntervalMs)
	}
	if c.WorkerTickIntervalMs > maxWorkerTickIntervalMs {
		return fmt.Errorf("client: worker_tick_interval_ms %d exceeds the %dms liveness ceiling", c.WorkerTickIntervalMs, maxWorkerTickIntervalMs)
	}

	return nil
}
