// internal/config/normalize.go
package config

// Default tunables, applied by Normalize wherever the field was left
// zero-valued in the loaded YAML.
const (
	defaultResponseTimeoutMs     = 6000
	defaultStatusTimeoutMs       = 3000
	defaultMaintenanceIntervalMs = 1000
	defaultWorkerTickIntervalMs  = 10
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	c := &cfg.Client

	// Only fill fields the operator left unset; Validate has already
	// confirmed nothing else is out of range.
	if c.ResponseTimeoutMs == 0 {
		c.ResponseTimeoutMs = defaultResponseTimeoutMs
	}
	if c.StatusTimeoutMs == 0 {
		c.StatusTimeoutMs = defaultStatusTimeoutMs
	}
	if c.MaintenanceIntervalMs == 0 {
		c.MaintenanceIntervalMs = defaultMaintenanceIntervalMs
	}
	if c.WorkerTickIntervalMs == 0 {
		c.WorkerTickIntervalMs = defaultWorkerTickIntervalMs
	}
}
