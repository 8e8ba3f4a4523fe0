// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for a VT client instance that are not part of
// the wire protocol itself: timeouts, scheduler cadence, and the CAN
// addressing the client presents to the bus.
type Config struct {
	Client ClientConfig `yaml:"client"`
}

// ClientConfig mirrors the named timing constants from the bring-up state
// machine and scheduler so a deployment can tune them without a rebuild.
type ClientConfig struct {
	// SourceAddress is the CAN address this working set claims.
	SourceAddress uint8 `yaml:"source_address"`

	// PartnerAddress is the CAN address of the VT server to connect to.
	PartnerAddress uint8 `yaml:"partner_address"`

	// ResponseTimeoutMs bounds every WaitFor*Response bring-up state.
	ResponseTimeoutMs int `yaml:"response_timeout_ms"`

	// StatusTimeoutMs bounds how long the client waits for a VT status
	// message before declaring the connection lost.
	StatusTimeoutMs int `yaml:"status_timeout_ms"`

	// MaintenanceIntervalMs is the working-set maintenance heartbeat
	// period once Connected.
	MaintenanceIntervalMs int `yaml:"maintenance_interval_ms"`

	// WorkerTickIntervalMs is the cadence of the internal Update() loop
	// when the client manages its own goroutine (Initialize(true)).
	WorkerTickIntervalMs int `yaml:"worker_tick_interval_ms"`
}

// Load reads and parses a YAML config file. It does not validate or
// normalize — callers must call Validate then Normalize, in that order,
// before using the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
