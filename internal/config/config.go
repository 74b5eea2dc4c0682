// Package config implements viper-based configuration loading,
// mirroring the teacher's pkg/config package: a mapstructure-tagged
// struct-of-structs, package-level defaults, and env var overrides.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the root configuration for the base station transmitter.
type Config struct {
	Cell    CellConfig    `mapstructure:"cell"`
	Sysinfo SysinfoConfig `mapstructure:"sysinfo"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Monitor MonitorConfig `mapstructure:"monitor"`
	Store   StoreConfig   `mapstructure:"store"`
}

// CellConfig is the identity triple scrambling and SYNC/SYSINFO content
// is keyed on: spec.md §6.
type CellConfig struct {
	MCC        uint32 `mapstructure:"mcc"`
	MNC        uint32 `mapstructure:"mnc"`
	ColourCode uint32 `mapstructure:"colour_code"`
}

// SysinfoConfig holds the cell-access RF parameters and carrier
// placement broadcast in SYSINFO: spec.md §6(iii).
type SysinfoConfig struct {
	MainCarrier          uint32 `mapstructure:"main_carrier"`
	FrequencyBand        uint32 `mapstructure:"frequency_band"`
	Offset               int    `mapstructure:"offset"`
	DuplexSpacing        uint32 `mapstructure:"duplex_spacing"`
	MSTxPwrMaxCell       uint32 `mapstructure:"ms_txpwr_max_cell"`
	RxLevAccessMin       uint32 `mapstructure:"rxlev_access_min"`
	AccessParameter      uint32 `mapstructure:"access_parameter"`
	RadioDownlinkTimeout uint32 `mapstructure:"radio_downlink_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// MetricsConfig holds Prometheus exporter configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	Path    string `mapstructure:"path"`
}

// MonitorConfig holds the live burst-monitor websocket configuration.
type MonitorConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// StoreConfig holds the SQLite-backed cell/burst-history store location.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads configuration from file and environment variables,
// falling back to package defaults for anything unset.
func Load(configFile string) (*Config, error) {
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/tetra-corebs")
	}

	viper.SetEnvPrefix("TETRA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is fine, defaults apply.
		} else if os.IsNotExist(err) {
			// Explicitly-named file missing is also fine.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("cell.mcc", 234)
	viper.SetDefault("cell.mnc", 1)
	viper.SetDefault("cell.colour_code", 1)

	viper.SetDefault("sysinfo.main_carrier", 0)
	viper.SetDefault("sysinfo.frequency_band", 0)
	viper.SetDefault("sysinfo.offset", 0)
	viper.SetDefault("sysinfo.duplex_spacing", 0)

	viper.SetDefault("logging.level", "info")

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("metrics.path", "/metrics")

	viper.SetDefault("monitor.enabled", true)
	viper.SetDefault("monitor.port", 8181)

	viper.SetDefault("store.path", "tetra-corebs.db")
}
