package config

import "fmt"

// Validate performs manual range checks on cfg, matching the teacher's
// own pkg/config/validation.go style.
func Validate(cfg *Config) error {
	if cfg.Cell.MCC > 0x3FF {
		return fmt.Errorf("cell.mcc must fit in 10 bits (max %d)", 0x3FF)
	}
	if cfg.Cell.MNC > 0x3FFF {
		return fmt.Errorf("cell.mnc must fit in 14 bits (max %d)", 0x3FFF)
	}
	if cfg.Cell.ColourCode > 0x3F {
		return fmt.Errorf("cell.colour_code must fit in 6 bits (max %d)", 0x3F)
	}

	if cfg.Sysinfo.Offset < 0 || cfg.Sysinfo.Offset > 3 {
		return fmt.Errorf("sysinfo.offset must be between 0 and 3")
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Port <= 0 || cfg.Metrics.Port > 65535 {
			return fmt.Errorf("metrics.port must be between 1 and 65535")
		}
	}
	if cfg.Monitor.Enabled {
		if cfg.Monitor.Port <= 0 || cfg.Monitor.Port > 65535 {
			return fmt.Errorf("monitor.port must be between 1 and 65535")
		}
	}
	if cfg.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}

	return nil
}
