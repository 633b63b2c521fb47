package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables that may be overridden at startup. Zero values in a
// file fall back to the defaults from Default.
type Config struct {
	DriverAddr      string        `yaml:"driver_addr"`
	LogFile         string        `yaml:"log_file"`
	EventLogFile    string        `yaml:"event_log_file"`
	TravelPerFloor  time.Duration `yaml:"travel_per_floor"`
	DebounceWindow  time.Duration `yaml:"debounce_window"`
	AlertHalfPeriod time.Duration `yaml:"alert_half_period"`
	PollInterval    time.Duration `yaml:"poll_interval"`
}

func Default() Config {
	return Config{
		DriverAddr:      DriverAddr,
		TravelPerFloor:  TravelPerFloor * time.Millisecond,
		DebounceWindow:  DebounceWindow * time.Millisecond,
		AlertHalfPeriod: AlertHalfPeriod * time.Millisecond,
		PollInterval:    PollInterval,
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(file)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv reads key/value overrides from a .env file. Recognised keys:
// TWINLIFT_CONFIG, TWINLIFT_DRIVER_ADDR, TWINLIFT_LOG, TWINLIFT_EVENT_LOG.
// A missing file yields an empty map.
func LoadEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env %s: %w", path, err)
	}
	return env, nil
}

// ApplyEnv overrides cfg with values from an env map.
func (cfg *Config) ApplyEnv(env map[string]string) {
	if v := env["TWINLIFT_DRIVER_ADDR"]; v != "" {
		cfg.DriverAddr = v
	}
	if v := env["TWINLIFT_LOG"]; v != "" {
		cfg.LogFile = v
	}
	if v := env["TWINLIFT_EVENT_LOG"]; v != "" {
		cfg.EventLogFile = v
	}
}

func (cfg Config) Validate() error {
	if cfg.TravelPerFloor < time.Millisecond {
		return fmt.Errorf("travel_per_floor must be at least 1ms, got %v", cfg.TravelPerFloor)
	}
	if cfg.DebounceWindow < 0 {
		return fmt.Errorf("debounce_window must not be negative, got %v", cfg.DebounceWindow)
	}
	if cfg.AlertHalfPeriod < time.Millisecond {
		return fmt.Errorf("alert_half_period must be at least 1ms, got %v", cfg.AlertHalfPeriod)
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", cfg.PollInterval)
	}
	return nil
}

// Millis converts a duration to clock units.
func Millis(d time.Duration) uint32 {
	return uint32(d / time.Millisecond)
}

func (cfg *Config) merge(file Config) {
	if file.DriverAddr != "" {
		cfg.DriverAddr = file.DriverAddr
	}
	if file.LogFile != "" {
		cfg.LogFile = file.LogFile
	}
	if file.EventLogFile != "" {
		cfg.EventLogFile = file.EventLogFile
	}
	if file.TravelPerFloor != 0 {
		cfg.TravelPerFloor = file.TravelPerFloor
	}
	if file.DebounceWindow != 0 {
		cfg.DebounceWindow = file.DebounceWindow
	}
	if file.AlertHalfPeriod != 0 {
		cfg.AlertHalfPeriod = file.AlertHalfPeriod
	}
	if file.PollInterval != 0 {
		cfg.PollInterval = file.PollInterval
	}
}
