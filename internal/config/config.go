package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Data drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config defines application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Reports ReportsConfig `yaml:"reports"`
	Log     LogConfig     `yaml:"log"`
	Auth    AuthConfig    `yaml:"auth"`
}

type DataConfig struct {
	Dir        string `yaml:"dir"`
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
}

type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type AuthConfig struct {
	BcryptCost           int    `yaml:"bcrypt_cost"`
	DefaultAdminPassword string `yaml:"default_admin_password"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Data: DataConfig{
			Dir:        "data",
			Driver:     DriverJSON,
			SQLitePath: "data/farmrec.db",
		},
		Reports: ReportsConfig{
			Dir: "reports",
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			BcryptCost:           10,
			DefaultAdminPassword: "admin123",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("FARMREC_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dir := os.Getenv("FARMREC_DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if driver := os.Getenv("FARMREC_DATA_DRIVER"); driver != "" {
		cfg.Data.Driver = driver
	}
	if path := os.Getenv("FARMREC_SQLITE_PATH"); path != "" {
		cfg.Data.SQLitePath = path
	}
	if dir := os.Getenv("FARMREC_REPORTS_DIR"); dir != "" {
		cfg.Reports.Dir = dir
	}
	if level := os.Getenv("FARMREC_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("FARMREC_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}
	if costStr := os.Getenv("FARMREC_BCRYPT_COST"); costStr != "" {
		cost, err := strconv.Atoi(costStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FARMREC_BCRYPT_COST: %w", err)
		}
		cfg.Auth.BcryptCost = cost
	}
	if pw := os.Getenv("FARMREC_DEFAULT_ADMIN_PASSWORD"); pw != "" {
		cfg.Auth.DefaultAdminPassword = pw
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	switch c.Data.Driver {
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("invalid data driver %q: want %q or %q", c.Data.Driver, DriverJSON, DriverSQLite)
	}
	// bcrypt accepts costs 4 through 31
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("invalid bcrypt cost %d: want 4-31", c.Auth.BcryptCost)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
