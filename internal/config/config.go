// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	StoreDir           string
	BrowserPath        string
	Headless           bool
	ProbeTimeout       time.Duration
	GeolocationTimeout time.Duration
	BatteryFile        string
}

// Load reads configuration from environment variables and .env file.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		StoreDir:    getEnv("STORE_DIR", ".browsercheck"),
		BrowserPath: getEnv("BROWSER_PATH", ""),
		BatteryFile: getEnv("BATTERY_FILE", ""),
	}

	headless, err := getEnvBool("BROWSER_HEADLESS", true)
	if err != nil {
		return nil, err
	}

	cfg.Headless = headless

	probeTimeout, err := getEnvSeconds("PROBE_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}

	cfg.ProbeTimeout = probeTimeout

	geoTimeout, err := getEnvSeconds("GEOLOCATION_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}

	cfg.GeolocationTimeout = geoTimeout

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return parsed, nil
}

func getEnvSeconds(key string, defaultValue int) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(defaultValue) * time.Second, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return time.Duration(parsed) * time.Second, nil
}

func (c *Config) String() string {
	browserDisplay := c.BrowserPath
	if browserDisplay == "" {
		browserDisplay = "(system default)"
	}

	batteryDisplay := c.BatteryFile
	if batteryDisplay == "" {
		batteryDisplay = "(full battery)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Store Directory:       %s
Browser Path:          %s
Headless:              %t
Probe Timeout:         %s
Geolocation Timeout:   %s
Battery File:          %s`,
		c.StoreDir,
		browserDisplay,
		c.Headless,
		c.ProbeTimeout,
		c.GeolocationTimeout,
		batteryDisplay,
	)
}
