/*
Copyright 2025-2026 the Folio CMS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envBaseURL  = "API_URL"
	envUsername = "TEST_USERNAME"
	envPassword = "TEST_PASSWORD"
)

// TestConfig is the resolved harness configuration. It is built once by
// LoadTestConfig and handed to everything that needs it.
type TestConfig struct {
	BaseURL         string
	Username        string
	Password        string
	RequestTimeout  time.Duration
	TestTimeout     time.Duration
	SkipIntegration bool
	UseLocalFake    bool
	ValidateSchema  bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoadTestConfig loads configuration from environment variables and an optional .env file.
// The API URL and credentials are not validated here, missing values surface as request
// failures when a scenario first uses them.
func LoadTestConfig() (*TestConfig, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	config := &TestConfig{
		BaseURL:         os.Getenv(envBaseURL),
		Username:        os.Getenv(envUsername),
		Password:        os.Getenv(envPassword),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:     getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		UseLocalFake:    getBoolWithDefault("USE_LOCAL_FAKE", false),
		ValidateSchema:  getBoolWithDefault("VALIDATE_SCHEMA", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.DebugLogging {
		config.LogRequests = true
		config.LogResponses = true
	}

	return config, nil
}

// Credentials returns the configured test user as a login payload.
func (c *TestConfig) Credentials() Credentials {
	return Credentials{
		Username: c.Username,
		Password: c.Password,
	}
}

// TestContext bounds a single scenario by TestTimeout.  A zero timeout
// only makes the context cancellable.
func (c *TestConfig) TestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if c.TestTimeout <= 0 {
		return context.WithCancel(parent)
	}

	return context.WithTimeout(parent, c.TestTimeout)
}

// Missing returns the names of core environment variables that resolved empty.
func (c *TestConfig) Missing() []string {
	var missing []string

	for _, v := range []struct {
		name  string
		value string
	}{
		{envBaseURL, c.BaseURL},
		{envUsername, c.Username},
		{envPassword, c.Password},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}

	return missing
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// loadEnvFile walks up from the working directory and loads the first .env found.
// godotenv.Load never overrides variables already present in the environment.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	for {
		envPath := filepath.Join(dir, ".env")

		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("loading %s: %w", envPath, err)
			}

			return nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// .env file not found - this is OK in CI/CD where env vars are set directly
			return nil
		}

		dir = parent
	}
}
