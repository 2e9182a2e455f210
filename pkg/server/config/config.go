/* Copyright 2025 Airavoto Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DBModeSQLite selects the embedded single-file backend for desktop deployments.
	DBModeSQLite = "sqlite"
	// DBModePostgres selects the client/server backend for hosted deployments.
	DBModePostgres = "postgres"

	// DefaultDBFilename is the default database filename for the sqlite backend
	DefaultDBFilename = "gamingpos.db"
)

var (
	// ErrDBModeInvalid is an error for a configuration with an unknown database mode
	ErrDBModeInvalid = errors.New("invalid DB mode")
	// ErrDBMissingPath is an error for a sqlite configuration missing the database path
	ErrDBMissingPath = errors.New("DB path is empty")
	// ErrDatabaseURLMissing is an error for a postgres configuration missing the connection URL
	ErrDatabaseURLMissing = errors.New("DATABASE_URL is empty")
	// ErrPortInvalid is an error for a configuration with an empty port
	ErrPortInvalid = errors.New("invalid port")
)

func readBoolEnv(name string) bool {
	return os.Getenv(name) == "true"
}

// getOrEnv returns value if non-empty, otherwise env var, otherwise default
func getOrEnv(value, envKey, defaultVal string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

// Config is an application configuration
type Config struct {
	Port                string
	DBMode              string
	DBPath              string
	DatabaseURL         string
	LogLevel            string
	DisableRegistration bool
	AdminUsername       string
	AdminPassword       string
}

// Params are the configuration parameters for creating a new Config
type Params struct {
	Port                string
	DBMode              string
	DBPath              string
	DatabaseURL         string
	LogLevel            string
	DisableRegistration bool
}

// New constructs and returns a new validated config.
// Empty string params will fall back to environment variables and defaults.
func New(p Params) (Config, error) {
	c := Config{
		Port:                getOrEnv(p.Port, "PORT", "5000"),
		DBMode:              getOrEnv(p.DBMode, "DB_MODE", DBModeSQLite),
		DBPath:              getOrEnv(p.DBPath, "DB_PATH", filepath.Join("data", DefaultDBFilename)),
		DatabaseURL:         getOrEnv(p.DatabaseURL, "DATABASE_URL", ""),
		LogLevel:            getOrEnv(p.LogLevel, "LOG_LEVEL", "info"),
		DisableRegistration: p.DisableRegistration || readBoolEnv("DISABLE_REGISTRATION"),
		AdminUsername:       getOrEnv("", "ADMIN_USERNAME", "admin"),
		AdminPassword:       getOrEnv("", "ADMIN_PASSWORD", "admin123"),
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

func validate(c Config) error {
	if c.Port == "" {
		return ErrPortInvalid
	}

	switch c.DBMode {
	case DBModeSQLite:
		if c.DBPath == "" {
			return ErrDBMissingPath
		}
	case DBModePostgres:
		if c.DatabaseURL == "" {
			return ErrDatabaseURLMissing
		}
	default:
		return errors.Wrapf(ErrDBModeInvalid, "'%s'", c.DBMode)
	}

	return nil
}
