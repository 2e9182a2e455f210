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
	"testing"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/pkg/errors"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := New(Params{})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, c.Port, "5000", "port mismatch")
		assert.Equal(t, c.DBMode, DBModeSQLite, "db mode mismatch")
		assert.Equal(t, c.LogLevel, "info", "log level mismatch")
		assert.Equal(t, c.DisableRegistration, false, "disable registration mismatch")
		assert.Equal(t, c.AdminUsername, "admin", "admin username mismatch")
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		c, err := New(Params{
			Port:     "8080",
			DBPath:   "/tmp/test.db",
			LogLevel: "debug",
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, c.Port, "8080", "port mismatch")
		assert.Equal(t, c.DBPath, "/tmp/test.db", "db path mismatch")
		assert.Equal(t, c.LogLevel, "debug", "log level mismatch")
	})

	t.Run("invalid db mode", func(t *testing.T) {
		_, err := New(Params{DBMode: "mysql"})

		assert.Equal(t, errors.Cause(err), ErrDBModeInvalid, "error mismatch")
	})

	t.Run("postgres without url", func(t *testing.T) {
		_, err := New(Params{DBMode: DBModePostgres})

		assert.Equal(t, errors.Cause(err), ErrDatabaseURLMissing, "error mismatch")
	})

	t.Run("postgres with url", func(t *testing.T) {
		c, err := New(Params{
			DBMode:      DBModePostgres,
			DatabaseURL: "postgres://localhost:5432/gamingpos",
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, c.DBMode, DBModePostgres, "db mode mismatch")
	})
}
