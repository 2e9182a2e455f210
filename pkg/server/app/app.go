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

package app

import (
	"github.com/airavoto/gamingpos/pkg/clock"
	"github.com/airavoto/gamingpos/pkg/server/config"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrEmptyDB is an error for missing database connection in the app configuration
	ErrEmptyDB = errors.New("No database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
	// ErrEmptySessionStore is an error for missing session store in the app configuration
	ErrEmptySessionStore = errors.New("No session store was provided")
)

// App is an application context
type App struct {
	DB       *gorm.DB
	Clock    clock.Clock
	Sessions session.Store
	Config   config.Config
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}
	if a.Sessions == nil {
		return ErrEmptySessionStore
	}

	return nil
}
