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

package controllers

import (
	"net/http"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/app"
)

// NewHealth creates a new Health controller
func NewHealth(app *app.App) *Health {
	return &Health{app: app}
}

// Health is a liveness controller
type Health struct {
	app *app.App
}

// Index handles GET /api/health
func (c *Health) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": c.app.Clock.Now().UTC().Format(time.RFC3339),
	})
}

// ServerTime handles GET /api/server-time
func (c *Health) ServerTime(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"serverTime": c.app.Clock.Now().UTC().Format(time.RFC3339),
	})
}
