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
	"strconv"

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/presenters"
)

// NewReports creates a new Reports controller
func NewReports(app *app.App) *Reports {
	return &Reports{app: app}
}

// Reports is a reporting and analytics controller
type Reports struct {
	app *app.App
}

// Stats handles GET /api/reports/stats
func (c *Reports) Stats(w http.ResponseWriter, r *http.Request) {
	var params app.ReportParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		handleJSONError(w, err, "decoding report query")
		return
	}

	stats, err := c.app.GetStats(params)
	if err != nil {
		handleJSONError(w, err, "computing stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// History handles GET /api/reports/history
func (c *Reports) History(w http.ResponseWriter, r *http.Request) {
	var params app.ReportParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		handleJSONError(w, err, "decoding report query")
		return
	}

	history, err := c.app.GetHistoryReport(params)
	if err != nil {
		handleJSONError(w, err, "computing history report")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBookingHistories(history))
}

// RetentionMetrics handles GET /api/reports/retention-metrics
func (c *Reports) RetentionMetrics(w http.ResponseWriter, r *http.Request) {
	months, err := strconv.Atoi(r.URL.Query().Get("months"))
	if err != nil {
		months = 6
	}

	metrics, err := c.app.GetRetentionMetrics(months)
	if err != nil {
		handleJSONError(w, err, "computing retention metrics")
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

// Usage handles GET /api/analytics/usage
func (c *Reports) Usage(w http.ResponseWriter, r *http.Request) {
	timeRange := r.URL.Query().Get("timeRange")
	if timeRange == "" {
		timeRange = "today"
	}

	analytics, err := c.app.GetUsageAnalytics(timeRange)
	if err != nil {
		handleJSONError(w, err, "computing usage analytics")
		return
	}

	respondJSON(w, http.StatusOK, analytics)
}

// MaintenancePredictions handles GET /api/ai/maintenance/predictions
func (c *Reports) MaintenancePredictions(w http.ResponseWriter, r *http.Request) {
	report, err := c.app.GetMaintenancePredictions()
	if err != nil {
		handleJSONError(w, err, "computing maintenance predictions")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// TrafficPredictions handles GET /api/ai/traffic/predictions
func (c *Reports) TrafficPredictions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, c.app.GetTrafficPredictions())
}
