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

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/presenters"
	"github.com/gorilla/mux"
)

// NewMisc creates a new Misc controller
func NewMisc(app *app.App) *Misc {
	return &Misc{app: app}
}

// Misc serves the audit trail, notifications, venue info and status board
type Misc struct {
	app *app.App
}

// ActivityLogs handles GET /api/activity-logs
func (c *Misc) ActivityLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := c.app.GetActivityLogs()
	if err != nil {
		handleJSONError(w, err, "getting activity logs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentActivityLogs(logs))
}

// Notifications handles GET /api/notifications
func (c *Misc) Notifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := c.app.GetNotifications()
	if err != nil {
		handleJSONError(w, err, "getting notifications")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentNotifications(notifications))
}

// MarkNotificationRead handles PATCH /api/notifications/{notificationID}/read
func (c *Misc) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	notification, err := c.app.MarkNotificationRead(vars["notificationID"])
	if err != nil {
		handleJSONError(w, err, "marking notification read")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentNotification(notification))
}

// MarkAllNotificationsRead handles POST /api/notifications/mark-all-read
func (c *Misc) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := c.app.MarkAllNotificationsRead(); err != nil {
		handleJSONError(w, err, "marking notifications read")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PaymentLogs handles GET /api/payment-logs
func (c *Misc) PaymentLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := c.app.GetPaymentLogs()
	if err != nil {
		handleJSONError(w, err, "getting payment logs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentPaymentLogs(logs))
}

// DeviceMaintenance handles GET /api/device-maintenance
func (c *Misc) DeviceMaintenance(w http.ResponseWriter, r *http.Request) {
	maintenance, err := c.app.GetDeviceMaintenance()
	if err != nil {
		handleJSONError(w, err, "getting device maintenance")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentDeviceMaintenances(maintenance))
}

// CenterInfo handles GET /api/gaming-center-info
func (c *Misc) CenterInfo(w http.ResponseWriter, r *http.Request) {
	info, err := c.app.GetCenterInfo()
	if err != nil {
		handleJSONError(w, err, "getting center info")
		return
	}

	if info == nil {
		respondJSON(w, http.StatusOK, nil)
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentCenterInfo(*info))
}

// CenterInfoForm is the payload for saving venue info
type CenterInfoForm struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email"`
	Hours       string  `json:"hours"`
	Timezone    string  `json:"timezone"`
}

// SaveCenterInfo handles POST /api/gaming-center-info
func (c *Misc) SaveCenterInfo(w http.ResponseWriter, r *http.Request) {
	var form CenterInfoForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing center info payload")
		return
	}

	info, err := c.app.SaveCenterInfo(app.CenterInfoParams{
		Name:        form.Name,
		Description: form.Description,
		Address:     form.Address,
		Phone:       form.Phone,
		Email:       form.Email,
		Hours:       form.Hours,
		Timezone:    form.Timezone,
	})
	if err != nil {
		handleJSONError(w, err, "saving center info")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentCenterInfo(info))
}

// RetentionConfig handles GET /api/retention/config
func (c *Misc) RetentionConfig(w http.ResponseWriter, r *http.Request) {
	config, err := c.app.GetRetentionConfig()
	if err != nil {
		handleJSONError(w, err, "getting retention config")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentRetentionConfig(config))
}

// PublicStatus handles GET /api/public/status
func (c *Misc) PublicStatus(w http.ResponseWriter, r *http.Request) {
	status, err := c.app.GetPublicStatus()
	if err != nil {
		handleJSONError(w, err, "getting public status")
		return
	}

	respondJSON(w, http.StatusOK, status)
}
