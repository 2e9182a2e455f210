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
	"fmt"
	"net/http"

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/presenters"
	"github.com/gorilla/mux"
)

// NewConfigs creates a new Configs controller
func NewConfigs(app *app.App) *Configs {
	return &Configs{app: app}
}

// Configs is a controller for device, pricing and happy-hour configuration
type Configs struct {
	app *app.App
}

// DeviceConfigs handles GET /api/device-config
func (c *Configs) DeviceConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := c.app.GetDeviceConfigs()
	if err != nil {
		handleJSONError(w, err, "getting device configs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentDeviceConfigs(configs))
}

// DeviceConfigForm is the payload for replacing a device config
type DeviceConfigForm struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Seats    []string `json:"seats"`
}

// SaveDeviceConfig handles POST /api/device-config
func (c *Configs) SaveDeviceConfig(w http.ResponseWriter, r *http.Request) {
	var form DeviceConfigForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing device config payload")
		return
	}

	config, err := c.app.UpsertDeviceConfig(form.Category, form.Count, form.Seats)
	if err != nil {
		handleJSONError(w, err, "saving device config")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentDeviceConfig(config))
}

// DeleteDeviceConfig handles DELETE /api/device-config/{category}
func (c *Configs) DeleteDeviceConfig(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := vars["category"]

	if err := c.app.DeleteDeviceConfig(category); err != nil {
		handleJSONError(w, err, "deleting device config")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Deleted device config for %s", category),
	})
}

// PriceListForm is the payload for replacing a category price list
type PriceListForm struct {
	Category string         `json:"category"`
	Configs  []app.PriceRow `json:"configs"`
}

// PricingConfigs handles GET /api/pricing-config
func (c *Configs) PricingConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := c.app.GetPricingConfigs()
	if err != nil {
		handleJSONError(w, err, "getting pricing configs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentPricingConfigs(configs))
}

// SavePricingConfigs handles POST /api/pricing-config
func (c *Configs) SavePricingConfigs(w http.ResponseWriter, r *http.Request) {
	var form PriceListForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing pricing config payload")
		return
	}

	configs, err := c.app.ReplacePricingConfigs(form.Category, form.Configs)
	if err != nil {
		handleJSONError(w, err, "replacing pricing configs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentPricingConfigs(configs))
}

// DeletePricingConfigs handles DELETE /api/pricing-config/{category}
func (c *Configs) DeletePricingConfigs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := vars["category"]

	if err := c.app.DeletePricingConfigs(category); err != nil {
		handleJSONError(w, err, "deleting pricing configs")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Deleted pricing config for %s", category),
	})
}

// HappyHoursConfigs handles GET /api/happy-hours-config
func (c *Configs) HappyHoursConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := c.app.GetHappyHoursConfigs()
	if err != nil {
		handleJSONError(w, err, "getting happy hours configs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHappyHoursConfigs(configs))
}

// HappyHoursConfigForm is the payload for replacing a happy-hour schedule
type HappyHoursConfigForm struct {
	Category string                `json:"category"`
	Configs  []app.HappyHourWindow `json:"configs"`
}

// SaveHappyHoursConfigs handles POST /api/happy-hours-config
func (c *Configs) SaveHappyHoursConfigs(w http.ResponseWriter, r *http.Request) {
	var form HappyHoursConfigForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing happy hours config payload")
		return
	}

	configs, err := c.app.ReplaceHappyHoursConfigs(form.Category, form.Configs)
	if err != nil {
		handleJSONError(w, err, "replacing happy hours configs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHappyHoursConfigs(configs))
}

// DeleteHappyHoursConfigs handles DELETE /api/happy-hours-config/{category}
func (c *Configs) DeleteHappyHoursConfigs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := vars["category"]

	if err := c.app.DeleteHappyHoursConfigs(category); err != nil {
		handleJSONError(w, err, "deleting happy hours configs")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Deleted happy hours config for %s", category),
	})
}

// HappyHoursPricing handles GET /api/happy-hours-pricing
func (c *Configs) HappyHoursPricing(w http.ResponseWriter, r *http.Request) {
	pricing, err := c.app.GetHappyHoursPricing()
	if err != nil {
		handleJSONError(w, err, "getting happy hours pricing")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHappyHoursPricings(pricing))
}

// SaveHappyHoursPricing handles POST /api/happy-hours-pricing
func (c *Configs) SaveHappyHoursPricing(w http.ResponseWriter, r *http.Request) {
	var form PriceListForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing happy hours pricing payload")
		return
	}

	pricing, err := c.app.ReplaceHappyHoursPricing(form.Category, form.Configs)
	if err != nil {
		handleJSONError(w, err, "replacing happy hours pricing")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHappyHoursPricings(pricing))
}

// DeleteHappyHoursPricing handles DELETE /api/happy-hours-pricing/{category}
func (c *Configs) DeleteHappyHoursPricing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := vars["category"]

	if err := c.app.DeleteHappyHoursPricing(category); err != nil {
		handleJSONError(w, err, "deleting happy hours pricing")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Deleted happy hours pricing for %s", category),
	})
}

// HappyHoursActive handles GET /api/happy-hours-active/{category}
func (c *Configs) HappyHoursActive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	active, err := c.app.IsHappyHourActive(vars["category"])
	if err != nil {
		handleJSONError(w, err, "checking happy hours")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"active": active})
}
