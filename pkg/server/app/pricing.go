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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// Price lists are replaced wholesale per category rather than edited row
// by row. The replacement is not atomic; a failed insert leaves the
// category partially written, matching the rest of the system.

// PriceRow is one entry of a replacement price list
type PriceRow struct {
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	PersonCount int    `json:"personCount"`
}

// HappyHourWindow is one entry of a replacement happy-hour schedule
type HappyHourWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Enabled   bool   `json:"enabled"`
}

// GetDeviceConfigs returns all device configs
func (a *App) GetDeviceConfigs() ([]database.DeviceConfig, error) {
	configs := []database.DeviceConfig{}
	if err := a.DB.Find(&configs).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding device configs")
	}

	return configs, nil
}

// UpsertDeviceConfig replaces the device config for a category
func (a *App) UpsertDeviceConfig(category string, count int, seats []string) (database.DeviceConfig, error) {
	if seats == nil {
		seats = []string{}
	}
	encoded, err := json.Marshal(seats)
	if err != nil {
		return database.DeviceConfig{}, pkgErrors.Wrap(err, "encoding seats")
	}

	var existing database.DeviceConfig
	err = a.DB.Where("category = ?", category).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config := database.DeviceConfig{
			ID:       uuid.NewString(),
			Category: category,
			Count:    count,
			Seats:    string(encoded),
		}
		if err := a.DB.Create(&config).Error; err != nil {
			return database.DeviceConfig{}, pkgErrors.Wrap(err, "inserting device config")
		}
		return config, nil
	} else if err != nil {
		return database.DeviceConfig{}, pkgErrors.Wrap(err, "finding device config")
	}

	existing.Count = count
	existing.Seats = string(encoded)
	if err := a.DB.Save(&existing).Error; err != nil {
		return database.DeviceConfig{}, pkgErrors.Wrap(err, "updating device config")
	}

	return existing, nil
}

// DeleteDeviceConfig removes the device config for a category
func (a *App) DeleteDeviceConfig(category string) error {
	if err := a.DB.Where("category = ?", category).Delete(&database.DeviceConfig{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting device config")
	}

	return nil
}

// GetPricingConfigs returns the full price list
func (a *App) GetPricingConfigs() ([]database.PricingConfig, error) {
	configs := []database.PricingConfig{}
	if err := a.DB.Find(&configs).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding pricing configs")
	}

	return configs, nil
}

// ReplacePricingConfigs swaps out the price list for one category and
// returns the new rows.
func (a *App) ReplacePricingConfigs(category string, rows []PriceRow) ([]database.PricingConfig, error) {
	if category == "" || rows == nil {
		return nil, ErrInvalidConfigPayload
	}

	if err := a.DB.Where("category = ?", category).Delete(&database.PricingConfig{}).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "deleting pricing configs")
	}

	for _, row := range rows {
		personCount := row.PersonCount
		if personCount == 0 {
			personCount = 1
		}
		config := database.PricingConfig{
			ID:          uuid.NewString(),
			Category:    category,
			Duration:    row.Duration,
			Price:       row.Price,
			PersonCount: personCount,
		}
		if err := a.DB.Create(&config).Error; err != nil {
			return nil, pkgErrors.Wrap(err, "inserting pricing config")
		}
	}

	configs := []database.PricingConfig{}
	if err := a.DB.Where("category = ?", category).Find(&configs).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding pricing configs")
	}

	return configs, nil
}

// DeletePricingConfigs removes the price list for a category
func (a *App) DeletePricingConfigs(category string) error {
	if err := a.DB.Where("category = ?", category).Delete(&database.PricingConfig{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting pricing configs")
	}

	return nil
}

// GetHappyHoursPricing returns the happy-hour price list
func (a *App) GetHappyHoursPricing() ([]database.HappyHoursPricing, error) {
	pricing := []database.HappyHoursPricing{}
	if err := a.DB.Find(&pricing).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding happy hours pricing")
	}

	return pricing, nil
}

// ReplaceHappyHoursPricing swaps out the happy-hour price list for one
// category and returns the new rows.
func (a *App) ReplaceHappyHoursPricing(category string, rows []PriceRow) ([]database.HappyHoursPricing, error) {
	if category == "" || rows == nil {
		return nil, ErrInvalidConfigPayload
	}

	if err := a.DB.Where("category = ?", category).Delete(&database.HappyHoursPricing{}).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "deleting happy hours pricing")
	}

	for _, row := range rows {
		personCount := row.PersonCount
		if personCount == 0 {
			personCount = 1
		}
		pricing := database.HappyHoursPricing{
			ID:          uuid.NewString(),
			Category:    category,
			Duration:    row.Duration,
			Price:       row.Price,
			PersonCount: personCount,
		}
		if err := a.DB.Create(&pricing).Error; err != nil {
			return nil, pkgErrors.Wrap(err, "inserting happy hours pricing")
		}
	}

	pricing := []database.HappyHoursPricing{}
	if err := a.DB.Where("category = ?", category).Find(&pricing).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding happy hours pricing")
	}

	return pricing, nil
}

// DeleteHappyHoursPricing removes the happy-hour price list for a category
func (a *App) DeleteHappyHoursPricing(category string) error {
	if err := a.DB.Where("category = ?", category).Delete(&database.HappyHoursPricing{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting happy hours pricing")
	}

	return nil
}

// GetHappyHoursConfigs returns all happy-hour schedules
func (a *App) GetHappyHoursConfigs() ([]database.HappyHoursConfig, error) {
	configs := []database.HappyHoursConfig{}
	if err := a.DB.Find(&configs).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding happy hours configs")
	}

	return configs, nil
}

// ReplaceHappyHoursConfigs swaps out the happy-hour schedule for one
// category and returns the new rows.
func (a *App) ReplaceHappyHoursConfigs(category string, windows []HappyHourWindow) ([]database.HappyHoursConfig, error) {
	if category == "" || windows == nil {
		return nil, ErrInvalidConfigPayload
	}

	if err := a.DB.Where("category = ?", category).Delete(&database.HappyHoursConfig{}).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "deleting happy hours configs")
	}

	for _, w := range windows {
		config := database.HappyHoursConfig{
			ID:        uuid.NewString(),
			Category:  category,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Enabled:   w.Enabled,
		}
		if err := a.DB.Create(&config).Error; err != nil {
			return nil, pkgErrors.Wrap(err, "inserting happy hours config")
		}
	}

	configs := []database.HappyHoursConfig{}
	if err := a.DB.Where("category = ?", category).Find(&configs).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding happy hours configs")
	}

	return configs, nil
}

// DeleteHappyHoursConfigs removes the happy-hour schedule for a category
func (a *App) DeleteHappyHoursConfigs(category string) error {
	if err := a.DB.Where("category = ?", category).Delete(&database.HappyHoursConfig{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting happy hours configs")
	}

	return nil
}

// IsHappyHourActive reports whether the current wall-clock time falls
// inside an enabled happy-hour window for the category. The boundary
// minutes are inclusive on both ends. Windows do not wrap midnight.
func (a *App) IsHappyHourActive(category string) (bool, error) {
	now := a.Clock.Now()
	current := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())

	var config database.HappyHoursConfig
	err := a.DB.Where("category = ? AND enabled = ?", category, true).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	} else if err != nil {
		return false, pkgErrors.Wrap(err, "finding happy hours config")
	}

	return current >= config.StartTime && current <= config.EndTime, nil
}
