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

	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetCenterInfo returns the venue info, or nil when none has been saved
func (a *App) GetCenterInfo() (*database.GamingCenterInfo, error) {
	var info database.GamingCenterInfo
	err := a.DB.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, pkgErrors.Wrap(err, "finding center info")
	}

	return &info, nil
}

// CenterInfoParams are the venue fields accepted on save
type CenterInfoParams struct {
	Name        string
	Description string
	Address     string
	Phone       string
	Email       *string
	Hours       string
	Timezone    string
}

// SaveCenterInfo creates or replaces the singleton venue info row
func (a *App) SaveCenterInfo(p CenterInfoParams) (database.GamingCenterInfo, error) {
	timezone := p.Timezone
	if timezone == "" {
		timezone = "Asia/Kolkata"
	}

	existing, err := a.GetCenterInfo()
	if err != nil {
		return database.GamingCenterInfo{}, err
	}

	info := database.GamingCenterInfo{
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Hours:       p.Hours,
		Timezone:    timezone,
		UpdatedAt:   a.Clock.Now().UnixMilli(),
	}
	if existing != nil {
		info.ID = existing.ID
	} else {
		info.ID = uuid.NewString()
	}
	if err := a.DB.Save(&info).Error; err != nil {
		return database.GamingCenterInfo{}, pkgErrors.Wrap(err, "saving center info")
	}

	return info, nil
}

// GetRetentionConfig returns the retention windows, creating the row with
// its defaults on first access.
func (a *App) GetRetentionConfig() (database.RetentionConfig, error) {
	var config database.RetentionConfig
	err := a.DB.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config = database.RetentionConfig{
			ID:                  uuid.NewString(),
			BookingHistoryDays:  36500,
			ActivityLogsDays:    36500,
			LoadMetricsDays:     36500,
			LoadPredictionsDays: 36500,
			ExpensesDays:        36500,
			UpdatedAt:           a.Clock.Now().UnixMilli(),
		}
		if err := a.DB.Create(&config).Error; err != nil {
			return database.RetentionConfig{}, pkgErrors.Wrap(err, "inserting retention config")
		}
		return config, nil
	} else if err != nil {
		return database.RetentionConfig{}, pkgErrors.Wrap(err, "finding retention config")
	}

	return config, nil
}

// GetDeviceMaintenance returns all maintenance rows, most recently
// updated first.
func (a *App) GetDeviceMaintenance() ([]database.DeviceMaintenance, error) {
	maintenance := []database.DeviceMaintenance{}
	if err := a.DB.Order("updated_at DESC").Find(&maintenance).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding device maintenance")
	}

	return maintenance, nil
}

// SeatStatus is the public occupancy of one named seat
type SeatStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CategoryStatus is the public status board entry for one category
type CategoryStatus struct {
	Category  string       `json:"category"`
	Total     int          `json:"total"`
	Available int          `json:"available"`
	Occupied  int          `json:"occupied"`
	Seats     []SeatStatus `json:"seats"`
}

// GetPublicStatus returns the per-category seat occupancy shown on the
// public status board. Only sessions in progress count as occupied.
func (a *App) GetPublicStatus() ([]CategoryStatus, error) {
	configs := []database.DeviceConfig{}
	if err := a.DB.Find(&configs).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding device configs")
	}

	active := []database.Booking{}
	err := a.DB.Where("status IN ?", []string{database.BookingStatusRunning, database.BookingStatusPaused}).
		Find(&active).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding active bookings")
	}

	status := []CategoryStatus{}
	for _, cfg := range configs {
		occupied := map[string]bool{}
		for _, b := range active {
			if b.Category == cfg.Category {
				occupied[b.SeatName] = true
			}
		}

		names := []string{}
		if err := json.Unmarshal([]byte(cfg.Seats), &names); err != nil {
			names = nil
		}

		seats := make([]SeatStatus, 0, len(names))
		for _, name := range names {
			state := "available"
			if occupied[name] {
				state = "occupied"
			}
			seats = append(seats, SeatStatus{Name: name, Status: state})
		}

		status = append(status, CategoryStatus{
			Category:  cfg.Category,
			Total:     cfg.Count,
			Available: cfg.Count - len(occupied),
			Occupied:  len(occupied),
			Seats:     seats,
		})
	}

	return status, nil
}
