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

package presenters

import "github.com/airavoto/gamingpos/pkg/server/database"

// DeviceConfig is a presented device config with its seat names decoded
type DeviceConfig struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Seats    []string `json:"seats"`
}

// PresentDeviceConfig presents a device config
func PresentDeviceConfig(c database.DeviceConfig) DeviceConfig {
	return DeviceConfig{
		ID:       c.ID,
		Category: c.Category,
		Count:    c.Count,
		Seats:    decodeStrings(c.Seats),
	}
}

// PresentDeviceConfigs presents a slice of device configs
func PresentDeviceConfigs(configs []database.DeviceConfig) []DeviceConfig {
	ret := make([]DeviceConfig, 0, len(configs))
	for _, c := range configs {
		ret = append(ret, PresentDeviceConfig(c))
	}

	return ret
}

// PricingConfig is a presented price list row
type PricingConfig struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	PersonCount int    `json:"personCount"`
}

// PresentPricingConfig presents a price list row
func PresentPricingConfig(c database.PricingConfig) PricingConfig {
	return PricingConfig{
		ID:          c.ID,
		Category:    c.Category,
		Duration:    c.Duration,
		Price:       c.Price,
		PersonCount: c.PersonCount,
	}
}

// PresentPricingConfigs presents a slice of price list rows
func PresentPricingConfigs(configs []database.PricingConfig) []PricingConfig {
	ret := make([]PricingConfig, 0, len(configs))
	for _, c := range configs {
		ret = append(ret, PresentPricingConfig(c))
	}

	return ret
}

// PresentHappyHoursPricing presents a happy-hour price list row
func PresentHappyHoursPricing(p database.HappyHoursPricing) PricingConfig {
	return PricingConfig{
		ID:          p.ID,
		Category:    p.Category,
		Duration:    p.Duration,
		Price:       p.Price,
		PersonCount: p.PersonCount,
	}
}

// PresentHappyHoursPricings presents a slice of happy-hour price list rows
func PresentHappyHoursPricings(pricing []database.HappyHoursPricing) []PricingConfig {
	ret := make([]PricingConfig, 0, len(pricing))
	for _, p := range pricing {
		ret = append(ret, PresentHappyHoursPricing(p))
	}

	return ret
}

// HappyHoursConfig is a presented happy-hour schedule row
type HappyHoursConfig struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Enabled   bool   `json:"enabled"`
}

// PresentHappyHoursConfig presents a happy-hour schedule row
func PresentHappyHoursConfig(c database.HappyHoursConfig) HappyHoursConfig {
	return HappyHoursConfig{
		ID:        c.ID,
		Category:  c.Category,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Enabled:   c.Enabled,
	}
}

// PresentHappyHoursConfigs presents a slice of happy-hour schedule rows
func PresentHappyHoursConfigs(configs []database.HappyHoursConfig) []HappyHoursConfig {
	ret := make([]HappyHoursConfig, 0, len(configs))
	for _, c := range configs {
		ret = append(ret, PresentHappyHoursConfig(c))
	}

	return ret
}

// CenterInfo is the presented venue info
type CenterInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email"`
	Hours       string  `json:"hours"`
	Timezone    string  `json:"timezone"`
	UpdatedAt   string  `json:"updatedAt"`
}

// PresentCenterInfo presents the venue info
func PresentCenterInfo(i database.GamingCenterInfo) CenterInfo {
	return CenterInfo{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Address:     i.Address,
		Phone:       i.Phone,
		Email:       i.Email,
		Hours:       i.Hours,
		Timezone:    i.Timezone,
		UpdatedAt:   FormatTS(i.UpdatedAt),
	}
}

// RetentionConfig is the presented retention windows
type RetentionConfig struct {
	ID                  string `json:"id"`
	BookingHistoryDays  int    `json:"bookingHistoryDays"`
	ActivityLogsDays    int    `json:"activityLogsDays"`
	LoadMetricsDays     int    `json:"loadMetricsDays"`
	LoadPredictionsDays int    `json:"loadPredictionsDays"`
	ExpensesDays        int    `json:"expensesDays"`
	UpdatedAt           string `json:"updatedAt"`
}

// PresentRetentionConfig presents the retention windows
func PresentRetentionConfig(c database.RetentionConfig) RetentionConfig {
	return RetentionConfig{
		ID:                  c.ID,
		BookingHistoryDays:  c.BookingHistoryDays,
		ActivityLogsDays:    c.ActivityLogsDays,
		LoadMetricsDays:     c.LoadMetricsDays,
		LoadPredictionsDays: c.LoadPredictionsDays,
		ExpensesDays:        c.ExpensesDays,
		UpdatedAt:           FormatTS(c.UpdatedAt),
	}
}
