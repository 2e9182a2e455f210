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
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
)

// CategoryUsage is the live occupancy of one device category
type CategoryUsage struct {
	Category   string `json:"category"`
	Occupied   int    `json:"occupied"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// HourlyUsage is one hourly bucket of bookings and revenue
type HourlyUsage struct {
	Hour     string  `json:"hour"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// RealtimePoint is one sample of the synthetic realtime occupancy series
type RealtimePoint struct {
	Timestamp string `json:"timestamp"`
	Occupancy int    `json:"occupancy"`
	Capacity  int    `json:"capacity"`
}

// UsageAnalytics is the full analytics dashboard payload
type UsageAnalytics struct {
	CurrentOccupancy   int             `json:"currentOccupancy"`
	TotalCapacity      int             `json:"totalCapacity"`
	OccupancyRate      float64         `json:"occupancyRate"`
	ActiveBookings     int             `json:"activeBookings"`
	CategoryUsage      []CategoryUsage `json:"categoryUsage"`
	HourlyUsage        []HourlyUsage   `json:"hourlyUsage"`
	RealtimeData       []RealtimePoint `json:"realtimeData"`
	UniqueCustomers    int             `json:"uniqueCustomers"`
	AvgSessionDuration int             `json:"avgSessionDuration"`
	TotalFoodOrders    int             `json:"totalFoodOrders"`
	FoodRevenue        float64         `json:"foodRevenue"`
}

// analyticsWindow resolves a timeRange keyword into a local-time window
func (a *App) analyticsWindow(timeRange string) (time.Time, time.Time) {
	now := a.Clock.Now()

	switch timeRange {
	case "week":
		dayOfWeek := int(now.Weekday())
		sunday := now.AddDate(0, 0, -dayOfWeek)
		start := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, now.Location())
		return start, now
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	case "all":
		return time.UnixMilli(0), now
	default:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		return start, end
	}
}

// GetUsageAnalytics computes the analytics dashboard: live occupancy
// against configured capacity, per-category usage, hourly buckets over
// the selected range, and a synthetic 10-point realtime series sampled
// at 5-second intervals ending now.
func (a *App) GetUsageAnalytics(timeRange string) (UsageAnalytics, error) {
	now := a.Clock.Now()
	rangeStart, rangeEnd := a.analyticsWindow(timeRange)

	configs := []database.DeviceConfig{}
	if err := a.DB.Find(&configs).Error; err != nil {
		return UsageAnalytics{}, pkgErrors.Wrap(err, "finding device configs")
	}

	// Occupancy counts sessions in progress; upcoming bookings hold a
	// seat for availability but do not occupy one yet.
	active := []database.Booking{}
	err := a.DB.Where("status IN ?", []string{database.BookingStatusRunning, database.BookingStatusPaused}).
		Find(&active).Error
	if err != nil {
		return UsageAnalytics{}, pkgErrors.Wrap(err, "finding active bookings")
	}

	totalCapacity := 0
	for _, cfg := range configs {
		totalCapacity += cfg.Count
	}

	occupancyRate := 0.0
	if totalCapacity > 0 {
		occupancyRate = float64(len(active)) / float64(totalCapacity) * 100
	}

	categoryUsage := []CategoryUsage{}
	for _, cfg := range configs {
		occupied := 0
		for _, b := range active {
			if b.Category == cfg.Category {
				occupied++
			}
		}
		percentage := 0
		if cfg.Count > 0 {
			percentage = int(math.Round(float64(occupied) / float64(cfg.Count) * 100))
		}
		categoryUsage = append(categoryUsage, CategoryUsage{
			Category:   cfg.Category,
			Occupied:   occupied,
			Total:      cfg.Count,
			Percentage: percentage,
		})
	}

	rows, err := a.reportRows(rangeStart.UnixMilli(), rangeEnd.UnixMilli())
	if err != nil {
		return UsageAnalytics{}, err
	}

	// Trailing empty buckets for hours that have not happened yet are
	// dropped; elapsed hours stay even when empty.
	hourlyUsage := []HourlyUsage{}
	for hour := 0; hour < 24; hour++ {
		count := 0
		revenue := 0.0
		for _, row := range rows {
			if time.UnixMilli(row.StartTime).In(now.Location()).Hour() == hour {
				count++
				revenue += parsePrice(row.Price)
			}
		}
		if count > 0 || now.Hour() >= hour {
			hourlyUsage = append(hourlyUsage, HourlyUsage{
				Hour:     fmt.Sprintf("%02d:00", hour),
				Bookings: count,
				Revenue:  revenue,
			})
		}
	}

	customers := map[string]bool{}
	totalDurationMin := 0.0
	completedCount := 0
	totalFoodOrders := 0
	foodRevenue := 0.0
	for _, row := range rows {
		customers[strings.TrimSpace(strings.ToLower(row.CustomerName))] = true

		if isFinished(row.Status) {
			completedCount++
			totalDurationMin += float64(row.EndTime-row.StartTime) / (1000 * 60)
		}

		orders := parseFoodOrders(row.FoodOrders)
		totalFoodOrders += len(orders)
		for _, order := range orders {
			foodRevenue += parsePrice(order.Price) * float64(order.Quantity)
		}
	}

	avgDuration := 0
	if completedCount > 0 {
		avgDuration = int(math.Round(totalDurationMin / float64(completedCount)))
	}

	realtimeData := make([]RealtimePoint, 0, 10)
	for i := 0; i < 10; i++ {
		sample := now.Add(-time.Duration(9-i) * 5 * time.Second)
		realtimeData = append(realtimeData, RealtimePoint{
			Timestamp: sample.Format("03:04:05 PM"),
			Occupancy: len(active),
			Capacity:  totalCapacity,
		})
	}

	return UsageAnalytics{
		CurrentOccupancy:   len(active),
		TotalCapacity:      totalCapacity,
		OccupancyRate:      occupancyRate,
		ActiveBookings:     len(active),
		CategoryUsage:      categoryUsage,
		HourlyUsage:        hourlyUsage,
		RealtimeData:       realtimeData,
		UniqueCustomers:    len(customers),
		AvgSessionDuration: avgDuration,
		TotalFoodOrders:    totalFoodOrders,
		FoodRevenue:        foodRevenue,
	}, nil
}
