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
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
)

// ReportParams select the reporting window. A custom window takes
// precedence over the named period.
type ReportParams struct {
	Period    string `schema:"period"`
	StartDate string `schema:"startDate"`
	EndDate   string `schema:"endDate"`
}

// Stats is the aggregate report for one window
type Stats struct {
	TotalBookings      int    `json:"totalBookings"`
	TotalRevenue       string `json:"totalRevenue"`
	UniqueCustomers    int    `json:"uniqueCustomers"`
	AvgSessionDuration int    `json:"avgSessionDuration"`
	FoodRevenue        string `json:"foodRevenue"`
	CompletedBookings  int    `json:"completedBookings"`
	Period             string `json:"period"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
}

func parseReportDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, ErrInvalidDate
}

// reportWindow resolves the requested window in local time. Named periods
// end at 23:59:59 today; daily starts at midnight today, weekly at the
// most recent Sunday, monthly at the first of the month. Custom windows
// span the given dates with the end clamped to the last millisecond of
// its day.
func (a *App) reportWindow(p ReportParams) (time.Time, time.Time, string, error) {
	now := a.Clock.Now()

	if p.StartDate != "" && p.EndDate != "" {
		start, err := parseReportDate(p.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, "", err
		}
		end, err := parseReportDate(p.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, "", err
		}
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999e6, end.Location())

		period := p.Period
		if period == "" {
			period = "daily"
		}
		return start, end, period, nil
	}

	period := p.Period
	if period == "" {
		period = "daily"
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	var start time.Time
	switch period {
	case "weekly":
		dayOfWeek := int(now.Weekday())
		sunday := now.AddDate(0, 0, -dayOfWeek)
		start = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, now.Location())
	case "monthly":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	return start, end, period, nil
}

type foodOrder struct {
	Item     string `json:"item"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

func parseFoodOrders(encoded string) []foodOrder {
	orders := []foodOrder{}
	if err := json.Unmarshal([]byte(encoded), &orders); err != nil {
		return nil
	}

	return orders
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}

// reportRow is the subset of booking fields the reports aggregate over,
// shared between live bookings and archived history.
type reportRow struct {
	CustomerName string
	StartTime    int64
	EndTime      int64
	Price        string
	Status       string
	FoodOrders   string
}

func (a *App) reportRows(startMs, endMs int64) ([]reportRow, error) {
	bookings := []database.Booking{}
	err := a.DB.Where("start_time >= ? AND start_time <= ?", startMs, endMs).Find(&bookings).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding bookings in range")
	}

	history := []database.BookingHistory{}
	err = a.DB.Where("start_time >= ? AND start_time <= ?", startMs, endMs).Find(&history).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding history in range")
	}

	rows := make([]reportRow, 0, len(bookings)+len(history))
	for _, b := range bookings {
		rows = append(rows, reportRow{
			CustomerName: b.CustomerName,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Price:        b.Price,
			Status:       b.Status,
			FoodOrders:   b.FoodOrders,
		})
	}
	for _, h := range history {
		rows = append(rows, reportRow{
			CustomerName: h.CustomerName,
			StartTime:    h.StartTime,
			EndTime:      h.EndTime,
			Price:        h.Price,
			Status:       h.Status,
			FoodOrders:   h.FoodOrders,
		})
	}

	return rows, nil
}

func isFinished(status string) bool {
	return status == database.BookingStatusCompleted || status == database.BookingStatusExpired
}

// GetStats computes the aggregate report over live and archived bookings
// whose start time falls inside the window. Revenue counts finished
// bookings only; food revenue counts every booking regardless of status.
func (a *App) GetStats(p ReportParams) (Stats, error) {
	start, end, period, err := a.reportWindow(p)
	if err != nil {
		return Stats{}, err
	}

	rows, err := a.reportRows(start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return Stats{}, err
	}

	totalRevenue := 0.0
	foodRevenue := 0.0
	completedCount := 0
	totalDurationMin := 0.0
	customers := map[string]bool{}

	for _, row := range rows {
		customers[strings.TrimSpace(strings.ToLower(row.CustomerName))] = true

		if isFinished(row.Status) {
			completedCount++
			totalRevenue += parsePrice(row.Price)
			totalDurationMin += float64(row.EndTime-row.StartTime) / (1000 * 60)
		}

		for _, order := range parseFoodOrders(row.FoodOrders) {
			foodRevenue += parsePrice(order.Price) * float64(order.Quantity)
		}
	}

	avgDuration := 0
	if completedCount > 0 {
		avgDuration = int(math.Round(totalDurationMin / float64(completedCount)))
	}

	return Stats{
		TotalBookings:      len(rows),
		TotalRevenue:       fmt.Sprintf("%.2f", totalRevenue),
		UniqueCustomers:    len(customers),
		AvgSessionDuration: avgDuration,
		FoodRevenue:        fmt.Sprintf("%.2f", foodRevenue),
		CompletedBookings:  completedCount,
		Period:             period,
		StartDate:          start.Format(time.RFC3339),
		EndDate:            end.Format(time.RFC3339),
	}, nil
}

// GetHistoryReport returns archived bookings whose start time falls
// inside the window, most recently archived first.
func (a *App) GetHistoryReport(p ReportParams) ([]database.BookingHistory, error) {
	start, end, _, err := a.reportWindow(p)
	if err != nil {
		return nil, err
	}

	history := []database.BookingHistory{}
	err = a.DB.Where("start_time >= ? AND start_time <= ?", start.UnixMilli(), end.UnixMilli()).
		Order("archived_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding history in range")
	}

	return history, nil
}

// RetentionMetrics summarize repeat visits over a trailing window
type RetentionMetrics struct {
	TotalCustomers     int     `json:"totalCustomers"`
	ReturningCustomers int     `json:"returningCustomers"`
	RetentionRate      float64 `json:"retentionRate"`
	Period             string  `json:"period"`
}

// GetRetentionMetrics computes customer retention over the trailing
// number of months from archived history. A customer is returning after
// more than one visit; the rate is a percentage rounded to two decimals.
func (a *App) GetRetentionMetrics(months int) (RetentionMetrics, error) {
	if months <= 0 {
		months = 6
	}

	now := a.Clock.Now()
	start := now.AddDate(0, -months, 0)

	history := []database.BookingHistory{}
	err := a.DB.Where("start_time >= ? AND start_time <= ?", start.UnixMilli(), now.UnixMilli()).
		Find(&history).Error
	if err != nil {
		return RetentionMetrics{}, pkgErrors.Wrap(err, "finding history in range")
	}

	visits := map[string]int{}
	for _, h := range history {
		key := strings.TrimSpace(strings.ToLower(h.CustomerName))
		visits[key]++
	}

	total := len(visits)
	returning := 0
	for _, n := range visits {
		if n > 1 {
			returning++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(returning)/float64(total)*100*100) / 100
	}

	return RetentionMetrics{
		TotalCustomers:     total,
		ReturningCustomers: returning,
		RetentionRate:      rate,
		Period:             fmt.Sprintf("%d months", months),
	}, nil
}
