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
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
)

var seatNumberRegexp = regexp.MustCompile(`\d+$`)

// ParseSeatNumber extracts the trailing digits of a seat name, so that
// "PS5-12" yields 12. Names without trailing digits yield 0.
func ParseSeatNumber(seatName string) int {
	match := seatNumberRegexp.FindString(seatName)
	if match == "" {
		return 0
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	return n
}

// CategoryAvailability lists the free seat numbers for one device category
type CategoryAvailability struct {
	Category string `json:"category"`
	Seats    []int  `json:"seats"`
}

// AvailabilityParams identify the requested time window
type AvailabilityParams struct {
	Date            string `schema:"date"`
	TimeSlot        string `schema:"timeSlot"`
	DurationMinutes string `schema:"durationMinutes"`
}

// resolveWindow turns date + timeSlot + duration into a concrete interval.
// Only the start half of the slot matters; the end is start + duration.
func resolveWindow(p AvailabilityParams) (time.Time, time.Time, error) {
	if p.Date == "" || p.TimeSlot == "" || p.DurationMinutes == "" {
		return time.Time{}, time.Time{}, ErrAvailabilityParamsMissing
	}

	day, err := time.ParseInLocation("2006-01-02", p.Date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	startStr := p.TimeSlot
	if i := strings.Index(startStr, "-"); i >= 0 {
		startStr = startStr[:i]
	}
	parts := strings.Split(startStr, ":")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, ErrInvalidTimeSlot
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimeSlot
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimeSlot
	}

	duration, err := strconv.Atoi(p.DurationMinutes)
	if err != nil {
		return time.Time{}, time.Time{}, ErrAvailabilityParamsMissing
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
	end := start.Add(time.Duration(duration) * time.Minute)

	return start, end, nil
}

// seatNumbers resolves the bookable seat numbers of a device config: the
// trailing digits of each named seat, or 1..count when no seats are named.
func seatNumbers(cfg database.DeviceConfig) []int {
	names := []string{}
	if err := json.Unmarshal([]byte(cfg.Seats), &names); err != nil {
		names = nil
	}

	if len(names) > 0 {
		nums := []int{}
		for _, name := range names {
			if n := ParseSeatNumber(name); n > 0 {
				nums = append(nums, n)
			}
		}
		return nums
	}

	nums := make([]int, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		nums = append(nums, i)
	}
	return nums
}

// AvailableSeats returns, per category, the seat numbers free for the
// requested window. A seat is taken when an active booking overlaps the
// window; intervals are half-open, so a booking ending exactly at the
// window start does not conflict.
func (a *App) AvailableSeats(p AvailabilityParams) ([]CategoryAvailability, error) {
	requestStart, requestEnd, err := resolveWindow(p)
	if err != nil {
		return nil, err
	}

	configs := []database.DeviceConfig{}
	if err := a.DB.Find(&configs).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding device configs")
	}

	bookings := []database.Booking{}
	if err := a.DB.Where("status IN ?", database.ActiveBookingStatuses).Find(&bookings).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding active bookings")
	}

	startMs := requestStart.UnixMilli()
	endMs := requestEnd.UnixMilli()

	result := []CategoryAvailability{}
	for _, cfg := range configs {
		occupied := map[int]bool{}
		for _, b := range bookings {
			if b.Category != cfg.Category {
				continue
			}
			if startMs < b.EndTime && endMs > b.StartTime {
				occupied[b.SeatNumber] = true
			}
		}

		available := []int{}
		for _, n := range seatNumbers(cfg) {
			if !occupied[n] {
				available = append(available, n)
			}
		}
		sort.Ints(available)

		result = append(result, CategoryAvailability{
			Category: cfg.Category,
			Seats:    available,
		})
	}

	return result, nil
}
