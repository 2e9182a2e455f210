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
	"testing"
	"time"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestParseSeatNumber(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"PC-1", 1},
		{"PC-12", 12},
		{"PS5-3", 3},
		{"Console 7", 7},
		{"VIP", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, ParseSeatNumber(tc.input), tc.expected, "seat number mismatch")
		})
	}
}

func setupDeviceConfig(t *testing.T, a *App, category string, seats []string) {
	t.Helper()

	if _, err := a.UpsertDeviceConfig(category, len(seats), seats); err != nil {
		t.Fatal(errors.Wrap(err, "creating device config"))
	}
}

func TestAvailableSeats(t *testing.T) {
	t.Run("missing params", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.AvailableSeats(AvailabilityParams{Date: "2024-06-01"})

		assert.Equal(t, errors.Cause(err), ErrAvailabilityParamsMissing, "error mismatch")
	})

	t.Run("invalid date", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.AvailableSeats(AvailabilityParams{
			Date:            "June 1",
			TimeSlot:        "14:00-15:00",
			DurationMinutes: "60",
		})

		assert.Equal(t, errors.Cause(err), ErrInvalidDate, "error mismatch")
	})

	t.Run("overlapping booking takes the seat", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		setupDeviceConfig(t, &a, "PC", []string{"PC-1", "PC-2", "PC-3"})

		day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
		mustCreateBooking(t, &a, CreateBookingParams{
			Category: "PC", SeatNumber: 2, SeatName: "PC-2", CustomerName: "Ravi",
			StartTime: day.Add(14 * time.Hour),
			EndTime:   day.Add(16 * time.Hour),
			Status:    database.BookingStatusUpcoming,
		})

		result, err := a.AvailableSeats(AvailabilityParams{
			Date:            "2024-06-01",
			TimeSlot:        "15:00-16:00",
			DurationMinutes: "60",
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equalf(t, len(result), 1, "category count mismatch")
		assert.Equal(t, result[0].Category, "PC", "category mismatch")
		assert.DeepEqual(t, result[0].Seats, []int{1, 3}, "seats mismatch")
	})

	t.Run("booking ending at window start does not conflict", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		setupDeviceConfig(t, &a, "PC", []string{"PC-1", "PC-2"})

		day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
		mustCreateBooking(t, &a, CreateBookingParams{
			Category: "PC", SeatNumber: 1, SeatName: "PC-1", CustomerName: "Ravi",
			StartTime: day.Add(13 * time.Hour),
			EndTime:   day.Add(14 * time.Hour),
			Status:    database.BookingStatusRunning,
		})

		result, err := a.AvailableSeats(AvailabilityParams{
			Date:            "2024-06-01",
			TimeSlot:        "14:00",
			DurationMinutes: "60",
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.DeepEqual(t, result[0].Seats, []int{1, 2}, "seats mismatch")
	})

	t.Run("finished bookings do not hold seats", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		setupDeviceConfig(t, &a, "PS5", []string{"PS5-1"})

		day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
		for i, status := range []string{database.BookingStatusCompleted, database.BookingStatusExpired} {
			mustCreateBooking(t, &a, CreateBookingParams{
				Category: "PS5", SeatNumber: 1, SeatName: "PS5-1",
				CustomerName: fmt.Sprintf("Customer %d", i),
				StartTime:    day.Add(14 * time.Hour),
				EndTime:      day.Add(16 * time.Hour),
				Status:       status,
			})
		}

		result, err := a.AvailableSeats(AvailabilityParams{
			Date:            "2024-06-01",
			TimeSlot:        "14:00-15:00",
			DurationMinutes: "120",
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.DeepEqual(t, result[0].Seats, []int{1}, "seats mismatch")
	})
}
