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

import (
	"testing"
	"time"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/server/database"
)

func TestFormatTS(t *testing.T) {
	ts := time.Date(2024, time.June, 1, 14, 30, 0, 0, time.UTC).UnixMilli()

	assert.Equal(t, FormatTS(ts), "2024-06-01T14:30:00Z", "timestamp mismatch")
}

func TestPresentBooking(t *testing.T) {
	action := `{"type":"full","amount":"48"}`
	booking := database.Booking{
		ID:                "booking-1",
		BookingCode:       "BK-ABC1234",
		Category:          "PC",
		SeatNumber:        2,
		SeatName:          "PC-2",
		CustomerName:      "Ravi",
		StartTime:         time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC).UnixMilli(),
		EndTime:           time.Date(2024, time.June, 1, 15, 0, 0, 0, time.UTC).UnixMilli(),
		Price:             "18",
		Status:            database.BookingStatusRunning,
		BookingType:       `["walk-in"]`,
		PersonCount:       1,
		PaymentStatus:     database.PaymentStatusUnpaid,
		LastPaymentAction: &action,
		FoodOrders:        `[{"item":"Fries","price":"50","quantity":2}]`,
		CreatedAt:         time.Date(2024, time.June, 1, 13, 55, 0, 0, time.UTC).UnixMilli(),
	}

	got := PresentBooking(booking)

	assert.Equal(t, got.ID, "booking-1", "id mismatch")
	assert.Equal(t, got.StartTime, "2024-06-01T14:00:00Z", "start time mismatch")
	assert.Equal(t, got.EndTime, "2024-06-01T15:00:00Z", "end time mismatch")
	assert.Equal(t, got.CreatedAt, "2024-06-01T13:55:00Z", "created at mismatch")
	assert.DeepEqual(t, got.BookingType, []string{"walk-in"}, "booking type mismatch")
	assert.DeepEqual(t, got.FoodOrders, []FoodOrder{
		{Item: "Fries", Price: "50", Quantity: 2},
	}, "food orders mismatch")
	assert.Equal(t, string(got.LastPaymentAction), action, "last payment action mismatch")
	assert.Equal(t, got.PromotionDetails == nil, true, "promotion details should be nil")
}

func TestPresentBookingMalformedLists(t *testing.T) {
	booking := database.Booking{
		ID:          "booking-1",
		BookingType: "not json",
		FoodOrders:  "{broken",
	}

	got := PresentBooking(booking)

	assert.DeepEqual(t, got.BookingType, []string{}, "booking type should decode to empty list")
	assert.DeepEqual(t, got.FoodOrders, []FoodOrder{}, "food orders should decode to empty list")
}

func TestPresentBookingHistory(t *testing.T) {
	h := database.BookingHistory{
		ID:           "hist-1",
		BookingID:    "booking-1",
		BookingCode:  "BK-ABC1234",
		Category:     "PS5",
		SeatName:     "PS5-1",
		CustomerName: "Asha",
		Status:       database.BookingStatusCompleted,
		BookingType:  "[]",
		FoodOrders:   "[]",
		ArchivedAt:   time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}

	got := PresentBookingHistory(h)

	assert.Equal(t, got.ID, "hist-1", "id mismatch")
	assert.Equal(t, got.BookingID, "booking-1", "booking id mismatch")
	assert.Equal(t, got.ArchivedAt, "2024-06-02T00:00:00Z", "archived at mismatch")
}
