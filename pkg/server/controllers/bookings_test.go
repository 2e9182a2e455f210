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
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/presenters"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/airavoto/gamingpos/pkg/server/testutils"
	"github.com/pkg/errors"
)

func setupBooking(t *testing.T, a *app.App, status string) database.Booking {
	t.Helper()

	now := a.Clock.Now()
	booking, err := a.CreateBooking(session.Data{}, app.CreateBookingParams{
		Category:     "PC",
		SeatNumber:   1,
		SeatName:     "PC-1",
		CustomerName: "Ravi",
		StartTime:    now,
		EndTime:      now.Add(time.Hour),
		Price:        "18",
		Status:       status,
	})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating booking"))
	}

	return booking
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestApp(t)
		user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)

		server := MustNewServer(t, a)
		defer server.Close()

		payload := `{
			"category": "PC",
			"seatNumber": 2,
			"seatName": "PC-2",
			"customerName": "Ravi",
			"startTime": "2024-06-01T14:00:00Z",
			"endTime": "2024-06-01T15:00:00Z",
			"price": "18",
			"status": "upcoming"
		}`
		req := testutils.MakeReq(server.URL, "POST", "/api/bookings", payload)
		res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

		assert.StatusCodeEquals(t, res, http.StatusCreated, "")

		var got presenters.Booking
		if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
			t.Fatal(errors.Wrap(err, "decoding payload"))
		}
		assert.Equal(t, got.CustomerName, "Ravi", "customer mismatch")
		assert.Equal(t, got.StartTime, "2024-06-01T14:00:00Z", "start time mismatch")
		assert.NotEqual(t, got.BookingCode, "", "booking code should be set")

		// the logged-in user is recorded as the actor
		var logRecord database.ActivityLog
		testutils.MustExec(t, a.DB.First(&logRecord), "finding activity log")
		assert.Equal(t, logRecord.Username, "alice", "actor mismatch")
	})

	t.Run("invalid start time", func(t *testing.T) {
		a := newTestApp(t)
		user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)

		server := MustNewServer(t, a)
		defer server.Close()

		payload := `{"category":"PC","startTime":"tomorrow","endTime":"2024-06-01T15:00:00Z"}`
		req := testutils.MakeReq(server.URL, "POST", "/api/bookings", payload)
		res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

		assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")
	})

	t.Run("requires auth", func(t *testing.T) {
		a := newTestApp(t)

		server := MustNewServer(t, a)
		defer server.Close()

		req := testutils.MakeReq(server.URL, "POST", "/api/bookings", `{}`)
		res := testutils.HTTPDo(t, req)

		assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")

		var bookingCount int64
		testutils.MustExec(t, a.DB.Model(&database.Booking{}).Count(&bookingCount), "counting bookings")
		assert.Equal(t, bookingCount, int64(0), "booking count mismatch")
	})
}

func TestUpdateBookingEndpoint(t *testing.T) {
	a := newTestApp(t)
	user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)
	booking := setupBooking(t, a, database.BookingStatusRunning)

	server := MustNewServer(t, a)
	defer server.Close()

	path := fmt.Sprintf("/api/bookings/%s", booking.ID)
	req := testutils.MakeReq(server.URL, "PATCH", path, `{"status":"completed"}`)
	res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var record database.Booking
	testutils.MustExec(t, a.DB.First(&record), "finding booking")
	assert.Equal(t, record.Status, database.BookingStatusCompleted, "status mismatch")
}

func TestDeleteBookingEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestApp(t)
		user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)
		booking := setupBooking(t, a, database.BookingStatusUpcoming)

		server := MustNewServer(t, a)
		defer server.Close()

		path := fmt.Sprintf("/api/bookings/%s", booking.ID)
		req := testutils.MakeReq(server.URL, "DELETE", path, "")
		res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

		assert.StatusCodeEquals(t, res, http.StatusOK, "")

		var bookingCount int64
		testutils.MustExec(t, a.DB.Model(&database.Booking{}).Count(&bookingCount), "counting bookings")
		assert.Equal(t, bookingCount, int64(0), "booking count mismatch")
	})

	t.Run("unknown id", func(t *testing.T) {
		a := newTestApp(t)
		user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)

		server := MustNewServer(t, a)
		defer server.Close()

		req := testutils.MakeReq(server.URL, "DELETE", "/api/bookings/no-such-id", "")
		res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

		assert.StatusCodeEquals(t, res, http.StatusNotFound, "")
	})
}

func TestArchiveEndpoint(t *testing.T) {
	a := newTestApp(t)
	user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)
	setupBooking(t, a, database.BookingStatusCompleted)
	setupBooking(t, a, database.BookingStatusRunning)

	server := MustNewServer(t, a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/bookings/archive", "")
	res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var got struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}
	assert.Equal(t, got.Success, true, "success mismatch")
	assert.Equal(t, got.Count, 1, "count mismatch")
}

func TestPaymentEndpoints(t *testing.T) {
	t.Run("payment method", func(t *testing.T) {
		a := newTestApp(t)
		user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)
		booking := setupBooking(t, a, database.BookingStatusRunning)

		server := MustNewServer(t, a)
		defer server.Close()

		payload := fmt.Sprintf(`{"bookingIds":["%s"],"paymentMethod":"cash"}`, booking.ID)
		req := testutils.MakeReq(server.URL, "POST", "/api/bookings/payment-method", payload)
		res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

		assert.StatusCodeEquals(t, res, http.StatusOK, "")

		var record database.Booking
		testutils.MustExec(t, a.DB.First(&record), "finding booking")
		if record.PaymentMethod == nil {
			t.Fatal("expected payment method")
		}
		assert.Equal(t, *record.PaymentMethod, database.PaymentMethodCash, "method mismatch")
	})

	t.Run("invalid payment method", func(t *testing.T) {
		a := newTestApp(t)
		user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)
		booking := setupBooking(t, a, database.BookingStatusRunning)

		server := MustNewServer(t, a)
		defer server.Close()

		payload := fmt.Sprintf(`{"bookingIds":["%s"],"paymentMethod":"cheque"}`, booking.ID)
		req := testutils.MakeReq(server.URL, "POST", "/api/bookings/payment-method", payload)
		res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

		assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")
	})

	t.Run("split payment", func(t *testing.T) {
		a := newTestApp(t)
		user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)
		booking := setupBooking(t, a, database.BookingStatusRunning)

		server := MustNewServer(t, a)
		defer server.Close()

		payload := fmt.Sprintf(`{"bookingIds":["%s"],"cashAmount":"10","upiAmount":"8"}`, booking.ID)
		req := testutils.MakeReq(server.URL, "POST", "/api/bookings/split-payment", payload)
		res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

		assert.StatusCodeEquals(t, res, http.StatusOK, "")

		var got struct {
			Success  bool                 `json:"success"`
			Count    int                  `json:"count"`
			Bookings []presenters.Booking `json:"bookings"`
		}
		if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
			t.Fatal(errors.Wrap(err, "decoding payload"))
		}
		assert.Equal(t, got.Count, 1, "count mismatch")
		assert.Equalf(t, len(got.Bookings), 1, "bookings count mismatch")
		assert.Equal(t, got.Bookings[0].PaymentStatus, database.PaymentStatusPaid, "status mismatch")
	})
}

func TestAvailableSeatsEndpoint(t *testing.T) {
	a := newTestApp(t)
	user := testutils.SetupUserData(a.DB, "alice", "pass1234", database.RoleStaff)
	if _, err := a.UpsertDeviceConfig("PC", 2, []string{"PC-1", "PC-2"}); err != nil {
		t.Fatal(errors.Wrap(err, "creating device config"))
	}

	server := MustNewServer(t, a)
	defer server.Close()

	path := "/api/bookings/available-seats?date=2024-06-01&timeSlot=14:00-15:00&durationMinutes=60"
	req := testutils.MakeReq(server.URL, "GET", path, "")
	res := testutils.HTTPAuthDo(t, a.Sessions, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var got []app.CategoryAvailability
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}
	assert.Equalf(t, len(got), 1, "category count mismatch")
	assert.DeepEqual(t, got[0].Seats, []int{1, 2}, "seats mismatch")
}
