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
	"regexp"
	"testing"
	"time"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/airavoto/gamingpos/pkg/server/testutils"
	"github.com/pkg/errors"
)

var testActor = session.Data{
	UserID:        "user-1",
	Username:      "alice",
	Role:          database.RoleStaff,
	Authenticated: true,
}

func mustCreateBooking(t *testing.T, a *App, p CreateBookingParams) database.Booking {
	t.Helper()

	booking, err := a.CreateBooking(testActor, p)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating booking"))
	}

	return booking
}

func TestGenerateBookingCode(t *testing.T) {
	a := NewTest()

	code := a.GenerateBookingCode()

	matched := regexp.MustCompile(`^BK-[0-9A-Z]+[0-9A-F]{4}$`).MatchString(code)
	assert.Equal(t, matched, true, "code format mismatch: "+code)
}

func TestCreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		now := a.Clock.Now()
		booking := mustCreateBooking(t, &a, CreateBookingParams{
			Category:     "PC",
			SeatNumber:   2,
			SeatName:     "PC-2",
			CustomerName: "Ravi",
			StartTime:    now,
			EndTime:      now.Add(time.Hour),
			Price:        "18",
			Status:       database.BookingStatusRunning,
		})

		var record database.Booking
		testutils.MustExec(t, db.First(&record), "finding booking")

		assert.Equal(t, record.ID, booking.ID, "id mismatch")
		assert.Equal(t, record.CustomerName, "Ravi", "customer mismatch")
		assert.Equal(t, record.PersonCount, 1, "person count should default to 1")
		assert.Equal(t, record.PaymentStatus, database.PaymentStatusUnpaid, "payment status should default to unpaid")
		assert.Equal(t, record.BookingType, "[]", "booking type should default to empty list")
		assert.Equal(t, record.FoodOrders, "[]", "food orders should default to empty list")
		assert.NotEqual(t, record.BookingCode, "", "booking code should be generated")

		var logRecord database.ActivityLog
		testutils.MustExec(t, db.First(&logRecord), "finding activity log")
		assert.Equal(t, logRecord.Action, "create", "action mismatch")
		if logRecord.EntityID == nil || logRecord.Details == nil {
			t.Fatal("expected entity id and details on activity log")
		}
		assert.Equal(t, *logRecord.EntityID, booking.ID, "entity id mismatch")
		assert.Equal(t, *logRecord.Details, "Created booking for Ravi at PC-2", "details mismatch")
	})

	t.Run("anonymous actor writes no activity log", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		now := a.Clock.Now()
		booking, err := a.CreateBooking(session.Data{}, CreateBookingParams{
			Category:     "PC",
			SeatNumber:   1,
			SeatName:     "PC-1",
			CustomerName: "Ravi",
			StartTime:    now,
			EndTime:      now.Add(time.Hour),
			Status:       database.BookingStatusUpcoming,
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}
		assert.NotEqual(t, booking.ID, "", "booking should be created")

		var logCount int64
		testutils.MustExec(t, db.Model(&database.ActivityLog{}).Count(&logCount), "counting logs")
		assert.Equal(t, logCount, int64(0), "log count mismatch")
	})
}

func TestUpdateBooking(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	now := a.Clock.Now()
	booking := mustCreateBooking(t, &a, CreateBookingParams{
		Category:     "PC",
		SeatNumber:   1,
		SeatName:     "PC-1",
		CustomerName: "Ravi",
		StartTime:    now,
		EndTime:      now.Add(time.Hour),
		Status:       database.BookingStatusRunning,
	})

	status := database.BookingStatusPaused
	remaining := int64(1800000)
	updated, err := a.UpdateBooking(booking.ID, BookingPatch{
		Status:              &status,
		PausedRemainingTime: &remaining,
	})
	if err != nil {
		t.Fatal(errors.Wrap(err, "executing"))
	}

	assert.Equal(t, updated.Status, database.BookingStatusPaused, "status mismatch")
	if updated.PausedRemainingTime == nil {
		t.Fatal("expected paused remaining time")
	}
	assert.Equal(t, *updated.PausedRemainingTime, remaining, "remaining time mismatch")
	// untouched fields stay intact
	assert.Equal(t, updated.CustomerName, "Ravi", "customer mismatch")
}

func TestUpdateBookingNotFound(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	status := database.BookingStatusCompleted
	_, err := a.UpdateBooking("no-such-id", BookingPatch{Status: &status})

	assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")
}

func TestChangeSeat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		now := a.Clock.Now()
		booking := mustCreateBooking(t, &a, CreateBookingParams{
			Category:     "PC",
			SeatNumber:   1,
			SeatName:     "PC-1",
			CustomerName: "Ravi",
			StartTime:    now,
			EndTime:      now.Add(time.Hour),
			Status:       database.BookingStatusRunning,
		})

		updated, err := a.ChangeSeat(testActor, booking.ID, "PC-4")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, updated.SeatName, "PC-4", "seat name mismatch")
		assert.Equal(t, updated.SeatNumber, 4, "seat number mismatch")

		var logRecord database.ActivityLog
		testutils.MustExec(t, db.Where("action = ?", "update").First(&logRecord), "finding activity log")
		if logRecord.Details == nil {
			t.Fatal("expected details on activity log")
		}
		assert.Equal(t, *logRecord.Details, "Changed seat from PC-1 to PC-4", "details mismatch")
	})

	t.Run("missing seat name", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		_, err := a.ChangeSeat(testActor, "some-id", "")

		assert.Equal(t, errors.Cause(err), ErrSeatNameRequired, "error mismatch")
	})
}

func TestDeleteBooking(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	now := a.Clock.Now()
	booking := mustCreateBooking(t, &a, CreateBookingParams{
		Category:     "PS5",
		SeatNumber:   1,
		SeatName:     "PS5-1",
		CustomerName: "Ravi",
		StartTime:    now,
		EndTime:      now.Add(time.Hour),
		Status:       database.BookingStatusUpcoming,
	})

	if err := a.DeleteBooking(testActor, booking.ID); err != nil {
		t.Fatal(errors.Wrap(err, "executing"))
	}

	var count int64
	testutils.MustExec(t, db.Model(&database.Booking{}).Count(&count), "counting bookings")
	assert.Equal(t, count, int64(0), "booking count mismatch")

	err := a.DeleteBooking(testActor, booking.ID)
	assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")
}

func TestArchiveCompleted(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	now := a.Clock.Now()
	mustCreateBooking(t, &a, CreateBookingParams{
		Category: "PC", SeatNumber: 1, SeatName: "PC-1", CustomerName: "Done",
		StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour),
		Status: database.BookingStatusCompleted,
	})
	mustCreateBooking(t, &a, CreateBookingParams{
		Category: "PC", SeatNumber: 2, SeatName: "PC-2", CustomerName: "Gone",
		StartTime: now.Add(-3 * time.Hour), EndTime: now.Add(-2 * time.Hour),
		Status: database.BookingStatusExpired,
	})
	running := mustCreateBooking(t, &a, CreateBookingParams{
		Category: "PC", SeatNumber: 3, SeatName: "PC-3", CustomerName: "Live",
		StartTime: now, EndTime: now.Add(time.Hour),
		Status: database.BookingStatusRunning,
	})

	count, err := a.ArchiveCompleted()
	if err != nil {
		t.Fatal(errors.Wrap(err, "executing"))
	}
	assert.Equal(t, count, 2, "archive count mismatch")

	var liveCount, historyCount int64
	testutils.MustExec(t, db.Model(&database.Booking{}).Count(&liveCount), "counting bookings")
	testutils.MustExec(t, db.Model(&database.BookingHistory{}).Count(&historyCount), "counting history")
	assert.Equal(t, liveCount, int64(1), "live count mismatch")
	assert.Equal(t, historyCount, int64(2), "history count mismatch")

	var remaining database.Booking
	testutils.MustExec(t, db.First(&remaining), "finding remaining booking")
	assert.Equal(t, remaining.ID, running.ID, "running booking should survive archiving")

	var archived database.BookingHistory
	testutils.MustExec(t, db.Where("customer_name = ?", "Done").First(&archived), "finding archived booking")
	assert.NotEqual(t, archived.BookingID, "", "archived row should reference the original booking")

	// archiving again is a no-op
	count, err = a.ArchiveCompleted()
	if err != nil {
		t.Fatal(errors.Wrap(err, "executing again"))
	}
	assert.Equal(t, count, 0, "second archive count mismatch")
}
