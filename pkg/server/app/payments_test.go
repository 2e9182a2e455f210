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
	"testing"
	"time"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestSetPaymentMethod(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		now := a.Clock.Now()
		b1 := mustCreateBooking(t, &a, CreateBookingParams{
			Category: "PC", SeatNumber: 1, SeatName: "PC-1", CustomerName: "Ravi",
			StartTime: now, EndTime: now.Add(time.Hour), Status: database.BookingStatusRunning,
		})
		b2 := mustCreateBooking(t, &a, CreateBookingParams{
			Category: "PC", SeatNumber: 2, SeatName: "PC-2", CustomerName: "Asha",
			StartTime: now, EndTime: now.Add(time.Hour), Status: database.BookingStatusRunning,
		})

		count, err := a.SetPaymentMethod([]string{b1.ID, b2.ID}, database.PaymentMethodCash)
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}
		assert.Equal(t, count, 2, "count mismatch")

		var record database.Booking
		testutils.MustExec(t, db.Where("id = ?", b1.ID).First(&record), "finding booking")
		if record.PaymentMethod == nil {
			t.Fatal("expected payment method")
		}
		assert.Equal(t, *record.PaymentMethod, database.PaymentMethodCash, "method mismatch")
	})

	t.Run("invalid method", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.SetPaymentMethod([]string{"some-id"}, "split")

		assert.Equal(t, errors.Cause(err), ErrPaymentMethodInvalid, "error mismatch")
	})

	t.Run("missing ids", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.SetPaymentMethod(nil, database.PaymentMethodCash)

		assert.Equal(t, errors.Cause(err), ErrBookingIDsRequired, "error mismatch")
	})
}

func TestSetPaymentStatus(t *testing.T) {
	t.Run("status with method", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		now := a.Clock.Now()
		booking := mustCreateBooking(t, &a, CreateBookingParams{
			Category: "PC", SeatNumber: 1, SeatName: "PC-1", CustomerName: "Ravi",
			StartTime: now, EndTime: now.Add(time.Hour), Status: database.BookingStatusRunning,
		})

		updated, err := a.SetPaymentStatus([]string{booking.ID}, database.PaymentStatusPaid, database.PaymentMethodUPI)
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equalf(t, len(updated), 1, "updated count mismatch")
		assert.Equal(t, updated[0].PaymentStatus, database.PaymentStatusPaid, "status mismatch")
		if updated[0].PaymentMethod == nil {
			t.Fatal("expected payment method")
		}
		assert.Equal(t, *updated[0].PaymentMethod, database.PaymentMethodUPI, "method mismatch")
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		now := a.Clock.Now()
		booking := mustCreateBooking(t, &a, CreateBookingParams{
			Category: "PC", SeatNumber: 1, SeatName: "PC-1", CustomerName: "Ravi",
			StartTime: now, EndTime: now.Add(time.Hour), Status: database.BookingStatusRunning,
		})

		updated, err := a.SetPaymentStatus([]string{booking.ID, "no-such-id"}, database.PaymentStatusPending, "")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equalf(t, len(updated), 1, "updated count mismatch")
		assert.Equal(t, updated[0].ID, booking.ID, "id mismatch")
	})

	t.Run("invalid status", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.SetPaymentStatus([]string{"some-id"}, "refunded", "")

		assert.Equal(t, errors.Cause(err), ErrPaymentStatusInvalid, "error mismatch")
	})
}

func TestSplitPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		now := a.Clock.Now()
		booking := mustCreateBooking(t, &a, CreateBookingParams{
			Category: "PS5", SeatNumber: 1, SeatName: "PS5-1", CustomerName: "Ravi",
			StartTime: now, EndTime: now.Add(time.Hour), Status: database.BookingStatusRunning,
		})

		updated, err := a.SplitPayment([]string{booking.ID}, "100.5", "49")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equalf(t, len(updated), 1, "updated count mismatch")
		got := updated[0]
		assert.Equal(t, got.PaymentStatus, database.PaymentStatusPaid, "status mismatch")
		if got.PaymentMethod == nil || got.CashAmount == nil || got.UpiAmount == nil {
			t.Fatal("expected method and amounts")
		}
		assert.Equal(t, *got.PaymentMethod, database.PaymentMethodSplit, "method mismatch")
		assert.Equal(t, *got.CashAmount, "100.50", "cash amount mismatch")
		assert.Equal(t, *got.UpiAmount, "49.00", "upi amount mismatch")
	})

	t.Run("both amounts zero", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.SplitPayment([]string{"some-id"}, "0", "0")

		assert.Equal(t, errors.Cause(err), ErrPaymentAmountZero, "error mismatch")
	})

	t.Run("unparsable amounts count as zero", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.SplitPayment([]string{"some-id"}, "abc", "")

		assert.Equal(t, errors.Cause(err), ErrPaymentAmountZero, "error mismatch")
	})
}
