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
	"strconv"

	"github.com/airavoto/gamingpos/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
)

// Bulk payment operations update each booking individually. A failure
// partway through leaves earlier updates in place.

// SetPaymentMethod records the payment method on the given bookings.
// Only cash and upi_online are accepted here; split payments go through
// SplitPayment.
func (a *App) SetPaymentMethod(bookingIDs []string, method string) (int, error) {
	if len(bookingIDs) == 0 {
		return 0, ErrBookingIDsRequired
	}
	if method != database.PaymentMethodCash && method != database.PaymentMethodUPI {
		return 0, ErrPaymentMethodInvalid
	}

	for _, id := range bookingIDs {
		err := a.DB.Model(&database.Booking{}).Where("id = ?", id).
			Update("payment_method", method).Error
		if err != nil {
			return 0, pkgErrors.Wrap(err, "updating payment method")
		}
	}

	return len(bookingIDs), nil
}

// SetPaymentStatus records the payment status, and optionally the method,
// on the given bookings. It returns the updated bookings.
func (a *App) SetPaymentStatus(bookingIDs []string, status, method string) ([]database.Booking, error) {
	if len(bookingIDs) == 0 {
		return nil, ErrBookingIDsRequired
	}
	switch status {
	case database.PaymentStatusUnpaid, database.PaymentStatusPending, database.PaymentStatusPaid:
	default:
		return nil, ErrPaymentStatusInvalid
	}

	updated := []database.Booking{}
	for _, id := range bookingIDs {
		cols := map[string]interface{}{"payment_status": status}
		if method != "" {
			cols["payment_method"] = method
		}
		err := a.DB.Model(&database.Booking{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return nil, pkgErrors.Wrap(err, "updating payment status")
		}

		booking, err := a.GetBooking(id)
		if err == ErrNotFound {
			continue
		} else if err != nil {
			return nil, err
		}
		updated = append(updated, booking)
	}

	return updated, nil
}

// SplitPayment marks the given bookings as paid with the amount divided
// between cash and UPI. Amounts are normalized to two decimals.
func (a *App) SplitPayment(bookingIDs []string, cashAmount, upiAmount string) ([]database.Booking, error) {
	if len(bookingIDs) == 0 {
		return nil, ErrBookingIDsRequired
	}

	totalCash, err := strconv.ParseFloat(cashAmount, 64)
	if err != nil {
		totalCash = 0
	}
	totalUpi, err := strconv.ParseFloat(upiAmount, 64)
	if err != nil {
		totalUpi = 0
	}
	if totalCash == 0 && totalUpi == 0 {
		return nil, ErrPaymentAmountZero
	}

	updated := []database.Booking{}
	for _, id := range bookingIDs {
		err := a.DB.Model(&database.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
			"payment_method": database.PaymentMethodSplit,
			"cash_amount":    fmt.Sprintf("%.2f", totalCash),
			"upi_amount":     fmt.Sprintf("%.2f", totalUpi),
			"payment_status": database.PaymentStatusPaid,
		}).Error
		if err != nil {
			return nil, pkgErrors.Wrap(err, "updating split payment")
		}

		booking, err := a.GetBooking(id)
		if err == ErrNotFound {
			continue
		} else if err != nil {
			return nil, err
		}
		updated = append(updated, booking)
	}

	return updated, nil
}

// GetPaymentLogs returns the most recent payment log entries, newest first
func (a *App) GetPaymentLogs() ([]database.PaymentLog, error) {
	logs := []database.PaymentLog{}
	err := a.DB.Order("created_at DESC").Limit(500).Find(&logs).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding payment logs")
	}

	return logs, nil
}
