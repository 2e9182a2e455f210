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

package database

const (
	// RoleAdmin is the role for administrator users
	RoleAdmin = "admin"
	// RoleStaff is the role for staff users
	RoleStaff = "staff"
)

const (
	// BookingStatusUpcoming is the status for a booking that has not started
	BookingStatusUpcoming = "upcoming"
	// BookingStatusRunning is the status for a booking in progress
	BookingStatusRunning = "running"
	// BookingStatusPaused is the status for a booking that is temporarily stopped
	BookingStatusPaused = "paused"
	// BookingStatusCompleted is the status for a booking that finished normally
	BookingStatusCompleted = "completed"
	// BookingStatusExpired is the status for a booking whose time ran out
	BookingStatusExpired = "expired"
)

const (
	// PaymentMethodCash is payment made in cash
	PaymentMethodCash = "cash"
	// PaymentMethodUPI is payment made via UPI/online
	PaymentMethodUPI = "upi_online"
	// PaymentMethodSplit is payment split between cash and UPI
	PaymentMethodSplit = "split"
)

const (
	// PaymentStatusUnpaid marks a booking that has not been paid for
	PaymentStatusUnpaid = "unpaid"
	// PaymentStatusPending marks a booking with payment in progress
	PaymentStatusPending = "pending"
	// PaymentStatusPaid marks a fully paid booking
	PaymentStatusPaid = "paid"
)

// ActiveBookingStatuses are the statuses that occupy a seat
var ActiveBookingStatuses = []string{
	BookingStatusRunning,
	BookingStatusPaused,
	BookingStatusUpcoming,
}

// FinishedBookingStatuses are the statuses eligible for archival
var FinishedBookingStatuses = []string{
	BookingStatusCompleted,
	BookingStatusExpired,
}
