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

import "github.com/pkg/errors"

// Sentinel errors describing why a request failed. The controllers map
// them to HTTP status codes; unknown errors become a 500 with a generic
// message.
var (
	// ErrNotFound is an error for an entity that does not exist
	ErrNotFound = errors.New("not found")
	// ErrLoginInvalid is an error for an invalid username or password
	ErrLoginInvalid = errors.New("Invalid username or password")
	// ErrCredentialsMissing is an error for a login or registration with no username or password
	ErrCredentialsMissing = errors.New("Username and password are required")
	// ErrPasswordTooShort is an error for a password that is too short
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters")
	// ErrDuplicateUsername is an error for a username that is already taken
	ErrDuplicateUsername = errors.New("Username already exists")
	// ErrLoginRequired is an error for an unauthenticated request
	ErrLoginRequired = errors.New("Authentication required")
	// ErrAdminRequired is an error for a request by an authenticated non-admin
	ErrAdminRequired = errors.New("Admin access required")

	// ErrSeatNameRequired is an error for a seat change with no new seat name
	ErrSeatNameRequired = errors.New("New seat name is required")
	// ErrBookingIDsRequired is an error for a bulk payment update with no booking ids
	ErrBookingIDsRequired = errors.New("Booking IDs are required")
	// ErrPaymentMethodInvalid is an error for an unknown payment method
	ErrPaymentMethodInvalid = errors.New("Valid payment method is required (cash or upi_online)")
	// ErrPaymentStatusInvalid is an error for an unknown payment status
	ErrPaymentStatusInvalid = errors.New("Valid payment status is required")
	// ErrPaymentAmountZero is an error for a split payment with no positive amount
	ErrPaymentAmountZero = errors.New("At least one payment amount must be greater than zero")

	// ErrAvailabilityParamsMissing is an error for an availability query missing parameters
	ErrAvailabilityParamsMissing = errors.New("Missing required parameters: date, timeSlot, durationMinutes")
	// ErrInvalidTimeSlot is an error for a time slot that is not HH:MM-HH:MM
	ErrInvalidTimeSlot = errors.New("Invalid time slot")
	// ErrInvalidDate is an error for a date that cannot be parsed
	ErrInvalidDate = errors.New("Invalid date")

	// ErrInvalidConfigPayload is an error for a config replacement with a bad shape
	ErrInvalidConfigPayload = errors.New("Invalid request format")
)
