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
	"net/http"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/presenters"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// NewBookings creates a new Bookings controller
func NewBookings(app *app.App) *Bookings {
	return &Bookings{app: app}
}

// Bookings is a booking controller
type Bookings struct {
	app *app.App
}

// Index handles GET /api/bookings
func (b *Bookings) Index(w http.ResponseWriter, r *http.Request) {
	bookings, err := b.app.GetBookings()
	if err != nil {
		handleJSONError(w, err, "getting bookings")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBookings(bookings))
}

// Active handles GET /api/bookings/active
func (b *Bookings) Active(w http.ResponseWriter, r *http.Request) {
	bookings, err := b.app.GetActiveBookings()
	if err != nil {
		handleJSONError(w, err, "getting active bookings")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBookings(bookings))
}

// AvailableSeats handles GET /api/bookings/available-seats
func (b *Bookings) AvailableSeats(w http.ResponseWriter, r *http.Request) {
	var params app.AvailabilityParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		handleJSONError(w, err, "decoding availability query")
		return
	}

	availability, err := b.app.AvailableSeats(params)
	if err != nil {
		handleJSONError(w, err, "computing availability")
		return
	}

	respondJSON(w, http.StatusOK, availability)
}

// BookingForm is the payload for creating a booking
type BookingForm struct {
	BookingCode              string          `json:"bookingCode"`
	GroupID                  *string         `json:"groupId"`
	GroupCode                *string         `json:"groupCode"`
	Category                 string          `json:"category"`
	SeatNumber               int             `json:"seatNumber"`
	SeatName                 string          `json:"seatName"`
	CustomerName             string          `json:"customerName"`
	WhatsappNumber           *string         `json:"whatsappNumber"`
	StartTime                string          `json:"startTime"`
	EndTime                  string          `json:"endTime"`
	Price                    string          `json:"price"`
	Status                   string          `json:"status"`
	BookingType              json.RawMessage `json:"bookingType"`
	PausedRemainingTime      *int64          `json:"pausedRemainingTime"`
	PersonCount              int             `json:"personCount"`
	PaymentMethod            *string         `json:"paymentMethod"`
	CashAmount               *string         `json:"cashAmount"`
	UpiAmount                *string         `json:"upiAmount"`
	PaymentStatus            string          `json:"paymentStatus"`
	LastPaymentAction        json.RawMessage `json:"lastPaymentAction"`
	FoodOrders               json.RawMessage `json:"foodOrders"`
	OriginalPrice            *string         `json:"originalPrice"`
	DiscountApplied          *string         `json:"discountApplied"`
	BonusHoursApplied        *string         `json:"bonusHoursApplied"`
	PromotionDetails         json.RawMessage `json:"promotionDetails"`
	IsPromotionalDiscount    bool            `json:"isPromotionalDiscount"`
	IsPromotionalBonus       bool            `json:"isPromotionalBonus"`
	ManualDiscountPercentage *int            `json:"manualDiscountPercentage"`
	ManualFreeHours          *string         `json:"manualFreeHours"`
	Discount                 *string         `json:"discount"`
	Bonus                    *string         `json:"bonus"`
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, app.ErrInvalidDate
	}

	return t, nil
}

// Create handles POST /api/bookings
func (b *Bookings) Create(w http.ResponseWriter, r *http.Request) {
	var form BookingForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing booking payload")
		return
	}

	startTime, err := parseTimestamp(form.StartTime)
	if err != nil {
		handleJSONError(w, err, "parsing start time")
		return
	}
	endTime, err := parseTimestamp(form.EndTime)
	if err != nil {
		handleJSONError(w, err, "parsing end time")
		return
	}

	booking, err := b.app.CreateBooking(actorData(r), app.CreateBookingParams{
		BookingCode:              form.BookingCode,
		GroupID:                  form.GroupID,
		GroupCode:                form.GroupCode,
		Category:                 form.Category,
		SeatNumber:               form.SeatNumber,
		SeatName:                 form.SeatName,
		CustomerName:             form.CustomerName,
		WhatsappNumber:           form.WhatsappNumber,
		StartTime:                startTime,
		EndTime:                  endTime,
		Price:                    form.Price,
		Status:                   form.Status,
		BookingType:              form.BookingType,
		PausedRemainingTime:      form.PausedRemainingTime,
		PersonCount:              form.PersonCount,
		PaymentMethod:            form.PaymentMethod,
		CashAmount:               form.CashAmount,
		UpiAmount:                form.UpiAmount,
		PaymentStatus:            form.PaymentStatus,
		LastPaymentAction:        form.LastPaymentAction,
		FoodOrders:               form.FoodOrders,
		OriginalPrice:            form.OriginalPrice,
		DiscountApplied:          form.DiscountApplied,
		BonusHoursApplied:        form.BonusHoursApplied,
		PromotionDetails:         form.PromotionDetails,
		IsPromotionalDiscount:    form.IsPromotionalDiscount,
		IsPromotionalBonus:       form.IsPromotionalBonus,
		ManualDiscountPercentage: form.ManualDiscountPercentage,
		ManualFreeHours:          form.ManualFreeHours,
		Discount:                 form.Discount,
		Bonus:                    form.Bonus,
	})
	if err != nil {
		handleJSONError(w, err, "creating booking")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentBooking(booking))
}

// BookingPatchForm is the payload for partially updating a booking
type BookingPatchForm struct {
	GroupID                  *string         `json:"groupId"`
	GroupCode                *string         `json:"groupCode"`
	Category                 *string         `json:"category"`
	SeatNumber               *int            `json:"seatNumber"`
	SeatName                 *string         `json:"seatName"`
	CustomerName             *string         `json:"customerName"`
	WhatsappNumber           *string         `json:"whatsappNumber"`
	StartTime                *string         `json:"startTime"`
	EndTime                  *string         `json:"endTime"`
	Price                    *string         `json:"price"`
	Status                   *string         `json:"status"`
	BookingType              json.RawMessage `json:"bookingType"`
	PausedRemainingTime      *int64          `json:"pausedRemainingTime"`
	PersonCount              *int            `json:"personCount"`
	PaymentMethod            *string         `json:"paymentMethod"`
	CashAmount               *string         `json:"cashAmount"`
	UpiAmount                *string         `json:"upiAmount"`
	PaymentStatus            *string         `json:"paymentStatus"`
	LastPaymentAction        json.RawMessage `json:"lastPaymentAction"`
	FoodOrders               json.RawMessage `json:"foodOrders"`
	OriginalPrice            *string         `json:"originalPrice"`
	DiscountApplied          *string         `json:"discountApplied"`
	BonusHoursApplied        *string         `json:"bonusHoursApplied"`
	PromotionDetails         json.RawMessage `json:"promotionDetails"`
	IsPromotionalDiscount    *bool           `json:"isPromotionalDiscount"`
	IsPromotionalBonus       *bool           `json:"isPromotionalBonus"`
	ManualDiscountPercentage *int            `json:"manualDiscountPercentage"`
	ManualFreeHours          *string         `json:"manualFreeHours"`
	Discount                 *string         `json:"discount"`
	Bonus                    *string         `json:"bonus"`
}

func (f BookingPatchForm) toPatch() (app.BookingPatch, error) {
	patch := app.BookingPatch{
		GroupID:                  f.GroupID,
		GroupCode:                f.GroupCode,
		Category:                 f.Category,
		SeatNumber:               f.SeatNumber,
		SeatName:                 f.SeatName,
		CustomerName:             f.CustomerName,
		WhatsappNumber:           f.WhatsappNumber,
		Price:                    f.Price,
		Status:                   f.Status,
		BookingType:              f.BookingType,
		PausedRemainingTime:      f.PausedRemainingTime,
		PersonCount:              f.PersonCount,
		PaymentMethod:            f.PaymentMethod,
		CashAmount:               f.CashAmount,
		UpiAmount:                f.UpiAmount,
		PaymentStatus:            f.PaymentStatus,
		LastPaymentAction:        f.LastPaymentAction,
		FoodOrders:               f.FoodOrders,
		OriginalPrice:            f.OriginalPrice,
		DiscountApplied:          f.DiscountApplied,
		BonusHoursApplied:        f.BonusHoursApplied,
		PromotionDetails:         f.PromotionDetails,
		IsPromotionalDiscount:    f.IsPromotionalDiscount,
		IsPromotionalBonus:       f.IsPromotionalBonus,
		ManualDiscountPercentage: f.ManualDiscountPercentage,
		ManualFreeHours:          f.ManualFreeHours,
		Discount:                 f.Discount,
		Bonus:                    f.Bonus,
	}

	if f.StartTime != nil {
		t, err := parseTimestamp(*f.StartTime)
		if err != nil {
			return app.BookingPatch{}, err
		}
		patch.StartTime = &t
	}
	if f.EndTime != nil {
		t, err := parseTimestamp(*f.EndTime)
		if err != nil {
			return app.BookingPatch{}, err
		}
		patch.EndTime = &t
	}

	return patch, nil
}

// Update handles PATCH /api/bookings/{bookingID}
func (b *Bookings) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["bookingID"]

	var form BookingPatchForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing booking patch")
		return
	}

	patch, err := form.toPatch()
	if err != nil {
		handleJSONError(w, err, "parsing booking patch times")
		return
	}

	booking, err := b.app.UpdateBooking(id, patch)
	if err != nil {
		handleJSONError(w, err, "updating booking")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBooking(booking))
}

// ChangeSeat handles PATCH /api/bookings/{bookingID}/change-seat
func (b *Bookings) ChangeSeat(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["bookingID"]

	var form struct {
		NewSeatName string `json:"newSeatName"`
	}
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing seat change payload")
		return
	}

	booking, err := b.app.ChangeSeat(actorData(r), id, form.NewSeatName)
	if err != nil {
		handleJSONError(w, err, "changing seat")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBooking(booking))
}

// Delete handles DELETE /api/bookings/{bookingID}
func (b *Bookings) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["bookingID"]

	if err := b.app.DeleteBooking(actorData(r), id); err != nil {
		handleJSONError(w, err, "deleting booking")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Archive handles POST /api/bookings/archive
func (b *Bookings) Archive(w http.ResponseWriter, r *http.Request) {
	count, err := b.app.ArchiveCompleted()
	if err != nil {
		handleJSONError(w, err, "archiving bookings")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}

// History handles GET /api/booking-history
func (b *Bookings) History(w http.ResponseWriter, r *http.Request) {
	history, err := b.app.GetBookingHistory()
	if err != nil {
		handleJSONError(w, err, "getting booking history")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBookingHistories(history))
}

// PaymentMethodForm is the payload for a bulk payment method update
type PaymentMethodForm struct {
	BookingIDs    []string `json:"bookingIds"`
	PaymentMethod string   `json:"paymentMethod"`
}

// PaymentMethod handles POST /api/bookings/payment-method
func (b *Bookings) PaymentMethod(w http.ResponseWriter, r *http.Request) {
	var form PaymentMethodForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payment method payload")
		return
	}

	count, err := b.app.SetPaymentMethod(form.BookingIDs, form.PaymentMethod)
	if err != nil {
		handleJSONError(w, err, "setting payment method")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}

// PaymentStatusForm is the payload for a bulk payment status update
type PaymentStatusForm struct {
	BookingIDs    []string `json:"bookingIds"`
	PaymentStatus string   `json:"paymentStatus"`
	PaymentMethod string   `json:"paymentMethod"`
}

// PaymentStatus handles POST /api/bookings/payment-status
func (b *Bookings) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	var form PaymentStatusForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payment status payload")
		return
	}

	updated, err := b.app.SetPaymentStatus(form.BookingIDs, form.PaymentStatus, form.PaymentMethod)
	if err != nil {
		handleJSONError(w, err, "setting payment status")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"count":    len(updated),
		"bookings": presenters.PresentBookings(updated),
	})
}

// SplitPaymentForm is the payload for a bulk split payment
type SplitPaymentForm struct {
	BookingIDs []string `json:"bookingIds"`
	CashAmount string   `json:"cashAmount"`
	UpiAmount  string   `json:"upiAmount"`
}

// SplitPayment handles POST /api/bookings/split-payment
func (b *Bookings) SplitPayment(w http.ResponseWriter, r *http.Request) {
	var form SplitPaymentForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing split payment payload")
		return
	}

	updated, err := b.app.SplitPayment(form.BookingIDs, form.CashAmount, form.UpiAmount)
	if err != nil {
		handleJSONError(w, err, "splitting payment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"count":    len(updated),
		"bookings": presenters.PresentBookings(updated),
	})
}
