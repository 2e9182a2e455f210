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
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// GenerateBookingCode returns a human-readable booking code of the form
// BK-<base36 timestamp tail><4 hex digits>.
func (a *App) GenerateBookingCode() string {
	ts := strings.ToUpper(strconv.FormatInt(a.Clock.Now().UnixMilli(), 36))
	if len(ts) > 5 {
		ts = ts[len(ts)-5:]
	}

	return fmt.Sprintf("BK-%s%04X", ts, rand.Intn(0x10000))
}

// CreateBookingParams are the fields accepted when creating a booking.
// Object-valued fields arrive as raw JSON and are persisted as text.
type CreateBookingParams struct {
	BookingCode              string
	GroupID                  *string
	GroupCode                *string
	Category                 string
	SeatNumber               int
	SeatName                 string
	CustomerName             string
	WhatsappNumber           *string
	StartTime                time.Time
	EndTime                  time.Time
	Price                    string
	Status                   string
	BookingType              json.RawMessage
	PausedRemainingTime      *int64
	PersonCount              int
	PaymentMethod            *string
	CashAmount               *string
	UpiAmount                *string
	PaymentStatus            string
	LastPaymentAction        json.RawMessage
	FoodOrders               json.RawMessage
	OriginalPrice            *string
	DiscountApplied          *string
	BonusHoursApplied        *string
	PromotionDetails         json.RawMessage
	IsPromotionalDiscount    bool
	IsPromotionalBonus       bool
	ManualDiscountPercentage *int
	ManualFreeHours          *string
	Discount                 *string
	Bonus                    *string
}

func rawOrDefault(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}

	return string(raw)
}

func rawOrNil(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}

	s := string(raw)
	return &s
}

// CreateBooking persists a new booking. The availability check is advisory
// only; callers are expected to consult AvailableSeats first.
func (a *App) CreateBooking(actor session.Data, p CreateBookingParams) (database.Booking, error) {
	code := p.BookingCode
	if code == "" {
		code = a.GenerateBookingCode()
	}

	personCount := p.PersonCount
	if personCount == 0 {
		personCount = 1
	}
	paymentStatus := p.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = database.PaymentStatusUnpaid
	}

	booking := database.Booking{
		ID:                       uuid.NewString(),
		BookingCode:              code,
		GroupID:                  p.GroupID,
		GroupCode:                p.GroupCode,
		Category:                 p.Category,
		SeatNumber:               p.SeatNumber,
		SeatName:                 p.SeatName,
		CustomerName:             p.CustomerName,
		WhatsappNumber:           p.WhatsappNumber,
		StartTime:                p.StartTime.UnixMilli(),
		EndTime:                  p.EndTime.UnixMilli(),
		Price:                    p.Price,
		Status:                   p.Status,
		BookingType:              rawOrDefault(p.BookingType, "[]"),
		PausedRemainingTime:      p.PausedRemainingTime,
		PersonCount:              personCount,
		PaymentMethod:            p.PaymentMethod,
		CashAmount:               p.CashAmount,
		UpiAmount:                p.UpiAmount,
		PaymentStatus:            paymentStatus,
		LastPaymentAction:        rawOrNil(p.LastPaymentAction),
		FoodOrders:               rawOrDefault(p.FoodOrders, "[]"),
		OriginalPrice:            p.OriginalPrice,
		DiscountApplied:          p.DiscountApplied,
		BonusHoursApplied:        p.BonusHoursApplied,
		PromotionDetails:         rawOrNil(p.PromotionDetails),
		IsPromotionalDiscount:    p.IsPromotionalDiscount,
		IsPromotionalBonus:       p.IsPromotionalBonus,
		ManualDiscountPercentage: p.ManualDiscountPercentage,
		ManualFreeHours:          p.ManualFreeHours,
		Discount:                 p.Discount,
		Bonus:                    p.Bonus,
		CreatedAt:                a.Clock.Now().UnixMilli(),
	}
	if err := a.DB.Create(&booking).Error; err != nil {
		return database.Booking{}, pkgErrors.Wrap(err, "inserting booking")
	}

	detail := fmt.Sprintf("Created booking for %s at %s", booking.CustomerName, booking.SeatName)
	a.logActivity(actor, "create", "booking", booking.ID, detail)

	return booking, nil
}

// GetBooking fetches a booking by id
func (a *App) GetBooking(id string) (database.Booking, error) {
	var booking database.Booking
	err := a.DB.Where("id = ?", id).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Booking{}, ErrNotFound
	} else if err != nil {
		return database.Booking{}, pkgErrors.Wrap(err, "finding booking")
	}

	return booking, nil
}

// GetBookings returns all bookings, newest first
func (a *App) GetBookings() ([]database.Booking, error) {
	bookings := []database.Booking{}
	if err := a.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding bookings")
	}

	return bookings, nil
}

// GetActiveBookings returns bookings that currently occupy a seat
func (a *App) GetActiveBookings() ([]database.Booking, error) {
	bookings := []database.Booking{}
	err := a.DB.Where("status IN ?", database.ActiveBookingStatuses).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding active bookings")
	}

	return bookings, nil
}

// BookingPatch enumerates the updatable booking fields. Only non-nil
// fields are written.
type BookingPatch struct {
	GroupID                  *string
	GroupCode                *string
	Category                 *string
	SeatNumber               *int
	SeatName                 *string
	CustomerName             *string
	WhatsappNumber           *string
	StartTime                *time.Time
	EndTime                  *time.Time
	Price                    *string
	Status                   *string
	BookingType              json.RawMessage
	PausedRemainingTime      *int64
	PersonCount              *int
	PaymentMethod            *string
	CashAmount               *string
	UpiAmount                *string
	PaymentStatus            *string
	LastPaymentAction        json.RawMessage
	FoodOrders               json.RawMessage
	OriginalPrice            *string
	DiscountApplied          *string
	BonusHoursApplied        *string
	PromotionDetails         json.RawMessage
	IsPromotionalDiscount    *bool
	IsPromotionalBonus       *bool
	ManualDiscountPercentage *int
	ManualFreeHours          *string
	Discount                 *string
	Bonus                    *string
}

func (p BookingPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}

	if p.GroupID != nil {
		cols["group_id"] = *p.GroupID
	}
	if p.GroupCode != nil {
		cols["group_code"] = *p.GroupCode
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.SeatNumber != nil {
		cols["seat_number"] = *p.SeatNumber
	}
	if p.SeatName != nil {
		cols["seat_name"] = *p.SeatName
	}
	if p.CustomerName != nil {
		cols["customer_name"] = *p.CustomerName
	}
	if p.WhatsappNumber != nil {
		cols["whatsapp_number"] = *p.WhatsappNumber
	}
	if p.StartTime != nil {
		cols["start_time"] = p.StartTime.UnixMilli()
	}
	if p.EndTime != nil {
		cols["end_time"] = p.EndTime.UnixMilli()
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.BookingType != nil {
		cols["booking_type"] = string(p.BookingType)
	}
	if p.PausedRemainingTime != nil {
		cols["paused_remaining_time"] = *p.PausedRemainingTime
	}
	if p.PersonCount != nil {
		cols["person_count"] = *p.PersonCount
	}
	if p.PaymentMethod != nil {
		cols["payment_method"] = *p.PaymentMethod
	}
	if p.CashAmount != nil {
		cols["cash_amount"] = *p.CashAmount
	}
	if p.UpiAmount != nil {
		cols["upi_amount"] = *p.UpiAmount
	}
	if p.PaymentStatus != nil {
		cols["payment_status"] = *p.PaymentStatus
	}
	if p.LastPaymentAction != nil {
		cols["last_payment_action"] = string(p.LastPaymentAction)
	}
	if p.FoodOrders != nil {
		cols["food_orders"] = string(p.FoodOrders)
	}
	if p.OriginalPrice != nil {
		cols["original_price"] = *p.OriginalPrice
	}
	if p.DiscountApplied != nil {
		cols["discount_applied"] = *p.DiscountApplied
	}
	if p.BonusHoursApplied != nil {
		cols["bonus_hours_applied"] = *p.BonusHoursApplied
	}
	if p.PromotionDetails != nil {
		cols["promotion_details"] = string(p.PromotionDetails)
	}
	if p.IsPromotionalDiscount != nil {
		cols["is_promotional_discount"] = *p.IsPromotionalDiscount
	}
	if p.IsPromotionalBonus != nil {
		cols["is_promotional_bonus"] = *p.IsPromotionalBonus
	}
	if p.ManualDiscountPercentage != nil {
		cols["manual_discount_percentage"] = *p.ManualDiscountPercentage
	}
	if p.ManualFreeHours != nil {
		cols["manual_free_hours"] = *p.ManualFreeHours
	}
	if p.Discount != nil {
		cols["discount"] = *p.Discount
	}
	if p.Bonus != nil {
		cols["bonus"] = *p.Bonus
	}

	return cols
}

// UpdateBooking applies a partial update and returns the updated booking
func (a *App) UpdateBooking(id string, patch BookingPatch) (database.Booking, error) {
	if _, err := a.GetBooking(id); err != nil {
		return database.Booking{}, err
	}

	cols := patch.columns()
	if len(cols) > 0 {
		err := a.DB.Model(&database.Booking{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return database.Booking{}, pkgErrors.Wrap(err, "updating booking")
		}
	}

	return a.GetBooking(id)
}

// ChangeSeat moves a booking to a different seat. The seat number is
// derived from the new seat name's trailing digits.
func (a *App) ChangeSeat(actor session.Data, id, newSeatName string) (database.Booking, error) {
	if newSeatName == "" {
		return database.Booking{}, ErrSeatNameRequired
	}

	booking, err := a.GetBooking(id)
	if err != nil {
		return database.Booking{}, err
	}

	oldSeatName := booking.SeatName
	newSeatNumber := ParseSeatNumber(newSeatName)

	err = a.DB.Model(&database.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"seat_name":   newSeatName,
		"seat_number": newSeatNumber,
	}).Error
	if err != nil {
		return database.Booking{}, pkgErrors.Wrap(err, "updating seat")
	}

	detail := fmt.Sprintf("Changed seat from %s to %s", oldSeatName, newSeatName)
	a.logActivity(actor, "update", "booking", id, detail)

	return a.GetBooking(id)
}

// DeleteBooking removes a booking
func (a *App) DeleteBooking(actor session.Data, id string) error {
	booking, err := a.GetBooking(id)
	if err != nil {
		return err
	}

	if err := a.DB.Where("id = ?", id).Delete(&database.Booking{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting booking")
	}

	detail := fmt.Sprintf("Deleted booking for %s at %s", booking.CustomerName, booking.SeatName)
	a.logActivity(actor, "delete", "booking", id, detail)

	return nil
}

// ArchiveCompleted moves every completed or expired booking into history
// and returns the number moved. Each booking is copied then deleted; the
// pair is deliberately not wrapped in a transaction, matching the
// per-statement semantics of the rest of the system.
func (a *App) ArchiveCompleted() (int, error) {
	finished := []database.Booking{}
	err := a.DB.Where("status IN ?", database.FinishedBookingStatuses).Find(&finished).Error
	if err != nil {
		return 0, pkgErrors.Wrap(err, "finding finished bookings")
	}

	count := 0
	now := a.Clock.Now().UnixMilli()

	for _, b := range finished {
		record := database.BookingHistory{
			ID:                       uuid.NewString(),
			BookingID:                b.ID,
			BookingCode:              b.BookingCode,
			GroupID:                  b.GroupID,
			GroupCode:                b.GroupCode,
			Category:                 b.Category,
			SeatNumber:               b.SeatNumber,
			SeatName:                 b.SeatName,
			CustomerName:             b.CustomerName,
			WhatsappNumber:           b.WhatsappNumber,
			StartTime:                b.StartTime,
			EndTime:                  b.EndTime,
			Price:                    b.Price,
			Status:                   b.Status,
			BookingType:              b.BookingType,
			PausedRemainingTime:      b.PausedRemainingTime,
			PersonCount:              b.PersonCount,
			PaymentMethod:            b.PaymentMethod,
			CashAmount:               b.CashAmount,
			UpiAmount:                b.UpiAmount,
			PaymentStatus:            b.PaymentStatus,
			LastPaymentAction:        b.LastPaymentAction,
			FoodOrders:               b.FoodOrders,
			OriginalPrice:            b.OriginalPrice,
			DiscountApplied:          b.DiscountApplied,
			BonusHoursApplied:        b.BonusHoursApplied,
			PromotionDetails:         b.PromotionDetails,
			IsPromotionalDiscount:    b.IsPromotionalDiscount,
			IsPromotionalBonus:       b.IsPromotionalBonus,
			ManualDiscountPercentage: b.ManualDiscountPercentage,
			ManualFreeHours:          b.ManualFreeHours,
			Discount:                 b.Discount,
			Bonus:                    b.Bonus,
			CreatedAt:                b.CreatedAt,
			ArchivedAt:               now,
		}
		if err := a.DB.Create(&record).Error; err != nil {
			return count, pkgErrors.Wrap(err, "inserting history record")
		}
		if err := a.DB.Where("id = ?", b.ID).Delete(&database.Booking{}).Error; err != nil {
			return count, pkgErrors.Wrap(err, "deleting archived booking")
		}

		count++
	}

	return count, nil
}

// GetBookingHistory returns archived bookings, most recently archived first
func (a *App) GetBookingHistory() ([]database.BookingHistory, error) {
	history := []database.BookingHistory{}
	if err := a.DB.Order("archived_at DESC").Find(&history).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding booking history")
	}

	return history, nil
}
