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

// Package presenters maps database rows to their JSON representations.
// Timestamps stored as epoch milliseconds become RFC3339 strings, and
// JSON-valued text columns are decoded back into structures.
package presenters

import (
	"encoding/json"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/database"
)

// FoodOrder is one food order line attached to a booking
type FoodOrder struct {
	Item     string `json:"item"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Booking is a presented booking
type Booking struct {
	ID                       string          `json:"id"`
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
	BookingType              []string        `json:"bookingType"`
	PausedRemainingTime      *int64          `json:"pausedRemainingTime"`
	PersonCount              int             `json:"personCount"`
	PaymentMethod            *string         `json:"paymentMethod"`
	CashAmount               *string         `json:"cashAmount"`
	UpiAmount                *string         `json:"upiAmount"`
	PaymentStatus            string          `json:"paymentStatus"`
	LastPaymentAction        json.RawMessage `json:"lastPaymentAction"`
	FoodOrders               []FoodOrder     `json:"foodOrders"`
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
	CreatedAt                string          `json:"createdAt"`
}

// BookingHistory is a presented archived booking
type BookingHistory struct {
	Booking
	BookingID  string `json:"bookingId"`
	ArchivedAt string `json:"archivedAt"`
}

// FormatTS formats an epoch-millisecond timestamp as RFC3339
func FormatTS(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

func decodeStrings(encoded string) []string {
	out := []string{}
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return []string{}
	}

	return out
}

func decodeFoodOrders(encoded string) []FoodOrder {
	out := []FoodOrder{}
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return []FoodOrder{}
	}

	return out
}

func decodeRaw(encoded *string) json.RawMessage {
	if encoded == nil {
		return nil
	}

	return json.RawMessage(*encoded)
}

// PresentBooking presents a booking
func PresentBooking(b database.Booking) Booking {
	return Booking{
		ID:                       b.ID,
		BookingCode:              b.BookingCode,
		GroupID:                  b.GroupID,
		GroupCode:                b.GroupCode,
		Category:                 b.Category,
		SeatNumber:               b.SeatNumber,
		SeatName:                 b.SeatName,
		CustomerName:             b.CustomerName,
		WhatsappNumber:           b.WhatsappNumber,
		StartTime:                FormatTS(b.StartTime),
		EndTime:                  FormatTS(b.EndTime),
		Price:                    b.Price,
		Status:                   b.Status,
		BookingType:              decodeStrings(b.BookingType),
		PausedRemainingTime:      b.PausedRemainingTime,
		PersonCount:              b.PersonCount,
		PaymentMethod:            b.PaymentMethod,
		CashAmount:               b.CashAmount,
		UpiAmount:                b.UpiAmount,
		PaymentStatus:            b.PaymentStatus,
		LastPaymentAction:        decodeRaw(b.LastPaymentAction),
		FoodOrders:               decodeFoodOrders(b.FoodOrders),
		OriginalPrice:            b.OriginalPrice,
		DiscountApplied:          b.DiscountApplied,
		BonusHoursApplied:        b.BonusHoursApplied,
		PromotionDetails:         decodeRaw(b.PromotionDetails),
		IsPromotionalDiscount:    b.IsPromotionalDiscount,
		IsPromotionalBonus:       b.IsPromotionalBonus,
		ManualDiscountPercentage: b.ManualDiscountPercentage,
		ManualFreeHours:          b.ManualFreeHours,
		Discount:                 b.Discount,
		Bonus:                    b.Bonus,
		CreatedAt:                FormatTS(b.CreatedAt),
	}
}

// PresentBookings presents a slice of bookings
func PresentBookings(bookings []database.Booking) []Booking {
	ret := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		ret = append(ret, PresentBooking(b))
	}

	return ret
}

// PresentBookingHistory presents an archived booking
func PresentBookingHistory(h database.BookingHistory) BookingHistory {
	return BookingHistory{
		Booking: PresentBooking(database.Booking{
			ID:                       h.ID,
			BookingCode:              h.BookingCode,
			GroupID:                  h.GroupID,
			GroupCode:                h.GroupCode,
			Category:                 h.Category,
			SeatNumber:               h.SeatNumber,
			SeatName:                 h.SeatName,
			CustomerName:             h.CustomerName,
			WhatsappNumber:           h.WhatsappNumber,
			StartTime:                h.StartTime,
			EndTime:                  h.EndTime,
			Price:                    h.Price,
			Status:                   h.Status,
			BookingType:              h.BookingType,
			PausedRemainingTime:      h.PausedRemainingTime,
			PersonCount:              h.PersonCount,
			PaymentMethod:            h.PaymentMethod,
			CashAmount:               h.CashAmount,
			UpiAmount:                h.UpiAmount,
			PaymentStatus:            h.PaymentStatus,
			LastPaymentAction:        h.LastPaymentAction,
			FoodOrders:               h.FoodOrders,
			OriginalPrice:            h.OriginalPrice,
			DiscountApplied:          h.DiscountApplied,
			BonusHoursApplied:        h.BonusHoursApplied,
			PromotionDetails:         h.PromotionDetails,
			IsPromotionalDiscount:    h.IsPromotionalDiscount,
			IsPromotionalBonus:       h.IsPromotionalBonus,
			ManualDiscountPercentage: h.ManualDiscountPercentage,
			ManualFreeHours:          h.ManualFreeHours,
			Discount:                 h.Discount,
			Bonus:                    h.Bonus,
			CreatedAt:                h.CreatedAt,
		}),
		BookingID:  h.BookingID,
		ArchivedAt: FormatTS(h.ArchivedAt),
	}
}

// PresentBookingHistories presents a slice of archived bookings
func PresentBookingHistories(history []database.BookingHistory) []BookingHistory {
	ret := make([]BookingHistory, 0, len(history))
	for _, h := range history {
		ret = append(ret, PresentBookingHistory(h))
	}

	return ret
}
