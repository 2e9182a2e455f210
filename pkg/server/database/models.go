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

// Timestamps are stored as epoch milliseconds so that both backends share
// an identical column shape. JSON-valued fields (seats, food orders,
// booking type tags) are stored as serialized text and decoded by the
// presenters.

// User is a model for a staff or admin account
type User struct {
	ID                  string `gorm:"primaryKey;type:text"`
	Username            string `gorm:"uniqueIndex"`
	PasswordHash        string
	Role                string
	Email               *string
	FirstName           *string
	LastName            *string
	OnboardingCompleted bool  `gorm:"default:false"`
	CreatedAt           int64 `gorm:"autoCreateTime:milli"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli"`
}

// DeviceConfig defines the bookable seat inventory for one category
type DeviceConfig struct {
	ID       string `gorm:"primaryKey;type:text"`
	Category string `gorm:"uniqueIndex"`
	Count    int    `gorm:"default:0"`
	Seats    string `gorm:"type:text;default:'[]'"`
}

// PricingConfig is one row of the price list keyed by (category, duration, person count)
type PricingConfig struct {
	ID          string `gorm:"primaryKey;type:text"`
	Category    string `gorm:"index"`
	Duration    string
	Price       string
	PersonCount int `gorm:"default:1"`
}

// HappyHoursPricing is the price list consulted while happy hours are active
type HappyHoursPricing struct {
	ID          string `gorm:"primaryKey;type:text"`
	Category    string `gorm:"index"`
	Duration    string
	Price       string
	PersonCount int `gorm:"default:1"`
}

// HappyHoursConfig is the wall-clock window during which happy-hour pricing applies
type HappyHoursConfig struct {
	ID        string `gorm:"primaryKey;type:text"`
	Category  string `gorm:"index"`
	StartTime string
	EndTime   string
	Enabled   bool `gorm:"default:true"`
}

// Booking is the central entity: one seat occupied for one time interval
type Booking struct {
	ID                       string  `gorm:"primaryKey;type:text"`
	BookingCode              string  `gorm:"uniqueIndex"`
	GroupID                  *string `gorm:"index"`
	GroupCode                *string
	Category                 string `gorm:"index"`
	SeatNumber               int
	SeatName                 string
	CustomerName             string
	WhatsappNumber           *string
	StartTime                int64 `gorm:"index"`
	EndTime                  int64
	Price                    string
	Status                   string `gorm:"index"`
	BookingType              string `gorm:"type:text;default:'[]'"`
	PausedRemainingTime      *int64
	PersonCount              int `gorm:"default:1"`
	PaymentMethod            *string
	CashAmount               *string
	UpiAmount                *string
	PaymentStatus            string  `gorm:"default:unpaid"`
	LastPaymentAction        *string `gorm:"type:text"`
	FoodOrders               string  `gorm:"type:text;default:'[]'"`
	OriginalPrice            *string
	DiscountApplied          *string
	BonusHoursApplied        *string
	PromotionDetails         *string `gorm:"type:text"`
	IsPromotionalDiscount    bool    `gorm:"default:false"`
	IsPromotionalBonus       bool    `gorm:"default:false"`
	ManualDiscountPercentage *int
	ManualFreeHours          *string
	Discount                 *string
	Bonus                    *string
	CreatedAt                int64 `gorm:"autoCreateTime:milli"`
}

// BookingHistory is an archived, immutable copy of a booking
type BookingHistory struct {
	ID                       string `gorm:"primaryKey;type:text"`
	BookingID                string `gorm:"index"`
	BookingCode              string
	GroupID                  *string
	GroupCode                *string
	Category                 string `gorm:"index"`
	SeatNumber               int
	SeatName                 string
	CustomerName             string
	WhatsappNumber           *string
	StartTime                int64 `gorm:"index"`
	EndTime                  int64
	Price                    string
	Status                   string
	BookingType              string `gorm:"type:text;default:'[]'"`
	PausedRemainingTime      *int64
	PersonCount              int `gorm:"default:1"`
	PaymentMethod            *string
	CashAmount               *string
	UpiAmount                *string
	PaymentStatus            string  `gorm:"default:unpaid"`
	LastPaymentAction        *string `gorm:"type:text"`
	FoodOrders               string  `gorm:"type:text;default:'[]'"`
	OriginalPrice            *string
	DiscountApplied          *string
	BonusHoursApplied        *string
	PromotionDetails         *string `gorm:"type:text"`
	IsPromotionalDiscount    bool    `gorm:"default:false"`
	IsPromotionalBonus       bool    `gorm:"default:false"`
	ManualDiscountPercentage *int
	ManualFreeHours          *string
	Discount                 *string
	Bonus                    *string
	CreatedAt                int64
	ArchivedAt               int64 `gorm:"index"`
}

// FoodItem is a model for a food or beverage inventory item
type FoodItem struct {
	ID            string `gorm:"primaryKey;type:text"`
	Name          string
	Price         string
	CostPrice     *string
	CurrentStock  int    `gorm:"default:0"`
	MinStockLevel int    `gorm:"default:10"`
	InInventory   bool   `gorm:"default:false"`
	Category      string `gorm:"default:trackable"`
	Supplier      *string
	ExpiryDate    *int64
}

// Expense is a simple ledger row
type Expense struct {
	ID          string `gorm:"primaryKey;type:text"`
	Category    string
	Description string
	Amount      string
	Date        int64 `gorm:"index"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli"`
}

// ActivityLog is an append-only audit trail entry
type ActivityLog struct {
	ID         string `gorm:"primaryKey;type:text"`
	UserID     string `gorm:"index"`
	Username   string
	UserRole   string
	Action     string
	EntityType *string
	EntityID   *string
	Details    *string
	CreatedAt  int64 `gorm:"autoCreateTime:milli"`
}

// Notification is a model for an in-app notification
type Notification struct {
	ID            string `gorm:"primaryKey;type:text"`
	Type          string
	Title         string
	Message       string
	EntityType    *string
	EntityID      *string
	ActivityLogID *string
	IsRead        bool  `gorm:"default:false"`
	CreatedAt     int64 `gorm:"autoCreateTime:milli"`
}

// GamingCenterInfo is a singleton row describing the venue
type GamingCenterInfo struct {
	ID          string `gorm:"primaryKey;type:text"`
	Name        string
	Description string
	Address     string
	Phone       string
	Email       *string
	Hours       string
	Timezone    string `gorm:"default:Asia/Kolkata"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli"`
}

// RetentionConfig is a singleton row of retention windows per table
type RetentionConfig struct {
	ID                  string `gorm:"primaryKey;type:text"`
	BookingHistoryDays  int    `gorm:"default:36500"`
	ActivityLogsDays    int    `gorm:"default:36500"`
	LoadMetricsDays     int    `gorm:"default:36500"`
	LoadPredictionsDays int    `gorm:"default:36500"`
	ExpensesDays        int    `gorm:"default:36500"`
	UpdatedAt           int64  `gorm:"autoUpdateTime:milli"`
}

// DeviceMaintenance holds per-seat usage counters consumed by the
// maintenance-risk heuristics. No route mutates it.
type DeviceMaintenance struct {
	ID                  string `gorm:"primaryKey;type:text"`
	Category            string
	SeatName            string `gorm:"index"`
	LastMaintenanceDate *int64
	TotalUsageHours     float64 `gorm:"default:0"`
	TotalSessions       int     `gorm:"default:0"`
	IssuesReported      int     `gorm:"default:0"`
	MaintenanceNotes    *string
	Status              string `gorm:"default:healthy"`
	CreatedAt           int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt           int64  `gorm:"autoUpdateTime:milli"`
}

// PaymentLog records every payment status/method change against a booking
type PaymentLog struct {
	ID             string `gorm:"primaryKey;type:text"`
	BookingID      string `gorm:"index"`
	SeatName       string
	CustomerName   string
	Amount         string
	PaymentMethod  string
	PaymentStatus  string
	UserID         string
	Username       string
	PreviousStatus *string
	PreviousMethod *string
	CreatedAt      int64 `gorm:"autoCreateTime:milli"`
}

// Session is a persisted session row. The sess column holds the serialized
// session data and expire is an epoch-millisecond deadline.
type Session struct {
	SID    string `gorm:"primaryKey;column:sid;type:text"`
	Sess   string `gorm:"type:text"`
	Expire int64  `gorm:"index"`
}
