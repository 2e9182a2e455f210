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

package presenters

import "github.com/airavoto/gamingpos/pkg/server/database"

// FoodItem is a presented inventory item
type FoodItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	CostPrice     *string `json:"costPrice"`
	CurrentStock  int     `json:"currentStock"`
	MinStockLevel int     `json:"minStockLevel"`
	InInventory   bool    `json:"inInventory"`
	Category      string  `json:"category"`
	Supplier      *string `json:"supplier"`
	ExpiryDate    *string `json:"expiryDate"`
}

// PresentFoodItem presents a food item
func PresentFoodItem(i database.FoodItem) FoodItem {
	item := FoodItem{
		ID:            i.ID,
		Name:          i.Name,
		Price:         i.Price,
		CostPrice:     i.CostPrice,
		CurrentStock:  i.CurrentStock,
		MinStockLevel: i.MinStockLevel,
		InInventory:   i.InInventory,
		Category:      i.Category,
		Supplier:      i.Supplier,
	}
	if i.ExpiryDate != nil {
		expiry := FormatTS(*i.ExpiryDate)
		item.ExpiryDate = &expiry
	}

	return item
}

// PresentFoodItems presents a slice of food items
func PresentFoodItems(items []database.FoodItem) []FoodItem {
	ret := make([]FoodItem, 0, len(items))
	for _, i := range items {
		ret = append(ret, PresentFoodItem(i))
	}

	return ret
}

// Expense is a presented ledger row
type Expense struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

// PresentExpense presents an expense
func PresentExpense(e database.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        FormatTS(e.Date),
		CreatedAt:   FormatTS(e.CreatedAt),
	}
}

// PresentExpenses presents a slice of expenses
func PresentExpenses(expenses []database.Expense) []Expense {
	ret := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		ret = append(ret, PresentExpense(e))
	}

	return ret
}

// ActivityLog is a presented audit trail entry
type ActivityLog struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	Username   string  `json:"username"`
	UserRole   string  `json:"userRole"`
	Action     string  `json:"action"`
	EntityType *string `json:"entityType"`
	EntityID   *string `json:"entityId"`
	Details    *string `json:"details"`
	CreatedAt  string  `json:"createdAt"`
}

// PresentActivityLog presents an activity log entry
func PresentActivityLog(l database.ActivityLog) ActivityLog {
	return ActivityLog{
		ID:         l.ID,
		UserID:     l.UserID,
		Username:   l.Username,
		UserRole:   l.UserRole,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    l.Details,
		CreatedAt:  FormatTS(l.CreatedAt),
	}
}

// PresentActivityLogs presents a slice of activity log entries
func PresentActivityLogs(logs []database.ActivityLog) []ActivityLog {
	ret := make([]ActivityLog, 0, len(logs))
	for _, l := range logs {
		ret = append(ret, PresentActivityLog(l))
	}

	return ret
}

// Notification is a presented notification
type Notification struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Message       string  `json:"message"`
	EntityType    *string `json:"entityType"`
	EntityID      *string `json:"entityId"`
	ActivityLogID *string `json:"activityLogId"`
	IsRead        bool    `json:"isRead"`
	CreatedAt     string  `json:"createdAt"`
}

// PresentNotification presents a notification
func PresentNotification(n database.Notification) Notification {
	return Notification{
		ID:            n.ID,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		EntityType:    n.EntityType,
		EntityID:      n.EntityID,
		ActivityLogID: n.ActivityLogID,
		IsRead:        n.IsRead,
		CreatedAt:     FormatTS(n.CreatedAt),
	}
}

// PresentNotifications presents a slice of notifications
func PresentNotifications(notifications []database.Notification) []Notification {
	ret := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		ret = append(ret, PresentNotification(n))
	}

	return ret
}

// PaymentLog is a presented payment log entry
type PaymentLog struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"bookingId"`
	SeatName       string  `json:"seatName"`
	CustomerName   string  `json:"customerName"`
	Amount         string  `json:"amount"`
	PaymentMethod  string  `json:"paymentMethod"`
	PaymentStatus  string  `json:"paymentStatus"`
	UserID         string  `json:"userId"`
	Username       string  `json:"username"`
	PreviousStatus *string `json:"previousStatus"`
	PreviousMethod *string `json:"previousMethod"`
	CreatedAt      string  `json:"createdAt"`
}

// PresentPaymentLog presents a payment log entry
func PresentPaymentLog(l database.PaymentLog) PaymentLog {
	return PaymentLog{
		ID:             l.ID,
		BookingID:      l.BookingID,
		SeatName:       l.SeatName,
		CustomerName:   l.CustomerName,
		Amount:         l.Amount,
		PaymentMethod:  l.PaymentMethod,
		PaymentStatus:  l.PaymentStatus,
		UserID:         l.UserID,
		Username:       l.Username,
		PreviousStatus: l.PreviousStatus,
		PreviousMethod: l.PreviousMethod,
		CreatedAt:      FormatTS(l.CreatedAt),
	}
}

// PresentPaymentLogs presents a slice of payment log entries
func PresentPaymentLogs(logs []database.PaymentLog) []PaymentLog {
	ret := make([]PaymentLog, 0, len(logs))
	for _, l := range logs {
		ret = append(ret, PresentPaymentLog(l))
	}

	return ret
}

// DeviceMaintenance is a presented maintenance record
type DeviceMaintenance struct {
	ID                  string  `json:"id"`
	Category            string  `json:"category"`
	SeatName            string  `json:"seatName"`
	LastMaintenanceDate *string `json:"lastMaintenanceDate"`
	TotalUsageHours     float64 `json:"totalUsageHours"`
	TotalSessions       int     `json:"totalSessions"`
	IssuesReported      int     `json:"issuesReported"`
	MaintenanceNotes    *string `json:"maintenanceNotes"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

// PresentDeviceMaintenance presents a maintenance record
func PresentDeviceMaintenance(m database.DeviceMaintenance) DeviceMaintenance {
	record := DeviceMaintenance{
		ID:               m.ID,
		Category:         m.Category,
		SeatName:         m.SeatName,
		TotalUsageHours:  m.TotalUsageHours,
		TotalSessions:    m.TotalSessions,
		IssuesReported:   m.IssuesReported,
		MaintenanceNotes: m.MaintenanceNotes,
		Status:           m.Status,
		CreatedAt:        FormatTS(m.CreatedAt),
		UpdatedAt:        FormatTS(m.UpdatedAt),
	}
	if m.LastMaintenanceDate != nil {
		last := FormatTS(*m.LastMaintenanceDate)
		record.LastMaintenanceDate = &last
	}

	return record
}

// PresentDeviceMaintenances presents a slice of maintenance records
func PresentDeviceMaintenances(maintenance []database.DeviceMaintenance) []DeviceMaintenance {
	ret := make([]DeviceMaintenance, 0, len(maintenance))
	for _, m := range maintenance {
		ret = append(ret, PresentDeviceMaintenance(m))
	}

	return ret
}
