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
	"net/http"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/presenters"
	"github.com/gorilla/mux"
)

// NewInventory creates a new Inventory controller
func NewInventory(app *app.App) *Inventory {
	return &Inventory{app: app}
}

// Inventory is a food inventory and expenses controller
type Inventory struct {
	app *app.App
}

// FoodItemForm is the payload for creating a food item
type FoodItemForm struct {
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

// FoodItems handles GET /api/food-items
func (c *Inventory) FoodItems(w http.ResponseWriter, r *http.Request) {
	items, err := c.app.GetFoodItems()
	if err != nil {
		handleJSONError(w, err, "getting food items")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentFoodItems(items))
}

// CreateFoodItem handles POST /api/food-items
func (c *Inventory) CreateFoodItem(w http.ResponseWriter, r *http.Request) {
	var form FoodItemForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing food item payload")
		return
	}

	params := app.CreateFoodItemParams{
		Name:          form.Name,
		Price:         form.Price,
		CostPrice:     form.CostPrice,
		CurrentStock:  form.CurrentStock,
		MinStockLevel: form.MinStockLevel,
		InInventory:   form.InInventory,
		Category:      form.Category,
		Supplier:      form.Supplier,
	}
	if form.ExpiryDate != nil {
		expiry, err := parseTimestamp(*form.ExpiryDate)
		if err != nil {
			handleJSONError(w, err, "parsing expiry date")
			return
		}
		params.ExpiryDate = &expiry
	}

	item, err := c.app.CreateFoodItem(params)
	if err != nil {
		handleJSONError(w, err, "creating food item")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentFoodItem(item))
}

// FoodItemPatchForm is the payload for partially updating a food item
type FoodItemPatchForm struct {
	Name          *string `json:"name"`
	Price         *string `json:"price"`
	CostPrice     *string `json:"costPrice"`
	CurrentStock  *int    `json:"currentStock"`
	MinStockLevel *int    `json:"minStockLevel"`
	InInventory   *bool   `json:"inInventory"`
	Category      *string `json:"category"`
	Supplier      *string `json:"supplier"`
	ExpiryDate    *string `json:"expiryDate"`
}

// UpdateFoodItem handles PATCH /api/food-items/{itemID}
func (c *Inventory) UpdateFoodItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["itemID"]

	var form FoodItemPatchForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing food item patch")
		return
	}

	patch := app.FoodItemPatch{
		Name:          form.Name,
		Price:         form.Price,
		CostPrice:     form.CostPrice,
		CurrentStock:  form.CurrentStock,
		MinStockLevel: form.MinStockLevel,
		InInventory:   form.InInventory,
		Category:      form.Category,
		Supplier:      form.Supplier,
	}
	if form.ExpiryDate != nil {
		expiry, err := parseTimestamp(*form.ExpiryDate)
		if err != nil {
			handleJSONError(w, err, "parsing expiry date")
			return
		}
		patch.ExpiryDate = &expiry
	}

	item, err := c.app.UpdateFoodItem(id, patch)
	if err != nil {
		handleJSONError(w, err, "updating food item")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentFoodItem(item))
}

// DeleteFoodItem handles DELETE /api/food-items/{itemID}
func (c *Inventory) DeleteFoodItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := c.app.DeleteFoodItem(vars["itemID"]); err != nil {
		handleJSONError(w, err, "deleting food item")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// AdjustStockForm is the payload for a stock adjustment
type AdjustStockForm struct {
	Quantity int    `json:"quantity"`
	Type     string `json:"type"`
}

// AdjustStock handles POST /api/food-items/{itemID}/adjust-stock
func (c *Inventory) AdjustStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["itemID"]

	var form AdjustStockForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing stock adjustment payload")
		return
	}

	item, err := c.app.AdjustStock(id, form.Quantity, form.Type)
	if err != nil {
		handleJSONError(w, err, "adjusting stock")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentFoodItem(item))
}

// ExpenseForm is the payload for creating an expense
type ExpenseForm struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

// Expenses handles GET /api/expenses
func (c *Inventory) Expenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := c.app.GetExpenses()
	if err != nil {
		handleJSONError(w, err, "getting expenses")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentExpenses(expenses))
}

// CreateExpense handles POST /api/expenses
func (c *Inventory) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var form ExpenseForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing expense payload")
		return
	}

	date, err := parseTimestamp(form.Date)
	if err != nil {
		// the ledger accepts date-only values as well
		date, err = time.ParseInLocation("2006-01-02", form.Date, time.Local)
		if err != nil {
			handleJSONError(w, app.ErrInvalidDate, "parsing expense date")
			return
		}
	}

	expense, err := c.app.CreateExpense(form.Category, form.Description, form.Amount, date)
	if err != nil {
		handleJSONError(w, err, "creating expense")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentExpense(expense))
}

// ExpensePatchForm is the payload for partially updating an expense
type ExpensePatchForm struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Date        *string `json:"date"`
}

// UpdateExpense handles PATCH /api/expenses/{expenseID}
func (c *Inventory) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["expenseID"]

	var form ExpensePatchForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing expense patch")
		return
	}

	patch := app.ExpensePatch{
		Category:    form.Category,
		Description: form.Description,
		Amount:      form.Amount,
	}
	if form.Date != nil {
		date, err := parseTimestamp(*form.Date)
		if err != nil {
			date, err = time.ParseInLocation("2006-01-02", *form.Date, time.Local)
			if err != nil {
				handleJSONError(w, app.ErrInvalidDate, "parsing expense date")
				return
			}
		}
		patch.Date = &date
	}

	expense, err := c.app.UpdateExpense(id, patch)
	if err != nil {
		handleJSONError(w, err, "updating expense")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentExpense(expense))
}

// DeleteExpense handles DELETE /api/expenses/{expenseID}
func (c *Inventory) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := c.app.DeleteExpense(vars["expenseID"]); err != nil {
		handleJSONError(w, err, "deleting expense")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
