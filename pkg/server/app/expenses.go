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
	"errors"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateExpense appends a ledger row
func (a *App) CreateExpense(category, description, amount string, date time.Time) (database.Expense, error) {
	expense := database.Expense{
		ID:          uuid.NewString(),
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        date.UnixMilli(),
		CreatedAt:   a.Clock.Now().UnixMilli(),
	}
	if err := a.DB.Create(&expense).Error; err != nil {
		return database.Expense{}, pkgErrors.Wrap(err, "inserting expense")
	}

	return expense, nil
}

// GetExpense fetches an expense by id
func (a *App) GetExpense(id string) (database.Expense, error) {
	var expense database.Expense
	err := a.DB.Where("id = ?", id).First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Expense{}, ErrNotFound
	} else if err != nil {
		return database.Expense{}, pkgErrors.Wrap(err, "finding expense")
	}

	return expense, nil
}

// GetExpenses returns all expenses, most recent date first
func (a *App) GetExpenses() ([]database.Expense, error) {
	expenses := []database.Expense{}
	if err := a.DB.Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding expenses")
	}

	return expenses, nil
}

// ExpensePatch enumerates the updatable expense fields
type ExpensePatch struct {
	Category    *string
	Description *string
	Amount      *string
	Date        *time.Time
}

// UpdateExpense applies a partial update and returns the updated expense
func (a *App) UpdateExpense(id string, patch ExpensePatch) (database.Expense, error) {
	if _, err := a.GetExpense(id); err != nil {
		return database.Expense{}, err
	}

	cols := map[string]interface{}{}
	if patch.Category != nil {
		cols["category"] = *patch.Category
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Amount != nil {
		cols["amount"] = *patch.Amount
	}
	if patch.Date != nil {
		cols["date"] = patch.Date.UnixMilli()
	}

	if len(cols) > 0 {
		err := a.DB.Model(&database.Expense{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return database.Expense{}, pkgErrors.Wrap(err, "updating expense")
		}
	}

	return a.GetExpense(id)
}

// DeleteExpense removes an expense
func (a *App) DeleteExpense(id string) error {
	if err := a.DB.Where("id = ?", id).Delete(&database.Expense{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting expense")
	}

	return nil
}
