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

// CreateFoodItemParams are the fields accepted when creating a food item
type CreateFoodItemParams struct {
	Name          string
	Price         string
	CostPrice     *string
	CurrentStock  int
	MinStockLevel int
	InInventory   bool
	Category      string
	Supplier      *string
	ExpiryDate    *time.Time
}

// CreateFoodItem adds an item to the food inventory
func (a *App) CreateFoodItem(p CreateFoodItemParams) (database.FoodItem, error) {
	minStock := p.MinStockLevel
	if minStock == 0 {
		minStock = 10
	}
	category := p.Category
	if category == "" {
		category = "trackable"
	}

	item := database.FoodItem{
		ID:            uuid.NewString(),
		Name:          p.Name,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		CurrentStock:  p.CurrentStock,
		MinStockLevel: minStock,
		InInventory:   p.InInventory,
		Category:      category,
		Supplier:      p.Supplier,
	}
	if p.ExpiryDate != nil {
		ms := p.ExpiryDate.UnixMilli()
		item.ExpiryDate = &ms
	}
	if err := a.DB.Create(&item).Error; err != nil {
		return database.FoodItem{}, pkgErrors.Wrap(err, "inserting food item")
	}

	return item, nil
}

// GetFoodItem fetches a food item by id
func (a *App) GetFoodItem(id string) (database.FoodItem, error) {
	var item database.FoodItem
	err := a.DB.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.FoodItem{}, ErrNotFound
	} else if err != nil {
		return database.FoodItem{}, pkgErrors.Wrap(err, "finding food item")
	}

	return item, nil
}

// GetFoodItems returns all food items ordered by name
func (a *App) GetFoodItems() ([]database.FoodItem, error) {
	items := []database.FoodItem{}
	if err := a.DB.Order("name").Find(&items).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding food items")
	}

	return items, nil
}

// FoodItemPatch enumerates the updatable food item fields
type FoodItemPatch struct {
	Name          *string
	Price         *string
	CostPrice     *string
	CurrentStock  *int
	MinStockLevel *int
	InInventory   *bool
	Category      *string
	Supplier      *string
	ExpiryDate    *time.Time
}

// UpdateFoodItem applies a partial update and returns the updated item
func (a *App) UpdateFoodItem(id string, patch FoodItemPatch) (database.FoodItem, error) {
	if _, err := a.GetFoodItem(id); err != nil {
		return database.FoodItem{}, err
	}

	cols := map[string]interface{}{}
	if patch.Name != nil {
		cols["name"] = *patch.Name
	}
	if patch.Price != nil {
		cols["price"] = *patch.Price
	}
	if patch.CostPrice != nil {
		cols["cost_price"] = *patch.CostPrice
	}
	if patch.CurrentStock != nil {
		cols["current_stock"] = *patch.CurrentStock
	}
	if patch.MinStockLevel != nil {
		cols["min_stock_level"] = *patch.MinStockLevel
	}
	if patch.InInventory != nil {
		cols["in_inventory"] = *patch.InInventory
	}
	if patch.Category != nil {
		cols["category"] = *patch.Category
	}
	if patch.Supplier != nil {
		cols["supplier"] = *patch.Supplier
	}
	if patch.ExpiryDate != nil {
		cols["expiry_date"] = patch.ExpiryDate.UnixMilli()
	}

	if len(cols) > 0 {
		err := a.DB.Model(&database.FoodItem{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return database.FoodItem{}, pkgErrors.Wrap(err, "updating food item")
		}
	}

	return a.GetFoodItem(id)
}

// DeleteFoodItem removes a food item
func (a *App) DeleteFoodItem(id string) error {
	if err := a.DB.Where("id = ?", id).Delete(&database.FoodItem{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting food item")
	}

	return nil
}

// AdjustStock adds or subtracts stock for a food item. Stock never goes
// below zero.
func (a *App) AdjustStock(id string, quantity int, adjustType string) (database.FoodItem, error) {
	item, err := a.GetFoodItem(id)
	if err != nil {
		return database.FoodItem{}, err
	}

	newStock := item.CurrentStock
	if adjustType == "add" {
		newStock += quantity
	} else {
		newStock -= quantity
		if newStock < 0 {
			newStock = 0
		}
	}

	err = a.DB.Model(&database.FoodItem{}).Where("id = ?", id).Update("current_stock", newStock).Error
	if err != nil {
		return database.FoodItem{}, pkgErrors.Wrap(err, "updating stock")
	}

	return a.GetFoodItem(id)
}
