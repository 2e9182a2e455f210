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
	"testing"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestCreateFoodItem(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	item, err := a.CreateFoodItem(CreateFoodItemParams{
		Name:         "Fries",
		Price:        "50",
		CurrentStock: 20,
	})
	if err != nil {
		t.Fatal(errors.Wrap(err, "executing"))
	}

	assert.Equal(t, item.Name, "Fries", "name mismatch")
	assert.Equal(t, item.MinStockLevel, 10, "min stock should default to 10")
	assert.Equal(t, item.Category, "trackable", "category should default to trackable")

	var count int64
	testutils.MustExec(t, db.Model(&database.FoodItem{}).Count(&count), "counting items")
	assert.Equal(t, count, int64(1), "item count mismatch")
}

func TestUpdateFoodItem(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		item, err := a.CreateFoodItem(CreateFoodItemParams{Name: "Fries", Price: "50"})
		if err != nil {
			t.Fatal(errors.Wrap(err, "creating"))
		}

		price := "60"
		updated, err := a.UpdateFoodItem(item.ID, FoodItemPatch{Price: &price})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, updated.Price, "60", "price mismatch")
		assert.Equal(t, updated.Name, "Fries", "name should be untouched")
	})

	t.Run("not found", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		name := "Chips"
		_, err := a.UpdateFoodItem("no-such-id", FoodItemPatch{Name: &name})

		assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")
	})
}

func TestAdjustStock(t *testing.T) {
	setup := func(t *testing.T, stock int) (*App, database.FoodItem) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		item, err := a.CreateFoodItem(CreateFoodItemParams{
			Name:         "Cola",
			Price:        "30",
			CurrentStock: stock,
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "creating"))
		}

		return &a, item
	}

	t.Run("add", func(t *testing.T) {
		a, item := setup(t, 5)

		updated, err := a.AdjustStock(item.ID, 3, "add")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, updated.CurrentStock, 8, "stock mismatch")
	})

	t.Run("subtract", func(t *testing.T) {
		a, item := setup(t, 5)

		updated, err := a.AdjustStock(item.ID, 3, "subtract")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, updated.CurrentStock, 2, "stock mismatch")
	})

	t.Run("stock never goes negative", func(t *testing.T) {
		a, item := setup(t, 2)

		updated, err := a.AdjustStock(item.ID, 10, "subtract")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, updated.CurrentStock, 0, "stock mismatch")
	})

	t.Run("not found", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.AdjustStock("no-such-id", 1, "add")

		assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")
	})
}
