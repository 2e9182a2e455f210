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
	"time"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/clock"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestUpsertDeviceConfig(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	created, err := a.UpsertDeviceConfig("PC", 2, []string{"PC-1", "PC-2"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating"))
	}
	assert.Equal(t, created.Category, "PC", "category mismatch")
	assert.Equal(t, created.Count, 2, "count mismatch")

	// a second save for the same category replaces rather than duplicates
	updated, err := a.UpsertDeviceConfig("PC", 3, []string{"PC-1", "PC-2", "PC-3"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "updating"))
	}
	assert.Equal(t, updated.Count, 3, "count mismatch")

	var configCount int64
	testutils.MustExec(t, db.Model(&database.DeviceConfig{}).Count(&configCount), "counting configs")
	assert.Equal(t, configCount, int64(1), "config count mismatch")
}

func TestReplacePricingConfigs(t *testing.T) {
	t.Run("replaces only the given category", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db

		if _, err := a.ReplacePricingConfigs("PS5", []PriceRow{
			{Duration: "1 hour", Price: "25"},
		}); err != nil {
			t.Fatal(errors.Wrap(err, "seeding PS5"))
		}

		if _, err := a.ReplacePricingConfigs("PC", []PriceRow{
			{Duration: "30 mins", Price: "10"},
			{Duration: "1 hour", Price: "18"},
		}); err != nil {
			t.Fatal(errors.Wrap(err, "seeding PC"))
		}

		rows, err := a.ReplacePricingConfigs("PC", []PriceRow{
			{Duration: "1 hour", Price: "20", PersonCount: 2},
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equalf(t, len(rows), 1, "row count mismatch")
		assert.Equal(t, rows[0].Price, "20", "price mismatch")
		assert.Equal(t, rows[0].PersonCount, 2, "person count mismatch")

		var ps5Count int64
		testutils.MustExec(t, db.Model(&database.PricingConfig{}).Where("category = ?", "PS5").Count(&ps5Count), "counting PS5 rows")
		assert.Equal(t, ps5Count, int64(1), "other categories should be untouched")
	})

	t.Run("person count defaults to 1", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		rows, err := a.ReplacePricingConfigs("PC", []PriceRow{
			{Duration: "30 mins", Price: "10"},
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, rows[0].PersonCount, 1, "person count mismatch")
	})

	t.Run("invalid payload", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		_, err := a.ReplacePricingConfigs("", []PriceRow{{Duration: "1 hour", Price: "18"}})
		assert.Equal(t, errors.Cause(err), ErrInvalidConfigPayload, "error mismatch for empty category")

		_, err = a.ReplacePricingConfigs("PC", nil)
		assert.Equal(t, errors.Cause(err), ErrInvalidConfigPayload, "error mismatch for nil rows")
	})
}

func TestIsHappyHourActive(t *testing.T) {
	setup := func(t *testing.T, window HappyHourWindow) *App {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		if _, err := a.ReplaceHappyHoursConfigs("PC", []HappyHourWindow{window}); err != nil {
			t.Fatal(errors.Wrap(err, "seeding happy hours config"))
		}

		return &a
	}

	// the mock clock reads 12:00
	t.Run("inside window", func(t *testing.T) {
		a := setup(t, HappyHourWindow{StartTime: "11:00", EndTime: "13:00", Enabled: true})

		active, err := a.IsHappyHourActive("PC")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, active, true, "active mismatch")
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		a := setup(t, HappyHourWindow{StartTime: "12:00", EndTime: "12:00", Enabled: true})

		active, err := a.IsHappyHourActive("PC")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, active, true, "active mismatch")
	})

	t.Run("outside window", func(t *testing.T) {
		a := setup(t, HappyHourWindow{StartTime: "18:00", EndTime: "22:00", Enabled: true})

		active, err := a.IsHappyHourActive("PC")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, active, false, "active mismatch")
	})

	t.Run("disabled window", func(t *testing.T) {
		a := setup(t, HappyHourWindow{StartTime: "11:00", EndTime: "13:00", Enabled: false})

		active, err := a.IsHappyHourActive("PC")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, active, false, "active mismatch")
	})

	t.Run("no config", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		active, err := a.IsHappyHourActive("PC")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, active, false, "active mismatch")
	})

	t.Run("follows the clock", func(t *testing.T) {
		a := setup(t, HappyHourWindow{StartTime: "18:00", EndTime: "22:00", Enabled: true})

		mock := a.Clock.(*clock.Mock)
		mock.SetNow(time.Date(2024, time.June, 1, 19, 30, 0, 0, time.Local))

		active, err := a.IsHappyHourActive("PC")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, active, true, "active mismatch")
	})
}
