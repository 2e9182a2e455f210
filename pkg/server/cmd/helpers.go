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

package cmd

import (
	"github.com/airavoto/gamingpos/pkg/clock"
	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/config"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/log"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/pkg/errors"
)

// initApp opens the database, migrates the schema and assembles the
// application context. The returned cleanup closes the database connection.
func initApp(cfg config.Config) (*app.App, func()) {
	db := database.Open(cfg)
	database.InitSchema(db)

	c := clock.New()

	a := app.App{
		DB:       db,
		Clock:    c,
		Sessions: session.NewDBStore(db, c),
		Config:   cfg,
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return &a, cleanup
}

var defaultPricing = map[string][]app.PriceRow{
	"PC": {
		{Duration: "30 mins", Price: "10", PersonCount: 1},
		{Duration: "1 hour", Price: "18", PersonCount: 1},
		{Duration: "2 hours", Price: "30", PersonCount: 1},
	},
	"PS5": {
		{Duration: "30 mins", Price: "15", PersonCount: 1},
		{Duration: "1 hour", Price: "25", PersonCount: 1},
		{Duration: "2 hours", Price: "45", PersonCount: 1},
	},
}

var defaultSeats = map[string][]string{
	"PC":  {"PC-1", "PC-2", "PC-3", "PC-4", "PC-5"},
	"PS5": {"PS5-1", "PS5-2", "PS5-3"},
}

// seedDefaults populates a fresh database with default device and pricing
// configs and the initial admin account. Populated tables are left alone.
func seedDefaults(a *app.App) error {
	var deviceCount int64
	if err := a.DB.Model(&database.DeviceConfig{}).Count(&deviceCount).Error; err != nil {
		return errors.Wrap(err, "counting device configs")
	}

	if deviceCount == 0 {
		for category, seats := range defaultSeats {
			if _, err := a.UpsertDeviceConfig(category, len(seats), seats); err != nil {
				return errors.Wrapf(err, "creating %s device config", category)
			}
			if _, err := a.ReplacePricingConfigs(category, defaultPricing[category]); err != nil {
				return errors.Wrapf(err, "creating %s pricing config", category)
			}
		}

		log.Info("default device and pricing configs created")
	}

	var userCount int64
	if err := a.DB.Model(&database.User{}).Count(&userCount).Error; err != nil {
		return errors.Wrap(err, "counting users")
	}

	if userCount == 0 {
		if _, err := a.CreateUser(a.Config.AdminUsername, a.Config.AdminPassword, "", database.RoleAdmin); err != nil {
			return errors.Wrap(err, "creating admin user")
		}

		log.WithFields(log.Fields{
			"username": a.Config.AdminUsername,
		}).Info("admin user created")
	}

	return nil
}
