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

import (
	"os"
	"path/filepath"

	"github.com/airavoto/gamingpos/pkg/server/config"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitSchema migrates database schema to reflect the latest model definition
func InitSchema(db *gorm.DB) {
	if err := db.AutoMigrate(
		&User{},
		&DeviceConfig{},
		&PricingConfig{},
		&HappyHoursConfig{},
		&HappyHoursPricing{},
		&Booking{},
		&BookingHistory{},
		&FoodItem{},
		&Expense{},
		&ActivityLog{},
		&Notification{},
		&GamingCenterInfo{},
		&RetentionConfig{},
		&DeviceMaintenance{},
		&PaymentLog{},
		&Session{},
	); err != nil {
		panic(err)
	}
}

// Open initializes the database connection for the configured backend.
// The two backends share an identical schema; the deployment-mode flag
// selects exactly one at startup.
func Open(c config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch c.DBMode {
	case config.DBModePostgres:
		dialector = postgres.Open(c.DatabaseURL)
	default:
		dir := filepath.Dir(c.DBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(errors.Wrapf(err, "creating database directory at %s", dir))
		}

		dialector = sqlite.Open(c.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(errors.Wrap(err, "opening database connection"))
	}

	return db
}
