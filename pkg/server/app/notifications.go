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
	"github.com/airavoto/gamingpos/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
)

// GetNotifications returns the most recent notifications, newest first
func (a *App) GetNotifications() ([]database.Notification, error) {
	notifications := []database.Notification{}
	err := a.DB.Order("created_at DESC").Limit(100).Find(&notifications).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding notifications")
	}

	return notifications, nil
}

// MarkNotificationRead marks one notification as read and returns it
func (a *App) MarkNotificationRead(id string) (database.Notification, error) {
	err := a.DB.Model(&database.Notification{}).Where("id = ?", id).Update("is_read", true).Error
	if err != nil {
		return database.Notification{}, pkgErrors.Wrap(err, "updating notification")
	}

	var notification database.Notification
	err = a.DB.Where("id = ?", id).First(&notification).Error
	if err != nil {
		return database.Notification{}, pkgErrors.Wrap(err, "finding notification")
	}

	return notification, nil
}

// MarkAllNotificationsRead marks every notification as read
func (a *App) MarkAllNotificationsRead() error {
	err := a.DB.Model(&database.Notification{}).Where("is_read = ?", false).Update("is_read", true).Error
	if err != nil {
		return pkgErrors.Wrap(err, "updating notifications")
	}

	return nil
}
