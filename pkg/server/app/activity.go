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
	"github.com/airavoto/gamingpos/pkg/server/log"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
)

// logActivity appends an audit trail entry. Failures are logged and
// swallowed so that audit writes never fail the originating request.
// Anonymous actors are skipped.
func (a *App) logActivity(actor session.Data, action, entityType, entityID, details string) {
	if actor.UserID == "" {
		return
	}

	username := actor.Username
	if username == "" {
		username = "unknown"
	}
	role := actor.Role
	if role == "" {
		role = database.RoleStaff
	}

	entry := database.ActivityLog{
		ID:         uuid.NewString(),
		UserID:     actor.UserID,
		Username:   username,
		UserRole:   role,
		Action:     action,
		EntityType: &entityType,
		EntityID:   &entityID,
		Details:    &details,
		CreatedAt:  a.Clock.Now().UnixMilli(),
	}
	if err := a.DB.Create(&entry).Error; err != nil {
		log.ErrorWrap(err, "saving activity log")
	}
}

// GetActivityLogs returns the most recent audit trail entries, newest first
func (a *App) GetActivityLogs() ([]database.ActivityLog, error) {
	logs := []database.ActivityLog{}
	err := a.DB.Order("created_at DESC").Limit(500).Find(&logs).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding activity logs")
	}

	return logs, nil
}
