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

	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordHashCost = 10

// CreateUser creates a user. Role defaults to staff.
func (a *App) CreateUser(username, password, email, role string) (database.User, error) {
	if username == "" || password == "" {
		return database.User{}, ErrCredentialsMissing
	}
	if len(password) < 8 {
		return database.User{}, ErrPasswordTooShort
	}

	var count int64
	if err := a.DB.Model(database.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return database.User{}, pkgErrors.Wrap(err, "counting user")
	}
	if count > 0 {
		return database.User{}, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "hashing password")
	}

	if role == "" {
		role = database.RoleStaff
	}

	user := database.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if email != "" {
		user.Email = &email
	}
	if err := a.DB.Create(&user).Error; err != nil {
		return database.User{}, pkgErrors.Wrap(err, "saving user")
	}

	return user, nil
}

// Authenticate authenticates a user by username and password
func (a *App) Authenticate(username, password string) (*database.User, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsMissing
	}

	var user database.User
	err := a.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLoginInvalid
	} else if err != nil {
		return nil, pkgErrors.Wrap(err, "finding user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrLoginInvalid
	}

	return &user, nil
}

// SignIn establishes a session for the user and returns its id
func (a *App) SignIn(user *database.User) (string, error) {
	sid, err := session.GenerateSID()
	if err != nil {
		return "", pkgErrors.Wrap(err, "generating session id")
	}

	data := session.Data{
		UserID:        user.ID,
		Username:      user.Username,
		Role:          user.Role,
		Authenticated: true,
	}
	if err := a.Sessions.Set(sid, data); err != nil {
		return "", pkgErrors.Wrap(err, "creating session")
	}

	return sid, nil
}

// SignOut destroys the session with the given id
func (a *App) SignOut(sid string) error {
	if err := a.Sessions.Destroy(sid); err != nil {
		return pkgErrors.Wrap(err, "destroying session")
	}

	return nil
}

// GetUser fetches a user by id. It returns ErrNotFound if the id no
// longer exists so that revoked users are rejected immediately.
func (a *App) GetUser(id string) (database.User, error) {
	var user database.User
	err := a.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, ErrNotFound
	} else if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "finding user")
	}

	return user, nil
}

// GetUsers returns all user accounts
func (a *App) GetUsers() ([]database.User, error) {
	users := []database.User{}
	if err := a.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding users")
	}

	return users, nil
}
