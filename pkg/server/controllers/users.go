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

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/context"
	"github.com/airavoto/gamingpos/pkg/server/presenters"
	"github.com/airavoto/gamingpos/pkg/server/session"
)

// NewUsers creates a new Users controller
func NewUsers(app *app.App) *Users {
	return &Users{app: app}
}

// Users is an auth and account controller
type Users struct {
	app *app.App
}

// LoginForm is the payload for logging in
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (u *Users) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing login payload")
		return
	}

	user, err := u.app.Authenticate(form.Username, form.Password)
	if err != nil {
		handleJSONError(w, err, "authenticating user")
		return
	}

	sid, err := u.app.SignIn(user)
	if err != nil {
		handleJSONError(w, err, "signing in")
		return
	}

	setSessionCookie(w, sid, u.app.Clock.Now().Add(session.TTL))
	respondJSON(w, http.StatusOK, presenters.PresentUser(*user))
}

// Logout handles POST /api/auth/logout
func (u *Users) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := u.app.SignOut(cookie.Value); err != nil {
			handleJSONError(w, err, "signing out")
			return
		}
	}

	unsetSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
func (u *Users) Me(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentUser(*user))
}

// RegistrationForm is the payload for registering
type RegistrationForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Register handles POST /api/auth/register
func (u *Users) Register(w http.ResponseWriter, r *http.Request) {
	if u.app.Config.DisableRegistration {
		respondMessage(w, http.StatusForbidden, "Registration is disabled")
		return
	}

	var form RegistrationForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing registration payload")
		return
	}

	user, err := u.app.CreateUser(form.Username, form.Password, form.Email, form.Role)
	if err != nil {
		handleJSONError(w, err, "creating user")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentUser(user))
}

// Index handles GET /api/users
func (u *Users) Index(w http.ResponseWriter, r *http.Request) {
	users, err := u.app.GetUsers()
	if err != nil {
		handleJSONError(w, err, "getting users")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentUsers(users))
}
