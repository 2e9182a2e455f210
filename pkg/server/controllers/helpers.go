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
	"encoding/json"
	"net/http"
	"time"

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/context"
	"github.com/airavoto/gamingpos/pkg/server/log"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/pkg/errors"
)

// ErrMsg is the JSON body of an error response
type ErrMsg struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ErrorWrap(err, "encoding response")
	}
}

func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrMsg{Message: message})
}

// statusForError maps application sentinel errors to HTTP status codes.
// Unknown errors are treated as internal.
func statusForError(err error) int {
	switch errors.Cause(err) {
	case app.ErrNotFound:
		return http.StatusNotFound
	case app.ErrLoginInvalid:
		return http.StatusUnauthorized
	case app.ErrLoginRequired:
		return http.StatusUnauthorized
	case app.ErrAdminRequired:
		return http.StatusForbidden
	case app.ErrCredentialsMissing,
		app.ErrPasswordTooShort,
		app.ErrDuplicateUsername,
		app.ErrSeatNameRequired,
		app.ErrBookingIDsRequired,
		app.ErrPaymentMethodInvalid,
		app.ErrPaymentStatusInvalid,
		app.ErrPaymentAmountZero,
		app.ErrAvailabilityParamsMissing,
		app.ErrInvalidTimeSlot,
		app.ErrInvalidDate,
		app.ErrInvalidConfigPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleJSONError writes the error as a JSON message. Internal errors are
// logged with their full chain and masked with a generic message.
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	statusCode := statusForError(err)

	if statusCode == http.StatusInternalServerError {
		log.ErrorWrap(err, msg)
		respondMessage(w, statusCode, "Internal server error")
		return
	}

	respondMessage(w, statusCode, err.Error())
}

// parseRequestData decodes a JSON request body
func parseRequestData(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decoding payload")
	}

	return nil
}

func setSessionCookie(w http.ResponseWriter, sid string, expires time.Time) {
	cookie := http.Cookie{
		Name:     session.CookieName,
		Value:    sid,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, &cookie)
}

func unsetSessionCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	w.Header().Set("Cache-Control", "no-cache")
	http.SetCookie(w, &cookie)
}

// actorData returns the session data of the request, or the zero value
// for unauthenticated requests.
func actorData(r *http.Request) session.Data {
	if data := context.Session(r.Context()); data != nil {
		return *data
	}

	return session.Data{}
}
