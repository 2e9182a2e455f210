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

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/airavoto/gamingpos/pkg/server/log"
)

func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// RespondUnauthorized writes the standard 401 response
func RespondUnauthorized(w http.ResponseWriter) {
	respondMessage(w, http.StatusUnauthorized, "Authentication required")
}

// RespondForbidden writes the standard 403 response
func RespondForbidden(w http.ResponseWriter) {
	respondMessage(w, http.StatusForbidden, "Admin access required")
}

// DoError logs an internal error and writes a generic response
func DoError(w http.ResponseWriter, msg string, err error, statusCode int) {
	log.ErrorWrap(err, msg)
	respondMessage(w, statusCode, "Internal server error")
}
