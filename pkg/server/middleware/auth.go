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
	"net/http"

	"github.com/airavoto/gamingpos/pkg/server/app"
	"github.com/airavoto/gamingpos/pkg/server/context"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/log"
	"github.com/airavoto/gamingpos/pkg/server/session"
	pkgErrors "github.com/pkg/errors"
)

// AuthWithSession resolves the session cookie into a user. The session
// expiry is extended on success so that active users stay signed in. A
// session whose user row has been deleted does not authenticate.
func AuthWithSession(a *app.App, r *http.Request) (database.User, *session.Data, bool, error) {
	var user database.User

	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		// no cookie
		return user, nil, false, nil
	}

	data, err := a.Sessions.Get(cookie.Value)
	if err != nil {
		return user, nil, false, pkgErrors.Wrap(err, "getting session")
	}
	if data == nil || !data.Authenticated {
		return user, nil, false, nil
	}

	user, err = a.GetUser(data.UserID)
	if err == app.ErrNotFound {
		return user, nil, false, nil
	} else if err != nil {
		return user, nil, false, pkgErrors.Wrap(err, "finding session user")
	}

	if err := a.Sessions.Touch(cookie.Value); err != nil {
		// log and continue; an expired touch only shortens the session
		log.ErrorWrap(err, "touching session")
	}

	return user, data, true, nil
}

// Auth guards a handler behind an authenticated session
func Auth(a *app.App, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, data, ok, err := AuthWithSession(a, r)
		if err != nil {
			DoError(w, "authenticating with session", err, http.StatusInternalServerError)
			return
		}
		if !ok {
			RespondUnauthorized(w)
			return
		}

		ctx := context.WithUser(r.Context(), &user)
		ctx = context.WithSession(ctx, data)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly guards a handler behind an authenticated admin session
func AdminOnly(a *app.App, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, data, ok, err := AuthWithSession(a, r)
		if err != nil {
			DoError(w, "authenticating with session", err, http.StatusInternalServerError)
			return
		}
		if !ok {
			RespondUnauthorized(w)
			return
		}
		if user.Role != database.RoleAdmin {
			RespondForbidden(w)
			return
		}

		ctx := context.WithUser(r.Context(), &user)
		ctx = context.WithSession(ctx, data)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
