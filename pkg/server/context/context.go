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

// Package context provides typed accessors for request-scoped values.
package context

import (
	"context"

	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/session"
)

type contextKey string

const (
	userKey    contextKey = "user"
	sessionKey contextKey = "session"
)

// WithUser returns a context with the authenticated user
func WithUser(ctx context.Context, user *database.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// User returns the authenticated user from the context, or nil
func User(ctx context.Context) *database.User {
	if user, ok := ctx.Value(userKey).(*database.User); ok {
		return user
	}

	return nil
}

// WithSession returns a context with the session data
func WithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, sessionKey, data)
}

// Session returns the session data from the context, or nil
func Session(ctx context.Context) *session.Data {
	if data, ok := ctx.Value(sessionKey).(*session.Data); ok {
		return data
	}

	return nil
}
